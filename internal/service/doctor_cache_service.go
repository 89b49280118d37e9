package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"hospital-agenda/internal/domain/entity"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const redisActiveDoctorsKey = "agenda:doctors:active"

// DoctorCache holds the active-doctor list served by the agenda.
type DoctorCache interface {
	GetActiveDoctors(ctx context.Context) ([]entity.Doctor, bool, error)
	SetActiveDoctors(ctx context.Context, doctors []entity.Doctor) error
	Invalidate(ctx context.Context) error
}

type redisDoctorCache struct {
	redisClient *redis.Client
	log         *logrus.Logger
	ttl         time.Duration
}

func NewRedisDoctorCache(redisClient *redis.Client, log *logrus.Logger, ttl time.Duration) DoctorCache {
	return &redisDoctorCache{
		redisClient: redisClient,
		log:         log,
		ttl:         ttl,
	}
}

// GetActiveDoctors returns ok=false on a cache miss.
func (c *redisDoctorCache) GetActiveDoctors(ctx context.Context) ([]entity.Doctor, bool, error) {
	payload, err := c.redisClient.Get(ctx, redisActiveDoctorsKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get cached doctors: %w", err)
	}

	var doctors []entity.Doctor
	if err := json.Unmarshal(payload, &doctors); err != nil {
		// Corrupt entry: drop it and treat as a miss
		c.log.Warnf("Discarding unreadable doctor cache entry: %+v", err)
		c.redisClient.Del(ctx, redisActiveDoctorsKey)
		return nil, false, nil
	}

	return doctors, true, nil
}

func (c *redisDoctorCache) SetActiveDoctors(ctx context.Context, doctors []entity.Doctor) error {
	payload, err := json.Marshal(doctors)
	if err != nil {
		return fmt.Errorf("encode doctors for cache: %w", err)
	}
	if err := c.redisClient.Set(ctx, redisActiveDoctorsKey, payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("set cached doctors: %w", err)
	}
	c.log.Debugf("Cached %d active doctors for %v", len(doctors), c.ttl)
	return nil
}

func (c *redisDoctorCache) Invalidate(ctx context.Context) error {
	if err := c.redisClient.Del(ctx, redisActiveDoctorsKey).Err(); err != nil {
		return fmt.Errorf("invalidate doctor cache: %w", err)
	}
	return nil
}
