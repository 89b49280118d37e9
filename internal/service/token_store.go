package service

import (
	"context"
	"fmt"
	"time"

	"hospital-agenda/pkg/jwt"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	redisAccessTokenKeyPrefix  = "access_token:"
	redisRefreshTokenKeyPrefix = "refresh_token:"
)

// TokenStore tracks issued tokens so logout can revoke them before they
// expire.
type TokenStore interface {
	Store(ctx context.Context, tokenType jwt.TokenType, userID uuid.UUID, tokenID string, ttl time.Duration) error
	Exists(ctx context.Context, tokenType jwt.TokenType, userID uuid.UUID, tokenID string) (bool, error)
	Revoke(ctx context.Context, tokenType jwt.TokenType, userID uuid.UUID, tokenID string) error
}

type redisTokenStore struct {
	redisClient *redis.Client
}

func NewRedisTokenStore(redisClient *redis.Client) TokenStore {
	return &redisTokenStore{redisClient: redisClient}
}

func tokenKey(tokenType jwt.TokenType, userID uuid.UUID, tokenID string) string {
	prefix := redisAccessTokenKeyPrefix
	if tokenType == jwt.RefreshToken {
		prefix = redisRefreshTokenKeyPrefix
	}
	return fmt.Sprintf("%s%s:%s", prefix, userID.String(), tokenID)
}

func (s *redisTokenStore) Store(ctx context.Context, tokenType jwt.TokenType, userID uuid.UUID, tokenID string, ttl time.Duration) error {
	if err := s.redisClient.Set(ctx, tokenKey(tokenType, userID, tokenID), "valid", ttl).Err(); err != nil {
		return fmt.Errorf("store %s token for user %s: %w", tokenType, userID, err)
	}
	return nil
}

func (s *redisTokenStore) Exists(ctx context.Context, tokenType jwt.TokenType, userID uuid.UUID, tokenID string) (bool, error) {
	n, err := s.redisClient.Exists(ctx, tokenKey(tokenType, userID, tokenID)).Result()
	if err != nil {
		return false, fmt.Errorf("check %s token for user %s: %w", tokenType, userID, err)
	}
	return n > 0, nil
}

func (s *redisTokenStore) Revoke(ctx context.Context, tokenType jwt.TokenType, userID uuid.UUID, tokenID string) error {
	if err := s.redisClient.Del(ctx, tokenKey(tokenType, userID, tokenID)).Err(); err != nil {
		return fmt.Errorf("revoke %s token for user %s: %w", tokenType, userID, err)
	}
	return nil
}
