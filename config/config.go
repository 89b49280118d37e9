package config

import (
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App    AppConfig
	DB     DBConfig
	Redis  RedisConfig
	JWT    JWTConfig
	Agenda AgendaConfig
}

type AppConfig struct {
	Port     string
	Env      string
	LogLevel string
	Timezone string

	// CORSOrigins is empty when every origin is allowed.
	CORSOrigins []string

	// Location is resolved from Timezone once at load time.
	Location *time.Location
}

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret        string
	AccessExpiry  time.Duration
	RefreshExpiry time.Duration
}

type AgendaConfig struct {
	DefaultBlockMinutes int
	MaxAppointments     int
	DoctorsCacheTTL     time.Duration
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")
	viper.AutomaticEnv()

	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("APP_TIMEZONE", "America/Bogota")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("DB_SSLMODE", "disable")
	viper.SetDefault("AGENDA_DEFAULT_BLOCK_MINUTES", 30)
	viper.SetDefault("AGENDA_MAX_APPOINTMENTS", 500)

	if err := viper.ReadInConfig(); err != nil {
		// Environment variables alone are enough in containers
		logrus.Warnf("No .env file loaded, using environment: %v", err)
	}

	return fromViper(viper.GetViper()), nil
}

func fromViper(v *viper.Viper) *Config {
	accessExpiry, err := time.ParseDuration(v.GetString("JWT_ACCESS_EXPIRY"))
	if err != nil {
		accessExpiry = 15 * time.Minute
	}

	refreshExpiry, err := time.ParseDuration(v.GetString("JWT_REFRESH_EXPIRY"))
	if err != nil {
		refreshExpiry = 7 * 24 * time.Hour
	}

	doctorsCacheTTL, err := time.ParseDuration(v.GetString("AGENDA_DOCTORS_CACHE_TTL"))
	if err != nil {
		doctorsCacheTTL = 5 * time.Minute
	}

	blockMinutes := v.GetInt("AGENDA_DEFAULT_BLOCK_MINUTES")
	if blockMinutes <= 0 {
		blockMinutes = 30
	}

	maxAppointments := v.GetInt("AGENDA_MAX_APPOINTMENTS")
	if maxAppointments <= 0 {
		maxAppointments = 500
	}

	timezone := v.GetString("APP_TIMEZONE")
	location, err := time.LoadLocation(timezone)
	if err != nil {
		logrus.Warnf("Unknown timezone %q, falling back to server local time: %v", timezone, err)
		location = time.Local
	}

	var corsOrigins []string
	for _, origin := range strings.Split(v.GetString("APP_CORS_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			corsOrigins = append(corsOrigins, origin)
		}
	}

	return &Config{
		App: AppConfig{
			Port:        v.GetString("APP_PORT"),
			Env:         v.GetString("APP_ENV"),
			LogLevel:    v.GetString("LOG_LEVEL"),
			Timezone:    timezone,
			CORSOrigins: corsOrigins,
			Location:    location,
		},
		DB: DBConfig{
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetString("DB_PORT"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASSWORD"),
			Name:     v.GetString("DB_NAME"),
			SSLMode:  v.GetString("DB_SSLMODE"),
		},
		Redis: RedisConfig{
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetString("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		JWT: JWTConfig{
			Secret:        v.GetString("JWT_SECRET"),
			AccessExpiry:  accessExpiry,
			RefreshExpiry: refreshExpiry,
		},
		Agenda: AgendaConfig{
			DefaultBlockMinutes: blockMinutes,
			MaxAppointments:     maxAppointments,
			DoctorsCacheTTL:     doctorsCacheTTL,
		},
	}
}
