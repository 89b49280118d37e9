package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"

	_ "time/tzdata"
)

func TestFromViper_Defaults(t *testing.T) {
	v := viper.New()
	v.Set("APP_TIMEZONE", "UTC")

	cfg := fromViper(v)

	assert.Equal(t, 15*time.Minute, cfg.JWT.AccessExpiry)
	assert.Equal(t, 7*24*time.Hour, cfg.JWT.RefreshExpiry)
	assert.Equal(t, 30, cfg.Agenda.DefaultBlockMinutes)
	assert.Equal(t, 500, cfg.Agenda.MaxAppointments)
	assert.Equal(t, 5*time.Minute, cfg.Agenda.DoctorsCacheTTL)
	assert.Equal(t, time.UTC, cfg.App.Location)
	assert.Empty(t, cfg.App.CORSOrigins)
}

func TestFromViper_Overrides(t *testing.T) {
	v := viper.New()
	v.Set("APP_TIMEZONE", "America/Bogota")
	v.Set("JWT_ACCESS_EXPIRY", "30m")
	v.Set("AGENDA_DEFAULT_BLOCK_MINUTES", 20)
	v.Set("AGENDA_DOCTORS_CACHE_TTL", "1m")
	v.Set("APP_CORS_ORIGINS", "https://agenda.hospital.test, ,http://localhost:5173")

	cfg := fromViper(v)

	assert.Equal(t, 30*time.Minute, cfg.JWT.AccessExpiry)
	assert.Equal(t, 20, cfg.Agenda.DefaultBlockMinutes)
	assert.Equal(t, time.Minute, cfg.Agenda.DoctorsCacheTTL)
	assert.Equal(t, "America/Bogota", cfg.App.Location.String())
	assert.Equal(t, []string{"https://agenda.hospital.test", "http://localhost:5173"}, cfg.App.CORSOrigins)
}

func TestFromViper_UnknownTimezoneFallsBackToLocal(t *testing.T) {
	v := viper.New()
	v.Set("APP_TIMEZONE", "Mars/Olympus")

	cfg := fromViper(v)

	assert.Equal(t, time.Local, cfg.App.Location)
}
