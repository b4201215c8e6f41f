package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeDefaults(t *testing.T) {
	v := viper.New()
	setDefaults(v)

	cfg, err := decode(v)
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, time.Second, cfg.Auth.SimulatedDelay)
	assert.Equal(t, 720*time.Hour, cfg.Security.SessionTTL)
	assert.Equal(t, StorageDriverMemory, cfg.Catalog.Driver)
	assert.Equal(t, "campaigns:deliver", cfg.Campaigns.Stream)
	assert.False(t, cfg.Redis.Enabled())
	assert.False(t, cfg.Storage.Enabled())
	assert.NotEmpty(t, cfg.Security.JWTAccessSecret)
}

func TestDecodeOverrides(t *testing.T) {
	v := viper.New()
	setDefaults(v)
	v.Set("auth.simulateddelay", "250ms")
	v.Set("allowcorsorigins", "https://a.example, https://b.example")
	v.Set("redis.addr", "127.0.0.1:6379")

	cfg, err := decode(v)
	require.NoError(t, err)

	assert.Equal(t, 250*time.Millisecond, cfg.Auth.SimulatedDelay)
	assert.Len(t, cfg.AllowCORSOrigins, 2)
	assert.True(t, cfg.Redis.Enabled())
}

func TestDecodeRejectsInvalidSettings(t *testing.T) {
	t.Run("unknown driver", func(t *testing.T) {
		v := viper.New()
		setDefaults(v)
		v.Set("catalog.driver", "sqlite")

		_, err := decode(v)
		assert.Error(t, err)
	})

	t.Run("postgres without dsn", func(t *testing.T) {
		v := viper.New()
		setDefaults(v)
		v.Set("catalog.driver", StorageDriverPostgres)

		_, err := decode(v)
		assert.Error(t, err)
	})

	t.Run("production without secret", func(t *testing.T) {
		v := viper.New()
		setDefaults(v)
		v.Set("environment", "production")

		_, err := decode(v)
		assert.Error(t, err)
	})
}
