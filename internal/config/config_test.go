package config_test

import (
	"testing"

	"github.com/JustinArce/MicroservicioAlmacen/internal/config"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newViper() *viper.Viper {
	v := viper.New()
	config.SetDefaults(v)
	v.AutomaticEnv()
	return v
}

func TestLoad_Defaults(t *testing.T) {
	v := viper.New()
	config.SetDefaults(v)

	cfg, err := config.Load(v)
	require.NoError(t, err)

	assert.Equal(t, config.DefaultDatabaseURL, cfg.DatabaseURL)
	assert.Equal(t, "", cfg.RootPath)
	assert.Equal(t, "0.0.0.0:8080", cfg.Addr())
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, 100, cfg.ReadRPS)
	assert.Equal(t, 20, cfg.WriteRPS)
	assert.Equal(t, int64(1048576), cfg.MaxBodyBytes)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("DATABASE_URL", "sqlite://inventory.db")
	t.Setenv("ROOT_PATH", "/almacen/")
	t.Setenv("PORT", "9090")

	cfg, err := config.Load(newViper())
	require.NoError(t, err)

	assert.Equal(t, "sqlite://inventory.db", cfg.DatabaseURL)
	assert.Equal(t, "/almacen", cfg.RootPath)
	assert.Equal(t, 9090, cfg.Port)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value any
	}{
		{"empty database url", "DATABASE_URL", ""},
		{"port out of range", "PORT", 70000},
		{"zero read limit", "RATE_LIMIT_READ_RPS", 0},
		{"zero body limit", "MAX_REQUEST_BODY_BYTES", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := newViper()
			v.Set(tt.key, tt.value)

			_, err := config.Load(v)
			assert.Error(t, err)
		})
	}
}
