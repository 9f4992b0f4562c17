package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("NoConfigFile_ShouldUseDefaults", func(t *testing.T) {
		cfg, err := Load("")
		require.NoError(t, err)

		assert.Equal(t, "Barkeep", cfg.App.Name)
		assert.Equal(t, 8001, cfg.Server.Port)
		assert.Equal(t, "barkeep.db", cfg.Database.Path)
		assert.True(t, cfg.Database.AutoMigrate)
		assert.False(t, cfg.Redis.Enabled)
		assert.Equal(t, "localhost:6379", cfg.RedisAddr())
	})

	t.Run("EnvironmentVariables_ShouldOverrideDefaults", func(t *testing.T) {
		t.Setenv("BARKEEP_SERVER_PORT", "9100")
		t.Setenv("BARKEEP_APP_LOG_LEVEL", "debug")

		cfg, err := Load("")
		require.NoError(t, err)

		assert.Equal(t, 9100, cfg.Server.Port)
		assert.Equal(t, "debug", cfg.App.LogLevel)
	})
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			App:      AppConfig{Name: "Barkeep"},
			Server:   ServerConfig{Port: 8001},
			Database: DatabaseConfig{Path: ":memory:"},
		}
	}

	t.Run("ValidConfig_ShouldPass", func(t *testing.T) {
		assert.NoError(t, valid().Validate())
	})

	t.Run("MissingAppName_ShouldFail", func(t *testing.T) {
		cfg := valid()
		cfg.App.Name = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("InvalidPort_ShouldFail", func(t *testing.T) {
		cfg := valid()
		cfg.Server.Port = 0
		assert.Error(t, cfg.Validate())
	})

	t.Run("MissingDatabasePath_ShouldFail", func(t *testing.T) {
		cfg := valid()
		cfg.Database.Path = ""
		assert.Error(t, cfg.Validate())
	})
}

func TestEnvironmentHelpers(t *testing.T) {
	cfg := &Config{App: AppConfig{Environment: "production"}}
	assert.True(t, cfg.IsProduction())
	assert.False(t, cfg.IsDevelopment())

	cfg.App.Environment = "development"
	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.IsProduction())
}
