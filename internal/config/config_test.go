package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Tests

func TestNewDefaultConfiguration(t *testing.T) {
	os.Clearenv()
	_ = os.Setenv("UPLOADER_BOT_TOKEN", "some_bot_token")
	_ = os.Setenv("DATABASE_DSN", "some_dsn")
	_ = os.Setenv("STORAGE_CHANNEL_ID", "-1001234567890")
	_ = os.Setenv("WORKER_DOMAIN", "https://worker.example.com")
	_ = os.Setenv("WEBHOOK_URL", "https://bot.example.com")
	_ = os.Setenv("USER_KEY", "some_user_key")
	cfg, err := NewDefaultConfiguration()
	assert.NoError(t, err)
	assert.Equal(t, "some_bot_token", cfg.BotConfig.BotToken)
	assert.Equal(t, int64(-1001234567890), cfg.BotConfig.StorageChannelID)
	assert.Equal(t, "some_dsn", cfg.StorageConfig.DatabaseDSN)
	assert.Equal(t, "https://worker.example.com", cfg.ShortenerConfig.WorkerDomain)
	assert.Equal(t, "viralbox.in", cfg.ShortenerConfig.ShortenerDomain)
	assert.Equal(t, 6, cfg.ShortenerConfig.MappingIDLength)
	assert.Equal(t, ":8080", cfg.ServerConfig.ServerAddress)
	assert.NoError(t, cfg.Validate())
}

func TestConfig_ValidateMissing(t *testing.T) {
	os.Clearenv()
	_ = os.Setenv("UPLOADER_BOT_TOKEN", "some_bot_token")
	cfg, err := NewDefaultConfiguration()
	assert.NoError(t, err)
	err = cfg.Validate()
	var validationError *ValidationError
	assert.ErrorAs(t, err, &validationError)
	assert.Contains(t, validationError.Missing, "DATABASE_DSN")
	assert.Contains(t, validationError.Missing, "STORAGE_CHANNEL_ID")
	assert.Contains(t, validationError.Missing, "WORKER_DOMAIN")
	assert.Contains(t, validationError.Missing, "WEBHOOK_URL")
	assert.Contains(t, validationError.Missing, "USER_KEY")
	assert.NotContains(t, validationError.Missing, "UPLOADER_BOT_TOKEN")
}
