// Package config provides types for handling configuration parameters.
package config

import (
	"flag"
	"fmt"
	"strings"

	"github.com/caarlos0/env/v6"
)

// Config handles all constants and parameters required by the relay.
type Config struct {
	ServerConfig    *ServerConfig
	StorageConfig   *StorageConfig
	BotConfig       *BotConfig
	ShortenerConfig *ShortenerConfig
	SecretConfig    *SecretConfig
}

// ServerConfig defines webhook server parameters and overwrites them with environment variables.
type ServerConfig struct {
	ServerAddress string `env:"SERVER_ADDRESS" envDefault:":8080"`
	WebhookURL    string `env:"WEBHOOK_URL"`
	LogLevel      string `env:"LOG_LEVEL" envDefault:"info"`
}

// StorageConfig retrieves persistence-related parameters from environment.
type StorageConfig struct {
	DatabaseDSN string `env:"DATABASE_DSN"`
}

// BotConfig retrieves messaging-platform parameters from environment.
type BotConfig struct {
	BotToken         string `env:"UPLOADER_BOT_TOKEN"`
	StorageChannelID int64  `env:"STORAGE_CHANNEL_ID"`
}

// ShortenerConfig retrieves link construction and shortening parameters from environment.
type ShortenerConfig struct {
	ShortenerDomain string `env:"SHORTENER_DOMAIN" envDefault:"viralbox.in"`
	WorkerDomain    string `env:"WORKER_DOMAIN"`
	MappingIDLength int    `env:"MAPPING_ID_LENGTH" envDefault:"6"`
}

// SecretConfig retrieves a secret user key from environment.
type SecretConfig struct {
	UserKey string `env:"USER_KEY"`
}

// ValidationError is returned when mandatory configuration values are absent at startup.
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing mandatory configuration parameters: %s", strings.Join(e.Missing, ", "))
}

// NewServerConfig sets up a server configuration.
func NewServerConfig() (*ServerConfig, error) {
	cfg := ServerConfig{}
	err := env.Parse(&cfg)
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

// NewStorageConfig sets up a storage configuration.
func NewStorageConfig() (*StorageConfig, error) {
	cfg := StorageConfig{}
	err := env.Parse(&cfg)
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

// NewBotConfig sets up a bot configuration.
func NewBotConfig() (*BotConfig, error) {
	cfg := BotConfig{}
	err := env.Parse(&cfg)
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

// NewShortenerConfig sets up a shortener configuration.
func NewShortenerConfig() (*ShortenerConfig, error) {
	cfg := ShortenerConfig{}
	err := env.Parse(&cfg)
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

// NewSecretConfig sets up a secret configuration.
func NewSecretConfig() (*SecretConfig, error) {
	cfg := SecretConfig{}
	err := env.Parse(&cfg)
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

// NewDefaultConfiguration sets up a total configuration.
func NewDefaultConfiguration() (*Config, error) {
	serverCfg, err := NewServerConfig()
	if err != nil {
		return nil, err
	}
	storageCfg, err := NewStorageConfig()
	if err != nil {
		return nil, err
	}
	botCfg, err := NewBotConfig()
	if err != nil {
		return nil, err
	}
	shortenerCfg, err := NewShortenerConfig()
	if err != nil {
		return nil, err
	}
	secretCfg, err := NewSecretConfig()
	if err != nil {
		return nil, err
	}
	return &Config{
		ServerConfig:    serverCfg,
		StorageConfig:   storageCfg,
		BotConfig:       botCfg,
		ShortenerConfig: shortenerCfg,
		SecretConfig:    secretCfg,
	}, nil
}

// ParseFlags parses command line arguments and stores them
func (c *Config) ParseFlags() {
	flag.StringVar(&c.ServerConfig.ServerAddress, "a", c.ServerConfig.ServerAddress, "Server address")
	flag.StringVar(&c.StorageConfig.DatabaseDSN, "d", c.StorageConfig.DatabaseDSN, "PSQL DSN")
	flag.StringVar(&c.ShortenerConfig.WorkerDomain, "w", c.ShortenerConfig.WorkerDomain, "Worker retrieval domain")
	flag.Parse()
}

// Validate checks that all mandatory parameters were resolved, surfacing the full
// set of absent values at startup instead of a late nil dereference.
func (c *Config) Validate() error {
	var missing []string
	if c.BotConfig.BotToken == "" {
		missing = append(missing, "UPLOADER_BOT_TOKEN")
	}
	if c.BotConfig.StorageChannelID == 0 {
		missing = append(missing, "STORAGE_CHANNEL_ID")
	}
	if c.StorageConfig.DatabaseDSN == "" {
		missing = append(missing, "DATABASE_DSN")
	}
	if c.ShortenerConfig.WorkerDomain == "" {
		missing = append(missing, "WORKER_DOMAIN")
	}
	if c.ServerConfig.WebhookURL == "" {
		missing = append(missing, "WEBHOOK_URL")
	}
	if c.SecretConfig.UserKey == "" {
		missing = append(missing, "USER_KEY")
	}
	if len(missing) != 0 {
		return &ValidationError{Missing: missing}
	}
	return nil
}
