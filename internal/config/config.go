package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/mitchellh/go-homedir"
)

// StoreKind selects the pack repository backend
type StoreKind string

const (
	StoreMemory StoreKind = "memory"
	StoreDisk   StoreKind = "disk"
	StoreRedis  StoreKind = "redis"
)

// Config holds all configuration for the overlay tools
type Config struct {
	Store   StoreConfig
	Redis   RedisConfig
	Runtime RuntimeConfig
	Discord DiscordConfig
}

// StoreConfig picks where packs are persisted
type StoreConfig struct {
	Kind StoreKind
	Dir  string // disk store root, home-expanded
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	URL string
}

// RuntimeConfig tunes the update loop and edit policy
type RuntimeConfig struct {
	EditDuringCombat bool
	UpdateInterval   time.Duration
	SaveTimeout      time.Duration
}

// DiscordConfig is only needed by the share command
type DiscordConfig struct {
	Token     string
	ChannelID string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	dir, err := homedir.Expand(getEnvOrDefault("OVERLAY_PACK_DIR", "~/.overlay/packs"))
	if err != nil {
		return nil, fmt.Errorf("failed to expand OVERLAY_PACK_DIR: %w", err)
	}

	cfg := &Config{
		Store: StoreConfig{
			Kind: StoreKind(getEnvOrDefault("OVERLAY_PACK_STORE", string(StoreDisk))),
			Dir:  dir,
		},
		Redis: RedisConfig{
			URL: getEnvOrDefault("REDIS_URL", "redis://localhost:6379/0"),
		},
		Runtime: RuntimeConfig{
			EditDuringCombat: getEnvAsBoolOrDefault("OVERLAY_EDIT_DURING_COMBAT", false),
			UpdateInterval:   time.Duration(getEnvAsIntOrDefault("OVERLAY_UPDATE_INTERVAL_MS", 100)) * time.Millisecond,
			SaveTimeout:      time.Duration(getEnvAsIntOrDefault("OVERLAY_SAVE_TIMEOUT_MS", 2000)) * time.Millisecond,
		},
		Discord: DiscordConfig{
			Token:     os.Getenv("DISCORD_TOKEN"),
			ChannelID: os.Getenv("DISCORD_CHANNEL_ID"),
		},
	}

	switch cfg.Store.Kind {
	case StoreMemory, StoreDisk, StoreRedis:
	default:
		return nil, fmt.Errorf("OVERLAY_PACK_STORE must be memory, disk or redis, got %q", cfg.Store.Kind)
	}
	if cfg.Runtime.UpdateInterval <= 0 {
		return nil, fmt.Errorf("OVERLAY_UPDATE_INTERVAL_MS must be positive")
	}

	return cfg, nil
}

// RequireDiscord checks the settings the share command needs
func (c *Config) RequireDiscord() error {
	if c.Discord.Token == "" {
		return fmt.Errorf("DISCORD_TOKEN is required")
	}
	if c.Discord.ChannelID == "" {
		return fmt.Errorf("DISCORD_CHANNEL_ID is required")
	}
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
