package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"

	"github.com/joho/godotenv"
	"github.com/samber/lo"
	"github.com/spf13/viper"

	"github.com/mcoot/palabras/internal/model"
)

// EnvPrefix is prepended to every environment variable the server reads
const EnvPrefix = "SCRABBLE"

// Storage backends
const (
	StorageMemory = "memory"
	StorageRedis  = "redis"
)

// Config is the server configuration, read from the environment
type Config struct {
	Host string
	Port int

	// DictionaryPath is a word list with one word per line
	DictionaryPath string

	StorageType string
	RedisURL    string

	// Seed makes tile shuffles and the computer's choices reproducible; 0 means unseeded
	Seed int64

	ExchangePolicy string
	BotStrategy    string
	LogLevel       string
}

func defaults(v *viper.Viper) {
	v.SetDefault("host", "")
	v.SetDefault("port", 8080)
	v.SetDefault("dictionary_path", "data/words.txt")
	v.SetDefault("storage_type", StorageMemory)
	v.SetDefault("redis_url", "redis://localhost:6379/0")
	v.SetDefault("seed", 0)
	v.SetDefault("exchange_policy", "permissive")
	v.SetDefault("bot_strategy", "greedy")
	v.SetDefault("log_level", "info")
}

// Load reads the configuration. Values in envFile (if it exists) are exported
// first without overriding variables already set in the environment.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	defaults(v)

	// PORT is honoured when SCRABBLE_PORT is absent
	if err := v.BindEnv("port", EnvPrefix+"_PORT", "PORT"); err != nil {
		return nil, err
	}

	cfg := &Config{
		Host:           v.GetString("host"),
		Port:           v.GetInt("port"),
		DictionaryPath: v.GetString("dictionary_path"),
		StorageType:    strings.ToLower(v.GetString("storage_type")),
		RedisURL:       v.GetString("redis_url"),
		Seed:           v.GetInt64("seed"),
		ExchangePolicy: strings.ToLower(v.GetString("exchange_policy")),
		BotStrategy:    strings.ToLower(v.GetString("bot_strategy")),
		LogLevel:       v.GetString("log_level"),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the values that can be checked without building services
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}
	switch c.StorageType {
	case StorageMemory:
	case StorageRedis:
		if c.RedisURL == "" {
			return errors.New("redis URL required when storage type is redis")
		}
	default:
		return fmt.Errorf("invalid storage type %q: must be %q or %q", c.StorageType, StorageMemory, StorageRedis)
	}
	if !lo.Contains(model.ValidBotStrategies(), c.BotStrategy) {
		return fmt.Errorf("invalid bot strategy %q: must be one of %v", c.BotStrategy, model.ValidBotStrategies())
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel into an slog level
func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	return level, nil
}
