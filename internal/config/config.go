package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/aretw0/hangman/pkg/domain"
	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file read when no path is given. It is optional.
const DefaultPath = "hangman.yaml"

// EnvPrefix prefixes the environment variables that override file values (HANGMAN_MAX_WRONG=5).
const EnvPrefix = "HANGMAN_"

// Store backends.
const (
	StoreFile   = "file"
	StoreMemory = "memory"
	StoreRedis  = "redis"
)

// Config is the full runtime configuration.
// Precedence, lowest first: defaults, YAML file, .env and environment, command-line flags.
type Config struct {
	Words       string `mapstructure:"words"`
	Store       string `mapstructure:"store"`
	RedisURL    string `mapstructure:"redis_url"`
	RedisKey    string `mapstructure:"redis_key"`
	ShowClue    bool   `mapstructure:"show_clue"`
	EnableAdmin bool   `mapstructure:"enable_admin"`
	MaxWrong    int    `mapstructure:"max_wrong"`
	Seed        int64  `mapstructure:"seed"`
	MetricsAddr string `mapstructure:"metrics_addr"`
	LogLevel    string `mapstructure:"log_level"`
	LogFormat   string `mapstructure:"log_format"`
}

// keys lists every setting, used for the environment overlay.
var keys = []string{
	"words", "store", "redis_url", "redis_key", "show_clue", "enable_admin",
	"max_wrong", "seed", "metrics_addr", "log_level", "log_format",
}

// Default returns the configuration of the standard game.
func Default() Config {
	settings := domain.DefaultSettings()
	return Config{
		Words:       "words.csv",
		Store:       StoreFile,
		RedisKey:    "hangman:words",
		ShowClue:    settings.ShowClue,
		EnableAdmin: settings.EnableAdmin,
		MaxWrong:    settings.MaxWrong,
		LogLevel:    "warn",
		LogFormat:   "text",
	}
}

// Load builds the configuration from defaults, the YAML file at path and the environment.
// An empty path reads DefaultPath if it exists; an explicit path must exist.
// A .env file in the working directory is loaded first, without overriding
// variables already set.
func Load(path string) (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load .env: %w", err)
	}

	raw := map[string]any{}

	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return Config{}, fmt.Errorf("failed to parse %s: %w", path, err)
		}
		if raw == nil {
			raw = map[string]any{}
		}
	case errors.Is(err, fs.ErrNotExist) && !explicit:
		// no config file, defaults only
	default:
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}

	for _, key := range keys {
		if val, ok := os.LookupEnv(EnvPrefix + strings.ToUpper(key)); ok {
			raw[key] = val
		}
	}

	cfg := Default()
	if err := decode(raw, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func decode(raw map[string]any, cfg *Config) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           cfg,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		TagName:          "mapstructure",
	})
	if err != nil {
		return err
	}
	if err := decoder.Decode(raw); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Validate reports the first inconsistent setting.
func (c Config) Validate() error {
	switch c.Store {
	case StoreFile:
		if c.Words == "" {
			return errors.New("words path is required for the file store")
		}
	case StoreMemory:
	case StoreRedis:
		if c.RedisURL == "" {
			return errors.New("redis_url is required for the redis store")
		}
	default:
		return fmt.Errorf("unknown store %q (want file, memory or redis)", c.Store)
	}
	if c.MaxWrong <= 0 {
		return fmt.Errorf("max_wrong must be positive, got %d", c.MaxWrong)
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("unknown log_format %q (want text or json)", c.LogFormat)
	}
	return nil
}

// Settings extracts the game feature flags.
func (c Config) Settings() domain.Settings {
	return domain.Settings{
		ShowClue:    c.ShowClue,
		EnableAdmin: c.EnableAdmin,
		MaxWrong:    c.MaxWrong,
	}
}
