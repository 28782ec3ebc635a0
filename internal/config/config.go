package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g.
// PARCELSCOUT_SEARCH_DELAY=250ms.
const EnvPrefix = "PARCELSCOUT"

// Config holds application configuration.
type Config struct {
	Search  SearchConfig
	Catalog CatalogConfig
	Log     LogConfig
}

// SearchConfig controls the simulated lookup round trip.
type SearchConfig struct {
	Delay time.Duration
}

// CatalogConfig selects the parcel catalog source and backend.
type CatalogConfig struct {
	Path    string
	Backend string
	DBPath  string `mapstructure:"db_path"`
}

// LogConfig holds logger settings. An empty File disables logging because
// stdout belongs to the terminal UI.
type LogConfig struct {
	File  string
	Level string
}

// Flag names bound onto config keys.
var flagKeys = map[string]string{
	"delay":      "search.delay",
	"catalog":    "catalog.path",
	"backend":    "catalog.backend",
	"catalog-db": "catalog.db_path",
	"log-file":   "log.file",
	"log-level":  "log.level",
}

// RegisterFlags adds the persistent configuration flags to fs.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.Duration("delay", time.Second, "simulated lookup delay")
	fs.String("catalog", "", "catalog YAML file (default: built-in catalog)")
	fs.String("backend", "memory", "catalog backend: memory or sqlite")
	fs.String("catalog-db", ":memory:", "sqlite catalog database path")
	fs.String("log-file", "", "write JSON logs to this file")
	fs.String("log-level", "info", "log level: debug, info, warn, error")
}

// Load reads configuration from defaults, the config file, env and flags,
// in increasing precedence. fs may be nil.
func Load(fs *pflag.FlagSet) (Config, error) {
	v := viper.New()

	v.SetDefault("search.delay", time.Second)
	v.SetDefault("catalog.path", "")
	v.SetDefault("catalog.backend", "memory")
	v.SetDefault("catalog.db_path", ":memory:")
	v.SetDefault("log.file", "")
	v.SetDefault("log.level", "info")

	v.SetConfigType("yaml")
	if cfgPath := os.Getenv(EnvPrefix + "_CONFIG"); cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", "parcelscout"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("reading config: %w", err)
		}
	}

	if fs != nil {
		if err := bindFlags(v, fs); err != nil {
			return Config{}, err
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// bindFlags binds only flags the user actually set, so flag defaults never
// mask file or env values.
func bindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	var bindErr error
	fs.Visit(func(f *pflag.Flag) {
		key, ok := flagKeys[f.Name]
		if !ok || bindErr != nil {
			return
		}
		if err := v.BindPFlag(key, f); err != nil {
			bindErr = fmt.Errorf("binding flag --%s: %w", f.Name, err)
		}
	})
	return bindErr
}

// Validate rejects settings the rest of the program cannot honour.
func (c Config) Validate() error {
	if c.Search.Delay < 0 {
		return fmt.Errorf("search.delay must not be negative, got %s", c.Search.Delay)
	}
	switch c.Catalog.Backend {
	case "memory", "sqlite":
	default:
		return fmt.Errorf("catalog.backend: unknown value %q (expected memory or sqlite)", c.Catalog.Backend)
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level: unknown value %q", c.Log.Level)
	}
	return nil
}
