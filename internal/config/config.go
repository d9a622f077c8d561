package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Database DatabaseConfig
	Mission  MissionConfig
	UI       UIConfig
	Log      LogConfig
	Metrics  MetricsConfig
}

// DatabaseConfig holds sqlite settings.
type DatabaseConfig struct {
	Path        string
	BusyTimeout time.Duration `mapstructure:"busy_timeout"`
}

// MissionConfig holds the ship computer's standing orders.
type MissionConfig struct {
	KillDave  bool   `mapstructure:"kill_dave"`
	Commander string `mapstructure:"commander"`
	LogLimit  int    `mapstructure:"log_limit"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Locale      string `mapstructure:"locale"`
	DateFormat  string `mapstructure:"date_format"`
	ClockFormat string `mapstructure:"clock_format"`
	Timezone    string `mapstructure:"timezone"`
}

// LogConfig holds zap settings. Path receives the log so the console stays clean.
type LogConfig struct {
	Level       string `mapstructure:"level"`
	Environment string `mapstructure:"environment"`
	Path        string `mapstructure:"path"`
}

// MetricsConfig holds the optional prometheus endpoint.
type MetricsConfig struct {
	Addr string `mapstructure:"addr"`
}

// Location resolves UI.Timezone, falling back to UTC.
func (c UIConfig) Location() *time.Location {
	if c.Timezone == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func dataDir() string {
	return filepath.Join(os.Getenv("HOME"), ".local", "share", "discovery")
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("database.path", filepath.Join(dataDir(), "discovery.db"))
	v.SetDefault("database.busy_timeout", "5s")
	v.SetDefault("mission.kill_dave", true)
	v.SetDefault("mission.commander", "Dave")
	v.SetDefault("mission.log_limit", 20)
	v.SetDefault("ui.locale", "en")
	v.SetDefault("ui.date_format", "2006-01-02")
	v.SetDefault("ui.clock_format", "15:04:05")
	v.SetDefault("ui.timezone", "UTC")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.environment", "production")
	v.SetDefault("log.path", filepath.Join(dataDir(), "discovery.log"))
	v.SetDefault("metrics.addr", "")
}

// Load reads configuration from file and env. Env var overrides use prefix DISCOVERY_.
// An explicit path wins over DISCOVERY_CONFIG, which wins over the default location.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigType("toml")

	if path == "" {
		path = os.Getenv("DISCOVERY_CONFIG")
	}
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "discovery"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("DISCOVERY")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// Save writes the provided config to path, creating the directory if needed.
func Save(path string, cfg Config) error {
	if path == "" {
		path = os.Getenv("DISCOVERY_CONFIG")
	}
	if path == "" {
		path = filepath.Join(os.Getenv("HOME"), ".config", "discovery", "config.toml")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("database.path", cfg.Database.Path)
	v.Set("database.busy_timeout", cfg.Database.BusyTimeout.String())
	v.Set("mission.kill_dave", cfg.Mission.KillDave)
	v.Set("mission.commander", cfg.Mission.Commander)
	v.Set("mission.log_limit", cfg.Mission.LogLimit)
	v.Set("ui.locale", cfg.UI.Locale)
	v.Set("ui.date_format", cfg.UI.DateFormat)
	v.Set("ui.clock_format", cfg.UI.ClockFormat)
	v.Set("ui.timezone", cfg.UI.Timezone)
	v.Set("log.level", cfg.Log.Level)
	v.Set("log.environment", cfg.Log.Environment)
	v.Set("log.path", cfg.Log.Path)
	v.Set("metrics.addr", cfg.Metrics.Addr)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
