// Package config loads server and client settings from a config file,
// DRIVESYNC_ environment variables and command line flags.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment variables, e.g. DRIVESYNC_SERVER_ADDR.
const EnvPrefix = "DRIVESYNC"

// Config holds all settings.
type Config struct {
	Client ClientConfig `mapstructure:"client"`
	Server ServerConfig `mapstructure:"server"`
	Log    LogConfig    `mapstructure:"log"`
	Drive  DriveConfig  `mapstructure:"drive"`
}

// ServerConfig настройки HTTP сервера и хранилища версий.
type ServerConfig struct {
	Addr            string        `mapstructure:"addr"`
	DBPath          string        `mapstructure:"db_path"`
	RateLimit       int           `mapstructure:"rate_limit"` // запросов на IP за RateWindow
	RateWindow      time.Duration `mapstructure:"rate_window"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// DriveConfig настройки синхронизации.
type DriveConfig struct {
	MaxFileActions      int           `mapstructure:"max_file_actions"`
	MaxDirectoryActions int           `mapstructure:"max_directory_actions"`
	WarningWindow       time.Duration `mapstructure:"warning_window"`
	WarningCacheSize    int           `mapstructure:"warning_cache_size"`
	ConsolidationDelay  time.Duration `mapstructure:"consolidation_delay"`
	MaxDelay            time.Duration `mapstructure:"max_delay"`
	DefaultDelay        time.Duration `mapstructure:"default_delay"`
	DrainInterval       time.Duration `mapstructure:"drain_interval"`
}

// LogConfig настройки логирования.
type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Format string `mapstructure:"format"` // json, text
}

// ClientConfig настройки клиента.
type ClientConfig struct {
	ServerURL string        `mapstructure:"server_url"`
	Root      string        `mapstructure:"root"`
	StatePath string        `mapstructure:"state_path"`
	Device    string        `mapstructure:"device"`
	UserID    int           `mapstructure:"user_id"`
	ContextID int           `mapstructure:"context_id"`
	Timeout   time.Duration `mapstructure:"timeout"`
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.db_path", "drivesync.db")
	v.SetDefault("server.rate_limit", 600)
	v.SetDefault("server.rate_window", time.Minute)
	v.SetDefault("server.shutdown_timeout", 10*time.Second)

	v.SetDefault("drive.max_file_actions", 500)
	v.SetDefault("drive.max_directory_actions", 1000)
	v.SetDefault("drive.warning_window", 5*time.Minute)
	v.SetDefault("drive.warning_cache_size", 10000)
	v.SetDefault("drive.consolidation_delay", time.Second)
	v.SetDefault("drive.max_delay", 20*time.Second)
	v.SetDefault("drive.default_delay", 5*time.Second)
	v.SetDefault("drive.drain_interval", time.Second)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	v.SetDefault("client.server_url", "http://localhost:8080")
	v.SetDefault("client.root", ".")
	v.SetDefault("client.state_path", "drivesync-client.db")
	v.SetDefault("client.device", "")
	v.SetDefault("client.user_id", 0)
	v.SetDefault("client.context_id", 0)
	v.SetDefault("client.timeout", 30*time.Second)
}

// Load reads configuration. An empty path skips the config file. Flags whose
// names match a key with dots and underscores replaced by dashes (e.g.
// "server-db-path") override file and environment values when set.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}

	if flags != nil {
		toFlag := strings.NewReplacer(".", "-", "_", "-")
		for _, key := range v.AllKeys() {
			flag := flags.Lookup(toFlag.Replace(key))
			if flag == nil {
				continue
			}
			if err := v.BindPFlag(key, flag); err != nil {
				return nil, fmt.Errorf("failed to bind flag %s: %w", flag.Name, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	var errs []error

	if c.Drive.MaxFileActions < 0 {
		errs = append(errs, fmt.Errorf("drive.max_file_actions must not be negative"))
	}
	if c.Drive.MaxDirectoryActions < 0 {
		errs = append(errs, fmt.Errorf("drive.max_directory_actions must not be negative"))
	}
	if c.Drive.WarningWindow <= 0 {
		errs = append(errs, fmt.Errorf("drive.warning_window must be positive"))
	}
	if c.Drive.WarningCacheSize <= 0 {
		errs = append(errs, fmt.Errorf("drive.warning_cache_size must be positive"))
	}
	if c.Drive.DrainInterval <= 0 {
		errs = append(errs, fmt.Errorf("drive.drain_interval must be positive"))
	}
	if c.Drive.ConsolidationDelay < 0 || c.Drive.MaxDelay < 0 || c.Drive.DefaultDelay < 0 {
		errs = append(errs, fmt.Errorf("drive.consolidation_delay, drive.max_delay and drive.default_delay must not be negative"))
	}
	if c.Drive.ConsolidationDelay > c.Drive.MaxDelay {
		errs = append(errs, fmt.Errorf("drive.consolidation_delay must not exceed drive.max_delay"))
	}
	if c.Server.ShutdownTimeout < 0 {
		errs = append(errs, fmt.Errorf("server.shutdown_timeout must not be negative"))
	}
	if c.Server.RateLimit <= 0 || c.Server.RateWindow <= 0 {
		errs = append(errs, fmt.Errorf("server.rate_limit and server.rate_window must be positive"))
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("log.level %q is unknown", c.Log.Level))
	}
	switch c.Log.Format {
	case "json", "text":
	default:
		errs = append(errs, fmt.Errorf("log.format %q is unknown", c.Log.Format))
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
