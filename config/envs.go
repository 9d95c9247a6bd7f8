package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable read by Load, e.g.
// VINOM_SERVER_PORT.
const EnvPrefix = "VINOM"

var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds the application's configuration values.
type Config struct {
	Server ServerConfig `mapstructure:"server"`
	Log    LogConfig    `mapstructure:"log"`
	Solve  SolveConfig  `mapstructure:"solve"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Host    string `mapstructure:"host"`     // Host IP for the server
	Port    int    `mapstructure:"port"`     // Port for the REST API
	GinMode string `mapstructure:"gin_mode"` // Mode for the Gin framework (e.g., release, debug, test)
	BaseURL string `mapstructure:"base_url"` // Base URL for API routes

	SolveTimeout time.Duration `mapstructure:"solve_timeout"` // per request; zero disables it
	MaxSteps     int           `mapstructure:"max_steps"`     // step cap of an API search
}

// LogConfig configures the component loggers.
type LogConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"` // console or json
	File       string `mapstructure:"file"`   // optional rotating JSON log file
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
	Compress   bool   `mapstructure:"compress"`
}

// SolveConfig holds the defaults of a search run.
type SolveConfig struct {
	Size     int    `mapstructure:"size"`
	Density  int    `mapstructure:"density"`
	Policy   string `mapstructure:"policy"`
	Seed     int64  `mapstructure:"seed"`
	MaxSteps int    `mapstructure:"max_steps"`
	MaxSize  int    `mapstructure:"max_size"` // largest maze the API accepts
}

// Addr returns the listen address of the HTTP API.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// SetDefaults registers the default of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.gin_mode", "release")
	v.SetDefault("server.base_url", "/api")
	v.SetDefault("server.solve_timeout", 10*time.Second)
	v.SetDefault("server.max_steps", 200_000)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("log.file", "")
	v.SetDefault("log.max_size_mb", 10)
	v.SetDefault("log.max_backups", 3)
	v.SetDefault("log.max_age_days", 28)
	v.SetDefault("log.compress", false)

	v.SetDefault("solve.size", 20)
	v.SetDefault("solve.density", 5)
	v.SetDefault("solve.policy", "greedy")
	v.SetDefault("solve.seed", 0)
	v.SetDefault("solve.max_steps", 0)
	v.SetDefault("solve.max_size", 128)
}

// Load reads the configuration: a .env file if present, then the config file
// set on v (if any), then VINOM_* environment variables. Flags bound to v by
// the caller take precedence over all of them.
func Load(v *viper.Viper) (Config, error) {
	// Load .env file if available
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("[APP] [INFO] .env file not found or could not be loaded: %v", err)
	}

	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks ranges that would otherwise fail deep inside a run.
func (c Config) Validate() error {
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("%w: server.port %d", ErrInvalidConfig, c.Server.Port)
	}
	if c.Server.SolveTimeout < 0 {
		return fmt.Errorf("%w: server.solve_timeout %s", ErrInvalidConfig, c.Server.SolveTimeout)
	}
	if c.Server.MaxSteps < 1 {
		return fmt.Errorf("%w: server.max_steps %d", ErrInvalidConfig, c.Server.MaxSteps)
	}
	if c.Solve.Density < 0 || c.Solve.Density > 100 {
		return fmt.Errorf("%w: solve.density %d", ErrInvalidConfig, c.Solve.Density)
	}
	if c.Solve.Size < 1 {
		return fmt.Errorf("%w: solve.size %d", ErrInvalidConfig, c.Solve.Size)
	}
	if c.Solve.MaxSteps < 0 {
		return fmt.Errorf("%w: solve.max_steps %d", ErrInvalidConfig, c.Solve.MaxSteps)
	}
	if c.Solve.MaxSize < 1 {
		return fmt.Errorf("%w: solve.max_size %d", ErrInvalidConfig, c.Solve.MaxSize)
	}
	switch c.Log.Format {
	case "console", "json":
	default:
		return fmt.Errorf("%w: log.format %q", ErrInvalidConfig, c.Log.Format)
	}
	return nil
}
