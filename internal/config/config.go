package config

import (
	"fmt"
	"os"
	"strings"

	"hr-intake-backend/internal/database"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Log       LogConfig       `yaml:"log"`
	Notify    NotifyConfig    `yaml:"notify"`
	Scheduler SchedulerConfig `yaml:"scheduler"`
	Bootstrap BootstrapConfig `yaml:"bootstrap"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host string `yaml:"host" env:"SERVER_HOST"`
	Port int    `yaml:"port" env:"SERVER_PORT"`
}

// DatabaseConfig selects the driver and its connection settings. Path is
// used by sqlite only.
type DatabaseConfig struct {
	Driver   string `yaml:"driver" env:"DB_DRIVER"` // "postgres" or "sqlite"
	Host     string `yaml:"host" env:"DB_HOST"`
	Port     int    `yaml:"port" env:"DB_PORT"`
	User     string `yaml:"user" env:"DB_USER"`
	Password string `yaml:"password" env:"DB_PASSWORD"`
	Database string `yaml:"database" env:"DB_NAME"`
	SSLMode  string `yaml:"ssl_mode" env:"DB_SSL_MODE"`
	Path     string `yaml:"path" env:"DB_PATH"`
}

// LogConfig contains logging settings
type LogConfig struct {
	Level  string `yaml:"level" env:"LOG_LEVEL"`   // "debug", "info", "warn", "error"
	Format string `yaml:"format" env:"LOG_FORMAT"` // "json" or "text"
}

// NotifyConfig picks the chat transport used to deliver notifications.
type NotifyConfig struct {
	Driver        string `yaml:"driver" env:"NOTIFY_DRIVER"` // "redis", "discord" or "log"
	RedisAddr     string `yaml:"redis_addr" env:"REDIS_ADDR"`
	RedisPassword string `yaml:"redis_password" env:"REDIS_PASSWORD"`
	DiscordToken  string `yaml:"discord_token" env:"DISCORD_TOKEN"`
}

// SchedulerConfig contains cron schedule settings
type SchedulerConfig struct {
	PendingDigest     string `yaml:"pending_digest" env:"SCHEDULE_PENDING_DIGEST"`
	DigestMinAgeHours int    `yaml:"digest_min_age_hours" env:"DIGEST_MIN_AGE_HOURS"`
}

// BootstrapConfig names the first elevated participant. It is applied once,
// while no elevated participant exists.
type BootstrapConfig struct {
	ParticipantID int64  `yaml:"participant_id" env:"BOOTSTRAP_PARTICIPANT_ID"`
	FullName      string `yaml:"full_name" env:"BOOTSTRAP_FULL_NAME"`
	Department    string `yaml:"department" env:"BOOTSTRAP_DEPARTMENT"`
	Position      string `yaml:"position" env:"BOOTSTRAP_POSITION"`
}

func (b BootstrapConfig) Enabled() bool {
	return b.ParticipantID != 0
}

// Load reads configuration from a YAML file, then applies environment
// overrides and defaults.
func Load(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// Parse builds a Config from YAML bytes plus the environment.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Database.Driver == "" {
		c.Database.Driver = database.DriverPostgres
	}
	c.Database.Driver = strings.ToLower(c.Database.Driver)
	if c.Database.Port == 0 {
		c.Database.Port = 5432
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
	if c.Notify.Driver == "" {
		c.Notify.Driver = "log"
	}
	if c.Scheduler.PendingDigest == "" {
		c.Scheduler.PendingDigest = "0 0 9 * * 1-5" // Weekdays at 9 AM UTC
	}
	if c.Scheduler.DigestMinAgeHours == 0 {
		c.Scheduler.DigestMinAgeHours = 8
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	switch c.Database.Driver {
	case database.DriverPostgres:
		if c.Database.Host == "" {
			return fmt.Errorf("database host is required")
		}
		if c.Database.User == "" {
			return fmt.Errorf("database user is required")
		}
		if c.Database.Database == "" {
			return fmt.Errorf("database name is required")
		}
	case database.DriverSQLite:
		if c.Database.Path == "" {
			return fmt.Errorf("database path is required for sqlite")
		}
	default:
		return fmt.Errorf("unsupported database driver: %q", c.Database.Driver)
	}

	switch c.Notify.Driver {
	case "redis":
		if c.Notify.RedisAddr == "" {
			return fmt.Errorf("redis address is required for the redis notify driver")
		}
	case "discord":
		if c.Notify.DiscordToken == "" {
			return fmt.Errorf("discord token is required for the discord notify driver")
		}
	case "log":
	default:
		return fmt.Errorf("unsupported notify driver: %q", c.Notify.Driver)
	}

	if c.Scheduler.DigestMinAgeHours < 0 {
		return fmt.Errorf("digest min age must not be negative")
	}

	if c.Bootstrap.Enabled() {
		if c.Bootstrap.FullName == "" || c.Bootstrap.Department == "" || c.Bootstrap.Position == "" {
			return fmt.Errorf("bootstrap requires full_name, department and position")
		}
	}

	return nil
}

// DSN returns the connection string for the configured driver.
func (c *Config) DSN() string {
	if c.Database.Driver == database.DriverSQLite {
		return database.SQLiteDSN(c.Database.Path)
	}
	return database.PostgresDSN(
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Database,
		c.Database.SSLMode,
	)
}

// GetServerAddress returns the HTTP listen address
func (c *Config) GetServerAddress() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}
