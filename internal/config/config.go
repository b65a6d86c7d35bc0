package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultPort is the port the database server listens on.
	DefaultPort = 24180
	// ConnectTimeout bounds dialing a new connection.
	ConnectTimeout = 10 * time.Second
	// AcquireTimeout bounds waiting for a pooled connection.
	AcquireTimeout = 10 * time.Second
	// DefaultAdminEmail is used when MYSQL_ADMIN_EMAIL is empty.
	DefaultAdminEmail = "admin@default.com"
	// DefaultMaxOpenConns matches the connection limit of the pooled client.
	DefaultMaxOpenConns = 10
)

// Config is the process configuration. It is read once at startup and not mutated after.
type Config struct {
	DB    ConnectionConfig `yaml:"database"`
	Admin AdminConfig      `yaml:"admin"`
	Log   LogConfig        `yaml:"log"`
}

// ConnectionConfig holds the MySQL connection settings.
type ConnectionConfig struct {
	Host         string `yaml:"host"`
	User         string `yaml:"user"`
	Password     string `yaml:"password"`
	Database     string `yaml:"database"`
	SSL          bool   `yaml:"ssl"`
	CACertPath   string `yaml:"ca_cert"`
	MaxOpenConns int    `yaml:"max_open_conns"`

	Port           int            `yaml:"-"`
	Location       *time.Location `yaml:"-"`
	ConnectTimeout time.Duration  `yaml:"-"`
	AcquireTimeout time.Duration  `yaml:"-"`
}

// AdminConfig describes the administrator account seeded into the database.
type AdminConfig struct {
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	Email    string `yaml:"email"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// TLSEnabled reports whether connections must be upgraded to TLS.
// Both the SSL flag and a CA certificate path are required.
func (c ConnectionConfig) TLSEnabled() bool {
	return c.SSL && strings.TrimSpace(c.CACertPath) != ""
}

// Addr returns the host:port pair used to dial the server.
func (c ConnectionConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Default returns the configuration before any file or environment is applied.
func Default() *Config {
	return &Config{
		DB: ConnectionConfig{
			MaxOpenConns:   DefaultMaxOpenConns,
			Port:           DefaultPort,
			Location:       time.UTC,
			ConnectTimeout: ConnectTimeout,
			AcquireTimeout: AcquireTimeout,
		},
		Admin: AdminConfig{Email: DefaultAdminEmail},
		Log:   LogConfig{Level: "info", Format: "json"},
	}
}

// Load reads the configuration: .env file, optional YAML file at CONFIG_FILE, then
// environment variables.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env file: %w", err)
	}

	cfg := Default()
	if path := getEnv("CONFIG_FILE", ""); path != "" {
		if err := loadFromFile(path, cfg); err != nil {
			return nil, fmt.Errorf("load config file: %w", err)
		}
	}
	applyEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func loadFromFile(path string, cfg *Config) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(raw, cfg)
}

func applyEnv(cfg *Config) {
	cfg.DB.Host = getEnv("MYSQL_HOST", cfg.DB.Host)
	cfg.DB.User = getEnv("MYSQL_USER", cfg.DB.User)
	cfg.DB.Password = getEnv("MYSQL_PASSWORD", cfg.DB.Password)
	cfg.DB.Database = getEnv("MYSQL_DATABASE", cfg.DB.Database)
	cfg.DB.SSL = getEnvBool("DB_SSL", cfg.DB.SSL)
	cfg.DB.CACertPath = getEnv("CA_CERT", cfg.DB.CACertPath)
	cfg.DB.MaxOpenConns = getEnvInt("DB_MAX_OPEN_CONNS", cfg.DB.MaxOpenConns)

	cfg.Admin.Username = getEnv("MYSQL_ADMIN", cfg.Admin.Username)
	cfg.Admin.Password = getEnv("MYSQL_ADMIN_PASSWORD", cfg.Admin.Password)
	cfg.Admin.Email = getEnv("MYSQL_ADMIN_EMAIL", cfg.Admin.Email)
	if strings.TrimSpace(cfg.Admin.Email) == "" {
		cfg.Admin.Email = DefaultAdminEmail
	}

	cfg.Log.Level = strings.TrimSpace(strings.ToLower(getEnv("LOG_LEVEL", cfg.Log.Level)))
	cfg.Log.Format = strings.TrimSpace(strings.ToLower(getEnv("LOG_FORMAT", cfg.Log.Format)))
}

// Validate checks pool and logging settings. Connection values are not checked here;
// a bad host or credential fails at connect time.
func (c *Config) Validate() error {
	if c.DB.MaxOpenConns < 1 {
		return fmt.Errorf("database max open connections must be at least 1, got %d", c.DB.MaxOpenConns)
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level: %s", c.Log.Level)
	}
	switch c.Log.Format {
	case "json", "text":
	default:
		return fmt.Errorf("invalid log format: %s", c.Log.Format)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// getEnvBool only treats the literal "true" as enabled.
func getEnvBool(key string, fallback bool) bool {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	return v == "true"
}

func getEnvInt(key string, fallback int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
