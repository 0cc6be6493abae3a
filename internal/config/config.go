package config

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is read when CONFIG_FILE is not set. A missing file is not an error.
const DefaultConfigFile = "config.yaml"

// Config holds all application configuration.
type Config struct {
	ServerPort string
	GinMode    string

	LogLevel      string
	LogFormat     string
	LogFile       string
	LogMaxSizeMB  int
	LogMaxBackups int
	LogMaxAgeDays int

	DatabaseURL string
	MaxDBConns  int32
	AutoMigrate bool

	// RedisURL is optional. When empty the rate limiter keeps its counters in memory.
	RedisURL          string
	RateLimitRequests int
	RateLimitWindow   time.Duration

	CompressionMinBytes int

	// AllowedOrigins controls HTTP CORS.
	// Empty slice means all origins are permitted (dev default).
	AllowedOrigins []string
}

// fileConfig mirrors the optional YAML configuration file.
type fileConfig struct {
	Server struct {
		Port                string   `yaml:"port"`
		Mode                string   `yaml:"mode"`
		AllowedOrigins      []string `yaml:"allowed_origins"`
		CompressionMinBytes int      `yaml:"compression_min_bytes"`
	} `yaml:"server"`

	Database struct {
		URL         string `yaml:"url"`
		Host        string `yaml:"host"`
		Port        string `yaml:"port"`
		User        string `yaml:"user"`
		Password    string `yaml:"password"`
		Name        string `yaml:"name"`
		SSLMode     string `yaml:"sslmode"`
		MaxConns    int    `yaml:"max_conns"`
		AutoMigrate bool   `yaml:"auto_migrate"`
	} `yaml:"database"`

	Log struct {
		Level      string `yaml:"level"`
		Format     string `yaml:"format"`
		File       string `yaml:"file"`
		MaxSizeMB  int    `yaml:"max_size_mb"`
		MaxBackups int    `yaml:"max_backups"`
		MaxAgeDays int    `yaml:"max_age_days"`
	} `yaml:"log"`

	Redis struct {
		URL string `yaml:"url"`
	} `yaml:"redis"`

	RateLimit struct {
		Requests      int `yaml:"requests"`
		WindowSeconds int `yaml:"window_seconds"`
	} `yaml:"rate_limit"`
}

// Load reads configuration from, in increasing precedence: built-in defaults,
// the YAML file named by CONFIG_FILE, and environment variables.
// It loads .env file if present but does not fail if missing.
func Load() (*Config, error) {
	_ = godotenv.Load()

	fc := defaults()
	path := getEnv("CONFIG_FILE", DefaultConfigFile)
	if err := readFile(path, fc); err != nil {
		return nil, err
	}

	dbURL := getEnv("DATABASE_URL", fc.Database.URL)
	if dbURL == "" {
		dbURL = buildDatabaseURL(
			getEnv("DB_HOST", fc.Database.Host),
			getEnv("DB_PORT", fc.Database.Port),
			getEnv("DB_USER", fc.Database.User),
			getEnv("DB_PASSWORD", fc.Database.Password),
			getEnv("DB_NAME", fc.Database.Name),
			getEnv("DB_SSLMODE", fc.Database.SSLMode),
		)
	}

	origins := fc.Server.AllowedOrigins
	if raw := os.Getenv("ALLOWED_ORIGINS"); raw != "" {
		origins = parseOrigins(raw)
	}

	return &Config{
		ServerPort:          getEnv("SERVER_PORT", fc.Server.Port),
		GinMode:             getEnv("GIN_MODE", fc.Server.Mode),
		LogLevel:            getEnv("LOG_LEVEL", fc.Log.Level),
		LogFormat:           getEnv("LOG_FORMAT", fc.Log.Format),
		LogFile:             getEnv("LOG_FILE", fc.Log.File),
		LogMaxSizeMB:        getEnvInt("LOG_MAX_SIZE_MB", fc.Log.MaxSizeMB),
		LogMaxBackups:       getEnvInt("LOG_MAX_BACKUPS", fc.Log.MaxBackups),
		LogMaxAgeDays:       getEnvInt("LOG_MAX_AGE_DAYS", fc.Log.MaxAgeDays),
		DatabaseURL:         dbURL,
		MaxDBConns:          int32(getEnvInt("MAX_DB_CONNS", fc.Database.MaxConns)),
		AutoMigrate:         getEnvBool("AUTO_MIGRATE", fc.Database.AutoMigrate),
		RedisURL:            getEnv("REDIS_URL", fc.Redis.URL),
		RateLimitRequests:   getEnvInt("RATE_LIMIT_REQUESTS", fc.RateLimit.Requests),
		RateLimitWindow:     time.Duration(getEnvInt("RATE_LIMIT_WINDOW_SECONDS", fc.RateLimit.WindowSeconds)) * time.Second,
		CompressionMinBytes: getEnvInt("COMPRESSION_MIN_BYTES", fc.Server.CompressionMinBytes),
		AllowedOrigins:      origins,
	}, nil
}

func defaults() *fileConfig {
	fc := &fileConfig{}
	fc.Server.Port = "3000"
	fc.Server.Mode = "debug"
	fc.Server.CompressionMinBytes = 1024

	fc.Database.Host = "localhost"
	fc.Database.Port = "5432"
	fc.Database.User = "postgres"
	fc.Database.Password = "postgres"
	fc.Database.Name = "der_api_rest"
	fc.Database.SSLMode = "disable"
	fc.Database.MaxConns = 10

	fc.Log.Level = "info"
	fc.Log.Format = "pretty"
	fc.Log.MaxSizeMB = 50
	fc.Log.MaxBackups = 5
	fc.Log.MaxAgeDays = 30

	fc.RateLimit.WindowSeconds = 60
	return fc
}

func readFile(path string, fc *fileConfig) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, fc); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}

// buildDatabaseURL assembles a postgres:// connection string from its parts.
func buildDatabaseURL(host, port, user, password, name, sslMode string) string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(user, password),
		Host:   net.JoinHostPort(host, port),
		Path:   "/" + name,
	}
	if sslMode != "" {
		u.RawQuery = url.Values{"sslmode": {sslMode}}.Encode()
	}
	return u.String()
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func getEnvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

// parseOrigins splits a comma-separated origins string into a trimmed slice.
// Returns nil (allow-all) if the input is empty.
func parseOrigins(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
