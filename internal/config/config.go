package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Section dataset source kinds.
const (
	SectionSourceFile     = "file"
	SectionSourcePostgres = "postgres"
)

// Config structure represents the application configuration
type Config struct {
	Server struct {
		Port string `yaml:"port" env:"SERVER_PORT"`
		Mode string `yaml:"mode" env:"SERVER_MODE"`
	} `yaml:"server"`

	Database struct {
		Driver          string `yaml:"driver" env:"DB_DRIVER"`
		Host            string `yaml:"host" env:"DB_HOST"`
		Port            string `yaml:"port" env:"DB_PORT"`
		User            string `yaml:"user" env:"DB_USER"`
		Password        string `yaml:"password" env:"DB_PASSWORD"`
		DBName          string `yaml:"dbname" env:"DB_NAME"`
		SSLMode         string `yaml:"sslmode" env:"DB_SSLMODE"`
		MaxIdleConns    int    `yaml:"max_idle_conns" env:"DB_MAX_IDLE_CONNS"`
		MaxOpenConns    int    `yaml:"max_open_conns" env:"DB_MAX_OPEN_CONNS"`
		ConnMaxLifetime string `yaml:"conn_max_lifetime" env:"DB_CONN_MAX_LIFETIME"`
	} `yaml:"database"`

	Redis struct {
		Enabled  bool   `yaml:"enabled" env:"REDIS_ENABLED"`
		Addr     string `yaml:"addr" env:"REDIS_ADDR"`
		Password string `yaml:"password" env:"REDIS_PASSWORD"`
		DB       int    `yaml:"db" env:"REDIS_DB"`
		CacheTTL string `yaml:"cache_ttl" env:"REDIS_CACHE_TTL"`
	} `yaml:"redis"`

	Sections struct {
		// Source selects the dataset backend: "file" reads <data_dir>/<term>.json,
		// "postgres" reads the section_datasets table.
		Source      string `yaml:"source" env:"SECTIONS_SOURCE"`
		DataDir     string `yaml:"data_dir" env:"SECTIONS_DATA_DIR"`
		DefaultTerm string `yaml:"default_term" env:"SECTIONS_DEFAULT_TERM"`
	} `yaml:"sections"`

	Heatmap struct {
		DefaultInterval int    `yaml:"default_interval" env:"HEATMAP_DEFAULT_INTERVAL"`
		DefaultCampus   string `yaml:"default_campus" env:"HEATMAP_DEFAULT_CAMPUS"`
		IncludeHybrid   bool   `yaml:"include_hybrid" env:"HEATMAP_INCLUDE_HYBRID"`
	} `yaml:"heatmap"`

	RateLimit struct {
		Enabled           bool    `yaml:"enabled" env:"RATELIMIT_ENABLED"`
		RequestsPerSecond float64 `yaml:"requests_per_second" env:"RATELIMIT_RPS"`
		Burst             int     `yaml:"burst" env:"RATELIMIT_BURST"`
		BlockDuration     string  `yaml:"block_duration" env:"RATELIMIT_BLOCK_DURATION"`
	} `yaml:"ratelimit"`

	CORS struct {
		// AllowedOrigins is a comma-separated origin list; "*" allows all.
		AllowedOrigins string `yaml:"allowed_origins" env:"CORS_ALLOWED_ORIGINS"`
	} `yaml:"cors"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`
}

// LoadConfig loads configuration from a file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	// Load default config with sane defaults
	config := &Config{}
	setDefaults(config)

	// Read the config file if it exists; a missing file just means
	// defaults plus environment overrides.
	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := yaml.Unmarshal(file, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	// Override with environment variables
	if err := loadFromEnv(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	// Validate config
	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	// Server defaults
	config.Server.Port = "8080"
	config.Server.Mode = "development"

	// Database defaults
	config.Database.Driver = "postgres"
	config.Database.Host = "localhost"
	config.Database.Port = "5432"
	config.Database.User = "postgres"
	config.Database.Password = "postgres"
	config.Database.DBName = "studentspace"
	config.Database.SSLMode = "disable"
	config.Database.MaxIdleConns = 5
	config.Database.MaxOpenConns = 20
	config.Database.ConnMaxLifetime = "1h"

	// Redis defaults (disabled unless configured)
	config.Redis.Addr = "localhost:6379"
	config.Redis.CacheTTL = "10m"

	// Section dataset defaults
	config.Sections.Source = SectionSourceFile
	config.Sections.DataDir = "data"
	config.Sections.DefaultTerm = "202601"

	// Heatmap defaults
	config.Heatmap.DefaultInterval = 30
	config.Heatmap.DefaultCampus = "Oshawa"
	config.Heatmap.IncludeHybrid = true

	// Rate limit defaults (disabled unless configured)
	config.RateLimit.RequestsPerSecond = 5
	config.RateLimit.Burst = 10
	config.RateLimit.BlockDuration = "1m"

	// CORS defaults
	config.CORS.AllowedOrigins = "*"

	// Logging defaults
	config.Logging.Level = "info"
	config.Logging.Format = "json"
}

// loadFromEnv overrides configuration with environment variables
func loadFromEnv(config *Config) error {
	// Recursively process the config structure and look for env tags
	return processStructFields(config)
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	switch config.Sections.Source {
	case SectionSourceFile:
		if config.Sections.DataDir == "" {
			return fmt.Errorf("sections data_dir is required for the file source")
		}
	case SectionSourcePostgres:
		if config.Database.Host == "" {
			return fmt.Errorf("database host is required for the postgres source")
		}
		if config.Database.DBName == "" {
			return fmt.Errorf("database name is required for the postgres source")
		}
	default:
		return fmt.Errorf("unknown sections source %q (want %q or %q)",
			config.Sections.Source, SectionSourceFile, SectionSourcePostgres)
	}

	if config.Heatmap.DefaultInterval < 1 || config.Heatmap.DefaultInterval > 24*60 {
		return fmt.Errorf("heatmap default_interval must be between 1 and 1440 minutes")
	}

	if config.Redis.Enabled {
		if config.Redis.Addr == "" {
			return fmt.Errorf("redis addr is required when redis is enabled")
		}
		if _, err := time.ParseDuration(config.Redis.CacheTTL); err != nil {
			return fmt.Errorf("invalid redis cache_ttl format: %w", err)
		}
	}

	if config.RateLimit.Enabled {
		if config.RateLimit.RequestsPerSecond <= 0 {
			return fmt.Errorf("ratelimit requests_per_second must be positive")
		}
		if _, err := time.ParseDuration(config.RateLimit.BlockDuration); err != nil {
			return fmt.Errorf("invalid ratelimit block_duration format: %w", err)
		}
	}

	return nil
}

// GetPostgresConnectionString returns postgres connection string
func (c *Config) GetPostgresConnectionString() string {
	sslMode := c.Database.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}

	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.DBName,
		sslMode,
	)
}

// AllowedOriginList splits the configured CORS origins into a list.
func (c *Config) AllowedOriginList() []string {
	parts := strings.Split(c.CORS.AllowedOrigins, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}

// GetEnv gets an environment variable or returns a default value
func GetEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// GetEnvAsInt gets an environment variable as an integer or returns a default value
func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := GetEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

// GetEnvAsBool gets an environment variable as a boolean or returns a default value
func GetEnvAsBool(key string, defaultValue bool) bool {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	valueLower := strings.ToLower(valueStr)
	if valueLower == "true" || valueLower == "1" || valueLower == "yes" {
		return true
	}
	if valueLower == "false" || valueLower == "0" || valueLower == "no" {
		return false
	}

	return defaultValue
}

// GetEnvAsDuration gets an environment variable as a duration or returns a default value
func GetEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := GetEnv(key, "")
	if value, err := time.ParseDuration(valueStr); err == nil {
		return value
	}
	return defaultValue
}
