// Package config handles application configuration from environment variables
// and an optional YAML file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/randytsao24/decomap/internal/models"
)

const (
	CatalogFile     = "file"
	CatalogPostgres = "postgres"

	FavoritesMemory = "memory"
	FavoritesFile   = "file"
	FavoritesRedis  = "redis"
)

// Config holds all application configuration.
type Config struct {
	Port string `yaml:"port"`
	Env  string `yaml:"env"`

	CatalogSource string `yaml:"catalog_source"`
	CatalogPath   string `yaml:"catalog_path"`
	PostgresDSN   string `yaml:"postgres_dsn"`

	FavoritesBackend string `yaml:"favorites_backend"`
	FavoritesPath    string `yaml:"favorites_path"`
	RedisAddr        string `yaml:"redis_addr"`
	RedisPassword    string `yaml:"redis_password"`
	RedisDB          int    `yaml:"redis_db"`
	RedisKeyPrefix   string `yaml:"redis_key_prefix"`

	InitialLocation    models.Coordinate `yaml:"initial_location"`
	RegionRadiusMeters float64           `yaml:"region_radius_meters"`

	CacheTTL    time.Duration `yaml:"cache_ttl"`
	HTTPTimeout time.Duration `yaml:"http_timeout"`
}

// Load reads configuration from environment variables with sensible defaults,
// then overlays the YAML file named by DECOMAP_CONFIG if set.
func Load() (*Config, error) {
	cfg := &Config{
		Port: getEnv("PORT", "3000"),
		Env:  getEnv("ENV", "development"),

		CatalogSource: getEnv("CATALOG_SOURCE", CatalogFile),
		CatalogPath:   getEnv("CATALOG_PATH", ""),
		PostgresDSN:   getEnv("DATABASE_URL", ""),

		FavoritesBackend: getEnv("FAVORITES_BACKEND", FavoritesFile),
		FavoritesPath:    getEnv("FAVORITES_PATH", "var/favorites.json"),
		RedisAddr:        getEnv("REDIS_ADDR", "127.0.0.1:6379"),
		RedisPassword:    getEnv("REDIS_PASSWORD", ""),
		RedisDB:          getIntEnv("REDIS_DB", 0),
		RedisKeyPrefix:   getEnv("REDIS_KEY_PREFIX", "decomap"),

		// Montevideo
		InitialLocation: models.Coordinate{
			Lat: getFloatEnv("INITIAL_LAT", -34.911025),
			Lng: getFloatEnv("INITIAL_LNG", -56.163031),
		},
		RegionRadiusMeters: getFloatEnv("REGION_RADIUS_METERS", 1000),

		CacheTTL:    getDurationEnv("CACHE_TTL_SECONDS", 30) * time.Second,
		HTTPTimeout: getDurationEnv("HTTP_TIMEOUT_SECONDS", 10) * time.Second,
	}

	if cfg.CatalogSource == CatalogPostgres && cfg.PostgresDSN == "" {
		cfg.PostgresDSN = BuildPostgresDSNFromEnv()
	}

	if path := os.Getenv("DECOMAP_CONFIG"); path != "" {
		if err := cfg.overlay(path); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

func (c *Config) overlay(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return nil
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// Validate checks that required configuration is present.
func (c *Config) Validate() error {
	var errs []error

	if c.Port == "" {
		errs = append(errs, errors.New("PORT is required"))
	}

	switch c.CatalogSource {
	case CatalogFile:
	case CatalogPostgres:
		if c.PostgresDSN == "" {
			errs = append(errs, errors.New("DATABASE_URL is required for the postgres catalog"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown catalog source %q", c.CatalogSource))
	}

	switch c.FavoritesBackend {
	case FavoritesMemory:
	case FavoritesFile:
		if c.FavoritesPath == "" {
			errs = append(errs, errors.New("FAVORITES_PATH is required for the file favorites store"))
		}
	case FavoritesRedis:
		if c.RedisAddr == "" {
			errs = append(errs, errors.New("REDIS_ADDR is required for the redis favorites store"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown favorites backend %q", c.FavoritesBackend))
	}

	if c.InitialLocation.Lat < -90 || c.InitialLocation.Lat > 90 ||
		c.InitialLocation.Lng < -180 || c.InitialLocation.Lng > 180 {
		errs = append(errs, fmt.Errorf("initial location %v out of range", c.InitialLocation))
	}
	if c.RegionRadiusMeters <= 0 {
		errs = append(errs, errors.New("region radius must be positive"))
	}

	return errors.Join(errs...)
}

// BuildPostgresDSNFromEnv assembles a DSN from PG_* variables
func BuildPostgresDSNFromEnv() string {
	dsn := "postgres://" + getEnv("PG_USER", "postgres")
	if pass := os.Getenv("PG_PASSWORD"); pass != "" {
		dsn += ":" + pass
	}
	dsn += "@" + getEnv("PG_HOST", "localhost") + ":" + getEnv("PG_PORT", "5432") +
		"/" + getEnv("PG_DB", "decomap") + "?sslmode=" + getEnv("PG_SSLMODE", "disable")
	return dsn
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

func getFloatEnv(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultSeconds int) time.Duration {
	return time.Duration(getIntEnv(key, defaultSeconds))
}
