package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Env      string
	HTTPAddr string
	JWTKey   string
	Database DatabaseConfig
	Redis    RedisConfig
	Catalog  CatalogConfig
	Sweeper  SweeperConfig
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

type RedisConfig struct {
	Addr     string
	Password string
}

type CatalogConfig struct {
	BaseURL string
	Timeout time.Duration
}

type SweeperConfig struct {
	Interval time.Duration
	Grace    time.Duration
}

func Load() *Config {
	return &Config{
		Env:      getEnv("ENV", "development"),
		HTTPAddr: normalizeAddr(getEnv("HTTP_ADDR", ":8080")),
		JWTKey:   getEnv("JWT_KEY", "secret"),
		Database: DatabaseConfig{
			Host:     getEnv("DATABASE_HOST", "localhost"),
			Port:     getEnv("DATABASE_PORT", "5433"),
			User:     getEnv("DATABASE_USER", "postgres"),
			Password: getEnv("DATABASE_PASSWORD", "postgres"),
			Name:     getEnv("DATABASE_NAME", "armory"),
			SSLMode:  getEnv("DATABASE_SSL_MODE", "disable"),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", "secret"),
		},
		Catalog: CatalogConfig{
			BaseURL: getEnv("CATALOG_BASE_URL", "https://www.dnd5eapi.co/api"),
			Timeout: getEnvSeconds("CATALOG_TIMEOUT", 10*time.Second),
		},
		Sweeper: SweeperConfig{
			Interval: getEnvSeconds("SWEEPER_INTERVAL", 10*time.Minute),
			Grace:    getEnvSeconds("SWEEPER_GRACE", time.Hour),
		},
	}
}

func (c *Config) IsProduction() bool {
	return c.Env == "production" || c.Env == "prod"
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvSeconds(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	seconds, err := strconv.Atoi(v)
	if err != nil || seconds <= 0 {
		return fallback
	}
	return time.Duration(seconds) * time.Second
}

func normalizeAddr(addr string) string {
	if addr == "" {
		return addr
	}

	if addr[0] == ':' || addr[0] == '[' {
		return addr
	}

	for _, r := range addr {
		if r < '0' || r > '9' {
			return addr
		}
	}

	return ":" + addr
}
