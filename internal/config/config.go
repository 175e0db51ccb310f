// internal/config/config.go
package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	devJWTSecret     = "helpway-dev-secret"
	devEncryptionKey = "helpway-dev-encryption-key"
)

type Config struct {
	APIURL      string
	HTTPTimeout time.Duration
	GRPCAddr    string

	JWTSecret string
	JWTTTL    time.Duration

	StoreDriver   string
	StoreDSN      string
	EncryptionKey string

	RedisAddr     string
	RedisUsername string
	RedisPassword string
	RedisDB       int
	CacheTTL      time.Duration

	NATSURL           string
	NATSSubjectPrefix string

	OSRMURL string
}

// Load reads .env when present and then the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("failed to load env variables", err)
	}
	return FromEnv()
}

func FromEnv() (*Config, error) {
	cfg := &Config{
		APIURL:            getenv("HELPWAY_API_URL", "https://helpway-api.onrender.com"),
		GRPCAddr:          getenv("GRPC_ADDR", "127.0.0.1:50051"),
		JWTSecret:         os.Getenv("JWT_SECRET"),
		StoreDriver:       getenv("STORE_DRIVER", "sqlite"),
		StoreDSN:          getenv("STORE_DSN", "helpway.db"),
		EncryptionKey:     os.Getenv("ENCRYPTION_KEY"),
		RedisAddr:         os.Getenv("REDIS_ADDR"),
		RedisUsername:     os.Getenv("REDIS_USERNAME"),
		RedisPassword:     os.Getenv("REDIS_PASSWORD"),
		NATSURL:           os.Getenv("NATS_URL"),
		NATSSubjectPrefix: getenv("NATS_SUBJECT_PREFIX", "helpway"),
		OSRMURL:           getenv("OSRM_URL", "http://router.project-osrm.org"),
	}

	var err error
	if cfg.HTTPTimeout, err = duration("HTTP_TIMEOUT", 30*time.Second); err != nil {
		return nil, err
	}
	if cfg.JWTTTL, err = duration("JWT_TTL", 24*time.Hour); err != nil {
		return nil, err
	}
	if cfg.CacheTTL, err = duration("CACHE_TTL", 5*time.Minute); err != nil {
		return nil, err
	}
	if raw := os.Getenv("REDIS_DB"); raw != "" {
		if cfg.RedisDB, err = strconv.Atoi(raw); err != nil {
			return nil, fmt.Errorf("REDIS_DB: %w", err)
		}
	}
	switch cfg.StoreDriver {
	case "sqlite", "postgres":
	default:
		return nil, fmt.Errorf("STORE_DRIVER: unsupported driver %q", cfg.StoreDriver)
	}

	if cfg.JWTSecret == "" {
		log.Println("JWT_SECRET not set, using the development secret")
		cfg.JWTSecret = devJWTSecret
	}
	if cfg.EncryptionKey == "" {
		log.Println("ENCRYPTION_KEY not set, using the development key")
		cfg.EncryptionKey = devEncryptionKey
	}
	return cfg, nil
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func duration(key string, def time.Duration) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return def, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%s: must be positive", key)
	}
	return d, nil
}
