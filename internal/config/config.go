// Package config loads the process configuration from the environment.
// Every component receives its dependencies explicitly; nothing reads the
// environment after startup.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"
)

type Config struct {
	HTTPAddr string
	GRPCAddr string

	MySQLDSN  string
	RedisAddr string

	JWTSecret      string
	TokenTTL       time.Duration
	IdempotencyTTL time.Duration

	ShutdownTimeout time.Duration
}

func Load() (*Config, error) {
	cfg := &Config{
		HTTPAddr:        getenv("HTTP_ADDR", ":8080"),
		GRPCAddr:        getenv("GRPC_ADDR", ":50051"),
		MySQLDSN:        getenv("MYSQL_DSN", "root:root@tcp(localhost:3306)/sge?parseTime=true"),
		RedisAddr:       getenv("REDIS_ADDR", "localhost:6379"),
		JWTSecret:       os.Getenv("JWT_SECRET"),
		ShutdownTimeout: 5 * time.Second,
	}
	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET is required")
	}

	var err error
	if cfg.TokenTTL, err = getduration("TOKEN_TTL", 8*time.Hour); err != nil {
		return nil, err
	}
	if cfg.IdempotencyTTL, err = getduration("IDEMPOTENCY_TTL", 30*time.Second); err != nil {
		return nil, err
	}
	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getduration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	return d, nil
}
