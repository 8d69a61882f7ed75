// Package config builds process configuration from the environment so main
// stays lean. All variables use the KYC_REGISTRY_ prefix.
package config

import (
	"os"
	"strings"
	"time"
)

// Defaults applied when the environment leaves a knob unset.
const (
	DefaultAddr            = ":8080"
	DefaultAdminIdentity   = "admin"
	DefaultCacheTTL        = 5 * time.Minute
	DefaultTokenTTL        = 24 * time.Hour
	DefaultShutdownTimeout = 15 * time.Second
)

// Server captures everything the registry process needs at startup.
type Server struct {
	Addr          string
	Environment   string
	AdminIdentity string
	JWTSigningKey string
	TokenTTL      time.Duration

	// PostgresDSN selects the durable store; empty means in-memory.
	PostgresDSN string
	// RedisURL enables the customer read cache; empty disables it.
	RedisURL string
	CacheTTL time.Duration
	// KafkaBrokers enables the Kafka audit sink; empty keeps audit in memory.
	KafkaBrokers []string
	KafkaTopic   string

	ShutdownTimeout time.Duration
	SeedDemoData    bool
}

// FromEnv reads the process configuration from environment variables.
func FromEnv() Server {
	cfg := Server{
		Addr:            getEnv("KYC_REGISTRY_ADDR", DefaultAddr),
		Environment:     getEnv("KYC_REGISTRY_ENV", "development"),
		AdminIdentity:   getEnv("KYC_REGISTRY_ADMIN", DefaultAdminIdentity),
		JWTSigningKey:   getEnv("KYC_REGISTRY_JWT_KEY", "dev-secret-key-change-in-production"),
		TokenTTL:        getDuration("KYC_REGISTRY_TOKEN_TTL", DefaultTokenTTL),
		PostgresDSN:     os.Getenv("KYC_REGISTRY_POSTGRES_DSN"),
		RedisURL:        os.Getenv("KYC_REGISTRY_REDIS_URL"),
		CacheTTL:        getDuration("KYC_REGISTRY_CACHE_TTL", DefaultCacheTTL),
		KafkaTopic:      getEnv("KYC_REGISTRY_KAFKA_TOPIC", "kycnet.audit"),
		ShutdownTimeout: getDuration("KYC_REGISTRY_SHUTDOWN_TIMEOUT", DefaultShutdownTimeout),
		SeedDemoData:    os.Getenv("KYC_REGISTRY_SEED_DEMO") == "true",
	}
	if brokers := os.Getenv("KYC_REGISTRY_KAFKA_BROKERS"); brokers != "" {
		for _, b := range strings.Split(brokers, ",") {
			if b = strings.TrimSpace(b); b != "" {
				cfg.KafkaBrokers = append(cfg.KafkaBrokers, b)
			}
		}
	}
	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}
