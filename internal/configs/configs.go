package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
)

type Config struct {
	AppURL                 string
	DatabaseDSN            string
	RateLimit              int
	RedisAddr              string
	NotifyQueueKey         string
	NotifyWorkers          int
	NotifyQueueSize        int
	ShutdownTimeoutSeconds int
}

func Load() Config {
	appHost := getEnv("APP_HOST", "127.0.0.1")
	appPort := getEnv("APP_PORT", "8080")
	redisHost := getEnv("REDIS_HOST", "127.0.0.1")
	redisPort := getEnv("REDIS_PORT", "6379")

	cfg := Config{
		AppURL:                 fmt.Sprintf("%s:%s", appHost, appPort),
		DatabaseDSN:            getEnv("DATABASE_DSN", "gigs.db"),
		RateLimit:              getEnvAsInt("RATE_LIMIT_PER_MINUTE", 60),
		RedisAddr:              fmt.Sprintf("%s:%s", redisHost, redisPort),
		NotifyQueueKey:         getEnv("NOTIFY_QUEUE_KEY", "gig_notifications"),
		NotifyWorkers:          getEnvAsInt("NOTIFY_WORKERS", 2),
		NotifyQueueSize:        getEnvAsInt("NOTIFY_QUEUE_SIZE", 256),
		ShutdownTimeoutSeconds: getEnvAsInt("SHUTDOWN_TIMEOUT_SECONDS", 20),
	}

	validate(cfg)
	return cfg
}

func validate(cfg Config) {
	if cfg.DatabaseDSN == "" {
		log.Fatal("DATABASE_DSN must not be empty")
	}
	if cfg.RateLimit <= 0 {
		log.Fatal("RATE_LIMIT_PER_MINUTE must be greater than 0")
	}
	if cfg.NotifyWorkers <= 0 {
		log.Fatal("NOTIFY_WORKERS must be greater than 0")
	}
	if cfg.NotifyQueueSize <= 0 {
		log.Fatal("NOTIFY_QUEUE_SIZE must be greater than 0")
	}
	if cfg.NotifyQueueKey == "" {
		log.Fatal("NOTIFY_QUEUE_KEY must not be empty")
	}
}

func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err != nil {
			log.Fatalf("invalid integer value for %s", key)
		}
		return i
	}
	return defaultVal
}
