// File: internal/config/config.go
package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port string

	// DBType selects the record store backend: "postgres" or "mongo".
	DBType      string
	PostgresURL string
	MongoURL    string
	MongoDB     string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// Media host (S3-compatible bucket, e.g. Cloudflare R2).
	MediaBucket    string
	MediaAccountID string
	MediaAccessKey string
	MediaSecretKey string
	MediaPublicURL string

	// SMTP notification. Empty host or user disables it.
	SMTPHost    string
	SMTPPort    int
	SMTPUser    string
	SMTPPass    string
	AdminEmail  string
	FrontendURL string

	WorkerCount int
}

// Load reads .env when present, then the process environment.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg := &Config{
		Port:           os.Getenv("PORT"),
		DBType:         os.Getenv("DB_TYPE"),
		PostgresURL:    os.Getenv("POSTGRES_URL"),
		MongoURL:       os.Getenv("MONGO_URL"),
		MongoDB:        os.Getenv("MONGO_DB"),
		RedisAddr:      os.Getenv("REDIS_ADDR"),
		RedisPassword:  os.Getenv("REDIS_PASSWORD"),
		RedisDB:        intEnv("REDIS_DB", 0),
		MediaBucket:    os.Getenv("MEDIA_BUCKET"),
		MediaAccountID: os.Getenv("MEDIA_ACCOUNT_ID"),
		MediaAccessKey: os.Getenv("MEDIA_ACCESS_KEY_ID"),
		MediaSecretKey: os.Getenv("MEDIA_SECRET_ACCESS_KEY"),
		MediaPublicURL: os.Getenv("MEDIA_PUBLIC_URL"),
		SMTPHost:       os.Getenv("SMTP_HOST"),
		SMTPPort:       intEnv("SMTP_PORT", 587),
		SMTPUser:       os.Getenv("SMTP_USER"),
		SMTPPass:       os.Getenv("SMTP_PASS"),
		AdminEmail:     os.Getenv("ADMIN_EMAIL"),
		FrontendURL:    os.Getenv("FRONTEND_URL"),
		WorkerCount:    intEnv("WORKER_COUNT", 1),
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.MongoDB == "" {
		cfg.MongoDB = "storefront"
	}
	return cfg
}

func intEnv(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("invalid %s=%q, using %d", key, v, def)
		return def
	}
	return n
}
