package config

import (
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

var (
	PORT    string
	APP_ENV string

	DATA_DIR   string
	BACKUP_DIR string
	PUBLIC_DIR string

	ADMIN_PASSWORD_HASH  string
	ADMIN_SESSION_SECRET string

	CORS_ORIGIN   string
	CONTACT_EMAIL string
	SITE_PROFILE  string

	// optional transports
	DB_URL        string
	RABBITMQ_URL  string
	SMTP_HOST     string
	SMTP_PORT     string
	SMTP_FROM     string
	SMTP_PASSWORD string

	REDIS_ADDR     string
	REDIS_PASSWORD string
	REDIS_DB       int

	Site      SiteProfile
	RateLimit RateLimitConfig
	Cache     CacheConfig
)

const MinSessionSecretLength = 32

func LoadEnv() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found. Using system environment variables.")
	}

	PORT = getEnv("PORT", "8080")
	APP_ENV = getEnv("APP_ENV", "development")

	DATA_DIR = getEnv("DATA_DIR", "data")
	BACKUP_DIR = getEnv("BACKUP_DIR", filepath.Join(DATA_DIR, "backups"))
	PUBLIC_DIR = getEnv("PUBLIC_DIR", "public")

	ADMIN_PASSWORD_HASH = mustEnv("ADMIN_PASSWORD_HASH")
	ADMIN_SESSION_SECRET = mustEnv("ADMIN_SESSION_SECRET")
	if len(ADMIN_SESSION_SECRET) < MinSessionSecretLength {
		log.Fatalf("ADMIN_SESSION_SECRET must be at least %d characters", MinSessionSecretLength)
	}

	CORS_ORIGIN = getEnv("CORS_ORIGIN", "http://localhost:3000")
	CONTACT_EMAIL = getEnv("CONTACT_EMAIL", "info@doriseinfalt.art")
	SITE_PROFILE = getEnv("SITE_PROFILE", "")

	DB_URL = getEnv("DB_URL", "")
	RABBITMQ_URL = getEnv("RABBITMQ_URL", "")
	SMTP_HOST = getEnv("SMTP_HOST", "")
	SMTP_PORT = getEnv("SMTP_PORT", "587")
	SMTP_FROM = getEnv("SMTP_FROM", "")
	SMTP_PASSWORD = getEnv("SMTP_PASSWORD", "")

	REDIS_ADDR = getEnv("REDIS_ADDR", "")
	REDIS_PASSWORD = getEnv("REDIS_PASSWORD", "")
	REDIS_DB = EnvInt("REDIS_DB", 0)
	RateLimit = LoadRateLimitConfig()
	Cache = LoadCacheConfig()

	site, err := LoadSiteProfile(SITE_PROFILE)
	if err != nil {
		log.Fatalf("Invalid site profile %s: %v", SITE_PROFILE, err)
	}
	Site = site
}

// LoadStorageEnv reads only the directory settings. The CLI uses it so that
// operating on backups does not require the admin secrets.
func LoadStorageEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Using system environment variables.")
	}
	DATA_DIR = getEnv("DATA_DIR", "data")
	BACKUP_DIR = getEnv("BACKUP_DIR", filepath.Join(DATA_DIR, "backups"))
}

func IsProduction() bool {
	return APP_ENV == "production"
}

func mustEnv(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("Missing required environment variable: %s", key)
	}
	return v
}

func getEnv(key string, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func EnvBool(k string, d bool) bool {
	v := os.Getenv(k)
	if v == "" {
		return d
	}
	switch v {
	case "1", "true", "TRUE", "True", "yes", "YES", "on", "ON":
		return true
	case "0", "false", "FALSE", "False", "no", "NO", "off", "OFF":
		return false
	}
	return d
}

func EnvInt(k string, d int) int {
	v := os.Getenv(k)
	if v == "" {
		return d
	}
	if n, err := strconv.Atoi(v); err == nil {
		return n
	}
	return d
}

func EnvDur(k string, d time.Duration) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return d
	}
	if dur, err := time.ParseDuration(v); err == nil {
		return dur
	}
	return d
}

func EnvStr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}
