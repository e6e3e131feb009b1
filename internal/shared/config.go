package shared

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	AppEnv      string
	HTTPAddr    string
	MetricsAddr string
	MySQLDSN    string
	RedisAddr   string
	RedisDB     int
	RedisPass   string
	AdminUser   string
	AdminPass   string
	SessionTTL  time.Duration
	ReviewRPS   int
	SeedFile    string
	SeedWorkers int
}

func Load() Config {
	// .env is a local-dev convenience; absence is not an error
	_ = godotenv.Load()

	atoi := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
		}
		return def
	}
	c := Config{
		AppEnv:      env("APP_ENV", "prod"),
		HTTPAddr:    env("HTTP_ADDR", ":8080"),
		MetricsAddr: env("METRICS_ADDR", ":9100"),
		MySQLDSN:    env("MYSQL_DSN", "root:root@tcp(localhost:3306)/wifi?parseTime=true&charset=utf8mb4,utf8&loc=UTC"),
		RedisAddr:   env("REDIS_ADDR", "localhost:6379"),
		RedisDB:     atoi("REDIS_DB", 0),
		RedisPass:   env("REDIS_PASSWORD", ""),
		AdminUser:   env("ADMIN_USER", "admin"),
		AdminPass:   env("ADMIN_PASSWORD", "admin"),
		SessionTTL:  time.Duration(atoi("SESSION_TTL_SECONDS", 3600)) * time.Second,
		ReviewRPS:   atoi("REVIEW_RPS", 5),
		SeedFile:    env("SEED_FILE", "places.json"),
		SeedWorkers: atoi("SEED_WORKERS", 8),
	}
	if c.AdminUser == "admin" && c.AdminPass == "admin" {
		log.Warn().Msg("bootstrap admin credentials are the defaults")
	}
	return c
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
