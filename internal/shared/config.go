package shared

import (
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
)

type Config struct {
	AppEnv        string
	HTTPAddr      string
	MetricsAddr   string
	MySQLDSN      string
	RedisAddr     string
	RedisDB       int
	RedisPass     string
	TicketBase    string
	TicketKey     string
	TicketRPS     int
	Workers       int
	CacheTTL      time.Duration
	SearchTimeout time.Duration
}

func Load() Config {
	atoi := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
		}
		return def
	}
	c := Config{
		AppEnv:        env("APP_ENV", "prod"),
		HTTPAddr:      env("HTTP_ADDR", ":8080"),
		MetricsAddr:   env("METRICS_ADDR", ":9100"),
		MySQLDSN:      env("MYSQL_DSN", "root:root@tcp(localhost:3306)/eventrec?parseTime=true&charset=utf8mb4,utf8&loc=UTC"),
		RedisAddr:     env("REDIS_ADDR", "localhost:6379"),
		RedisPass:     env("REDIS_PASSWORD", ""),
		RedisDB:       atoi("REDIS_DB", 0),
		TicketBase:    env("TICKETMASTER_BASE_URL", "https://app.ticketmaster.com"),
		TicketKey:     env("TICKETMASTER_API_KEY", ""),
		TicketRPS:     atoi("TICKETMASTER_RPS", 5),
		Workers:       atoi("CRAWL_WORKERS", 8),
		CacheTTL:      time.Duration(atoi("CACHE_TTL_SECONDS", 300)) * time.Second,
		SearchTimeout: time.Duration(atoi("SEARCH_TIMEOUT_SECONDS", 10)) * time.Second,
	}
	if c.TicketKey == "" {
		log.Warn().Msg("TICKETMASTER_API_KEY is empty")
	}
	return c
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
