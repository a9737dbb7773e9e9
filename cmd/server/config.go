package main

import (
	"log/slog"
	"os"
	"strconv"

	"github.com/neexbeast/fishcast/internal/fishing"
)

type config struct {
	weatherKey    string
	port          string
	databaseURL   string
	redisURL      string
	migrationsDir string
	defaultCity   string
	weatherLang   string
	forecastDays  int
	providerRPS   float64
	providerBurst int
}

// loadConfig reads the environment. Only OPENWEATHER_API_KEY is required.
func loadConfig(log *slog.Logger) config {
	return config{
		weatherKey:    mustEnv("OPENWEATHER_API_KEY"),
		port:          getEnv("PORT", "8080"),
		databaseURL:   os.Getenv("DATABASE_URL"),
		redisURL:      os.Getenv("REDIS_URL"),
		migrationsDir: getEnv("MIGRATIONS_DIR", "migrations"),
		defaultCity:   getEnv("DEFAULT_CITY", "北京"),
		weatherLang:   getEnv("WEATHER_LANG", "zh_cn"),
		forecastDays:  getEnvInt(log, "FORECAST_DAYS", fishing.DefaultForecastDays),
		providerRPS:   getEnvFloat(log, "PROVIDER_RPS", 1),
		providerBurst: getEnvInt(log, "PROVIDER_BURST", 5),
	}
}

func mustEnv(key string) string {
	v := os.Getenv(key)
	if v == "" {
		slog.Error("required environment variable not set", "key", key)
		os.Exit(1)
	}
	return v
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(log *slog.Logger, key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		log.Warn("invalid environment variable, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return n
}

func getEnvFloat(log *slog.Logger, key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || f < 0 {
		log.Warn("invalid environment variable, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return f
}
