package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Environment string
	Port        string

	// Backend
	APIBaseURL string
	APITimeout time.Duration

	// Grid
	PageLimit int

	// Search highlighting
	HighlightDarkColor  string
	HighlightLightColor string

	// CORS
	CORSAllowedOrigins []string
}

func Load() *Config {
	return &Config{
		Environment:         getEnv("ENVIRONMENT", "dev"),
		Port:                getEnv("PORT", "8080"),
		APIBaseURL:          getEnv("API_BASE_URL", "http://localhost:5000"),
		APITimeout:          getEnvDuration("API_TIMEOUT", 0),
		PageLimit:           getEnvInt("PAGE_LIMIT", 10),
		HighlightDarkColor:  getEnv("HIGHLIGHT_DARK_COLOR", ""),
		HighlightLightColor: getEnv("HIGHLIGHT_LIGHT_COLOR", ""),
		CORSAllowedOrigins:  getEnvList("CORS_ALLOWED_ORIGINS", []string{"*"}),
	}
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value := getEnv(key, "")
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 {
		log.Printf("Invalid %s %q, using %d", key, value, defaultValue)
		return defaultValue
	}
	return n
}

// getEnvDuration accepts a Go duration ("30s") or a bare number of seconds
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := getEnv(key, "")
	if value == "" {
		return defaultValue
	}
	if secs, err := strconv.Atoi(value); err == nil && secs >= 0 {
		return time.Duration(secs) * time.Second
	}
	d, err := time.ParseDuration(value)
	if err != nil || d < 0 {
		log.Printf("Invalid %s %q, using %s", key, value, defaultValue)
		return defaultValue
	}
	return d
}

func getEnvList(key string, defaultValue []string) []string {
	value := getEnv(key, "")
	if value == "" {
		return defaultValue
	}
	var out []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
