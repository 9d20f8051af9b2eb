package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	Marker     string
	Extensions []string
	LogPath    string
	LogLevel   string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found, using environment variables")
	}

	return &Config{
		Marker:     getEnv("LOCHARVEST_MARKER", "JTL"),
		Extensions: getEnvList("LOCHARVEST_EXTENSIONS", ".m,.mm,.h"),
		LogPath:    getEnv("LOCHARVEST_LOG_PATH", ""),
		LogLevel:   getEnv("LOCHARVEST_LOG_LEVEL", "info"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvList(key, fallback string) []string {
	v := os.Getenv(key)
	if v == "" {
		v = fallback
	}
	var out []string
	for _, p := range strings.Split(v, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
