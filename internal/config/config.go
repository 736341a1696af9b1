package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	Log       LogConfig
	Translate TranslateConfig
	Tracing   TracingConfig
}

type AppConfig struct {
	Environment string
	Locale      string
}

type DatabaseConfig struct {
	Connection string
}

type LogConfig struct {
	FilePath string
	Level    string // console level: debug, info, warn, error
}

type TranslateConfig struct {
	Provider  string // "google" or "none"
	APIKey    string
	ProjectID string
	Location  string
	BaseURL   string
	CacheSize int
}

type TracingConfig struct {
	Enabled  bool
	Endpoint string
}

const DefaultDatabase = "lingualink.db"

// Load reads an optional .env file and then the process environment.
// Variables already set in the environment win over the file.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		App: AppConfig{
			Environment: getEnv("GO_ENV", "development"),
			Locale:      getEnv("LINGUALINK_LOCALE", "en"),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", DefaultDatabase),
		},
		Log: LogConfig{
			FilePath: getEnv("LOG_FILE_PATH", "lingualink.log"),
			Level:    strings.ToLower(getEnv("LOG_LEVEL", "error")),
		},
		Translate: TranslateConfig{
			Provider:  strings.ToLower(getEnv("TRANSLATE_PROVIDER", "google")),
			APIKey:    getEnv("GOOGLE_TRANSLATE_API_KEY", ""),
			ProjectID: getEnv("GOOGLE_CLOUD_PROJECT", ""),
			Location:  getEnv("GOOGLE_TRANSLATE_LOCATION", "global"),
			BaseURL:   getEnv("GOOGLE_TRANSLATE_BASE_URL", ""),
			CacheSize: getEnvAsInt("TRANSLATE_CACHE_SIZE", 1000),
		},
		Tracing: TracingConfig{
			Enabled:  getEnvAsBool("OTEL_ENABLED", false),
			Endpoint: getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4318"),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseBool(strValue); err == nil {
		return value
	}
	return fallback
}
