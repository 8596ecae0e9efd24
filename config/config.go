package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

var (
	AppConfig Config
	envLoaded bool
)

type RedisConfig struct {
	Enabled  bool   `json:"enabled"`
	Address  string `json:"address"`
	Password string `json:"-"`
	DB       int    `json:"db"`
}

type Config struct {
	Environment string        `json:"environment"`
	ServerPort  string        `json:"server_port"`
	APIBaseURL  string        `json:"api_base_url"`
	APITimeout  time.Duration `json:"api_timeout"`
	SessionTTL  time.Duration `json:"session_ttl"`
	SentryDSN   string        `json:"-"`
	Redis       RedisConfig   `json:"redis"`
}

func init() {
	// Try to load .env file, but don't fail if it doesn't exist
	_ = godotenv.Load()
	envLoaded = true
}

func LoadConfig() error {
	AppConfig = Config{
		Environment: getEnv("ENVIRONMENT", "development"),
		ServerPort:  getEnv("SERVER_PORT", "3000"),
		// The REST backend. Local development talks to it directly; when
		// the app is exposed through a tunnel the /api proxy mount forwards
		// to this same address so the browser only ever needs one origin.
		APIBaseURL: getEnv("API_BASE_URL", "http://localhost:8000"),
		APITimeout: getEnvAsDuration("API_TIMEOUT", 15*time.Second),
		SessionTTL: getEnvAsDuration("SESSION_TTL", 12*time.Hour),
		SentryDSN:  getEnv("SENTRY_DSN", ""),
		Redis: RedisConfig{
			Enabled:  getEnv("REDIS_ENABLED", "false") == "true",
			Address:  getEnv("REDIS_ADDRESS", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
		},
	}

	if AppConfig.APIBaseURL == "" {
		return fmt.Errorf("API_BASE_URL is required")
	}
	if AppConfig.Redis.Enabled && AppConfig.Redis.Address == "" {
		return fmt.Errorf("REDIS_ADDRESS is required when REDIS_ENABLED is true")
	}

	logConfig()
	return nil
}

// Helper functions
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	if !envLoaded && fallback == "" {
		log.Printf("⚠️ Environment variable %s not found and no fallback provided", key)
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return fallback
	}
	var value int
	_, err := fmt.Sscanf(valueStr, "%d", &value)
	if err != nil {
		return fallback
	}
	return value
}

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return fallback
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		return fallback
	}
	return value
}

func logConfig() {
	log.Println("🔧 Loaded configuration:")
	log.Printf("Environment: %s", AppConfig.Environment)
	log.Printf("Server Port: %s", AppConfig.ServerPort)
	log.Printf("Backend API: %s", AppConfig.APIBaseURL)
	log.Printf("Redis sessions: %t (%s)", AppConfig.Redis.Enabled, AppConfig.Redis.Address)
}
