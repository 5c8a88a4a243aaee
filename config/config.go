package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port          string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	// Имитация сетевой задержки между отправкой поиска и готовностью
	// результата; 0 отключает (используется в тестах)
	SearchDelay time.Duration
	// Время жизни поисковой сессии в Redis
	ResultTTL time.Duration
}

func LoadConfig() *Config {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}
	return &Config{
		Port:          getenvOrDefault("PORT", "8080"),
		RedisAddr:     getenvOrDefault("REDIS_ADDR", "localhost:6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       getenvIntOrDefault("REDIS_DB", 0),
		SearchDelay:   time.Duration(getenvIntOrDefault("SEARCH_DELAY_MS", 1000)) * time.Millisecond,
		ResultTTL:     time.Duration(getenvIntOrDefault("RESULT_TTL_MIN", 30)) * time.Minute,
	}
}

// getenvOrDefault returns the environment variable value if set, otherwise returns def
func getenvOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvIntOrDefault(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
