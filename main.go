package main

import (
	"context"
	"log"
	"time"

	"github.com/go-redis/redis/v8"

	"sahibus/config"
	"sahibus/routes"
	"sahibus/services"
	"sahibus/utils"
)

func main() {
	// Устанавливаем часовой пояс Индии для всех логов и проверки дат
	indiaLocation, err := time.LoadLocation("Asia/Kolkata")
	if err != nil {
		indiaLocation = time.FixedZone("IST", 5*60*60+30*60)
	}
	time.Local = indiaLocation

	cfg := config.LoadConfig()

	if err := utils.InitLogger(); err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}

	// Подключение к Redis - единственное хранилище сервиса (история,
	// сравнение, поисковые сессии)
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		log.Fatalf("failed to connect to redis: %v", err)
	}
	log.Println("Connected to Redis")

	// Запуск крона популярных маршрутов асинхронно
	go func() {
		services.StartTrendingCron(rdb)
	}()

	r := routes.SetupRouter(cfg, rdb)

	log.Printf("Server is running on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
