package routes

import (
	"sahibus/config"
	"sahibus/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

// SetupRouter создаёт gin.Engine, регистрирует все маршруты и возвращает
// роутер. Зависимости (Redis, конфиг) приходят снаружи - контроллеры не
// тянут глобальное состояние.
func SetupRouter(cfg *config.Config, rdb *redis.Client) *gin.Engine {
	r := gin.Default()

	// CORS middleware ДО роутов
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "https://sahibus.in", "https://www.sahibus.in"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "X-Device-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Device-ID"},
		AllowCredentials: true,
	}))

	r.Use(middleware.RecoveryMiddleware())

	SetupBusRoutes(r, cfg, rdb)

	return r
}
