package routes

import (
	"sahibus/config"
	"sahibus/controllers"
	"sahibus/middleware"
	"sahibus/services"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func SetupBusRoutes(router *gin.Engine, cfg *config.Config, rdb *redis.Client) {
	generator := services.NewGenerator(nil)
	historyService := services.NewHistoryService(rdb)
	compareService := services.NewCompareService(rdb)
	searchService := services.NewSearchService(rdb, generator, historyService, compareService, cfg.SearchDelay, cfg.ResultTTL)

	busController := controllers.NewBusController(rdb, searchService, compareService)
	compareController := controllers.NewCompareController(searchService, compareService)
	historyController := controllers.NewSearchHistoryController(historyService)

	busGroup := router.Group("/bus", middleware.DeviceMiddleware())
	{
		// Справочники для формы поиска
		busGroup.GET("/countries", busController.Countries)
		busGroup.GET("/popular-routes", busController.PopularRoutes)

		// Поиск и выдача
		busGroup.POST("/search", busController.Search)
		busGroup.GET("/search/:search_id/results", busController.Results)
		busGroup.GET("/search/:search_id/trips/:trip_id", busController.GetTrip)

		// История поиска устройства
		busGroup.GET("/recent-searches", historyController.List)
		busGroup.DELETE("/recent-searches", historyController.Clear)

		// Сравнение рейсов
		busGroup.POST("/compare/toggle", compareController.Toggle)
		busGroup.GET("/compare", compareController.Show)
		busGroup.DELETE("/compare", compareController.Clear)
	}
}
