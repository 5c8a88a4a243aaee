package services

import (
	"context"
	"encoding/json"
	"log"
	"strings"

	"github.com/go-redis/redis/v8"
	"github.com/robfig/cron/v3"

	"sahibus/models"
	"sahibus/utils"
)

const popularRoutesKey = "popular_routes"

// StartTrendingCron раз в час сворачивает счетчики route_hits в снапшот
// популярных маршрутов. Первый пересчет делается сразу при старте.
func StartTrendingCron(rdb *redis.Client) {
	refreshPopularRoutes(rdb)

	c := cron.New()
	c.AddFunc("0 * * * *", func() {
		refreshPopularRoutes(rdb)
	})
	c.Start()
	log.Println("Trending routes cron started")
}

func refreshPopularRoutes(rdb *redis.Client) {
	ctx := context.Background()

	members, err := rdb.ZRevRangeWithScores(ctx, routeHitsKey, 0, int64(len(models.DefaultPopularRoutes))-1).Result()
	if err != nil && err != redis.Nil {
		utils.LogError(err, "popular routes refresh")
		return
	}

	routes := make([]models.PopularRoute, 0, len(members))
	for _, m := range members {
		member, ok := m.Member.(string)
		if !ok {
			continue
		}
		parts := strings.SplitN(member, "|", 3)
		if len(parts) != 3 {
			continue
		}
		routes = append(routes, models.PopularRoute{
			Source:      parts[0],
			Destination: parts[1],
			Country:     parts[2],
		})
	}

	if len(routes) == 0 {
		// Статистики еще нет - снапшот не трогаем, отдача возьмет дефолт
		return
	}

	data, err := json.Marshal(routes)
	if err != nil {
		utils.LogError(err, "popular routes marshal")
		return
	}
	if err := rdb.Set(ctx, popularRoutesKey, data, 0).Err(); err != nil {
		utils.LogError(err, "popular routes save")
	}
}

// PopularRoutes отдает снапшот популярных маршрутов; пока его нет -
// статический список
func PopularRoutes(ctx context.Context, rdb *redis.Client) []models.PopularRoute {
	raw, err := rdb.Get(ctx, popularRoutesKey).Result()
	if err != nil {
		return models.DefaultPopularRoutes
	}

	var routes []models.PopularRoute
	if jsonErr := json.Unmarshal([]byte(raw), &routes); jsonErr != nil || len(routes) == 0 {
		return models.DefaultPopularRoutes
	}
	return routes
}
