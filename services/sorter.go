package services

import (
	"fmt"
	"sort"

	"sahibus/models"
)

// SortTrips возвращает копию списка, упорядоченную по ключу:
//   - price: по возрастанию минимальной цены
//   - rating: по убыванию рейтинга перевозчика
//   - departure: по возрастанию минуты отправления (числом, не строкой -
//     "09:00 AM" против "10:00 AM" лексикографически сортируется неверно)
//   - duration: по возрастанию длительности
//
// Сортировка стабильная: при равенстве ключей сохраняется исходный
// порядок (сгенерированный, по отправлению).
func SortTrips(trips []models.Trip, key string) ([]models.Trip, error) {
	result := make([]models.Trip, len(trips))
	copy(result, trips)

	switch key {
	case models.SortByPrice:
		prices := make([]int64, len(result))
		for i, t := range result {
			p, err := MinPrice(t)
			if err != nil {
				return nil, err
			}
			prices[i] = p
		}
		sortByInt64Key(result, prices)
	case models.SortByRating:
		sort.SliceStable(result, func(a, b int) bool {
			return result[a].Operator.Rating > result[b].Operator.Rating
		})
	case models.SortByDeparture:
		sort.SliceStable(result, func(a, b int) bool {
			return result[a].DepartureMinute < result[b].DepartureMinute
		})
	case models.SortByDuration:
		sort.SliceStable(result, func(a, b int) bool {
			return result[a].DurationMinutes < result[b].DurationMinutes
		})
	default:
		return nil, fmt.Errorf("unknown sort key: %q", key)
	}

	return result, nil
}

// sortByInt64Key стабильно сортирует рейсы по заранее вычисленным ключам,
// чтобы MinPrice не пересчитывался на каждом сравнении
func sortByInt64Key(trips []models.Trip, keys []int64) {
	idx := make([]int, len(trips))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return keys[idx[a]] < keys[idx[b]]
	})

	sorted := make([]models.Trip, len(trips))
	for i, j := range idx {
		sorted[i] = trips[j]
	}
	copy(trips, sorted)
}
