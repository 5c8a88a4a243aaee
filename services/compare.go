package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"sahibus/models"
)

// CompareLimit - максимум рейсов в сравнении
const CompareLimit = 3

const compareTTL = 24 * time.Hour

// ToggleID - чистая операция над набором выбранных id: если id есть -
// убирает, если нет и мест меньше трех - добавляет, иначе no-op.
// Второй результат false, когда лимит не дал добавить.
func ToggleID(ids []string, id string) ([]string, bool) {
	for i, v := range ids {
		if v == id {
			return append(append([]string{}, ids[:i]...), ids[i+1:]...), true
		}
	}
	if len(ids) >= CompareLimit {
		return ids, false
	}
	return append(append([]string{}, ids...), id), true
}

// MaterializeComparison возвращает выбранные рейсы в порядке их следования
// в переданном списке, а не в порядке выбора
func MaterializeComparison(trips []models.Trip, ids []string) []models.Trip {
	selected := make(map[string]bool, len(ids))
	for _, id := range ids {
		selected[id] = true
	}

	result := make([]models.Trip, 0, len(ids))
	for _, t := range trips {
		if selected[t.ID] {
			result = append(result, t)
		}
	}
	return result
}

// CompareService хранит выбор сравнения per-device в Redis.
// Выбор очищается при каждом новом поиске (см. SearchService.Submit).
type CompareService struct {
	rdb *redis.Client
}

func NewCompareService(rdb *redis.Client) *CompareService {
	return &CompareService{rdb: rdb}
}

func compareKey(deviceID string) string {
	return fmt.Sprintf("compare:%s", deviceID)
}

// List возвращает текущий выбор устройства; битые данные читаются как пустой
func (cs *CompareService) List(ctx context.Context, deviceID string) ([]string, error) {
	raw, err := cs.rdb.Get(ctx, compareKey(deviceID)).Result()
	if err == redis.Nil {
		return []string{}, nil
	}
	if err != nil {
		return nil, err
	}

	var ids []string
	if jsonErr := json.Unmarshal([]byte(raw), &ids); jsonErr != nil {
		return []string{}, nil
	}
	return ids, nil
}

// Toggle переключает рейс в выборе и сразу сохраняет результат.
// Второй результат false - лимит из трех достигнут, выбор не изменился.
func (cs *CompareService) Toggle(ctx context.Context, deviceID, tripID string) ([]string, bool, error) {
	ids, err := cs.List(ctx, deviceID)
	if err != nil {
		return nil, false, err
	}

	next, changed := ToggleID(ids, tripID)
	if !changed {
		return ids, false, nil
	}

	data, err := json.Marshal(next)
	if err != nil {
		return nil, false, err
	}
	if err := cs.rdb.Set(ctx, compareKey(deviceID), data, compareTTL).Err(); err != nil {
		return nil, false, err
	}
	return next, true, nil
}

// Clear опустошает выбор устройства
func (cs *CompareService) Clear(ctx context.Context, deviceID string) error {
	return cs.rdb.Del(ctx, compareKey(deviceID)).Err()
}
