package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-redis/redis/v8"

	"sahibus/models"
)

// RecentSearchLimit - сколько последних запросов хранится на устройство
const RecentSearchLimit = 5

// AppendRecent - чистая операция над журналом: дубль по маршруту
// (source, destination, country - дата не считается) не добавляется,
// новый запрос встает в начало, хвост обрезается до пяти
func AppendRecent(log []models.SearchQuery, q models.SearchQuery) []models.SearchQuery {
	for _, r := range log {
		if r.SameRoute(q) {
			return log
		}
	}

	next := append([]models.SearchQuery{q}, log...)
	if len(next) > RecentSearchLimit {
		next = next[:RecentSearchLimit]
	}
	return next
}

// DecodeRecent разбирает сохраненный журнал; битые данные - пустой журнал,
// а не ошибка
func DecodeRecent(raw []byte) []models.SearchQuery {
	var log []models.SearchQuery
	if err := json.Unmarshal(raw, &log); err != nil {
		return []models.SearchQuery{}
	}
	if log == nil {
		return []models.SearchQuery{}
	}
	return log
}

// HistoryService - журнал последних поисков per-device. Каждая мутация
// сразу пишется в Redis, чтение при отсутствии ключа дает пустой журнал.
type HistoryService struct {
	rdb *redis.Client
}

func NewHistoryService(rdb *redis.Client) *HistoryService {
	return &HistoryService{rdb: rdb}
}

func historyKey(deviceID string) string {
	return fmt.Sprintf("recent_searches:%s", deviceID)
}

// List возвращает журнал устройства, от самого свежего к старому
func (hs *HistoryService) List(ctx context.Context, deviceID string) ([]models.SearchQuery, error) {
	raw, err := hs.rdb.Get(ctx, historyKey(deviceID)).Result()
	if err == redis.Nil {
		return []models.SearchQuery{}, nil
	}
	if err != nil {
		return nil, err
	}
	return DecodeRecent([]byte(raw)), nil
}

// Record добавляет запрос в журнал и сразу сохраняет его
func (hs *HistoryService) Record(ctx context.Context, deviceID string, q models.SearchQuery) error {
	log, err := hs.List(ctx, deviceID)
	if err != nil {
		return err
	}

	next := AppendRecent(log, q)
	data, err := json.Marshal(next)
	if err != nil {
		return err
	}
	return hs.rdb.Set(ctx, historyKey(deviceID), data, 0).Err()
}

// Clear удаляет журнал устройства
func (hs *HistoryService) Clear(ctx context.Context, deviceID string) error {
	return hs.rdb.Del(ctx, historyKey(deviceID)).Err()
}
