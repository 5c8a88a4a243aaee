package services

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"

	"sahibus/models"
	"sahibus/utils"
)

// routeHitsKey - ZSET со счетчиками поисков по маршрутам, из него cron
// собирает снапшот популярных маршрутов
const routeHitsKey = "route_hits"

// SearchService управляет поисковыми сессиями. Каждый поиск получает uuid
// (тег поколения); у устройства есть ключ "текущий поиск", который
// переключается сразу при новом запросе. Отложенная публикация результата
// сверяется с этим ключом и молча отбрасывается, если ее поиск уже не
// текущий - так повторный поиск вытесняет незавершенный.
type SearchService struct {
	rdb       *redis.Client
	generator *Generator
	history   *HistoryService
	compare   *CompareService

	delay     time.Duration // имитация сетевой задержки
	resultTTL time.Duration

	mu sync.Mutex // генератор держит свой rand.Rand, параллельный вызов не допускается
}

func NewSearchService(rdb *redis.Client, generator *Generator, history *HistoryService, compare *CompareService, delay, resultTTL time.Duration) *SearchService {
	return &SearchService{
		rdb:       rdb,
		generator: generator,
		history:   history,
		compare:   compare,
		delay:     delay,
		resultTTL: resultTTL,
	}
}

func sessionKey(searchID string) string {
	return fmt.Sprintf("search_session:%s", searchID)
}

func currentSearchKey(deviceID string) string {
	return fmt.Sprintf("current_search:%s", deviceID)
}

// Submit создает поисковую сессию: пишет историю, инкрементирует счетчик
// маршрута, очищает сравнение (выбор не переживает новый поиск), помечает
// сессию текущей для устройства и ставит отложенную генерацию результата.
// Валидация запроса - дело контроллера, сюда приходит уже корректный.
func (ss *SearchService) Submit(ctx context.Context, deviceID string, q models.SearchQuery) (string, error) {
	if err := ss.history.Record(ctx, deviceID, q); err != nil {
		return "", err
	}

	member := fmt.Sprintf("%s|%s|%s", q.Source, q.Destination, q.Country)
	if err := ss.rdb.ZIncrBy(ctx, routeHitsKey, 1, member).Err(); err != nil {
		utils.LogError(err, "route hits increment")
	}

	if err := ss.compare.Clear(ctx, deviceID); err != nil {
		return "", err
	}

	searchID := uuid.NewString()
	session := models.SearchSession{
		SearchID: searchID,
		DeviceID: deviceID,
		Query:    q,
		Status:   models.SearchStatusPending,
	}
	if err := ss.saveSession(ctx, &session); err != nil {
		return "", err
	}
	if err := ss.rdb.Set(ctx, currentSearchKey(deviceID), searchID, ss.resultTTL).Err(); err != nil {
		return "", err
	}

	utils.LogSearch("submitted %s %s->%s (%s)", searchID, q.Source, q.Destination, q.Country)

	if ss.delay <= 0 {
		ss.publish(searchID, deviceID, q)
	} else {
		time.AfterFunc(ss.delay, func() {
			ss.publish(searchID, deviceID, q)
		})
	}

	return searchID, nil
}

// publish генерирует рейсы и публикует их, только если поиск все еще
// текущий для устройства. Устаревший результат отбрасывается.
func (ss *SearchService) publish(searchID, deviceID string, q models.SearchQuery) {
	ctx := context.Background()

	ss.mu.Lock()
	trips := ss.generator.Generate(q)
	ss.mu.Unlock()

	current, err := ss.rdb.Get(ctx, currentSearchKey(deviceID)).Result()
	if err != nil && err != redis.Nil {
		utils.LogError(err, "current search lookup")
		return
	}
	if current != searchID {
		utils.LogSearch("superseded %s, discarding %d trips", searchID, len(trips))
		return
	}

	session := models.SearchSession{
		SearchID: searchID,
		DeviceID: deviceID,
		Query:    q,
		Status:   models.SearchStatusReady,
		Trips:    trips,
	}
	if err := ss.saveSession(ctx, &session); err != nil {
		utils.LogError(err, "search session publish")
		return
	}
	utils.LogSearch("published %s: %d trips", searchID, len(trips))
}

// GetSession возвращает сессию по id; (nil, nil) - неизвестный или
// истекший id, что отличимо и от "идет поиск", и от пустого результата
func (ss *SearchService) GetSession(ctx context.Context, searchID string) (*models.SearchSession, error) {
	raw, err := ss.rdb.Get(ctx, sessionKey(searchID)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var session models.SearchSession
	if jsonErr := json.Unmarshal([]byte(raw), &session); jsonErr != nil {
		// Битая сессия равносильна отсутствующей
		return nil, nil
	}
	return &session, nil
}

func (ss *SearchService) saveSession(ctx context.Context, session *models.SearchSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return ss.rdb.Set(ctx, sessionKey(session.SearchID), data, ss.resultTTL).Err()
}
