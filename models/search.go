package models

// SearchQuery - запрос поиска рейсов. Неизменяем после создания,
// живет один цикл поиска. Инвариант source != destination проверяется
// на входе в контроллере.
type SearchQuery struct {
	Source      string `json:"source" binding:"required"`
	Destination string `json:"destination" binding:"required"`
	Country     string `json:"country" binding:"required"`
	Date        string `json:"date" binding:"required"` // YYYY-MM-DD
}

// SameRoute - эквивалентность для дедупликации истории поиска
// (дата не учитывается)
func (q SearchQuery) SameRoute(other SearchQuery) bool {
	return q.Source == other.Source &&
		q.Destination == other.Destination &&
		q.Country == other.Country
}

// Статусы поисковой сессии
const (
	SearchStatusPending = "pending"
	SearchStatusReady   = "ready"
)

// SearchSession - поисковая сессия с тегом поколения. SearchID - uuid,
// по которому отбрасываются устаревшие результаты при повторном поиске.
type SearchSession struct {
	SearchID string      `json:"search_id"`
	DeviceID string      `json:"device_id"`
	Query    SearchQuery `json:"query"`
	Status   string      `json:"status"`
	Trips    []Trip      `json:"trips,omitempty"`
}

// Ключи сортировки результатов
const (
	SortByPrice     = "price"
	SortByRating    = "rating"
	SortByDeparture = "departure"
	SortByDuration  = "duration"
)

// Типы мест для фильтра
const (
	SeatTypeAny     = "any"
	SeatTypeSeater  = "seater"
	SeatTypeSleeper = "sleeper"
)

// Слоты времени отправления, полуинтервалы по часам: [0,6) [6,12) [12,18) [18,24)
const (
	TimeSlotBefore6 = "before-6"
	TimeSlot6To12   = "6-12"
	TimeSlot12To18  = "12-18"
	TimeSlotAfter18 = "after-18"
)

// FilterCriteria - критерии фильтрации списка рейсов. Нулевые значения
// означают отсутствие ограничения, все активные предикаты соединяются по И.
type FilterCriteria struct {
	MaxPrice  int64    `json:"max_price"` // минорные единицы, 0 = без ограничения
	SeatType  string   `json:"seat_type"` // any | seater | sleeper
	Operators []string `json:"operators"`
	TimeSlots []string `json:"time_slots"`
}
