package models

// Operator - перевозчик
type Operator struct {
	Name   string  `json:"name"`
	Rating float64 `json:"rating"`
}

// Offer - ценовое предложение продавца (OTA или прямое от перевозчика).
// Price хранится в минорных единицах валюты (копейки/пайсы), строка с
// символом валюты собирается только на отдаче.
type Offer struct {
	Name      string `json:"name"`
	Price     int64  `json:"price"`
	Currency  string `json:"currency"`
	Color     string `json:"color"`
	TextColor string `json:"text_color"`
	URL       string `json:"url"`
}

// Trip - один сгенерированный рейс автобуса.
// Все канонические поля числовые: время отправления/прибытия - минуты от
// полуночи, длительность - минуты. Сравнения и фильтры работают только по
// числам, форматирование строк живет в utils/format.go.
type Trip struct {
	ID              string   `json:"id"`
	Operator        Operator `json:"operator"`
	DepartureMinute int      `json:"departure_minute"`
	ArrivalMinute   int      `json:"arrival_minute"`
	DurationMinutes int      `json:"duration_minutes"`
	Source          string   `json:"source"`
	Destination     string   `json:"destination"`
	Features        []string `json:"features"`
	Otas            []Offer  `json:"otas"`
	DirectBooking   *Offer   `json:"direct_booking"`
}

// Возможные значения Features
const (
	FeatureAC       = "AC"
	FeatureSleeper  = "Sleeper"
	FeatureWiFi     = "WiFi"
	FeatureCharging = "Charging Port"
)

// AllFeatures - полный список для таблицы сравнения
var AllFeatures = []string{FeatureAC, FeatureSleeper, FeatureWiFi, FeatureCharging}

// HasFeature проверяет наличие опции у рейса
func (t *Trip) HasFeature(feature string) bool {
	for _, f := range t.Features {
		if f == feature {
			return true
		}
	}
	return false
}

// AllOffers возвращает все предложения рейса, включая прямое
func (t *Trip) AllOffers() []Offer {
	offers := make([]Offer, 0, len(t.Otas)+1)
	offers = append(offers, t.Otas...)
	if t.DirectBooking != nil {
		offers = append(offers, *t.DirectBooking)
	}
	return offers
}
