package services

import (
	"fmt"
	"math/rand"
	"sort"
	"time"

	"sahibus/models"
)

// Фиксированный ростер перевозчиков
var operators = []models.Operator{
	{Name: "Sharma Transports", Rating: 4.5},
	{Name: "VRL Travels", Rating: 4.2},
	{Name: "Orange Tours", Rating: 4.8},
	{Name: "GreenLine", Rating: 3.9},
	{Name: "FastGo", Rating: 4.1},
	{Name: "Intercity", Rating: 4.7},
	{Name: "FlixBus", Rating: 4.4},
}

type otaSeller struct {
	name  string
	color string
}

// Продавцы по странам: для Индии три OTA, для остальных два
var indiaSellers = []otaSeller{
	{name: "Redbus", color: "#d83f4f"},
	{name: "MakeMyTrip", color: "#0066cc"},
	{name: "AbhiBus", color: "#00b38a"},
}

var intlSellers = []otaSeller{
	{name: "12Go", color: "#009b3a"},
	{name: "Bookaway", color: "#ff6f61"},
}

// Generator - генератор синтетических рейсов. Источник случайности
// передается снаружи, чтобы тесты могли зафиксировать seed.
type Generator struct {
	rnd *rand.Rand
}

// NewGenerator создает генератор; при nil используется время как seed
func NewGenerator(rnd *rand.Rand) *Generator {
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Generator{rnd: rnd}
}

// Generate строит 10-24 рейса по запросу. Чистая функция с точностью до
// случайности: никакого разделяемого состояния не трогает. Каждому рейсу
// гарантируется хотя бы одно предложение с числовой ценой, поэтому
// MinPrice на сгенерированных данных не падает.
// Результат отсортирован по возрастанию минуты отправления (числом,
// не строкой).
func (g *Generator) Generate(query models.SearchQuery) []models.Trip {
	country := models.FindCountry(query.Country)
	currency := "$"
	if country != nil {
		currency = country.Currency
	}

	numResults := g.rnd.Intn(15) + 10
	trips := make([]models.Trip, 0, numResults)

	for i := 0; i < numResults; i++ {
		depHour := g.rnd.Intn(14) + 6 // 06:00 - 19:xx
		depMinute := g.rnd.Intn(2) * 30
		durationHours := g.rnd.Intn(8) + 4 // 4h - 11h30m
		durationMinutes := g.rnd.Intn(2) * 30

		departure := depHour*60 + depMinute
		duration := durationHours*60 + durationMinutes
		arrival := (departure + duration) % 1440

		operator := operators[g.rnd.Intn(len(operators))]

		// Базовый тариф 400-1000, для не-Индии пересчет курсом 2.5
		basePrice := 400 + g.rnd.Float64()*600
		localBase := basePrice
		if query.Country != "IN" {
			localBase = basePrice / 2.5
		}

		direct := models.Offer{
			Name:      operator.Name,
			Price:     int64(localBase-20) * 100,
			Currency:  currency,
			Color:     "#333333",
			TextColor: "white",
			URL:       "#",
		}

		trips = append(trips, models.Trip{
			ID:              fmt.Sprintf("%s-%s-%d", query.Source, query.Destination, i),
			Operator:        operator,
			DepartureMinute: departure,
			ArrivalMinute:   arrival,
			DurationMinutes: duration,
			Source:          query.Source,
			Destination:     query.Destination,
			Features:        g.randomFeatures(),
			Otas:            g.makeOtas(query.Country, currency, localBase),
			DirectBooking:   &direct,
		})
	}

	sort.SliceStable(trips, func(a, b int) bool {
		return trips[a].DepartureMinute < trips[b].DepartureMinute
	})

	return trips
}

// makeOtas собирает сторонние предложения с независимым разбросом цены
// вокруг базового тарифа
func (g *Generator) makeOtas(countryCode, currency string, localBase float64) []models.Offer {
	sellers := intlSellers
	if countryCode == "IN" {
		sellers = indiaSellers
	}

	otas := make([]models.Offer, 0, len(sellers))
	for _, s := range sellers {
		otas = append(otas, models.Offer{
			Name:      s.name,
			Price:     int64(localBase+g.rnd.Float64()*50) * 100,
			Currency:  currency,
			Color:     s.color,
			TextColor: "white",
			URL:       "#",
		})
	}
	return otas
}

// randomFeatures возвращает непустое случайное подмножество опций
func (g *Generator) randomFeatures() []string {
	shuffled := make([]string, len(models.AllFeatures))
	copy(shuffled, models.AllFeatures)
	g.rnd.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return shuffled[:g.rnd.Intn(len(shuffled))+1]
}
