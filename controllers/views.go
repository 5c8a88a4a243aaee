package controllers

import (
	"sort"

	"sahibus/models"
	"sahibus/utils"
)

// offerView - кнопка с ценой продавца в отдаче
type offerView struct {
	Name      string `json:"name"`
	Price     string `json:"price"`
	Color     string `json:"color"`
	TextColor string `json:"text_color"`
	URL       string `json:"url"`
	Direct    bool   `json:"direct"`
	Cheapest  bool   `json:"cheapest"`
}

// tripView - рейс в отдаче: все строки собираются здесь, канонические поля
// модели остаются числовыми
type tripView struct {
	ID            string          `json:"id"`
	Operator      models.Operator `json:"operator"`
	DepartureTime string          `json:"departure_time"`
	ArrivalTime   string          `json:"arrival_time"`
	Duration      string          `json:"duration"`
	Source        string          `json:"source"`
	Destination   string          `json:"destination"`
	Features      []string        `json:"features"`
	Offers        []offerView     `json:"offers"`
}

// newTripView собирает вид рейса. Кнопки продавцов упорядочены по
// возрастанию цены, прямое предложение перевозчика всегда последним;
// самое дешевое из всех помечено.
func newTripView(t models.Trip, cheapestPrice int64) tripView {
	otas := make([]models.Offer, len(t.Otas))
	copy(otas, t.Otas)
	sort.SliceStable(otas, func(a, b int) bool {
		return otas[a].Price < otas[b].Price
	})

	offers := make([]offerView, 0, len(otas)+1)
	for _, o := range otas {
		offers = append(offers, newOfferView(o, false, o.Price == cheapestPrice))
	}
	if t.DirectBooking != nil {
		d := *t.DirectBooking
		offers = append(offers, newOfferView(d, true, d.Price == cheapestPrice))
	}

	return tripView{
		ID:            t.ID,
		Operator:      t.Operator,
		DepartureTime: utils.FormatClock(t.DepartureMinute),
		ArrivalTime:   utils.FormatClock(t.ArrivalMinute),
		Duration:      utils.FormatDuration(t.DurationMinutes),
		Source:        t.Source,
		Destination:   t.Destination,
		Features:      t.Features,
		Offers:        offers,
	}
}

func newOfferView(o models.Offer, direct, cheapest bool) offerView {
	return offerView{
		Name:      o.Name,
		Price:     utils.FormatPrice(o.Price, o.Currency),
		Color:     o.Color,
		TextColor: o.TextColor,
		URL:       o.URL,
		Direct:    direct,
		Cheapest:  cheapest,
	}
}
