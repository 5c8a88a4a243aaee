package services

import (
	"errors"
	"fmt"

	"sahibus/models"
)

// ErrInvalidTripData - рейс без единого предложения или без числовой цены.
// Генератор такого не производит, поэтому ошибка означает испорченные
// данные (например, битую сессию), а не пользовательскую ситуацию.
var ErrInvalidTripData = errors.New("invalid trip data")

// MinPrice возвращает минимальную цену по всем предложениям рейса, включая
// прямое от перевозчика. Для рейса без предложений - ErrInvalidTripData,
// а не нулевая цена: ноль молча прошел бы через фильтры и сортировку.
func MinPrice(t models.Trip) (int64, error) {
	offers := t.AllOffers()
	if len(offers) == 0 {
		return 0, fmt.Errorf("%w: trip %s has no offers", ErrInvalidTripData, t.ID)
	}

	min := offers[0].Price
	for _, o := range offers[1:] {
		if o.Price < min {
			min = o.Price
		}
	}
	if min <= 0 {
		return 0, fmt.Errorf("%w: trip %s has non-positive offer price", ErrInvalidTripData, t.ID)
	}
	return min, nil
}

// DurationMinutes возвращает длительность рейса в минутах
func DurationMinutes(t models.Trip) (int, error) {
	if t.DurationMinutes <= 0 {
		return 0, fmt.Errorf("%w: trip %s has no duration", ErrInvalidTripData, t.ID)
	}
	return t.DurationMinutes, nil
}

// CheapestOffer возвращает самое дешевое предложение рейса (для детальной
// страницы, где оно подсвечивается)
func CheapestOffer(t models.Trip) (models.Offer, error) {
	offers := t.AllOffers()
	if len(offers) == 0 {
		return models.Offer{}, fmt.Errorf("%w: trip %s has no offers", ErrInvalidTripData, t.ID)
	}

	best := offers[0]
	for _, o := range offers[1:] {
		if o.Price < best.Price {
			best = o
		}
	}
	return best, nil
}
