package services

import "sahibus/models"

// FilterTrips применяет критерии к списку рейсов. Все активные предикаты
// соединяются по И, порядок проверки на результат не влияет. Пустые
// критерии пропускают все. Ошибку возвращает только при битых данных
// рейса (MinPrice).
func FilterTrips(trips []models.Trip, criteria models.FilterCriteria) ([]models.Trip, error) {
	result := make([]models.Trip, 0, len(trips))
	for _, t := range trips {
		ok, err := matches(t, criteria)
		if err != nil {
			return nil, err
		}
		if ok {
			result = append(result, t)
		}
	}
	return result, nil
}

func matches(t models.Trip, criteria models.FilterCriteria) (bool, error) {
	if criteria.MaxPrice > 0 {
		price, err := MinPrice(t)
		if err != nil {
			return false, err
		}
		if price > criteria.MaxPrice {
			return false, nil
		}
	}

	switch criteria.SeatType {
	case models.SeatTypeSleeper:
		if !t.HasFeature(models.FeatureSleeper) {
			return false, nil
		}
	case models.SeatTypeSeater:
		if t.HasFeature(models.FeatureSleeper) {
			return false, nil
		}
	}

	if len(criteria.Operators) > 0 && !containsString(criteria.Operators, t.Operator.Name) {
		return false, nil
	}

	if len(criteria.TimeSlots) > 0 && !inAnySlot(t.DepartureMinute, criteria.TimeSlots) {
		return false, nil
	}

	return true, nil
}

// inAnySlot проверяет попадание минуты отправления хотя бы в один слот.
// Слоты - полуинтервалы: [0,6) [6,12) [12,18) [18,24) часов.
func inAnySlot(departureMinute int, slots []string) bool {
	hour := float64(departureMinute) / 60.0
	for _, slot := range slots {
		var lo, hi float64
		switch slot {
		case models.TimeSlotBefore6:
			lo, hi = 0, 6
		case models.TimeSlot6To12:
			lo, hi = 6, 12
		case models.TimeSlot12To18:
			lo, hi = 12, 18
		case models.TimeSlotAfter18:
			lo, hi = 18, 24
		default:
			continue
		}
		if hour >= lo && hour < hi {
			return true
		}
	}
	return false
}

func containsString(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
