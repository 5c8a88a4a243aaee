package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"sahibus/models"
)

func filterFixture() []models.Trip {
	return []models.Trip{
		{
			ID:              "t1",
			Operator:        models.Operator{Name: "Sharma Transports", Rating: 4.5},
			DepartureMinute: 5*60 + 30, // 05:30
			DurationMinutes: 300,
			Features:        []string{models.FeatureAC, models.FeatureSleeper},
			Otas:            []models.Offer{{Price: 52000}},
		},
		{
			ID:              "t2",
			Operator:        models.Operator{Name: "VRL Travels", Rating: 4.2},
			DepartureMinute: 6 * 60, // 06:00 - граница слота
			DurationMinutes: 270,
			Features:        []string{models.FeatureAC, models.FeatureWiFi},
			Otas:            []models.Offer{{Price: 43000}},
		},
		{
			ID:              "t3",
			Operator:        models.Operator{Name: "Sharma Transports", Rating: 4.5},
			DepartureMinute: 17*60 + 59, // 17:59
			DurationMinutes: 420,
			Features:        []string{models.FeatureSleeper},
			Otas:            []models.Offer{{Price: 61000}},
		},
		{
			ID:              "t4",
			Operator:        models.Operator{Name: "Orange Tours", Rating: 4.3},
			DepartureMinute: 18 * 60, // 18:00 - граница слота
			DurationMinutes: 360,
			Features:        []string{models.FeatureCharging},
			Otas:            []models.Offer{{Price: 43000}},
		},
	}
}

func tripIDs(trips []models.Trip) []string {
	ids := make([]string, len(trips))
	for i, t := range trips {
		ids[i] = t.ID
	}
	return ids
}

// Пустые критерии пропускают все рейсы без изменений порядка
func TestFilterEmptyCriteria(t *testing.T) {
	trips := filterFixture()

	result, err := FilterTrips(trips, models.FilterCriteria{})
	assert.NoError(t, err)
	assert.Equal(t, tripIDs(trips), tripIDs(result))
}

func TestFilterMaxPrice(t *testing.T) {
	trips := filterFixture()

	result, err := FilterTrips(trips, models.FilterCriteria{MaxPrice: 43000})
	assert.NoError(t, err)
	assert.Equal(t, []string{"t2", "t4"}, tripIDs(result))

	// Ослабление порога никогда не уменьшает выдачу
	wider, err := FilterTrips(trips, models.FilterCriteria{MaxPrice: 61000})
	assert.NoError(t, err)
	assert.GreaterOrEqual(t, len(wider), len(result))
}

// Спальные - только рейсы с опцией Sleeper, сидячие - без нее,
// any не ограничивает
func TestFilterSeatType(t *testing.T) {
	trips := filterFixture()

	sleeper, err := FilterTrips(trips, models.FilterCriteria{SeatType: models.SeatTypeSleeper})
	assert.NoError(t, err)
	assert.Equal(t, []string{"t1", "t3"}, tripIDs(sleeper))

	seater, err := FilterTrips(trips, models.FilterCriteria{SeatType: models.SeatTypeSeater})
	assert.NoError(t, err)
	assert.Equal(t, []string{"t2", "t4"}, tripIDs(seater))

	// Вместе спальные и сидячие покрывают весь список
	assert.Equal(t, len(trips), len(sleeper)+len(seater))

	any, err := FilterTrips(trips, models.FilterCriteria{SeatType: models.SeatTypeAny})
	assert.NoError(t, err)
	assert.Len(t, any, len(trips))
}

func TestFilterOperators(t *testing.T) {
	trips := filterFixture()

	result, err := FilterTrips(trips, models.FilterCriteria{
		Operators: []string{"Sharma Transports"},
	})
	assert.NoError(t, err)
	assert.Equal(t, []string{"t1", "t3"}, tripIDs(result))

	// Несколько перевозчиков - объединение
	result, err = FilterTrips(trips, models.FilterCriteria{
		Operators: []string{"Sharma Transports", "Orange Tours"},
	})
	assert.NoError(t, err)
	assert.Equal(t, []string{"t1", "t3", "t4"}, tripIDs(result))
}

// Слоты - полуинтервалы: 06:00 принадлежит "6-12", а не "before-6";
// 18:00 принадлежит "after-18", а не "12-18"
func TestFilterTimeSlotBoundaries(t *testing.T) {
	trips := filterFixture()

	before6, err := FilterTrips(trips, models.FilterCriteria{TimeSlots: []string{models.TimeSlotBefore6}})
	assert.NoError(t, err)
	assert.Equal(t, []string{"t1"}, tripIDs(before6))

	morning, err := FilterTrips(trips, models.FilterCriteria{TimeSlots: []string{models.TimeSlot6To12}})
	assert.NoError(t, err)
	assert.Equal(t, []string{"t2"}, tripIDs(morning))

	day, err := FilterTrips(trips, models.FilterCriteria{TimeSlots: []string{models.TimeSlot12To18}})
	assert.NoError(t, err)
	assert.Equal(t, []string{"t3"}, tripIDs(day))

	evening, err := FilterTrips(trips, models.FilterCriteria{TimeSlots: []string{models.TimeSlotAfter18}})
	assert.NoError(t, err)
	assert.Equal(t, []string{"t4"}, tripIDs(evening))

	// Несколько слотов - объединение
	both, err := FilterTrips(trips, models.FilterCriteria{
		TimeSlots: []string{models.TimeSlotBefore6, models.TimeSlotAfter18},
	})
	assert.NoError(t, err)
	assert.Equal(t, []string{"t1", "t4"}, tripIDs(both))
}

// Активные предикаты соединяются по И
func TestFilterConjunction(t *testing.T) {
	trips := filterFixture()

	result, err := FilterTrips(trips, models.FilterCriteria{
		MaxPrice:  61000,
		SeatType:  models.SeatTypeSleeper,
		Operators: []string{"Sharma Transports"},
		TimeSlots: []string{models.TimeSlot12To18},
	})
	assert.NoError(t, err)
	assert.Equal(t, []string{"t3"}, tripIDs(result))

	// Ужесточение любого предиката может только сузить выдачу
	result, err = FilterTrips(trips, models.FilterCriteria{
		MaxPrice:  52000,
		SeatType:  models.SeatTypeSleeper,
		Operators: []string{"Sharma Transports"},
		TimeSlots: []string{models.TimeSlot12To18},
	})
	assert.NoError(t, err)
	assert.Empty(t, result)
}

// Битый рейс при активном ценовом фильтре - ошибка, а не молчаливый пропуск
func TestFilterInvalidTrip(t *testing.T) {
	trips := []models.Trip{{ID: "broken"}}

	_, err := FilterTrips(trips, models.FilterCriteria{MaxPrice: 50000})
	assert.True(t, errors.Is(err, ErrInvalidTripData))

	// Без ценового фильтра цена не считается и рейс проходит
	result, err := FilterTrips(trips, models.FilterCriteria{})
	assert.NoError(t, err)
	assert.Len(t, result, 1)
}
