package utils

import "time"

const dateLayout = "2006-01-02"

// ParseTravelDate разбирает дату поездки из формы (YYYY-MM-DD)
func ParseTravelDate(s string) (time.Time, error) {
	return time.Parse(dateLayout, s)
}

// IsBeforeYesterday проверяет, что дата поездки строго раньше "вчера"
// относительно now. Вчерашняя и сегодняшняя даты допустимы.
func IsBeforeYesterday(date, now time.Time) bool {
	yesterday := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, -1)
	d := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	return d.Before(yesterday)
}
