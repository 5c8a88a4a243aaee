package utils

import "fmt"

// FormatPrice собирает отображаемую цену из минорных единиц: 52000 -> "₹520".
// Дробная часть у сгенерированных цен всегда нулевая, поэтому не печатается.
func FormatPrice(minor int64, currency string) string {
	units := minor / 100
	frac := minor % 100
	if frac != 0 {
		return fmt.Sprintf("%s%d.%02d", currency, units, frac)
	}
	return fmt.Sprintf("%s%d", currency, units)
}

// FormatClock форматирует минуты от полуночи как "09:30 AM"
func FormatClock(minute int) string {
	minute = ((minute % 1440) + 1440) % 1440
	h := minute / 60
	m := minute % 60
	suffix := "AM"
	if h >= 12 {
		suffix = "PM"
	}
	h12 := h % 12
	if h12 == 0 {
		h12 = 12
	}
	return fmt.Sprintf("%02d:%02d %s", h12, m, suffix)
}

// FormatDuration форматирует минуты как "4h 30m" (или "4h" без остатка)
func FormatDuration(minutes int) string {
	h := minutes / 60
	m := minutes % 60
	if m == 0 {
		return fmt.Sprintf("%dh", h)
	}
	return fmt.Sprintf("%dh %dm", h, m)
}
