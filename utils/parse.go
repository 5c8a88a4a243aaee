package utils

import (
	"regexp"
	"strconv"
	"strings"
)

var reNum = regexp.MustCompile(`([0-9]+(?:\.[0-9]+)?)`)

// ExtractPriceMinor достает число из строки цены ("₹520", "$208.50") и
// возвращает его в минорных единицах. Второй результат false, если в строке
// нет ни одной цифры.
func ExtractPriceMinor(s string) (int64, bool) {
	m := reNum.FindStringSubmatch(strings.ReplaceAll(s, ",", ""))
	if len(m) < 2 {
		return 0, false
	}
	v, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, false
	}
	return int64(v*100 + 0.5), true
}

// ParseDurationMinutes разбирает строку вида "4h 30m" или "11h" в минуты.
// Не полагается на позиции подстрок: берет все числа и смотрит суффиксы.
func ParseDurationMinutes(s string) (int, bool) {
	lower := strings.ToLower(strings.TrimSpace(s))
	if lower == "" {
		return 0, false
	}
	total := 0
	found := false
	for _, part := range strings.Fields(lower) {
		num := reNum.FindString(part)
		if num == "" {
			continue
		}
		v, err := strconv.Atoi(strings.SplitN(num, ".", 2)[0])
		if err != nil {
			continue
		}
		switch {
		case strings.HasSuffix(part, "h"):
			total += v * 60
			found = true
		case strings.HasSuffix(part, "m"):
			total += v
			found = true
		}
	}
	return total, found
}

// ParseClockMinutes разбирает "09:30 AM" / "07:00 PM" в минуты от полуночи
func ParseClockMinutes(s string) (int, bool) {
	clean := strings.ToUpper(strings.TrimSpace(s))
	pm := strings.HasSuffix(clean, "PM")
	am := strings.HasSuffix(clean, "AM")
	clean = strings.TrimSpace(strings.TrimSuffix(strings.TrimSuffix(clean, "PM"), "AM"))

	parts := strings.SplitN(clean, ":", 2)
	if len(parts) != 2 {
		return 0, false
	}
	h, err1 := strconv.Atoi(strings.TrimSpace(parts[0]))
	m, err2 := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err1 != nil || err2 != nil || h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, false
	}
	if pm && h < 12 {
		h += 12
	}
	if am && h == 12 {
		h = 0
	}
	return h*60 + m, true
}
