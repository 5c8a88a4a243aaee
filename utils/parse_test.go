package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractPriceMinor(t *testing.T) {
	cases := []struct {
		in   string
		want int64
		ok   bool
	}{
		{"₹520", 52000, true},
		{"฿208", 20800, true},
		{"$208.50", 20850, true},
		{"₹1,250", 125000, true},
		{"520", 52000, true},
		{"", 0, false},
		{"бесплатно", 0, false},
	}
	for _, c := range cases {
		got, ok := ExtractPriceMinor(c.in)
		assert.Equal(t, c.ok, ok, c.in)
		assert.Equal(t, c.want, got, c.in)
	}
}

func TestParseDurationMinutes(t *testing.T) {
	cases := []struct {
		in   string
		want int
		ok   bool
	}{
		{"4h 30m", 270, true},
		{"11h", 660, true},
		{"45m", 45, true},
		{"11h 30m", 690, true},
		{"", 0, false},
		{"скоро", 0, false},
	}
	for _, c := range cases {
		got, ok := ParseDurationMinutes(c.in)
		assert.Equal(t, c.ok, ok, c.in)
		assert.Equal(t, c.want, got, c.in)
	}
}

func TestParseClockMinutes(t *testing.T) {
	cases := []struct {
		in   string
		want int
		ok   bool
	}{
		{"09:30 AM", 570, true},
		{"07:00 PM", 1140, true},
		{"12:15 AM", 15, true}, // полночь
		{"12:00 PM", 720, true},
		{"19:30", 1170, true}, // 24-часовой формат тоже допустим
		{"930", 0, false},
		{"", 0, false},
	}
	for _, c := range cases {
		got, ok := ParseClockMinutes(c.in)
		assert.Equal(t, c.ok, ok, c.in)
		assert.Equal(t, c.want, got, c.in)
	}
}

// Парсинг и форматирование взаимно обратны на типичных значениях
func TestClockRoundTrip(t *testing.T) {
	for _, minute := range []int{0, 15, 360, 570, 719, 720, 1140, 1439} {
		got, ok := ParseClockMinutes(FormatClock(minute))
		assert.True(t, ok)
		assert.Equal(t, minute, got)
	}
}
