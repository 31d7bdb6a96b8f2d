package reminder

import (
	"testing"
	"time"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestNextOccurrence(t *testing.T) {
	tests := []struct {
		name  string
		month time.Month
		day   int
		today time.Time
		want  time.Time
	}{
		{"later this year", time.March, 17, date(2024, time.March, 10), date(2024, time.March, 17)},
		{"already passed, next year", time.January, 5, date(2024, time.March, 10), date(2025, time.January, 5)},
		{"today is the occurrence", time.March, 10, date(2024, time.March, 10), date(2024, time.March, 10)},
		{"leap day in a leap year", time.February, 29, date(2024, time.January, 10), date(2024, time.February, 29)},
		{"leap day clamped in a non-leap year", time.February, 29, date(2023, time.January, 10), date(2023, time.February, 28)},
		{"leap day passed, next year is leap", time.February, 29, date(2023, time.March, 1), date(2024, time.February, 29)},
		{"year-end rollover", time.January, 1, date(2024, time.December, 31), date(2025, time.January, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NextOccurrence(tt.month, tt.day, tt.today)
			if !got.Equal(tt.want) {
				t.Errorf("NextOccurrence(%v, %d, %v) = %v, want %v", tt.month, tt.day, tt.today, got, tt.want)
			}
		})
	}
}

func TestNextOccurrenceBounds(t *testing.T) {
	todays := []time.Time{
		date(2023, time.January, 1),
		date(2024, time.February, 29),
		date(2024, time.June, 15),
		date(2025, time.December, 31),
	}

	for _, today := range todays {
		for month := time.January; month <= time.December; month++ {
			for _, day := range []int{1, 15, 28, 29, 30, 31} {
				got := NextOccurrence(month, day, today)
				if got.Before(today) {
					t.Fatalf("NextOccurrence(%v, %d, %v) = %v is before today", month, day, today, got)
				}
				if got.Year() != today.Year() && got.Year() != today.Year()+1 {
					t.Fatalf("NextOccurrence(%v, %d, %v) = %v falls outside {%d, %d}", month, day, today, got, today.Year(), today.Year()+1)
				}
			}
		}
	}
}

func TestDaysUntil(t *testing.T) {
	tests := []struct {
		name  string
		month time.Month
		day   int
		today time.Time
		want  int
	}{
		{"seven days out", time.March, 17, date(2024, time.March, 10), 7},
		{"today", time.March, 17, date(2024, time.March, 17), 0},
		{"tomorrow across year end", time.January, 1, date(2024, time.December, 31), 1},
		{"three days out", time.March, 13, date(2024, time.March, 10), 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DaysUntil(tt.month, tt.day, tt.today)
			if got != tt.want {
				t.Errorf("DaysUntil(%v, %d, %v) = %d, want %d", tt.month, tt.day, tt.today, got, tt.want)
			}
		})
	}
}

func TestDaysUntilNeverNegative(t *testing.T) {
	today := date(2024, time.August, 20)
	for month := time.January; month <= time.December; month++ {
		for day := 1; day <= 28; day++ {
			got := DaysUntil(month, day, today)
			if got < 0 {
				t.Fatalf("DaysUntil(%v, %d, %v) = %d, want non-negative", month, day, today, got)
			}
			occurrence := NextOccurrence(month, day, today)
			if (got == 0) != occurrence.Equal(today) {
				t.Fatalf("DaysUntil(%v, %d, %v) = %d but occurrence = %v", month, day, today, got, occurrence)
			}
		}
	}
}
