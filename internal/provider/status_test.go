package provider

import (
	"testing"
	"time"
)

// 2024-01-01 is a Monday.
func mondayAt(hour, minute int) time.Time {
	return time.Date(2024, time.January, 1, hour, minute, 0, 0, time.UTC)
}

func TestOpeningStatus(t *testing.T) {
	week := WeekHours{
		time.Monday: {{
			Open:      true,
			Opens:     ClockTime{Hour: 8},
			Closes:    ClockTime{Hour: 14},
			LastOrder: ClockTime{Hour: 13, Minute: 30},
		}},
	}

	cases := []struct {
		name string
		now  time.Time
		want string
	}{
		{"well before opening", mondayAt(6, 0), "opens at 08:00"},
		{"shortly before opening", mondayAt(7, 45), "opens in 15 min"},
		{"mid-day", mondayAt(10, 0), "open until 14:00"},
		{"last order pending", mondayAt(13, 10), "last order in 20 min"},
		{"shortly before closing", mondayAt(13, 45), "closes in 15 min"},
		{"at closing time", mondayAt(14, 0), "closed"},
		{"after closing", mondayAt(18, 0), "closed"},
		{"day without schedule", mondayAt(10, 0).AddDate(0, 0, 1), "closed"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := OpeningStatus(week, tc.now); got != tc.want {
				t.Errorf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestOpeningStatusSkipsClosedSegments(t *testing.T) {
	week := WeekHours{
		time.Monday: {
			{},
			{
				Open:   true,
				Opens:  ClockTime{Hour: 17},
				Closes: ClockTime{Hour: 21},
			},
		},
	}

	if got := OpeningStatus(week, mondayAt(10, 0)); got != "opens at 17:00" {
		t.Errorf("expected %q, got %q", "opens at 17:00", got)
	}
}

func TestOpeningStatusBetweenSegments(t *testing.T) {
	week := WeekHours{
		time.Monday: {
			{Open: true, Opens: ClockTime{Hour: 8}, Closes: ClockTime{Hour: 14}},
			{Open: true, Opens: ClockTime{Hour: 17}, Closes: ClockTime{Hour: 21}},
		},
	}

	if got := OpeningStatus(week, mondayAt(15, 0)); got != "opens at 17:00" {
		t.Errorf("expected %q, got %q", "opens at 17:00", got)
	}
}

func TestOpeningStatusEmptyWeek(t *testing.T) {
	if got := OpeningStatus(nil, mondayAt(10, 0)); got != "closed" {
		t.Errorf("expected %q, got %q", "closed", got)
	}
}
