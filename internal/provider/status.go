package provider

import (
	"fmt"
	"time"
)

// Countdown threshold: below this the status switches from an absolute
// time to a minute countdown.
const soonMinutes = 30

// --------------------------------------------------
// Opening status text
// --------------------------------------------------
// OpeningStatus renders the human-readable opening state of a weekly
// schedule at the given instant: "closed", "opens at 11:00" / "opens in
// 5 min", "open until 14:00" / "closes in 5 min", with a last-order
// countdown while one is pending. Segments are assumed to be in
// chronological order within a day, as upstream delivers them.
func OpeningStatus(week WeekHours, now time.Time) string {
	nowMinute := now.Hour()*60 + now.Minute()

	for _, segment := range week[now.Weekday()] {
		if !segment.Open {
			continue
		}
		opens := segment.Opens.MinuteOfDay()
		closes := segment.Closes.MinuteOfDay()

		switch {
		case nowMinute < opens:
			if opens-nowMinute <= soonMinutes {
				return fmt.Sprintf("opens in %d min", opens-nowMinute)
			}
			return fmt.Sprintf("opens at %s", segment.Opens)

		case nowMinute < closes:
			lastOrder := segment.LastOrder.MinuteOfDay()
			if !segment.LastOrder.IsZero() && nowMinute < lastOrder && lastOrder-nowMinute <= soonMinutes {
				return fmt.Sprintf("last order in %d min", lastOrder-nowMinute)
			}
			if closes-nowMinute <= soonMinutes {
				return fmt.Sprintf("closes in %d min", closes-nowMinute)
			}
			return fmt.Sprintf("open until %s", segment.Closes)
		}
	}

	return "closed"
}
