package provider

import (
	"fmt"
	"time"

	"mensahub/internal/docstore"
)

// Upstream schedule fields, one per weekday, keyed by the day's short
// English name. Each holds a flat list read in groups of four:
// (opensAt, closesAt, lastOrderAt, isOpen).
var weekdayFields = []struct {
	key string
	day time.Weekday
}{
	{"hours_mon", time.Monday},
	{"hours_tue", time.Tuesday},
	{"hours_wed", time.Wednesday},
	{"hours_thu", time.Thursday},
	{"hours_fri", time.Friday},
	{"hours_sat", time.Saturday},
	{"hours_sun", time.Sunday},
}

// --------------------------------------------------
// Weekly schedule extraction
// --------------------------------------------------
// ExtractWeekHours decodes the per-day schedule fields of a provider
// document. Days without a field are omitted from the result. A field whose
// length is not a multiple of four, a non-boolean open flag, or a malformed
// time string fails the whole record.
func ExtractWeekHours(doc docstore.Document) (WeekHours, error) {
	week := make(WeekHours)

	for _, field := range weekdayFields {
		if !doc.Has(field.key) {
			continue
		}
		items, err := doc.List(field.key)
		if err != nil {
			return nil, err
		}
		segments, err := parseSegments(items)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", field.key, err)
		}
		week[field.day] = segments
	}

	return week, nil
}

func parseSegments(items []any) ([]TimeSegment, error) {
	if len(items)%4 != 0 {
		return nil, fmt.Errorf("schedule list has %d entries, want a multiple of 4", len(items))
	}

	segments := make([]TimeSegment, 0, len(items)/4)
	for i := 0; i < len(items); i += 4 {
		open, ok := items[i+3].(bool)
		if !ok {
			return nil, fmt.Errorf("entry %d: open flag is not a boolean", i+3)
		}

		// Closed intervals keep their slot as an empty segment so indexes
		// stay aligned; their time strings are not parsed.
		if !open {
			segments = append(segments, TimeSegment{})
			continue
		}

		opens, err := clockAt(items, i)
		if err != nil {
			return nil, err
		}
		closes, err := clockAt(items, i+1)
		if err != nil {
			return nil, err
		}
		lastOrder, err := clockAt(items, i+2)
		if err != nil {
			return nil, err
		}

		segments = append(segments, TimeSegment{
			Open:      true,
			Opens:     opens,
			Closes:    closes,
			LastOrder: lastOrder,
		})
	}

	return segments, nil
}

func clockAt(items []any, i int) (ClockTime, error) {
	raw, ok := items[i].(string)
	if !ok {
		return ClockTime{}, fmt.Errorf("entry %d: expected a time string", i)
	}
	t, err := ParseClock(raw)
	if err != nil {
		return ClockTime{}, fmt.Errorf("entry %d: %w", i, err)
	}
	return t, nil
}
