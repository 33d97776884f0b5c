package docstore

import "time"

// Query selects documents from one collection by exact field values and an
// optional timestamp range. The zero value of From/To leaves that bound open;
// the range is inclusive of From and exclusive of To.
type Query struct {
	Collection string

	// ID restricts the result to a single document when set.
	ID string

	// Filters are string-equality constraints on document fields.
	Filters map[string]string

	TimeField string
	From      time.Time
	To        time.Time
}

// Match reports whether the document satisfies every constraint. A document
// whose filtered field is absent or mistyped does not match; strict schema
// validation happens at the document-to-entity boundary, not here.
func (q Query) Match(d Document) bool {
	if q.ID != "" && d.ID != q.ID {
		return false
	}
	for key, want := range q.Filters {
		got, err := d.String(key)
		if err != nil || got != want {
			return false
		}
	}
	if q.TimeField != "" {
		ts, err := d.Time(q.TimeField)
		if err != nil {
			return false
		}
		if !q.From.IsZero() && ts.Before(q.From) {
			return false
		}
		if !q.To.IsZero() && !ts.Before(q.To) {
			return false
		}
	}
	return true
}
