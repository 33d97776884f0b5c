// Package docstore models the remote document database this service mirrors:
// loosely typed documents, equality/range queries, and the cache/server
// fallback read policy.
package docstore

import (
	"fmt"
	"time"
)

// Document is one record from a remote collection. Field values are loosely
// typed (string, bool, number, list, timestamp); the typed accessors below
// turn absence or a type mismatch into a *FieldError instead of letting
// callers fish in the map themselves.
type Document struct {
	ID     string         `json:"id"`
	Fields map[string]any `json:"fields"`
}

// FieldError reports a missing or mistyped document field.
type FieldError struct {
	DocID string
	Key   string
	Want  string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("document %q: field %q missing or not a %s", e.DocID, e.Key, e.Want)
}

// Has reports whether the field is present at all.
func (d Document) Has(key string) bool {
	_, ok := d.Fields[key]
	return ok
}

func (d Document) String(key string) (string, error) {
	s, ok := d.Fields[key].(string)
	if !ok {
		return "", &FieldError{DocID: d.ID, Key: key, Want: "string"}
	}
	return s, nil
}

// StringOr returns the string field, or fallback when it is absent or mistyped.
func (d Document) StringOr(key, fallback string) string {
	s, err := d.String(key)
	if err != nil {
		return fallback
	}
	return s
}

func (d Document) Bool(key string) (bool, error) {
	b, ok := d.Fields[key].(bool)
	if !ok {
		return false, &FieldError{DocID: d.ID, Key: key, Want: "bool"}
	}
	return b, nil
}

func (d Document) List(key string) ([]any, error) {
	l, ok := d.Fields[key].([]any)
	if !ok {
		return nil, &FieldError{DocID: d.ID, Key: key, Want: "list"}
	}
	return l, nil
}

// Time reads a timestamp field. Values survive a JSON round trip through the
// cache as RFC 3339 strings, so both representations are accepted.
func (d Document) Time(key string) (time.Time, error) {
	switch v := d.Fields[key].(type) {
	case time.Time:
		return v, nil
	case string:
		ts, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return time.Time{}, &FieldError{DocID: d.ID, Key: key, Want: "timestamp"}
		}
		return ts, nil
	default:
		return time.Time{}, &FieldError{DocID: d.ID, Key: key, Want: "timestamp"}
	}
}
