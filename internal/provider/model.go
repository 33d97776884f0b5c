package provider

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"mensahub/internal/docstore"
)

// Collection is the remote collection food providers live in.
const Collection = "foodProviders"

// ClockTime is a time of day without a date. Upstream documents carry these
// as "H.MM" strings (hour, literal dot, two-digit minute).
type ClockTime struct {
	Hour   int
	Minute int
}

// ParseClock parses the upstream "H.MM" format. A non-integer hour or minute
// part is a hard error for the containing record.
func ParseClock(raw string) (ClockTime, error) {
	hourPart, minutePart, found := strings.Cut(raw, ".")
	if !found {
		return ClockTime{}, fmt.Errorf("invalid time %q: want H.MM", raw)
	}
	hour, err := strconv.Atoi(hourPart)
	if err != nil {
		return ClockTime{}, fmt.Errorf("invalid hour in time %q", raw)
	}
	minute, err := strconv.Atoi(minutePart)
	if err != nil {
		return ClockTime{}, fmt.Errorf("invalid minute in time %q", raw)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return ClockTime{}, fmt.Errorf("time %q out of range", raw)
	}
	return ClockTime{Hour: hour, Minute: minute}, nil
}

func (t ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// MinuteOfDay returns minutes since midnight.
func (t ClockTime) MinuteOfDay() int {
	return t.Hour*60 + t.Minute
}

func (t ClockTime) IsZero() bool {
	return t.Hour == 0 && t.Minute == 0
}

func (t ClockTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// TimeSegment is one opening interval within a day. A segment with Open=false
// is a closed placeholder: it keeps its slot in the day's list so segment
// indexes stay aligned with any parallel upstream data.
type TimeSegment struct {
	Open      bool
	Opens     ClockTime
	Closes    ClockTime
	LastOrder ClockTime
}

func (s TimeSegment) MarshalJSON() ([]byte, error) {
	if !s.Open {
		return []byte("{}"), nil
	}
	out := struct {
		OpensAt     ClockTime  `json:"opens_at"`
		ClosesAt    ClockTime  `json:"closes_at"`
		LastOrderAt *ClockTime `json:"last_order_at,omitempty"`
	}{
		OpensAt:  s.Opens,
		ClosesAt: s.Closes,
	}
	if !s.LastOrder.IsZero() {
		out.LastOrderAt = &s.LastOrder
	}
	return json.Marshal(out)
}

// WeekHours maps weekdays to their opening segments. Days the upstream record
// carries no field for are absent from the map.
type WeekHours map[time.Weekday][]TimeSegment

var weekdayOrder = []time.Weekday{
	time.Monday,
	time.Tuesday,
	time.Wednesday,
	time.Thursday,
	time.Friday,
	time.Saturday,
	time.Sunday,
}

var weekdayNames = map[time.Weekday]string{
	time.Monday:    "monday",
	time.Tuesday:   "tuesday",
	time.Wednesday: "wednesday",
	time.Thursday:  "thursday",
	time.Friday:    "friday",
	time.Saturday:  "saturday",
	time.Sunday:    "sunday",
}

// MarshalJSON emits days in Monday..Sunday order rather than the map's
// iteration order.
func (w WeekHours) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	first := true
	for _, day := range weekdayOrder {
		segments, ok := w[day]
		if !ok {
			continue
		}
		if !first {
			buf.WriteByte(',')
		}
		first = false
		fmt.Fprintf(&buf, "%q:", weekdayNames[day])
		b, err := json.Marshal(segments)
		if err != nil {
			return nil, err
		}
		buf.Write(b)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

type FoodProvider struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Location         string    `json:"location"`
	Category         string    `json:"category"`
	Type             string    `json:"type"`
	Address          string    `json:"address,omitempty"`
	Description      string    `json:"description,omitempty"`
	Photo            string    `json:"photo,omitempty"`
	Icon             string    `json:"icon,omitempty"`
	OpeningHours     WeekHours `json:"opening_hours,omitempty"`
	OpeningHoursText string    `json:"opening_hours_text,omitempty"`
}

// DecodeProvider validates a provider document at the boundary: name,
// location, category and type are required, everything else is optional.
func DecodeProvider(doc docstore.Document) (*FoodProvider, error) {
	name, err := doc.String("name")
	if err != nil {
		return nil, err
	}
	location, err := doc.String("location")
	if err != nil {
		return nil, err
	}
	category, err := doc.String("category")
	if err != nil {
		return nil, err
	}
	providerType, err := doc.String("type")
	if err != nil {
		return nil, err
	}

	hours, err := ExtractWeekHours(doc)
	if err != nil {
		return nil, fmt.Errorf("provider %q: %w", name, err)
	}

	return &FoodProvider{
		ID:           doc.ID,
		Name:         name,
		Location:     location,
		Category:     category,
		Type:         providerType,
		Address:      doc.StringOr("address", ""),
		Description:  doc.StringOr("description", ""),
		Photo:        doc.StringOr("photo", ""),
		OpeningHours: hours,
	}, nil
}

// DisplayEqual compares the fields a listing entry renders. ID, Description
// and the structured opening hours map are not part of the comparison; the
// sync worker uses this to decide whether a provider change is worth an
// update event.
func (p *FoodProvider) DisplayEqual(other *FoodProvider) bool {
	if p == nil || other == nil {
		return p == other
	}
	return p.Name == other.Name &&
		p.Location == other.Location &&
		p.Category == other.Category &&
		p.Type == other.Type &&
		p.Address == other.Address &&
		p.Photo == other.Photo &&
		p.OpeningHoursText == other.OpeningHoursText
}
