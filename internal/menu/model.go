package menu

import (
	"encoding/json"
	"time"

	"mensahub/internal/additive"
)

// Collection is the remote collection meal documents live in.
const Collection = "meals"

// Role is who is paying; canteen prices differ per role.
type Role string

const (
	RoleStudent  Role = "student"
	RoleEmployee Role = "employee"
	RoleGuest    Role = "guest"
)

// Meal is one dish on a day's menu. Rebuilt on every fetch; only its
// additives are backed by persistent records.
type Meal struct {
	Name      string              `json:"name"`
	Additives []additive.Additive `json:"additives"`
	Prices    map[Role]string     `json:"prices"`
}

// Menu groups the meals served on one calendar date. Meals keep the order
// they arrived in from the source.
type Menu struct {
	Date  time.Time `json:"-"`
	Meals []Meal    `json:"meals"`
}

func (m Menu) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Date  string `json:"date"`
		Meals []Meal `json:"meals"`
	}{
		Date:  m.Date.Format("2006-01-02"),
		Meals: m.Meals,
	})
}
