package menu

import (
	"context"
	"sort"
	"time"

	"mensahub/internal/additive"
	"mensahub/internal/docstore"
)

// Price fields every meal document must carry.
var priceFields = map[Role]string{
	RoleStudent:  "priceStudent",
	RoleEmployee: "priceEmployee",
	RoleGuest:    "priceGuest",
}

// Grouper turns a flat batch of meal documents into per-date menus.
// Decoding is all-or-nothing: one malformed document fails the whole batch
// rather than serving a partial day.
type Grouper struct {
	resolver *additive.Service
	zone     *time.Location
}

func NewGrouper(resolver *additive.Service, zone *time.Location) *Grouper {
	return &Grouper{resolver: resolver, zone: zone}
}

// --------------------------------------------------
// Group meals by calendar date
// --------------------------------------------------
// Group derives each meal's calendar date from its timestamp in the
// grouper's zone, buckets meals per date preserving their arrival order,
// and returns the menus sorted by date. An empty batch yields an empty
// list.
func (g *Grouper) Group(
	ctx context.Context,
	docs []docstore.Document,
) ([]Menu, error) {

	menus := make([]Menu, 0, 1)
	byDate := make(map[time.Time]int)

	for _, doc := range docs {
		meal, date, err := g.decodeMeal(ctx, doc)
		if err != nil {
			return nil, err
		}

		idx, ok := byDate[date]
		if !ok {
			idx = len(menus)
			byDate[date] = idx
			menus = append(menus, Menu{Date: date})
		}
		menus[idx].Meals = append(menus[idx].Meals, meal)
	}

	sort.Slice(menus, func(i, j int) bool {
		return menus[i].Date.Before(menus[j].Date)
	})

	return menus, nil
}

func (g *Grouper) decodeMeal(
	ctx context.Context,
	doc docstore.Document,
) (Meal, time.Time, error) {

	name, err := doc.String("name")
	if err != nil {
		return Meal{}, time.Time{}, err
	}

	ts, err := doc.Time("date")
	if err != nil {
		return Meal{}, time.Time{}, err
	}
	local := ts.In(g.zone)
	date := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, g.zone)

	allergens, err := g.resolver.ResolveAll(ctx, doc.StringOr("allergens", ""), additive.TypeAllergen)
	if err != nil {
		return Meal{}, time.Time{}, err
	}
	ingredients, err := g.resolver.ResolveAll(ctx, doc.StringOr("ingredients", ""), additive.TypeIngredient)
	if err != nil {
		return Meal{}, time.Time{}, err
	}

	prices := make(map[Role]string, len(priceFields))
	for role, field := range priceFields {
		price, err := doc.String(field)
		if err != nil {
			return Meal{}, time.Time{}, err
		}
		prices[role] = price
	}

	return Meal{
		Name:      name,
		Additives: dedupeByName(append(allergens, ingredients...)),
		Prices:    prices,
	}, date, nil
}

// dedupeByName keeps the first occurrence per additive name; a meal lists
// each additive once even when the source repeats it across the allergen
// and ingredient fields.
func dedupeByName(in []*additive.Additive) []additive.Additive {
	seen := make(map[string]struct{}, len(in))
	out := make([]additive.Additive, 0, len(in))
	for _, a := range in {
		if _, ok := seen[a.Name]; ok {
			continue
		}
		seen[a.Name] = struct{}{}
		out = append(out, *a)
	}
	return out
}
