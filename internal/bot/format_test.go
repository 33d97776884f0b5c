package bot

import (
	"strings"
	"testing"
	"time"

	"mensahub/internal/additive"
	"mensahub/internal/menu"
	"mensahub/internal/provider"
)

func testProviders() []*provider.FoodProvider {
	return []*provider.FoodProvider{
		{ID: "p1", Name: "Burse", OpeningHoursText: "closed"},
		{ID: "p2", Name: "Mensa am Studentenhaus", OpeningHoursText: "open until 14:00"},
	}
}

func TestFormatProviders(t *testing.T) {
	got := FormatProviders(testProviders())

	if !strings.Contains(got, "*Mensa am Studentenhaus* (open until 14:00)") {
		t.Fatalf("missing provider line:\n%s", got)
	}
	if !strings.Contains(got, "*Burse* (closed)") {
		t.Fatalf("missing provider line:\n%s", got)
	}
}

func TestFormatProvidersEmpty(t *testing.T) {
	if got := FormatProviders(nil); got != "No canteens found." {
		t.Fatalf("unexpected text: %q", got)
	}
}

func TestFormatMenus(t *testing.T) {
	p := &provider.FoodProvider{Name: "Mensa am Studentenhaus", OpeningHoursText: "open until 14:00"}
	menus := []menu.Menu{
		{
			Date: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			Meals: []menu.Meal{
				{
					Name: "Spaghetti Bolognese",
					Additives: []additive.Additive{
						{Name: "Gluten", Type: additive.TypeAllergen},
						{Name: "Farbstoff", Type: additive.TypeIngredient},
					},
					Prices: map[menu.Role]string{menu.RoleStudent: "2,80 €"},
				},
				{Name: "Salatteller"},
			},
		},
	}

	got := FormatMenus(p, menus)

	if !strings.Contains(got, "*Monday, 1 January*") {
		t.Fatalf("missing date heading:\n%s", got)
	}
	if !strings.Contains(got, "• Spaghetti Bolognese (2,80 €)") {
		t.Fatalf("missing meal line:\n%s", got)
	}
	// Only allergens are warned about, not regular ingredients.
	if !strings.Contains(got, "⚠️ Gluten") || strings.Contains(got, "Farbstoff") {
		t.Fatalf("unexpected allergen line:\n%s", got)
	}
	if !strings.Contains(got, "• Salatteller\n") {
		t.Fatalf("missing priceless meal line:\n%s", got)
	}
}

func TestFormatMenusEmpty(t *testing.T) {
	p := &provider.FoodProvider{Name: "Burse"}

	got := FormatMenus(p, nil)
	if !strings.Contains(got, "No menu published for *Burse*") {
		t.Fatalf("unexpected text: %q", got)
	}
}

func TestMatchProvider(t *testing.T) {
	providers := testProviders()

	if p := MatchProvider(providers, "STUDENTENHAUS"); p == nil || p.ID != "p2" {
		t.Fatalf("expected case-insensitive match on p2, got %v", p)
	}
	if p := MatchProvider(providers, "burse"); p == nil || p.ID != "p1" {
		t.Fatalf("expected match on p1, got %v", p)
	}
	if p := MatchProvider(providers, "frankenstube"); p != nil {
		t.Fatalf("expected no match, got %v", p)
	}
	if p := MatchProvider(providers, "  "); p != nil {
		t.Fatalf("expected no match for blank query, got %v", p)
	}
}
