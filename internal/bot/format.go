package bot

import (
	"fmt"
	"strings"

	"mensahub/internal/additive"
	"mensahub/internal/menu"
	"mensahub/internal/provider"
)

// FormatProviders renders the canteen list with opening status, one line per
// canteen.
func FormatProviders(providers []*provider.FoodProvider) string {
	if len(providers) == 0 {
		return "No canteens found."
	}

	var b strings.Builder
	b.WriteString("🍽 *Canteens*\n\n")
	for _, p := range providers {
		fmt.Fprintf(&b, "• *%s* (%s)\n", p.Name, p.OpeningHoursText)
	}
	b.WriteString("\nSend /menu <name> for today's menu.")
	return b.String()
}

// FormatMenus renders the provider's menus: one block per date, meals with
// student price and allergen warnings.
func FormatMenus(p *provider.FoodProvider, menus []menu.Menu) string {
	if len(menus) == 0 {
		return fmt.Sprintf("No menu published for *%s* today.", p.Name)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "🍽 *%s*\n_%s_\n", p.Name, p.OpeningHoursText)

	for _, m := range menus {
		fmt.Fprintf(&b, "\n*%s*\n", m.Date.Format("Monday, 2 January"))
		for _, meal := range m.Meals {
			b.WriteString("• " + meal.Name)
			if price, ok := meal.Prices[menu.RoleStudent]; ok {
				fmt.Fprintf(&b, " (%s)", price)
			}
			b.WriteString("\n")

			if allergens := allergenNames(meal); len(allergens) > 0 {
				fmt.Fprintf(&b, "  ⚠️ %s\n", strings.Join(allergens, ", "))
			}
		}
	}
	return b.String()
}

func allergenNames(m menu.Meal) []string {
	var names []string
	for _, a := range m.Additives {
		if a.Type == additive.TypeAllergen {
			names = append(names, a.Name)
		}
	}
	return names
}

// MatchProvider picks the first provider whose name contains the query,
// case-insensitively. Returns nil when nothing matches.
func MatchProvider(providers []*provider.FoodProvider, query string) *provider.FoodProvider {
	needle := strings.ToLower(strings.TrimSpace(query))
	if needle == "" {
		return nil
	}
	for _, p := range providers {
		if strings.Contains(strings.ToLower(p.Name), needle) {
			return p
		}
	}
	return nil
}
