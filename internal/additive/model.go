package additive

import "fmt"

// Type tags an additive as an allergen or a regular ingredient.
type Type string

const (
	TypeAllergen   Type = "allergen"
	TypeIngredient Type = "ingredient"
)

// placeholder asset until a dedicated icon is assigned
const defaultIcon = "additive_generic"

// Additive is one allergen or ingredient a meal can carry. The name is the
// sole identity key; Liked holds the user's preference and defaults to true.
type Additive struct {
	Name  string `json:"name"`
	Type  Type   `json:"type"`
	Liked bool   `json:"liked"`
	Icon  string `json:"icon"`
}

func ParseType(raw string) (Type, error) {
	switch Type(raw) {
	case TypeAllergen, TypeIngredient:
		return Type(raw), nil
	}
	return "", fmt.Errorf("unknown additive type %q", raw)
}
