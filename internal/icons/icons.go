// Package icons maps food providers to their image assets.
package icons

import "strings"

var replacer = strings.NewReplacer(
	" ", "_",
	"-", "_",
	"ä", "ae",
	"ö", "oe",
	"ü", "ue",
	"ß", "ss",
)

// Table resolves providers to asset names. The mapping is injected at
// construction so deployments and tests can swap asset sets.
type Table struct {
	icons    map[string]string
	fallback string
}

func NewTable(icons map[string]string, fallback string) *Table {
	return &Table{icons: icons, fallback: fallback}
}

// Lookup returns the asset for the provider, or the fallback when the
// normalized key is absent from the table.
func (t *Table) Lookup(providerType, name, location string) string {
	if icon, ok := t.icons[Key(providerType, name, location)]; ok {
		return icon
	}
	return t.fallback
}

// Key builds the normalized lookup key "{type}_{name}_{location}":
// lowercased, spaces and hyphens become underscores, German umlauts are
// transliterated (ä→ae, ö→oe, ü→ue, ß→ss).
func Key(providerType, name, location string) string {
	raw := strings.ToLower(providerType + "_" + name + "_" + location)
	return replacer.Replace(raw)
}

// Default returns the built-in asset table for the Würzburg and Bamberg
// student union providers.
func Default() *Table {
	return NewTable(map[string]string{
		"mensa_mensa_am_studentenhaus_wuerzburg":              "mensa_am_studentenhaus",
		"mensateria_mensateria_campus_hubland_nord_wuerzburg": "mensateria_hubland_nord",
		"burse_burse_am_studentenhaus_wuerzburg":              "burse_wuerzburg",
		"mensa_mensa_roentgenring_wuerzburg":                  "mensa_roentgenring",
		"mensa_mensa_josef_schneider_strasse_wuerzburg":       "mensa_josef_schneider",
		"cafeteria_frankenstube_wuerzburg":                    "frankenstube",
		"cafeteria_cafeteria_alte_universitaet_wuerzburg":     "cafeteria_alte_uni",
		"mensa_mensa_austrasse_bamberg":                       "mensa_austrasse",
		"mensa_mensa_feldkirchenstrasse_bamberg":              "mensa_feldkirchenstrasse",
		"cafeteria_cafeteria_feldkirchenstrasse_bamberg":      "cafeteria_feldkirchenstrasse",
	}, "mensa_generic")
}
