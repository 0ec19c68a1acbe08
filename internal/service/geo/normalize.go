package geo

import "strings"

// nameAliases reconciles historical or variant administrative names against
// the names the boundary datasets carry today. Keys are lower-cased.
var nameAliases = map[string]string{
	"orissa":          "Odisha",
	"pondicherry":     "Puducherry",
	"uttaranchal":     "Uttarakhand",
	"poona":           "Pune",
	"gurgaon":         "Gurugram",
	"allahabad":       "Prayagraj",
	"bangalore urban": "Bengaluru Urban",
	"bangalore rural": "Bengaluru Rural",
	"hoshangabad":     "Narmadapuram",
	"aurangabad (mh)": "Chhatrapati Sambhajinagar",
	"nct of delhi":    "Delhi",
}

// NormalizeName maps a historical or differently-cased region name onto its
// current administrative name. Unknown names pass through trimmed.
func NormalizeName(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if current, ok := nameAliases[strings.ToLower(trimmed)]; ok {
		return current
	}
	return trimmed
}
