// Concept keyword tables.
package growth

import "strings"

// labelKey pairs a scalar with its keyword, mirroring how labels are looked up.
type labelKey struct {
	kappa   float64
	keyword string
}

// conceptOrder fixes the listing order of the tables.
var conceptOrder = []string{
	"clarity", "chaos", "focus", "doubt", "momentum",
	"burnout", "trust", "fear", "intuition", "distraction",
}

// scalars maps a lowercase keyword to its kappa.
var scalars = map[string]float64{
	"clarity":     1.2,
	"chaos":       0.6,
	"focus":       1.4,
	"doubt":       0.7,
	"momentum":    1.5,
	"burnout":     0.4,
	"trust":       1.3,
	"fear":        0.5,
	"intuition":   1.25,
	"distraction": 0.65,
}

// labels maps (kappa, keyword) to a Latin label. Every entry in scalars has a
// counterpart here under the identical kappa.
var labels = map[labelKey]string{
	{1.2, "clarity"}:      "Lux",
	{0.6, "chaos"}:        "Confusio",
	{1.4, "focus"}:        "Intentio",
	{0.7, "doubt"}:        "Dubium",
	{1.5, "momentum"}:     "Motus",
	{0.4, "burnout"}:      "Exanimatio",
	{1.3, "trust"}:        "Fides",
	{0.5, "fear"}:         "Timor",
	{1.25, "intuition"}:   "Intuitus",
	{0.65, "distraction"}: "Divisio",
}

// Concept is a resolved concept keyword.
type Concept struct {
	Keyword    string  `json:"keyword"`
	Kappa      float64 `json:"kappa"`
	Label      string  `json:"label"`
	Recognized bool    `json:"recognized"`
}

// NormalizeKeyword lowercases and trims a concept keyword.
func NormalizeKeyword(keyword string) string {
	return strings.ToLower(strings.TrimSpace(keyword))
}

// LookupConcept returns the table entry for keyword, if any.
func LookupConcept(keyword string) (Concept, bool) {
	kw := NormalizeKeyword(keyword)
	kappa, ok := scalars[kw]
	if !ok {
		return Concept{Keyword: kw}, false
	}
	return Concept{
		Keyword:    kw,
		Kappa:      kappa,
		Label:      labelFor(kappa, kw),
		Recognized: true,
	}, true
}

// Concepts returns every table entry in a stable order.
func Concepts() []Concept {
	out := make([]Concept, 0, len(conceptOrder))
	for _, kw := range conceptOrder {
		c, _ := LookupConcept(kw)
		out = append(out, c)
	}
	return out
}

func labelFor(kappa float64, keyword string) string {
	if l, ok := labels[labelKey{kappa, keyword}]; ok {
		return l
	}
	return DefaultLabel
}
