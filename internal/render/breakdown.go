// Package render formats DerivedMetrics for a presentation layer: the
// equation breakdown, chart series, curve CSV, tetrahedron markup, and the
// terminal metric panel.
package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/talgya/delta-tetrahedron/internal/growth"
)

// Formula is the symbolic Δ equation.
const Formula = `\Delta(t) = \frac{\kappa \cdot (M(I + S) - F)}{\Phi}`

// Term is one labelled value in the breakdown.
type Term struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Breakdown is the equation with every term substituted.
type Breakdown struct {
	Formula string `json:"formula"`
	Terms   []Term `json:"terms"`
	Delta   string `json:"delta_latex"`
	G       string `json:"g_latex"`
}

// NewBreakdown substitutes m into the Δ and G equations. M, F, Δ and G are
// shown to 2 decimals; κ keeps its full shortest representation.
func NewBreakdown(m growth.DerivedMetrics) Breakdown {
	kappa := formatScalar(m.Kappa())
	rate := fmt.Sprintf("%.2f", m.Rate)
	friction := fmt.Sprintf("%.2f", m.FrictionLoad)
	boost := strconv.FormatFloat(m.StrategicBoost, 'f', -1, 64)
	phi := strconv.FormatFloat(m.Phi, 'f', -1, 64)

	return Breakdown{
		Formula: Formula,
		Terms: []Term{
			{"κ (Concept Scalar)", kappa},
			{"M (Efficiency/Time)", rate},
			{"Input Potential (I)", strconv.Itoa(m.InputPotential)},
			{"Strategic Boost (S)", boost},
			{"Friction Load (F)", friction},
			{"Φ (Normalization)", phi},
		},
		Delta: fmt.Sprintf(`\Delta = \frac{%s \cdot (%s(%d + %s) - %s)}{%s} = %.2f`,
			kappa, rate, m.InputPotential, boost, friction, phi, growth.Round2(m.Delta)),
		G: fmt.Sprintf(`G = 3 \cdot \Delta = %.2f`, growth.Round2(m.G)),
	}
}

// Markdown renders the breakdown as a bullet list followed by the equations.
func (b Breakdown) Markdown() string {
	var sb strings.Builder
	sb.WriteString("### Full Equation Breakdown\n\n")
	for _, t := range b.Terms {
		fmt.Fprintf(&sb, "- **%s**: %s\n", t.Name, t.Value)
	}
	sb.WriteString("\n```latex\n")
	sb.WriteString(b.Formula + "\n")
	sb.WriteString(b.Delta + "\n")
	sb.WriteString(b.G + "\n")
	sb.WriteString("```\n")
	return sb.String()
}

// formatScalar prints the shortest exact form, keeping a trailing ".0" on
// whole numbers so 1.0 does not read as an integer.
func formatScalar(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eEn") {
		s += ".0"
	}
	return s
}
