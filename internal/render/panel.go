package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/talgya/delta-tetrahedron/internal/growth"
)

var (
	cyan = lipgloss.Color("#00FFFF")
	lime = lipgloss.Color("#32CD32")
	gray = lipgloss.Color("#808080")

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(cyan).
			Padding(0, 1)

	metricLabelStyle = lipgloss.NewStyle().Foreground(gray)
	metricValueStyle = lipgloss.NewStyle().Bold(true).Foreground(lime)
	headerStyle      = lipgloss.NewStyle().Bold(true).Foreground(cyan)
	captionStyle     = lipgloss.NewStyle().Italic(true).Foreground(gray)
)

// Panel renders the metric card: Δ, G, and the Latin mapping.
func Panel(m growth.DerivedMetrics) string {
	rows := []string{
		headerStyle.Render("Tetrahedron State"),
		metric("Δ (Delta)", fmt.Sprintf("%.2f", growth.Round2(m.Delta))),
		metric("G(t)", fmt.Sprintf("%.2f", growth.Round2(m.G))),
		captionStyle.Render("Latin Mapping: " + m.Label()),
	}
	return panelStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func metric(label, value string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top,
		metricLabelStyle.Render(fmt.Sprintf("%-10s", label)),
		" ",
		metricValueStyle.Render(value),
	)
}

// Text renders m as plain lines, one metric per line.
func Text(m growth.DerivedMetrics) string {
	var sb strings.Builder
	b := NewBreakdown(m)
	for _, t := range b.Terms {
		fmt.Fprintf(&sb, "%-22s %s\n", t.Name+":", t.Value)
	}
	fmt.Fprintf(&sb, "%-22s %.2f\n", "Δ (Delta):", growth.Round2(m.Delta))
	fmt.Fprintf(&sb, "%-22s %.2f\n", "G(t):", growth.Round2(m.G))
	fmt.Fprintf(&sb, "%-22s %s\n", "Latin Mapping:", m.Label())
	return sb.String()
}

// Pretty renders the panel above the breakdown, styled for a terminal. style
// is a glamour style name ("dark", "light", "notty"); empty picks one from
// the terminal.
func Pretty(m growth.DerivedMetrics, style string) (string, error) {
	opts := []glamour.TermRendererOption{glamour.WithWordWrap(80)}
	if style == "" {
		opts = append(opts, glamour.WithAutoStyle())
	} else {
		opts = append(opts, glamour.WithStylePath(style))
	}
	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return "", fmt.Errorf("create markdown renderer: %w", err)
	}
	md, err := r.Render(NewBreakdown(m).Markdown())
	if err != nil {
		return "", fmt.Errorf("render breakdown: %w", err)
	}
	return Panel(m) + "\n" + md, nil
}
