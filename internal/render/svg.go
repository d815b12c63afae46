package render

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/talgya/delta-tetrahedron/internal/growth"
)

// The animation attributes are fixed literals; only the pulse radius is data-driven.
var tetrahedronTmpl = template.Must(template.New("tetrahedron").Parse(
	`<svg width="100%" height="240" viewBox="0 0 300 260" xmlns="http://www.w3.org/2000/svg">
  <polygon points="150,30 270,210 30,210" stroke="{{.Stroke}}" stroke-width="2" fill="none">
    <animate attributeName="stroke" values="{{.Stroke}};{{.Pulse}};{{.Stroke}}" dur="3s" repeatCount="indefinite" />
  </polygon>
  <line x1="150" y1="30" x2="150" y2="210" stroke="{{.Stroke}}" stroke-width="2">
    <animate attributeName="stroke" values="{{.Stroke}};{{.Pulse}};{{.Stroke}}" dur="3s" repeatCount="indefinite" />
  </line>
  <line x1="30" y1="210" x2="150" y2="210" stroke="{{.Stroke}}" stroke-width="2" />
  <line x1="270" y1="210" x2="150" y2="210" stroke="{{.Stroke}}" stroke-width="2" />
  <circle cx="150" cy="210" r="{{.Radius}}" fill="{{.Pulse}}">
    <animate attributeName="r" values="6;10;6" dur="2s" repeatCount="indefinite" />
  </circle>
</svg>
`))

type tetrahedronData struct {
	Stroke string
	Pulse  string
	Radius string
}

// TetrahedronSVG returns the diagram markup for m.
func TetrahedronSVG(m growth.DerivedMetrics) (string, error) {
	var sb strings.Builder
	err := tetrahedronTmpl.Execute(&sb, tetrahedronData{
		Stroke: CurveColor,
		Pulse:  PulseColor,
		Radius: formatFloat(m.PulseRadius()),
	})
	if err != nil {
		return "", fmt.Errorf("render tetrahedron: %w", err)
	}
	return sb.String(), nil
}
