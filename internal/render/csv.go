package render

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/talgya/delta-tetrahedron/internal/growth"
)

// WriteCurveCSV writes the growth curve as "t,growth" rows with a header.
func WriteCurveCSV(w io.Writer, m growth.DerivedMetrics) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"t", "growth"}); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i, p := range m.Curve {
		row := []string{formatFloat(p.T), formatFloat(p.Growth)}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write sample %d: %w", i, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
