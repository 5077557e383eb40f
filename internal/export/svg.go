package export

import (
	"fmt"
	"os"
	"strings"

	"github.com/jksalcedo/physlab/internal/sim"
)

// CurveToSVG renders a curve as a standalone SVG line chart. The dark
// background and single-stroke scheme match the terminal renderer.
func CurveToSVG(curve *sim.Curve, width, height int) string {
	if curve == nil || len(curve.Points) == 0 {
		return ""
	}

	const margin = 40.0
	w, h := float64(width), float64(height)

	xMin, xMax := curve.Points[0].X, curve.Points[0].X
	for _, p := range curve.Points {
		if p.X < xMin {
			xMin = p.X
		}
		if p.X > xMax {
			xMax = p.X
		}
	}
	yMin, yMax := curve.Bounds()

	xRange := xMax - xMin
	if xRange == 0 {
		xRange = 1
	}
	yRange := yMax - yMin
	if yRange == 0 {
		yRange = 1
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height))

	// Axes along the plot edges.
	sb.WriteString(fmt.Sprintf(`<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="#444466" stroke-width="1"/>
`, margin, h-margin, w-margin, h-margin))
	sb.WriteString(fmt.Sprintf(`<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="#444466" stroke-width="1"/>
`, margin, margin, margin, h-margin))

	sb.WriteString(`<polyline fill="none" stroke="#00ff00" stroke-width="2" points="`)
	for i, p := range curve.Points {
		px := margin + (p.X-xMin)/xRange*(w-2*margin)
		py := h - margin - (p.Y-yMin)/yRange*(h-2*margin)
		if i > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(fmt.Sprintf("%.1f,%.1f", px, py))
	}
	sb.WriteString("\"/>\n")

	if curve.Title != "" {
		sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" fill="#cccccc" font-family="monospace" font-size="14">%s</text>
`, margin, margin-12, curve.Title))
	}
	if curve.XLabel != "" {
		sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" fill="#888899" font-family="monospace" font-size="11">%s</text>
`, w/2-40, h-10, curve.XLabel))
	}
	if curve.YLabel != "" {
		sb.WriteString(fmt.Sprintf(`<text x="10" y="%.1f" fill="#888899" font-family="monospace" font-size="11" transform="rotate(-90 10 %.1f)">%s</text>
`, h/2, h/2, curve.YLabel))
	}

	sb.WriteString("</svg>\n")
	return sb.String()
}

// WriteSVG renders the curve and writes it to path.
func WriteSVG(path string, curve *sim.Curve, width, height int) error {
	svg := CurveToSVG(curve, width, height)
	if svg == "" {
		return fmt.Errorf("no curve data to export")
	}
	return os.WriteFile(path, []byte(svg), 0644)
}
