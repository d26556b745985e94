package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/conway/internal/grid"
)

// GridToSVG draws the inclusive rectangle lo..hi of g as SVG, one square of
// side scale per live cell.
func GridToSVG(g *grid.Grid, lo, hi grid.Point, scale float64) string {
	if g == nil || hi.X < lo.X || hi.Y < lo.Y {
		return ""
	}

	width := float64(hi.X-lo.X+1) * scale
	height := float64(hi.Y-lo.Y+1) * scale

	var sb strings.Builder

	// SVG header
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<g fill="#00ff00">
`, width, height, width, height))

	for _, p := range g.Points() {
		if p.X < lo.X || p.X > hi.X || p.Y < lo.Y || p.Y > hi.Y {
			continue
		}
		x := float64(p.X-lo.X) * scale
		y := float64(p.Y-lo.Y) * scale
		sb.WriteString(fmt.Sprintf(`<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f"/>
`, x, y, scale, scale))
	}

	sb.WriteString("</g>\n</svg>")
	return sb.String()
}

// PopulationToSVG draws a population series as a line chart. It returns an
// empty string for fewer than two samples.
func PopulationToSVG(populations []float64, width, height int, strokeColor string) string {
	if len(populations) < 2 {
		return ""
	}

	maxY := populations[0]
	for _, p := range populations {
		maxY = max(maxY, p)
	}
	if maxY == 0 {
		maxY = 1
	}
	maxY *= 1.1
	stepX := float64(width) / float64(len(populations)-1)

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<path fill="none" stroke="%s" stroke-width="1.5" d="M`,
		width, height, width, height, strokeColor))

	for i, p := range populations {
		x := float64(i) * stepX
		y := float64(height) - p/maxY*float64(height)

		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
		}
	}

	sb.WriteString(`"/>
</svg>`)
	return sb.String()
}
