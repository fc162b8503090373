package export

import (
	"fmt"
	"html"
	"math"
	"strings"

	"github.com/san-kum/haot/internal/experiment"
)

// Palette cycles over the series of a chart.
var Palette = []string{"#00ff9f", "#ff6b6b", "#4dabf7", "#ffd43b", "#cc5de8", "#ff922b", "#20c997"}

type bounds struct {
	minX, maxX, minY, maxY float64
}

func (b bounds) pad() bounds {
	rangeX := b.maxX - b.minX
	rangeY := b.maxY - b.minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = math.Max(math.Abs(b.maxY), 1)
	}
	return bounds{
		minX: b.minX - rangeX*0.05,
		maxX: b.maxX + rangeX*0.05,
		minY: b.minY - rangeY*0.1,
		maxY: b.maxY + rangeY*0.1,
	}
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func resultBounds(r *experiment.Result) (bounds, bool) {
	b := bounds{math.Inf(1), math.Inf(-1), math.Inf(1), math.Inf(-1)}
	ok := false
	for _, s := range r.Series {
		for i, y := range s {
			if i >= len(r.X) || !finite(y) || !finite(r.X[i]) {
				continue
			}
			b.minX, b.maxX = math.Min(b.minX, r.X[i]), math.Max(b.maxX, r.X[i])
			b.minY, b.maxY = math.Min(b.minY, y), math.Max(b.maxY, y)
			ok = true
		}
	}
	return b, ok
}

// ResultToSVG draws every series of r as a line over r.X. Non-finite
// samples break the line. A result without finite points gives "".
func ResultToSVG(r *experiment.Result, width, height int) string {
	raw, ok := resultBounds(r)
	if !ok || width <= 0 || height <= 0 {
		return ""
	}
	b := raw.pad()
	rangeX, rangeY := b.maxX-b.minX, b.maxY-b.minY
	w, h := float64(width), float64(height)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height))
	sb.WriteString(fmt.Sprintf(`<text x="8" y="16" fill="#cccccc" font-family="monospace" font-size="12">%s</text>
`, html.EscapeString(r.Name+": "+r.YLabel)))
	sb.WriteString(fmt.Sprintf(`<text x="%d" y="%d" fill="#cccccc" font-family="monospace" font-size="12" text-anchor="end">%s</text>
`, width-8, height-6, html.EscapeString(r.XLabel)))

	for k, s := range r.Series {
		color := Palette[k%len(Palette)]
		var d strings.Builder
		pen := false
		for i, y := range s {
			if i >= len(r.X) || !finite(y) || !finite(r.X[i]) {
				pen = false
				continue
			}
			px := (r.X[i] - b.minX) / rangeX * w
			py := h - (y-b.minY)/rangeY*h
			if pen {
				d.WriteString(fmt.Sprintf(" L%.1f,%.1f", px, py))
			} else {
				if d.Len() > 0 {
					d.WriteString(" ")
				}
				d.WriteString(fmt.Sprintf("M%.1f,%.1f", px, py))
				pen = true
			}
		}
		if d.Len() == 0 {
			continue
		}
		sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="%s" stroke-width="1.5" d="%s"/>
`, color, d.String()))
		sb.WriteString(fmt.Sprintf(`<text x="%d" y="%d" fill="%s" font-family="monospace" font-size="11" text-anchor="end">%s</text>
`, width-8, 16+14*k, color, html.EscapeString(r.Columns[k])))
	}

	sb.WriteString("</svg>")
	return sb.String()
}
