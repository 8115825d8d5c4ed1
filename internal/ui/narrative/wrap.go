package narrative

import (
	"strings"

	"chosenoffset.com/micromedics/internal/render"
)

// WrapText breaks text into lines no wider than maxWidth as measured by r.
// A single word wider than maxWidth gets a line of its own.
func WrapText(r render.Renderer, text string, maxWidth int, scale float64) []string {
	var lines []string
	line := ""
	for _, word := range strings.Fields(text) {
		candidate := word
		if line != "" {
			candidate = line + " " + word
		}
		if w, _ := r.MeasureText(candidate, scale); w > maxWidth && line != "" {
			lines = append(lines, line)
			line = word
			continue
		}
		line = candidate
	}
	if line != "" {
		lines = append(lines, line)
	}
	return lines
}
