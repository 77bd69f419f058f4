// Package chart draws the physical-stats bar chart as text.
package chart

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/papapumpkin/holocron/internal/swapi"
)

// Bar is one labelled value.
type Bar struct {
	Label string
	Value float64
	Unit  string
}

// Labels for the two bars.
const (
	LabelHeight = "Height (cm)"
	LabelMass   = "Mass (kg)"
)

const (
	blockFull = "█"
	minWidth  = 4
)

// partial blocks by eighths, index 1..7.
var partials = []string{"", "▏", "▎", "▍", "▌", "▋", "▊", "▉"}

// ParseValue reads a SWAPI numeric attribute. Thousands separators are
// accepted ("1,358"); "unknown", "n/a" and the like are not numbers.
func ParseValue(s string) (float64, bool) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0, false
	}
	return v, true
}

// Physical returns the height and mass bars for p. ok is false unless both
// values are numeric; the chart is not drawn in that case.
func Physical(p swapi.Person) ([]Bar, bool) {
	h, okH := ParseValue(p.Height)
	m, okM := ParseValue(p.Mass)
	if !okH || !okM {
		return nil, false
	}
	return []Bar{
		{Label: LabelHeight, Value: h, Unit: "cm"},
		{Label: LabelMass, Value: m, Unit: "kg"},
	}, true
}

// Render draws bars horizontally, scaled so the largest fills width cells.
// paint styles each bar's blocks; nil leaves them plain. No legend is drawn.
func Render(bars []Bar, width int, paint func(string) string) string {
	if len(bars) == 0 {
		return ""
	}
	if width < minWidth {
		width = minWidth
	}
	if paint == nil {
		paint = func(s string) string { return s }
	}

	labelWidth := 0
	maxValue := 0.0
	for _, b := range bars {
		labelWidth = max(labelWidth, len(b.Label))
		maxValue = max(maxValue, b.Value)
	}

	lines := make([]string, 0, len(bars))
	for _, b := range bars {
		blocks := scaledBlocks(b.Value, maxValue, width)
		line := fmt.Sprintf("%-*s │%s %s", labelWidth, b.Label, paint(blocks), FormatValue(b.Value))
		lines = append(lines, strings.TrimRight(line, " "))
	}
	return strings.Join(lines, "\n")
}

// scaledBlocks renders value as a run of block characters with eighth-cell
// precision. A non-zero value always shows at least a sliver.
func scaledBlocks(value, maxValue float64, width int) string {
	if maxValue <= 0 || value <= 0 {
		return ""
	}
	eighths := int(math.Round(value / maxValue * float64(width*8)))
	if eighths == 0 {
		eighths = 1
	}
	return strings.Repeat(blockFull, eighths/8) + partials[eighths%8]
}

// FormatValue prints v without a trailing ".0" for whole numbers.
func FormatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
