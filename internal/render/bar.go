package render

import (
	"math"
	"strings"

	"ccbar/internal/config"
	"ccbar/internal/styles"
)

// Bar renders a progress bar for pct using the configured glyphs, width, and
// threshold colors. Out-of-range percentages clamp to a full or empty bar.
func Bar(pct float64, cfg config.Config) string {
	style, ok := styles.BarStyles[cfg.Bar.Style]
	if !ok {
		style = styles.BarStyles["default"]
	}

	width := cfg.Bar.Width
	if width < 0 {
		width = 0
	}
	filled := int(math.Round(pct / 100 * float64(width)))
	if filled < 0 {
		filled = 0
	}
	if filled > width {
		filled = width
	}

	return thresholdColor(pct, cfg.Colors) +
		strings.Repeat(style.Fill, filled) +
		styles.Dim + strings.Repeat(style.Empty, width-filled) +
		styles.Reset
}

// thresholdColor picks the low/mid/high color for pct. Ties go to the higher
// bucket. Unknown color names fall back to the stock green/yellow/red.
func thresholdColor(pct float64, colors config.ColorConfig) string {
	pick := func(name, fallback string) string {
		if c, ok := styles.Colors[name]; ok {
			return c
		}
		return styles.Colors[fallback]
	}
	switch {
	case pct >= colors.ThresholdHigh:
		return pick(colors.High, "red")
	case pct >= colors.ThresholdMid:
		return pick(colors.Mid, "yellow")
	default:
		return pick(colors.Low, "green")
	}
}
