// Package styles holds the fixed color, glyph, and theme catalogs used by
// the status line renderer.
package styles

const (
	Dim   = "\033[2m"
	Reset = "\033[0m"
)

// Colors maps the color names accepted in config to ANSI escape sequences.
// Basic entries follow the terminal theme; the 256-color entries look the
// same everywhere.
var Colors = map[string]string{
	"green":         "\033[32m",
	"yellow":        "\033[33m",
	"red":           "\033[31m",
	"cyan":          "\033[36m",
	"blue":          "\033[34m",
	"magenta":       "\033[35m",
	"white":         "\033[37m",
	"bright_green":  "\033[92m",
	"bright_yellow": "\033[93m",
	"bright_red":    "\033[91m",
	"orange":        "\033[38;5;208m",
	"teal":          "\033[38;5;45m",
	"royal_blue":    "\033[38;5;33m",
	"purple":        "\033[38;5;129m",
	"gold":          "\033[38;5;220m",
	"coral":         "\033[38;5;203m",
	"lime":          "\033[38;5;118m",
	"sky":           "\033[38;5;117m",
	"gray":          "\033[38;5;252m",
}

// BarStyle is the glyph pair for the filled and empty cells of a bar.
type BarStyle struct {
	Fill  string
	Empty string
}

var BarStyles = map[string]BarStyle{
	"default":       {"━", "─"}, // ━ ─
	"blocks":        {"█", "░"}, // █ ░
	"shaded":        {"▓", "░"}, // ▓ ░
	"dots":          {"●", "○"}, // ● ○
	"squares":       {"■", "□"}, // ■ □
	"diamonds":      {"◆", "◇"}, // ◆ ◇
	"parallelogram": {"▰", "▱"}, // ▰ ▱
	"pipes":         {"┃", "╌"}, // ┃ ╌
	"braille":       {"⣿", "⢀"}, // ⣿ ⢀
	"ascii":         {"#", "-"},
}

// Theme is a low/mid/high color preset applied between the defaults and any
// explicit color overrides.
type Theme struct {
	Low  string
	Mid  string
	High string
}

var Themes = map[string]Theme{
	"default": {Low: "green", Mid: "yellow", High: "red"},
	"ocean":   {Low: "teal", Mid: "royal_blue", High: "purple"},
	"sunset":  {Low: "gold", Mid: "orange", High: "coral"},
	"mono":    {Low: "gray", Mid: "gray", High: "coral"},
	"neon":    {Low: "lime", Mid: "gold", High: "coral"},
	"frost":   {Low: "sky", Mid: "gold", High: "orange"},
	"ember":   {Low: "gold", Mid: "orange", High: "coral"},
}
