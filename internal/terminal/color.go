package terminal

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/lucasb-eyer/go-colorful"
)

// Color is one of the sixteen classic console colors. The zero value,
// Default, inherits whatever color is active on the terminal.
type Color int

const (
	Default Color = iota
	Black
	DarkBlue
	DarkGreen
	DarkCyan
	DarkRed
	DarkMagenta
	DarkYellow
	Gray
	DarkGray
	Blue
	Green
	Cyan
	Red
	Magenta
	Yellow
	White
)

// ErrUnknownColor is returned when a color name or hex value cannot be parsed.
var ErrUnknownColor = errors.New("unknown color")

var colorNames = [...]string{
	Default:     "default",
	Black:       "black",
	DarkBlue:    "dark-blue",
	DarkGreen:   "dark-green",
	DarkCyan:    "dark-cyan",
	DarkRed:     "dark-red",
	DarkMagenta: "dark-magenta",
	DarkYellow:  "dark-yellow",
	Gray:        "gray",
	DarkGray:    "dark-gray",
	Blue:        "blue",
	Green:       "green",
	Cyan:        "cyan",
	Red:         "red",
	Magenta:     "magenta",
	Yellow:      "yellow",
	White:       "white",
}

// foreground SGR attribute per color. Background is always foreground+10.
var fgAttributes = [...]color.Attribute{
	Black:       color.FgBlack,
	DarkBlue:    color.FgBlue,
	DarkGreen:   color.FgGreen,
	DarkCyan:    color.FgCyan,
	DarkRed:     color.FgRed,
	DarkMagenta: color.FgMagenta,
	DarkYellow:  color.FgYellow,
	Gray:        color.FgWhite,
	DarkGray:    color.FgHiBlack,
	Blue:        color.FgHiBlue,
	Green:       color.FgHiGreen,
	Cyan:        color.FgHiCyan,
	Red:         color.FgHiRed,
	Magenta:     color.FgHiMagenta,
	Yellow:      color.FgHiYellow,
	White:       color.FgHiWhite,
}

// palette is the RGB value of each named color, used to map hex input
// onto the nearest console color.
var palette = map[Color]colorful.Color{
	Black:       rgb(0, 0, 0),
	DarkBlue:    rgb(0, 0, 128),
	DarkGreen:   rgb(0, 128, 0),
	DarkCyan:    rgb(0, 128, 128),
	DarkRed:     rgb(128, 0, 0),
	DarkMagenta: rgb(128, 0, 128),
	DarkYellow:  rgb(128, 128, 0),
	Gray:        rgb(192, 192, 192),
	DarkGray:    rgb(128, 128, 128),
	Blue:        rgb(0, 0, 255),
	Green:       rgb(0, 255, 0),
	Cyan:        rgb(0, 255, 255),
	Red:         rgb(255, 0, 0),
	Magenta:     rgb(255, 0, 255),
	Yellow:      rgb(255, 255, 0),
	White:       rgb(255, 255, 255),
}

func rgb(r, g, b uint8) colorful.Color {
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
}

// ParseColor accepts a color name in any common spelling ("DarkRed",
// "dark-red", "dark_red") or a #RRGGBB / #RGB hex value, which is mapped to
// the perceptually nearest console color. Empty, "default" and "none"
// yield Default.
func ParseColor(s string) (Color, error) {
	raw := strings.TrimSpace(s)
	if strings.HasPrefix(raw, "#") {
		hex, err := colorful.Hex(raw)
		if err != nil {
			return Default, fmt.Errorf("%w: %q", ErrUnknownColor, s)
		}
		return nearest(hex), nil
	}

	key := normalizeName(raw)
	switch key {
	case "", "none":
		return Default, nil
	case "grey":
		return Gray, nil
	case "darkgrey":
		return DarkGray, nil
	}
	for i, name := range colorNames {
		if normalizeName(name) == key {
			return Color(i), nil
		}
	}
	return Default, fmt.Errorf("%w: %q", ErrUnknownColor, s)
}

func normalizeName(s string) string {
	s = strings.ToLower(s)
	return strings.NewReplacer("-", "", "_", "", " ", "").Replace(s)
}

func nearest(c colorful.Color) Color {
	best, bestDist := Black, -1.0
	for name, p := range palette {
		d := c.DistanceLab(p)
		if bestDist < 0 || d < bestDist || (d == bestDist && name < best) {
			best, bestDist = name, d
		}
	}
	return best
}

func (c Color) String() string {
	if c < Default || int(c) >= len(colorNames) {
		return fmt.Sprintf("Color(%d)", int(c))
	}
	return colorNames[c]
}

// Set implements pflag.Value.
func (c *Color) Set(s string) error {
	parsed, err := ParseColor(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Type implements pflag.Value.
func (c *Color) Type() string {
	return "color"
}

func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Color) UnmarshalText(text []byte) error {
	return c.Set(string(text))
}

// Theme is a foreground/background pair. A Default channel is transparent:
// it keeps whatever color is active when the theme is applied.
type Theme struct {
	Foreground Color `yaml:"foreground"`
	Background Color `yaml:"background"`
}

// Fg returns a theme that only sets the foreground.
func Fg(c Color) Theme {
	return Theme{Foreground: c}
}

// IsDefault reports whether neither channel is set.
func (t Theme) IsDefault() bool {
	return t.Foreground == Default && t.Background == Default
}

// Over resolves every Default channel of t against base.
func (t Theme) Over(base Theme) Theme {
	if t.Foreground == Default {
		t.Foreground = base.Foreground
	}
	if t.Background == Default {
		t.Background = base.Background
	}
	return t
}

func (t Theme) attributes() []color.Attribute {
	var attrs []color.Attribute
	if t.Foreground > Default && int(t.Foreground) < len(fgAttributes) {
		attrs = append(attrs, fgAttributes[t.Foreground])
	}
	if t.Background > Default && int(t.Background) < len(fgAttributes) {
		attrs = append(attrs, fgAttributes[t.Background]+10)
	}
	return attrs
}
