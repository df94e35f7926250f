package rtf

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// Color is a 24-bit RGB colour. Two colours are the same resource iff
// their components are equal, however they were written down.
type Color struct {
	R, G, B uint8
}

// RGB returns the colour with the given components.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// ParseColor accepts "#rrggbb", "rrggbb", "#rgb" and SVG colour names
// such as "steelblue". Hex digits are case-insensitive.
func ParseColor(s string) (Color, error) {
	v := strings.TrimSpace(s)
	if c, ok := colornames.Map[strings.ToLower(v)]; ok {
		return Color{R: c.R, G: c.G, B: c.B}, nil
	}

	hex := strings.TrimPrefix(v, "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return Color{}, fmt.Errorf("invalid colour %q", s)
	}
	n, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("invalid colour %q: %w", s, err)
	}
	return Color{R: uint8(n >> 16), G: uint8(n >> 8), B: uint8(n)}, nil
}

// MustParseColor is like ParseColor but panics on error.
func MustParseColor(s string) Color {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Hex returns the colour as lowercase "rrggbb".
func (c Color) Hex() string {
	return fmt.Sprintf("%02x%02x%02x", c.R, c.G, c.B)
}

func (c Color) String() string {
	return "#" + c.Hex()
}
