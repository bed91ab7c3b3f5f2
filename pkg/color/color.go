// Package color defines the 24-bit colors stored in profiles and color
// schemes, and the default palette.
package color

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// TableSize is the number of entries in a color table.
const TableSize = 16

// ErrInvalidColor is returned when text is not a "#RGB" or "#RRGGBB" color.
var ErrInvalidColor = errors.New("invalid color")

// Color is an opaque RGB color packed as 0xRRGGBB.
//
// Color implements [image/color.Color] so it can be handed directly to
// styling libraries.
type Color uint32

// Table is a fixed 16 entry color table.
type Table [TableSize]Color

// RGB returns a [Color] from its components.
func RGB(r, g, b uint8) Color {
	return Color(uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// Parse parses "#RGB" or "#RRGGBB" (case-insensitive).
func Parse(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") || (len(s) != 4 && len(s) != 7) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}

	c, err := colorful.Hex(strings.ToLower(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidColor, err)
	}

	return RGB(c.RGB255()), nil
}

// MustParse is like [Parse] but panics on error.
func MustParse(s string) Color {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}

	return c
}

func (c Color) R() uint8 { return uint8(c >> 16) }
func (c Color) G() uint8 { return uint8(c >> 8) }
func (c Color) B() uint8 { return uint8(c) }

// String returns the "#RRGGBB" form.
func (c Color) String() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R(), c.G(), c.B())
}

func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Color) UnmarshalText(b []byte) error {
	parsed, err := Parse(string(b))
	if err != nil {
		return err
	}

	*c = parsed

	return nil
}

// RGBA implements [image/color.Color]. The alpha channel is always opaque.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R())
	r |= r << 8
	g = uint32(c.G())
	g |= g << 8
	b = uint32(c.B())
	b |= b << 8

	return r, g, b, 0xffff
}

// Colorful converts to a [colorful.Color].
func (c Color) Colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R()) / 255,
		G: float64(c.G()) / 255,
		B: float64(c.B()) / 255,
	}
}

// Strings returns the "#RRGGBB" form of every entry.
func (t Table) Strings() []string {
	out := make([]string, len(t))
	for i, c := range t {
		out[i] = c.String()
	}

	return out
}
