package theme

import (
	"errors"
	"fmt"
	"image/color"
	"strings"

	"golang.org/x/image/colornames"
)

// ErrInvalidColor is returned by ParseColor for strings that are neither a
// hex color nor a known color name.
var ErrInvalidColor = errors.New("invalid color")

// ParseColor parses #RGB, #RRGGBB or an SVG/CSS color name ("tomato") into
// an opaque color.
func ParseColor(s string) (color.RGBA, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "#") {
		if c, ok := parseHex(s[1:]); ok {
			return c, nil
		}
		return color.RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	if c, ok := colornames.Map[strings.ToLower(s)]; ok {
		return c, nil
	}
	return color.RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
}

// MustColor is ParseColor for the package's own constants.
func MustColor(s string) color.RGBA {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

// NormalizeColor returns the canonical #rrggbb form of a color string.
func NormalizeColor(s string) (string, error) {
	c, err := ParseColor(s)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B), nil
}

func parseHex(hex string) (color.RGBA, bool) {
	var digits [6]uint8
	switch len(hex) {
	case 3:
		for i := 0; i < 3; i++ {
			d, ok := hexDigit(hex[i])
			if !ok {
				return color.RGBA{}, false
			}
			digits[2*i], digits[2*i+1] = d, d
		}
	case 6:
		for i := 0; i < 6; i++ {
			d, ok := hexDigit(hex[i])
			if !ok {
				return color.RGBA{}, false
			}
			digits[i] = d
		}
	default:
		return color.RGBA{}, false
	}
	return color.RGBA{
		R: digits[0]<<4 | digits[1],
		G: digits[2]<<4 | digits[3],
		B: digits[4]<<4 | digits[5],
		A: 255,
	}, true
}

func hexDigit(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
