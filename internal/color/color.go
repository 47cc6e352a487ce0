// Package color parses the CSS color strings the charting engine accepts.
package color

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// ErrInvalidColor is returned for strings that are not CSS colors.
var ErrInvalidColor = errors.New("invalid color")

// Transparent is the fully transparent color token.
const Transparent = "transparent"

// RGBA is a parsed color with alpha in [0,1].
type RGBA struct {
	colorful.Color
	Alpha float64
}

var functionalPattern = regexp.MustCompile(`^(rgba?|hsla?)\(\s*([^)]*)\)$`)

// Parse parses a CSS color: hex (#rgb, #rgba, #rrggbb, #rrggbbaa),
// rgb()/rgba(), hsl()/hsla(), named colors and "transparent".
func Parse(s string) (RGBA, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" {
		return RGBA{}, ErrInvalidColor
	}
	if s == Transparent {
		return RGBA{Alpha: 0}, nil
	}
	if strings.HasPrefix(s, "#") {
		return parseHex(s)
	}
	if m := functionalPattern.FindStringSubmatch(s); m != nil {
		return parseFunctional(m[1], m[2])
	}
	if c, ok := tcell.ColorNames[s]; ok {
		r, g, b := c.RGB()
		if r < 0 {
			return RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
		}
		return RGBA{Color: colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}, Alpha: 1}, nil
	}
	return RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
}

// Valid reports whether s parses as a color.
func Valid(s string) bool {
	_, err := Parse(s)
	return err == nil
}

// String formats the color in the rgba() form the engine accepts.
func (c RGBA) String() string {
	r, g, b := c.Clamped().RGB255()
	return fmt.Sprintf("rgba(%d,%d,%d,%s)", r, g, b, strconv.FormatFloat(c.Alpha, 'f', -1, 64))
}

// Hex formats the color as #rrggbb, dropping alpha.
func (c RGBA) Hex() string {
	return c.Clamped().Hex()
}

func parseHex(s string) (RGBA, error) {
	digits := s[1:]
	alpha := 1.0
	switch len(digits) {
	case 3, 6:
	case 4:
		a, err := strconv.ParseUint(strings.Repeat(digits[3:], 2), 16, 8)
		if err != nil {
			return RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
		}
		alpha = float64(a) / 255
		digits = digits[:3]
	case 8:
		a, err := strconv.ParseUint(digits[6:], 16, 8)
		if err != nil {
			return RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
		}
		alpha = float64(a) / 255
		digits = digits[:6]
	default:
		return RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	c, err := colorful.Hex("#" + digits)
	if err != nil {
		return RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	return RGBA{Color: c, Alpha: alpha}, nil
}

func parseFunctional(fn, body string) (RGBA, error) {
	parts := strings.FieldsFunc(body, func(r rune) bool {
		return r == ',' || r == ' ' || r == '/'
	})
	if len(parts) != 3 && len(parts) != 4 {
		return RGBA{}, fmt.Errorf("%w: %s(%s)", ErrInvalidColor, fn, body)
	}

	values := make([]float64, len(parts))
	for i, p := range parts {
		percent := strings.HasSuffix(p, "%")
		p = strings.TrimSuffix(strings.TrimSuffix(p, "%"), "deg")
		v, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return RGBA{}, fmt.Errorf("%w: %s(%s)", ErrInvalidColor, fn, body)
		}
		if percent {
			v /= 100
			if strings.HasPrefix(fn, "rgb") && i < 3 {
				v *= 255
			}
		}
		values[i] = v
	}

	alpha := 1.0
	if len(values) == 4 {
		alpha = values[3]
		if alpha < 0 || alpha > 1 {
			return RGBA{}, fmt.Errorf("%w: alpha %v out of range", ErrInvalidColor, alpha)
		}
	}

	if strings.HasPrefix(fn, "rgb") {
		for _, v := range values[:3] {
			if v < 0 || v > 255 {
				return RGBA{}, fmt.Errorf("%w: channel %v out of range", ErrInvalidColor, v)
			}
		}
		return RGBA{
			Color: colorful.Color{R: values[0] / 255, G: values[1] / 255, B: values[2] / 255},
			Alpha: alpha,
		}, nil
	}

	s, l := values[1], values[2]
	if s > 1 || l > 1 {
		// hsl() without percent signs, e.g. hsl(120, 50, 50)
		s, l = s/100, l/100
	}
	return RGBA{Color: colorful.Hsl(values[0], s, l), Alpha: alpha}, nil
}
