package converters

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"

	"github.com/go-drift/mvvm/pkg/binding"
)

// Color converts CSS color names ("teal") and hex notation ("#008080",
// "#088") to color.RGBA, and colors back to "#rrggbb".
var Color binding.Converter = colorConverter{}

type colorConverter struct{}

func (colorConverter) Convert(value, _ any) (any, error) {
	switch v := value.(type) {
	case string:
		return ParseColor(v)
	case color.Color:
		r, g, b, a := v.RGBA()
		return color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}, nil
	}
	return nil, fmt.Errorf("color: want string or color, got %T", value)
}

func (colorConverter) ConvertBack(value, _ any) (any, error) {
	c, ok := value.(color.Color)
	if !ok {
		return nil, fmt.Errorf("color: want color, got %T", value)
	}
	return Hex(c), nil
}

// ParseColor parses a CSS color name or a "#rgb" / "#rrggbb" hex string.
func ParseColor(s string) (color.RGBA, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if c, ok := colornames.Map[s]; ok {
		return c, nil
	}
	hex, ok := strings.CutPrefix(s, "#")
	if !ok {
		return color.RGBA{}, fmt.Errorf("color: unknown color %q", s)
	}
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("color: bad hex color %q", s)
	}
	n, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("color: bad hex color %q", s)
	}
	return color.RGBA{R: uint8(n >> 16), G: uint8(n >> 8), B: uint8(n), A: 0xff}, nil
}

// Hex formats c as "#rrggbb", ignoring alpha.
func Hex(c color.Color) string {
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8)
}
