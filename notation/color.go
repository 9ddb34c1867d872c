package notation

import (
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// ContrastColor picks a readable font color for text on bg: "white" on dark
// backgrounds, "black" on light ones, and "" when bg is mid-range or not a
// color this package knows.
func ContrastColor(bg string) string {
	c, ok := parseColor(bg)
	if !ok {
		return ""
	}
	luma := 0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B)
	switch {
	case luma < 64:
		return "white"
	case luma > 192:
		return "black"
	default:
		return ""
	}
}

func parseColor(s string) (color.RGBA, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if c, ok := colornames.Map[s]; ok {
		return c, true
	}
	if !strings.HasPrefix(s, "#") {
		return color.RGBA{}, false
	}

	hex := s[1:]
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return color.RGBA{}, false
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, false
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, true
}
