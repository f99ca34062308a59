package ui

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// RotateHue shifts the hue of a "#rrggbb" color by degrees, keeping
// saturation and value.
func RotateHue(hex string, degrees float64) (string, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return "", fmt.Errorf("rotate hue of %q: %w", hex, err)
	}
	h, s, v := c.Hsv()
	h = math.Mod(h+degrees, 360)
	if h < 0 {
		h += 360
	}
	return colorful.Hsv(h, s, v).Clamped().Hex(), nil
}
