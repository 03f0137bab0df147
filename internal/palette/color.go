// Package palette derives colors and adjacent-color palettes from seeds.
//
// RGB channels use a 0-255 scale. HSV keeps hue in [0, 1), saturation in
// [0, 1] and value on the same 0-255 scale as the RGB channels.
package palette

import (
	"encoding/json"
	"fmt"
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/lucasb-eyer/go-colorful"
)

// MaxChannel is the top of the RGB channel and HSV value scale.
const MaxChannel = 255.0

// RGB is a red-green-blue triple on a 0-255 scale.
type RGB struct {
	R, G, B float64
}

// HSV is a hue-saturation-value triple. Hue is cyclic.
type HSV struct {
	H, S, V float64
}

// HSV converts c to hue-saturation-value.
func (c RGB) HSV() HSV {
	h, s, v := colorful.Color{R: c.R, G: c.G, B: c.B}.Hsv()
	return HSV{H: wrapHue(h / 360), S: s, V: v}
}

// RGB converts c to red-green-blue.
func (c HSV) RGB() RGB {
	deg := wrapHue(c.H) * 360
	if deg >= 360 {
		deg = 0
	}
	col := colorful.Hsv(deg, c.S, c.V)
	return RGB{R: col.R, G: col.G, B: col.B}
}

// Vec returns c as a vector for distance math.
func (c RGB) Vec() mgl64.Vec3 {
	return mgl64.Vec3{c.R, c.G, c.B}
}

// Distance is the Euclidean distance between two colors in RGB space.
func Distance(a, b RGB) float64 {
	return a.Vec().Sub(b.Vec()).Len()
}

// RGBA returns c as an opaque 8-bit color.
func (c RGB) RGBA() color.RGBA {
	return color.RGBA{R: channel8(c.R), G: channel8(c.G), B: channel8(c.B), A: 255}
}

// Hex formats c as "#rrggbb".
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", channel8(c.R), channel8(c.G), channel8(c.B))
}

func (c RGB) String() string {
	return fmt.Sprintf("rgb(%.3f, %.3f, %.3f)", c.R, c.G, c.B)
}

func (c RGB) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		R   float64 `json:"r"`
		G   float64 `json:"g"`
		B   float64 `json:"b"`
		Hex string  `json:"hex"`
	}{c.R, c.G, c.B, c.Hex()})
}

func (c *RGB) UnmarshalJSON(data []byte) error {
	var raw struct {
		R float64 `json:"r"`
		G float64 `json:"g"`
		B float64 `json:"b"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*c = RGB{R: raw.R, G: raw.G, B: raw.B}
	return nil
}

func channel8(v float64) uint8 {
	return uint8(clamp(math.Round(v), 0, MaxChannel))
}

// wrapHue maps h into [0, 1), wrapping negatives upward.
func wrapHue(h float64) float64 {
	h -= math.Floor(h)
	if h >= 1 {
		return 0
	}
	return h
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}
