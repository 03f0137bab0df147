package palette

import (
	"fmt"

	"seedscape/internal/seed"
)

// DefaultFactor is the perturbation magnitude used when callers have no preference.
const DefaultFactor = 2.0

// Per-unit-factor spread of each HSV channel around the base color.
const (
	hueSpread   = 0.1
	satSpread   = 0.1
	valueSpread = 32.0
)

// FromSeed derives a fully bright base color from the first two seed values
// (hue, saturation).
func FromSeed(s string) (RGB, error) {
	v, err := seed.Derive(s, 2)
	if err != nil {
		return RGB{}, fmt.Errorf("base color: %w", err)
	}
	return HSV{H: v[0], S: v[1], V: MaxChannel}.RGB(), nil
}

// Adjacent perturbs base in HSV space by seed-determined deltas scaled by
// factor. Hue wraps; saturation and value clamp.
func Adjacent(base RGB, s string, factor float64) (RGB, error) {
	d, err := seed.Derive(s, 3)
	if err != nil {
		return RGB{}, fmt.Errorf("adjacent color: %w", err)
	}
	hsv := base.HSV()
	hsv.H = wrapHue(hsv.H + (d[0]-0.5)*hueSpread*factor)
	hsv.S = clamp(hsv.S+(d[1]-0.5)*satSpread*factor, 0, 1)
	hsv.V = clamp(hsv.V+(d[2]-0.5)*valueSpread*factor, 0, MaxChannel)
	return hsv.RGB(), nil
}

// Chain returns k colors adjacent to base. Each color's seed is the text of
// the previous seed's first four values, starting from s. Every entry
// perturbs the same base; the base never drifts.
func Chain(base RGB, s string, k int, factor float64) ([]RGB, error) {
	if k < 0 {
		return nil, fmt.Errorf("adjacent chain: %w", &seed.Error{Kind: seed.ErrOutOfRange, Msg: fmt.Sprintf("negative color count %d", k)})
	}
	out := make([]RGB, 0, k)
	running := s
	for i := 0; i < k; i++ {
		next, err := seed.Next(running)
		if err != nil {
			return nil, fmt.Errorf("adjacent chain step %d: %w", i, err)
		}
		running = next
		c, err := Adjacent(base, running, factor)
		if err != nil {
			return nil, fmt.Errorf("adjacent chain step %d: %w", i, err)
		}
		out = append(out, c)
	}
	return out, nil
}
