// Package terrain derives the scalar terrain parameters for a seed and
// bundles them with the seed's colors.
package terrain

import (
	"fmt"

	"seedscape/internal/palette"
	"seedscape/internal/seed"
)

// Positions in the derived value vector.
const (
	IndexHue          = 0
	IndexSaturation   = 1
	IndexNoisePhase   = 2
	IndexDisplacement = 3
)

const (
	noisePhaseScale       = 1000.0
	displacementBase      = 50.0
	displacementRangeSize = 25.0
)

// NoisePhase is the offset fed to the terrain noise: value 2 scaled by 1000.
func NoisePhase(s string) (float64, error) {
	v, err := seed.Value(s, IndexNoisePhase)
	if err != nil {
		return 0, fmt.Errorf("noise phase: %w", err)
	}
	return v * noisePhaseScale, nil
}

// DisplacementScale maps value 3 into [50, 75).
func DisplacementScale(s string) (float64, error) {
	v, err := seed.Value(s, IndexDisplacement)
	if err != nil {
		return 0, fmt.Errorf("displacement scale: %w", err)
	}
	return displacementBase + v*displacementRangeSize, nil
}

// Params holds everything derived from one seed.
type Params struct {
	Seed              string               `json:"seed"`
	Values            [seed.Chunks]float64 `json:"values"`
	BaseColor         palette.RGB          `json:"baseColor"`
	NoisePhase        float64              `json:"noisePhase"`
	DisplacementScale float64              `json:"displacementScale"`
	Factor            float64              `json:"factor"`
	Palette           []palette.RGB        `json:"palette"`
}

// Derive computes Params for s with a palette of paletteSize adjacent colors.
func Derive(s string, paletteSize int, factor float64) (Params, error) {
	values, err := seed.All(s)
	if err != nil {
		return Params{}, err
	}
	base, err := palette.FromSeed(s)
	if err != nil {
		return Params{}, err
	}
	phase, err := NoisePhase(s)
	if err != nil {
		return Params{}, err
	}
	disp, err := DisplacementScale(s)
	if err != nil {
		return Params{}, err
	}
	colors, err := palette.Chain(base, s, paletteSize, factor)
	if err != nil {
		return Params{}, err
	}
	return Params{
		Seed:              s,
		Values:            values,
		BaseColor:         base,
		NoisePhase:        phase,
		DisplacementScale: disp,
		Factor:            factor,
		Palette:           colors,
	}, nil
}
