package preset

// Preset holds the constants of the terrain material and scene.
// Values are numeric node inputs; Settings are enum-like node options and
// may reference another setting as "#key".
type Preset struct {
	Parent   string             `json:"parent"`
	Values   map[string]float64 `json:"values"`
	Settings map[string]string  `json:"settings"`
}

// Keys understood by the scene builder.
const (
	PrimaryScale       = "musgrave.primary.scale"
	PrimaryDetail      = "musgrave.primary.detail"
	PrimaryDimension   = "musgrave.primary.dimension"
	VoronoiScale       = "voronoi.scale"
	SecondaryScale     = "musgrave.secondary.scale"
	SecondaryDetail    = "musgrave.secondary.detail"
	SecondaryDimension = "musgrave.secondary.dimension"
	HeightOffset       = "height.offset"
	PlaneSize          = "plane.size"
	MaskSize           = "mask.size"
	MaskHeight         = "mask.height"

	PrimaryDimensions   = "musgrave.primary.dimensions"
	PrimaryType         = "musgrave.primary.type"
	SecondaryDimensions = "musgrave.secondary.dimensions"
	SecondaryType       = "musgrave.secondary.type"
	VoronoiFeature      = "voronoi.feature"
	Engine              = "render.engine"
	FeatureSet          = "render.featureSet"
	Device              = "render.device"
	ComputeDeviceType   = "render.computeDeviceType"
	DisplacementMethod  = "material.displacementMethod"
)

// BuiltinTerrain is the name of the preset compiled into the binary.
const BuiltinTerrain = "builtin/terrain"

// Default returns a fresh copy of the built-in terrain preset.
func Default() *Preset {
	return &Preset{
		Values: map[string]float64{
			PrimaryScale:       0.15,
			PrimaryDetail:      16,
			PrimaryDimension:   0.95,
			VoronoiScale:       0.3,
			SecondaryScale:     9,
			SecondaryDetail:    14,
			SecondaryDimension: 1.05,
			HeightOffset:       0.75,
			PlaneSize:          50,
			MaskSize:           49.8,
			MaskHeight:         10,
		},
		Settings: map[string]string{
			PrimaryDimensions:   "4D",
			PrimaryType:         "FBM",
			SecondaryDimensions: "3D",
			SecondaryType:       "#" + PrimaryType,
			VoronoiFeature:      "SMOOTH_F1",
			Engine:              "CYCLES",
			FeatureSet:          "EXPERIMENTAL",
			Device:              "GPU",
			ComputeDeviceType:   "CUDA",
			DisplacementMethod:  "BOTH",
		},
	}
}

// Value returns the numeric constant for key, or 0 when unset.
func (p *Preset) Value(key string) float64 {
	return p.Values[key]
}

// Setting returns the resolved option for key, or "" when unset.
func (p *Preset) Setting(key string) string {
	return ResolveSetting(p.Settings[key], p)
}
