package scene

import (
	"fmt"
	"path/filepath"

	"github.com/go-gl/mathgl/mgl64"

	"seedscape/internal/config"
	"seedscape/internal/terrain"
	"seedscape/pkg/preset"
)

const (
	terrainObject = "terrain"
	maskObject    = "boolean_mask"
	textureName   = "DisplacementMap"
)

// ExportPath joins the configured export directory with the numbered file
// name, e.g. "03-model.stl".
func ExportPath(suffix string) string {
	return filepath.Join(config.GetExportDir(), fmt.Sprintf("%02d-%s", config.GetNumber(), suffix))
}

// Build dispatches on mode.
func Build(mode Mode, p terrain.Params, pr *preset.Preset) (Plan, error) {
	switch mode {
	case ModeRender:
		return BuildRender(p, pr), nil
	case ModeModel:
		return BuildModel(p, pr), nil
	}
	return Plan{}, fmt.Errorf("unknown plan mode %q", mode)
}

func newPlan(mode Mode, p terrain.Params, pr *preset.Preset) Plan {
	hexes := make([]string, 0, len(p.Palette))
	for _, c := range p.Palette {
		hexes = append(hexes, c.Hex())
	}
	return Plan{
		Mode:     mode,
		Seed:     p.Seed,
		Palette:  hexes,
		Material: terrainGraph(p, pr, mode),
	}
}

func (p *Plan) do(op, target string, args map[string]any) {
	p.Commands = append(p.Commands, Command{Op: op, Target: target, Args: args})
}

func setupCommands(plan *Plan, pr *preset.Preset) {
	plan.do("clearScene", "", nil)
	plan.do("configureRender", "", map[string]any{
		"engine":            pr.Setting(preset.Engine),
		"featureSet":        pr.Setting(preset.FeatureSet),
		"device":            pr.Setting(preset.Device),
		"computeDeviceType": pr.Setting(preset.ComputeDeviceType),
	})
}

func addPlane(plan *Plan, pr *preset.Preset) {
	plan.do("addPlane", terrainObject, map[string]any{
		"location": mgl64.Vec3{},
		"size":     pr.Value(preset.PlaneSize),
	})
}

func addMaterial(plan *Plan, pr *preset.Preset) {
	plan.do("createMaterial", materialName, map[string]any{
		"displacementMethod": pr.Setting(preset.DisplacementMethod),
	})
	plan.do("assignMaterial", terrainObject, map[string]any{"material": materialName})
}

// BuildRender describes the adaptive-subdivision render of the terrain and
// its three image exports.
func BuildRender(p terrain.Params, pr *preset.Preset) Plan {
	if pr == nil {
		pr = preset.Default()
	}
	plan := newPlan(ModeRender, p, pr)
	setupCommands(&plan, pr)
	addPlane(&plan, pr)
	plan.do("addModifier", terrainObject, map[string]any{
		"type":              "SUBSURF",
		"name":              "SUBSURF",
		"levels":            config.GetRenderLevels(),
		"subdivisionType":   "SIMPLE",
		"adaptiveSubdivide": true,
	})
	addMaterial(&plan, pr)

	cameras := []struct{ camera, suffix string }{
		{"main", "render-1.png"},
		{"secondary", "render-2.png"},
		{"topDownOrthographic", "render-3.png"},
	}
	for _, c := range cameras {
		path := ExportPath(c.suffix)
		plan.do("render", "", map[string]any{"camera": c.camera, "path": path})
		plan.Exports = append(plan.Exports, Export{Kind: "png", Path: path})
	}
	return plan
}

// BuildModel describes the printable model: bake the height field into an
// image, displace a subdivided plane with it, trim the rim with a boolean
// mask, decimate and export STL.
func BuildModel(p terrain.Params, pr *preset.Preset) Plan {
	if pr == nil {
		pr = preset.Default()
	}
	plan := newPlan(ModeModel, p, pr)
	width, height := config.GetDisplacementMapSize()

	setupCommands(&plan, pr)
	addPlane(&plan, pr)
	addMaterial(&plan, pr)
	plan.do("setSamples", "", map[string]any{"samples": 1})
	plan.do("createImage", bakedImageName, map[string]any{
		"width":       width,
		"height":      height,
		"floatBuffer": true,
		"alpha":       true,
	})
	plan.do("bake", nodeBakeTarget, map[string]any{"type": "EMIT", "image": bakedImageName})

	plan.do("clearScene", "", nil)
	addPlane(&plan, pr)
	plan.do("addModifier", terrainObject, map[string]any{
		"type":            "SUBSURF",
		"name":            "SUBSURF",
		"levels":          config.GetSubdivisionQuality(),
		"subdivisionType": "SIMPLE",
	})
	plan.do("applyModifier", terrainObject, map[string]any{"name": "SUBSURF"})

	plan.do("createTexture", textureName, map[string]any{"type": "IMAGE", "image": bakedImageName})
	plan.do("addModifier", terrainObject, map[string]any{
		"type":          "DISPLACE",
		"name":          "DISPLACE",
		"strength":      p.DisplacementScale,
		"midLevel":      0.0,
		"textureCoords": "UV",
		"texture":       textureName,
	})
	plan.do("applyModifier", terrainObject, map[string]any{"name": "DISPLACE"})

	// the outermost ring of vertices forms a rim; intersect with a slightly
	// smaller, tall box to cut it off
	plan.do("addCube", maskObject, map[string]any{
		"location": mgl64.Vec3{},
		"size":     pr.Value(preset.MaskSize),
		"scale":    mgl64.Vec3{1, 1, pr.Value(preset.MaskHeight)},
	})
	plan.do("addModifier", terrainObject, map[string]any{
		"type":      "BOOLEAN",
		"name":      "BOOLEAN",
		"object":    maskObject,
		"operation": "INTERSECT",
	})
	plan.do("applyModifier", terrainObject, map[string]any{"name": "BOOLEAN"})
	plan.do("deleteObject", maskObject, nil)

	plan.do("addModifier", terrainObject, map[string]any{
		"type":         "DECIMATE",
		"name":         "DECIMATE",
		"decimateType": "COLLAPSE",
		"ratio":        config.GetDecimateRatio(),
	})
	plan.do("applyModifier", terrainObject, map[string]any{"name": "DECIMATE"})

	path := ExportPath("model.stl")
	plan.do("exportSTL", terrainObject, map[string]any{"path": path, "useSelection": true})
	plan.Exports = append(plan.Exports, Export{Kind: "stl", Path: path})
	return plan
}
