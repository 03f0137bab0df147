package scene

import (
	"seedscape/internal/terrain"
	"seedscape/pkg/preset"
)

const materialName = "TerrainMaterial"

// Node names shared between the graph and tests.
const (
	nodeOutput       = "output"
	nodeBSDF         = "bsdf"
	nodePhase        = "phase"
	nodeHeight       = "height"
	nodeDisplacement = "displacement"
	nodeDispScale    = "displacement.scale"
	nodeEmission     = "emission"
	nodeBakeTarget   = "bake.target"
)

const bakedImageName = "BakedDisplacement"

// terrainGraph builds the height field material: two fractal noises around a
// smooth Voronoi, offset and routed either into displacement (render) or
// emission (model bake).
func terrainGraph(p terrain.Params, pr *preset.Preset, mode Mode) Graph {
	g := Graph{Name: materialName}

	g.node(nodeBSDF, "ShaderNodeBsdfPrincipled", 2000, 1000, map[string]string{"baseColor": p.BaseColor.Hex()})
	g.node(nodeOutput, "ShaderNodeOutputMaterial", 2400, 0, nil)
	g.node("texcoord", "ShaderNodeTexCoord", 200, 0, nil)
	g.node("mapping", "ShaderNodeMapping", 600, 0, nil)
	g.value(nodePhase, 400, -400, p.NoisePhase)

	g.node("musgrave.primary", "ShaderNodeTexMusgrave", 800, 0, map[string]string{
		"dimensions": pr.Setting(preset.PrimaryDimensions),
		"type":       pr.Setting(preset.PrimaryType),
	})
	g.value("primary.scale", 600, -600, pr.Value(preset.PrimaryScale))
	g.value("primary.detail", 600, -800, pr.Value(preset.PrimaryDetail))
	g.value("primary.dimension", 600, -1000, pr.Value(preset.PrimaryDimension))

	g.node("voronoi", "ShaderNodeTexVoronoi", 1000, 0, map[string]string{
		"feature": pr.Setting(preset.VoronoiFeature),
	})
	g.value("voronoi.scale", 800, -400, pr.Value(preset.VoronoiScale))

	g.node("musgrave.secondary", "ShaderNodeTexMusgrave", 1200, 0, map[string]string{
		"dimensions": pr.Setting(preset.SecondaryDimensions),
		"type":       pr.Setting(preset.SecondaryType),
	})
	g.value("secondary.scale", 1100, -600, pr.Value(preset.SecondaryScale))
	g.value("secondary.detail", 1100, -800, pr.Value(preset.SecondaryDetail))
	g.value("secondary.dimension", 1100, -1000, pr.Value(preset.SecondaryDimension))

	g.node(nodeHeight, "ShaderNodeMath", 1600, 0, map[string]string{"operation": "ADD"})
	g.value("height.offset", 1600, -400, pr.Value(preset.HeightOffset))

	// socket order: Vector, W, Scale, Detail, Dimension
	g.link("texcoord", 0, "mapping", 0)
	g.link("mapping", 0, "musgrave.primary", 0)
	g.link(nodePhase, 0, "musgrave.primary", 1)
	g.link("primary.scale", 0, "musgrave.primary", 2)
	g.link("primary.detail", 0, "musgrave.primary", 3)
	g.link("primary.dimension", 0, "musgrave.primary", 4)
	g.link("musgrave.primary", 0, "voronoi", 0)
	g.link("voronoi.scale", 0, "voronoi", 2)
	g.link("voronoi", 1, "musgrave.secondary", 0)
	g.link("secondary.scale", 0, "musgrave.secondary", 2)
	g.link("secondary.detail", 0, "musgrave.secondary", 3)
	g.link("secondary.dimension", 0, "musgrave.secondary", 4)
	g.link("musgrave.secondary", 0, nodeHeight, 0)
	g.link("height.offset", 0, nodeHeight, 1)

	switch mode {
	case ModeModel:
		g.node(nodeEmission, "ShaderNodeEmission", 2200, 0, nil)
		g.node(nodeBakeTarget, "ShaderNodeTexImage", 2000, -400, map[string]string{
			"image":  bakedImageName,
			"active": "true",
		})
		g.link(nodeHeight, 0, nodeEmission, 0)
		g.link(nodeEmission, 0, nodeOutput, 0)
	default:
		g.node(nodeDisplacement, "ShaderNodeDisplacement", 2200, 0, nil)
		g.value(nodeDispScale, 1800, -400, p.DisplacementScale)
		g.link(nodeHeight, 0, nodeDisplacement, 0)
		g.link(nodeDispScale, 0, nodeDisplacement, 2)
		g.link(nodeDisplacement, 0, nodeOutput, 2)
	}
	return g
}
