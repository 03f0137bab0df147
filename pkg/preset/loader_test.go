package preset

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

func writePreset(t *testing.T, root, name, content string) {
	t.Helper()
	path := filepath.Join(root, "presets", name+".json")
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
}

func TestLoadBuiltin(t *testing.T) {
	loader := NewLoader(t.TempDir())
	p, err := loader.Load(BuiltinTerrain)
	if err != nil {
		t.Fatalf("Failed to load builtin: %v", err)
	}
	if p.Value(PrimaryDetail) != 16 {
		t.Errorf("Expected primary detail 16, got %v", p.Value(PrimaryDetail))
	}
	if p.Setting(SecondaryType) != "FBM" {
		t.Errorf("Expected secondary type to resolve to FBM, got '%s'", p.Setting(SecondaryType))
	}
}

func TestLoadInheritsBuiltin(t *testing.T) {
	root := t.TempDir()
	writePreset(t, root, "rough", `{
		"values": { "musgrave.primary.detail": 12 },
		"settings": { "render.device": "CPU" }
	}`)

	p, err := NewLoader(root).Load("rough")
	if err != nil {
		t.Fatalf("Failed to load preset: %v", err)
	}
	if p.Value(PrimaryDetail) != 12 {
		t.Errorf("Expected overridden detail 12, got %v", p.Value(PrimaryDetail))
	}
	if p.Value(VoronoiScale) != 0.3 {
		t.Errorf("Expected inherited voronoi scale 0.3, got %v", p.Value(VoronoiScale))
	}
	if p.Setting(Device) != "CPU" {
		t.Errorf("Expected device CPU, got '%s'", p.Setting(Device))
	}
}

func TestLoadChildResolvesReferences(t *testing.T) {
	root := t.TempDir()
	writePreset(t, root, "base", `{
		"settings": { "musgrave.primary.type": "RIDGED_MULTIFRACTAL" }
	}`)
	writePreset(t, root, "child", `{
		"parent": "base",
		"values": { "height.offset": 0.5 }
	}`)

	loader := NewLoader(root)
	p, err := loader.Load("child")
	if err != nil {
		t.Fatalf("Failed to load child: %v", err)
	}
	// The builtin secondary type points at the primary type.
	if p.Settings[SecondaryType] != "RIDGED_MULTIFRACTAL" {
		t.Errorf("Expected secondary type to follow primary, got '%s'", p.Settings[SecondaryType])
	}
	if p.Value(HeightOffset) != 0.5 {
		t.Errorf("Expected height offset 0.5, got %v", p.Value(HeightOffset))
	}

	again, _ := loader.Load("child")
	if again != p {
		t.Errorf("Expected cached preset on second load")
	}
}

func TestLoadSiblingsDoNotShareState(t *testing.T) {
	root := t.TempDir()
	writePreset(t, root, "parent", `{ "settings": { "voronoi.feature": "#feature" } }`)
	writePreset(t, root, "a", `{ "parent": "parent", "settings": { "feature": "F1" } }`)
	writePreset(t, root, "b", `{ "parent": "parent", "settings": { "feature": "F2" } }`)

	loader := NewLoader(root)
	a, err := loader.Load("a")
	if err != nil {
		t.Fatalf("Failed to load a: %v", err)
	}
	b, err := loader.Load("b")
	if err != nil {
		t.Fatalf("Failed to load b: %v", err)
	}
	if a.Setting(VoronoiFeature) != "F1" {
		t.Errorf("Expected a to resolve F1, got '%s'", a.Setting(VoronoiFeature))
	}
	if b.Setting(VoronoiFeature) != "F2" {
		t.Errorf("Expected b to resolve F2, got '%s'", b.Setting(VoronoiFeature))
	}
}

func TestLoadMissing(t *testing.T) {
	_, err := NewLoader(t.TempDir()).Load("nope")
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Expected not-exist error, got %v", err)
	}
}

func TestLoadCycle(t *testing.T) {
	root := t.TempDir()
	writePreset(t, root, "x", `{ "parent": "y" }`)
	writePreset(t, root, "y", `{ "parent": "x" }`)
	if _, err := NewLoader(root).Load("x"); err == nil {
		t.Errorf("Expected cycle error")
	}
}

func TestLoadBadJSON(t *testing.T) {
	root := t.TempDir()
	writePreset(t, root, "broken", `{ "values": `)
	if _, err := NewLoader(root).Load("broken"); err == nil {
		t.Errorf("Expected unmarshal error")
	}
}

func TestUnknownBuiltin(t *testing.T) {
	if _, err := NewLoader(t.TempDir()).Load("builtin/ocean"); err == nil {
		t.Errorf("Expected error for unknown builtin")
	}
}
