package preset

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Loader reads presets from <presetsPath>/presets/<name>.json and caches
// them by name. It is not safe for concurrent use.
type Loader struct {
	presetsPath string
	cache       map[string]*Preset
	loading     map[string]bool
}

func NewLoader(presetsPath string) *Loader {
	return &Loader{
		presetsPath: presetsPath,
		cache:       make(map[string]*Preset),
		loading:     make(map[string]bool),
	}
}

// Load returns the named preset with its parent chain merged in. A preset
// without a parent inherits from BuiltinTerrain.
func (l *Loader) Load(name string) (*Preset, error) {
	if strings.HasPrefix(name, "builtin/") {
		if name != BuiltinTerrain {
			return nil, fmt.Errorf("unknown builtin preset '%s'", name)
		}
		return Default(), nil
	}

	if p, ok := l.cache[name]; ok {
		return p, nil
	}
	if l.loading[name] {
		return nil, fmt.Errorf("preset parent cycle at '%s'", name)
	}
	l.loading[name] = true
	defer delete(l.loading, name)

	path := filepath.Join(l.presetsPath, "presets", name+".json")

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read preset file: %w", err)
	}

	var p Preset
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("could not unmarshal preset json: %w", err)
	}
	if p.Values == nil {
		p.Values = make(map[string]float64)
	}
	if p.Settings == nil {
		p.Settings = make(map[string]string)
	}

	parentName := p.Parent
	if parentName == "" {
		parentName = BuiltinTerrain
	}
	parent, err := l.Load(parentName)
	if err != nil {
		return nil, fmt.Errorf("could not load parent preset '%s': %w", parentName, err)
	}
	for key, val := range parent.Values {
		if _, ok := p.Values[key]; !ok {
			p.Values[key] = val
		}
	}
	for key, val := range parent.Settings {
		if _, ok := p.Settings[key]; !ok {
			p.Settings[key] = val
		}
	}

	l.resolveSettings(&p)
	l.cache[name] = &p
	return &p, nil
}

func (l *Loader) resolveSettings(p *Preset) {
	resolved := make(map[string]string, len(p.Settings))
	for key, val := range p.Settings {
		resolved[key] = ResolveSetting(val, p)
	}
	p.Settings = resolved
}

// ResolveSetting follows "#key" references through p's settings.
func ResolveSetting(value string, p *Preset) string {
	for i := 0; i < 10 && strings.HasPrefix(value, "#"); i++ {
		key := strings.TrimPrefix(value, "#")
		if resolved, ok := p.Settings[key]; ok {
			value = resolved
		} else {
			break
		}
	}
	return value
}
