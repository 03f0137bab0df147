// Package scene describes how a host 3D application should build, bake and
// export a terrain for a seed.
//
// Nothing here touches a scene. A Plan is an ordered list of commands plus
// the shader-node graph of the terrain material; a host executes it.
package scene

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/go-gl/mathgl/mgl64"
)

// Mode selects which plan is built.
type Mode string

const (
	ModeRender Mode = "render"
	ModeModel  Mode = "model"
)

// ParseMode maps a flag value to a Mode.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeRender, ModeModel:
		return Mode(s), nil
	}
	return "", fmt.Errorf("unknown plan mode %q (want %q or %q)", s, ModeRender, ModeModel)
}

// Node is a shader node. Value is set only on constant (value) nodes.
type Node struct {
	Name     string            `json:"name"`
	Type     string            `json:"type"`
	Location mgl64.Vec2        `json:"location"`
	Settings map[string]string `json:"settings,omitempty"`
	Value    *float64          `json:"value,omitempty"`
}

// Link connects an output socket to an input socket.
type Link struct {
	From       string `json:"from"`
	FromSocket int    `json:"fromSocket"`
	To         string `json:"to"`
	ToSocket   int    `json:"toSocket"`
}

// Graph is a material node tree.
type Graph struct {
	Name  string `json:"name"`
	Nodes []Node `json:"nodes"`
	Links []Link `json:"links"`
}

func (g *Graph) node(name, typ string, x, y float64, settings map[string]string) {
	g.Nodes = append(g.Nodes, Node{Name: name, Type: typ, Location: mgl64.Vec2{x, y}, Settings: settings})
}

func (g *Graph) value(name string, x, y, v float64) {
	g.Nodes = append(g.Nodes, Node{Name: name, Type: "ShaderNodeValue", Location: mgl64.Vec2{x, y}, Value: &v})
}

func (g *Graph) link(from string, fromSocket int, to string, toSocket int) {
	g.Links = append(g.Links, Link{From: from, FromSocket: fromSocket, To: to, ToSocket: toSocket})
}

// Node returns the node called name.
func (g *Graph) Node(name string) (Node, bool) {
	for _, n := range g.Nodes {
		if n.Name == name {
			return n, true
		}
	}
	return Node{}, false
}

// Command is one host operation. Args hold only JSON-friendly values.
type Command struct {
	Op     string         `json:"op"`
	Target string         `json:"target,omitempty"`
	Args   map[string]any `json:"args,omitempty"`
}

// Export is a file the host writes.
type Export struct {
	Kind string `json:"kind"`
	Path string `json:"path"`
}

// Plan is the full description for one seed.
type Plan struct {
	Mode     Mode      `json:"mode"`
	Seed     string    `json:"seed"`
	Palette  []string  `json:"palette"`
	Material Graph     `json:"material"`
	Commands []Command `json:"commands"`
	Exports  []Export  `json:"exports"`
}

var ErrInvalidPlan = errors.New("invalid plan")

// Validate checks node names are unique and every link joins existing nodes.
func (p *Plan) Validate() error {
	seen := make(map[string]bool, len(p.Material.Nodes))
	for _, n := range p.Material.Nodes {
		if n.Name == "" {
			return fmt.Errorf("%w: unnamed %s node", ErrInvalidPlan, n.Type)
		}
		if seen[n.Name] {
			return fmt.Errorf("%w: duplicate node %q", ErrInvalidPlan, n.Name)
		}
		seen[n.Name] = true
	}
	for _, l := range p.Material.Links {
		if !seen[l.From] || !seen[l.To] {
			return fmt.Errorf("%w: link %s[%d] -> %s[%d] references a missing node", ErrInvalidPlan, l.From, l.FromSocket, l.To, l.ToSocket)
		}
		if l.FromSocket < 0 || l.ToSocket < 0 {
			return fmt.Errorf("%w: negative socket on link %s -> %s", ErrInvalidPlan, l.From, l.To)
		}
	}
	return nil
}

// Find returns the first command with op, if any.
func (p *Plan) Find(op string) (Command, bool) {
	for _, c := range p.Commands {
		if c.Op == op {
			return c, true
		}
	}
	return Command{}, false
}

// WriteJSON writes p as indented JSON.
func (p *Plan) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(p)
}
