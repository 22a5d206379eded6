package ui

import (
	"fmt"
	"strconv"
	"strings"
)

// Inspector is a right-side panel describing the shape on screen: its name,
// geometry, mesh size and colors. It owns its nodes and updates their text
// when AppendNodes is called with visible true.
type Inspector struct {
	panel    *Node
	title    *Node
	name     *Node
	geometry *Node
	params   *Node
	mesh     *Node
	color    *Node
}

// NewInspector creates an Inspector with nodes styled by the engine's CSS (.inspector, .inspector-title, etc.).
func NewInspector() *Inspector {
	return &Inspector{
		panel:    NewNode(TypePanel, "inspector", "", ""),
		title:    NewNode(TypeLabel, "inspector-title", "", "Shape"),
		name:     NewNode(TypeLabel, "inspector-name", "", ""),
		geometry: NewNode(TypeLabel, "inspector-geometry", "", ""),
		params:   NewNode(TypeLabel, "inspector-params", "", ""),
		mesh:     NewNode(TypeLabel, "inspector-mesh", "", ""),
		color:    NewNode(TypeLabel, "inspector-color", "", ""),
	}
}

// Selection holds the data shown in the inspector.
// Pass this from the shell; ui does not depend on shapes or geometry.
type Selection struct {
	Name      string
	Geometry  string
	Params    []float32
	Vertices  int
	Triangles int
	Color     string
	Wireframe bool
}

// FormatParams renders parameters the way they are written in code: "1, 0.4, 32, 64".
func FormatParams(params []float32) string {
	parts := make([]string, len(params))
	for i, p := range params {
		parts[i] = strconv.FormatFloat(float64(p), 'g', -1, 32)
	}
	return strings.Join(parts, ", ")
}

func (in *Inspector) all() []*Node {
	return []*Node{in.panel, in.title, in.name, in.geometry, in.params, in.mesh, in.color}
}

// AppendNodes appends inspector nodes to dst when visible is true, after updating labels from sel.
// When visible is false, dst is returned unchanged. Call every frame so visibility and content stay in sync.
func (in *Inspector) AppendNodes(dst []*Node, visible bool, sel Selection) []*Node {
	if !visible {
		return dst
	}
	in.name.Text = "Name: " + sel.Name
	in.geometry.Text = "Geometry: " + sel.Geometry
	in.params.Text = "Params: " + FormatParams(sel.Params)
	in.mesh.Text = fmt.Sprintf("Mesh: %d verts, %d tris", sel.Vertices, sel.Triangles)
	if sel.Wireframe {
		in.color.Text = "Color: " + sel.Color + " + wireframe"
	} else {
		in.color.Text = "Color: " + sel.Color
	}
	return append(dst, in.all()...)
}
