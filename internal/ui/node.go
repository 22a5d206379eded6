package ui

import (
	"image/color"
	"strings"
)

// Rect is a screen rectangle in pixels.
type Rect struct {
	X, Y, Width, Height float32
}

// Contains reports whether the point (x, y) lies inside r.
func (r Rect) Contains(x, y float32) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Node types understood by Engine.Draw.
const (
	TypePanel    = "panel"
	TypeLabel    = "label"
	TypeCheckbox = "checkbox"
	TypeSelect   = "select"
	TypeOption   = "option"
	TypeSwatch   = "swatch"
)

// Node is a single UI element: panel, label, checkbox, etc. It has optional
// classes and id for CSS matching, bounds (position and size), and optional text.
type Node struct {
	Type    string
	Class   string // space-separated, e.g. "control dark" matches .control and .dark
	ID      string // e.g. "main" for #main
	Bounds  Rect
	Text    string
	Checked bool        // checkbox state; for options and swatches, "is current"
	Fill    *color.RGBA // swatch color; overrides the style background
	Hidden  bool
	OnClick func()
}

// NewNode creates a node with type and optional class, id, and text.
func NewNode(typ, class, id, text string) *Node {
	return &Node{
		Type:  typ,
		Class: class,
		ID:    id,
		Text:  text,
	}
}

// HasClass reports whether class is one of the node's classes.
func (n *Node) HasClass(class string) bool {
	for _, c := range strings.Fields(n.Class) {
		if c == class {
			return true
		}
	}
	return false
}
