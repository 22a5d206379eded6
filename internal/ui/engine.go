package ui

import "image/color"

const defaultFontSize = 20

// checkboxBox is the side of the tick box drawn at the left of a checkbox.
const checkboxBox = 16

// Painter draws primitives for the engine. The graphics layer supplies one
// backed by the window; tests can record calls.
type Painter interface {
	FillRect(r Rect, c color.RGBA)
	StrokeRect(r Rect, c color.RGBA)
	Text(s string, x, y, size float32, c color.RGBA)
}

// Engine holds the current stylesheet and nodes, lays them out and draws them.
// Draw order is node order (first node drawn first, then on top the next).
// Resolved styles are cached and only recomputed when the sheet or the node
// set changes.
type Engine struct {
	sheet        *Stylesheet
	nodes        []*Node
	cachedStyles []ComputedStyle
	cacheValid   bool
}

// New creates an empty UI engine (no stylesheet, no nodes).
func New() *Engine {
	return &Engine{}
}

// SetStylesheet sets the stylesheet directly (e.g. from embedded CSS).
func (e *Engine) SetStylesheet(sheet *Stylesheet) {
	e.sheet = sheet
	e.cacheValid = false
}

// SetNodes replaces all nodes. Passing the same nodes again keeps the style cache.
func (e *Engine) SetNodes(nodes []*Node) {
	if sameNodes(e.nodes, nodes) {
		return
	}
	e.nodes = nodes
	e.cacheValid = false
}

func sameNodes(a, b []*Node) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func (e *Engine) matches(sel string, n *Node) bool {
	switch {
	case len(sel) > 1 && sel[0] == '.':
		return n.HasClass(sel[1:])
	case len(sel) > 1 && sel[0] == '#':
		return n.ID == sel[1:]
	default:
		return n.Type == sel
	}
}

// resolveProps returns merged properties for a node (type, class and id matched; last wins).
func (e *Engine) resolveProps(n *Node) map[string]string {
	merged := make(map[string]string)
	if e.sheet == nil {
		return merged
	}
	for _, rule := range e.sheet.Rules {
		if e.matches(rule.Selector, n) {
			for k, v := range rule.Props {
				merged[k] = v
			}
		}
	}
	return merged
}

// Layout resolves styles (cached) and updates every node's bounds from its
// style for a screen of the given size. Size and position the stylesheet
// leaves unset keep whatever the code assigned.
func (e *Engine) Layout(screenW, screenH int32) {
	if !e.cacheValid {
		e.cachedStyles = make([]ComputedStyle, len(e.nodes))
		for i, n := range e.nodes {
			e.cachedStyles[i] = ResolveProps(e.resolveProps(n))
		}
		e.cacheValid = true
	}
	for i, n := range e.nodes {
		style := e.cachedStyles[i]
		if style.Width > 0 {
			n.Bounds.Width = float32(style.Width)
		}
		if style.Height > 0 {
			n.Bounds.Height = float32(style.Height)
		}
		if style.HasLeft {
			n.Bounds.X = float32(style.Left)
			if style.LeftPct >= 0 {
				n.Bounds.X = float32((screenW - int32(n.Bounds.Width)) * style.LeftPct / 100)
			}
		}
		if style.HasTop {
			n.Bounds.Y = float32(style.Top)
			if style.TopPct >= 0 {
				n.Bounds.Y = float32((screenH - int32(n.Bounds.Height)) * style.TopPct / 100)
			}
		}
	}
}

// Draw draws all visible nodes: background, border, the checkbox tick or
// current-item marker, then text. Call Layout first.
func (e *Engine) Draw(p Painter) {
	if !e.cacheValid {
		return
	}
	for i, n := range e.nodes {
		if n.Hidden {
			continue
		}
		style := e.cachedStyles[i]
		b := n.Bounds

		bg := style.Background
		if n.Fill != nil {
			bg = *n.Fill
		}
		if bg.A > 0 {
			p.FillRect(b, bg)
		}
		if style.HasBorder && b.Width > 0 && b.Height > 0 {
			p.StrokeRect(b, style.Border)
		}

		pad := float32(style.Padding)
		textX := b.X + pad
		switch n.Type {
		case TypeCheckbox:
			box := Rect{X: b.X + pad, Y: b.Y + (b.Height-checkboxBox)/2, Width: checkboxBox, Height: checkboxBox}
			p.StrokeRect(box, style.Color)
			if n.Checked {
				p.FillRect(Rect{X: box.X + 3, Y: box.Y + 3, Width: box.Width - 6, Height: box.Height - 6}, style.Color)
			}
			textX = box.X + box.Width + pad
		case TypeOption:
			if n.Checked {
				hl := style.Color
				hl.A = 48
				p.FillRect(b, hl)
			}
		case TypeSwatch:
			if n.Checked {
				p.StrokeRect(Rect{X: b.X - 2, Y: b.Y - 2, Width: b.Width + 4, Height: b.Height + 4}, style.Color)
			}
		}

		if n.Text != "" {
			size := float32(style.FontSize)
			textY := b.Y + pad
			if b.Height > 0 {
				textY = b.Y + (b.Height-size)/2
			}
			p.Text(n.Text, textX, textY, size, style.Color)
		}
	}
}

// HitTest returns the topmost visible clickable node under (x, y), or nil.
func (e *Engine) HitTest(x, y float32) *Node {
	for i := len(e.nodes) - 1; i >= 0; i-- {
		n := e.nodes[i]
		if n.Hidden || n.OnClick == nil {
			continue
		}
		if n.Bounds.Contains(x, y) {
			return n
		}
	}
	return nil
}

// Over reports whether (x, y) is over any visible node, so pointer input
// there belongs to the overlay rather than the 3D view.
func (e *Engine) Over(x, y float32) bool {
	for _, n := range e.nodes {
		if !n.Hidden && n.Bounds.Contains(x, y) {
			return true
		}
	}
	return false
}

// Click runs the handler of the node under (x, y). It reports whether a
// node took the click.
func (e *Engine) Click(x, y float32) bool {
	n := e.HitTest(x, y)
	if n == nil {
		return false
	}
	n.OnClick()
	return true
}
