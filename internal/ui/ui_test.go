package ui

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	fills   []Rect
	strokes []Rect
	texts   []string
}

func (r *recorder) FillRect(b Rect, _ color.RGBA)          { r.fills = append(r.fills, b) }
func (r *recorder) StrokeRect(b Rect, _ color.RGBA)        { r.strokes = append(r.strokes, b) }
func (r *recorder) Text(s string, _, _, _ float32, _ color.RGBA) { r.texts = append(r.texts, s) }

func TestParseCSS(t *testing.T) {
	sheet, err := ParseCSS(`
/* controls */
.control, checkbox { background: #000000; color: #fff; }
#shape-select { left: 16px; top: 16; width: 160; }
.dark .control { color: #f00; }
.panel { left: 100%; top: 50%; font-size: 14px }
`)
	require.NoError(t, err)
	var sels []string
	for _, r := range sheet.Rules {
		sels = append(sels, r.Selector)
	}
	assert.Equal(t, []string{".control", "checkbox", "#shape-select", ".panel"}, sels)
	assert.Equal(t, "#fff", sheet.Rules[1].Props["color"])

	_, err = ParseCSS(".a { color: #fff; } }")
	assert.Error(t, err)
}

func TestParseHexColor(t *testing.T) {
	c, ok := ParseHexColor("#4287f5")
	require.True(t, ok)
	assert.Equal(t, color.RGBA{0x42, 0x87, 0xf5, 255}, c)

	c, ok = ParseHexColor("#00000080")
	require.True(t, ok)
	assert.Equal(t, uint8(0x80), c.A)

	c, ok = ParseHexColor("#abc")
	require.True(t, ok)
	assert.Equal(t, color.RGBA{0xaa, 0xbb, 0xcc, 255}, c)

	for _, bad := range []string{"abc", "#ab", "#abcd", "#ggg"} {
		_, ok := ParseHexColor(bad)
		assert.False(t, ok, bad)
	}
}

func TestResolveProps(t *testing.T) {
	s := ResolveProps(map[string]string{
		"left": "25%", "top": "10px", "width": "200", "border": "#123", "font-size": "14px", "padding": "-3",
	})
	assert.True(t, s.HasLeft)
	assert.Equal(t, int32(25), s.LeftPct)
	assert.True(t, s.HasTop)
	assert.Equal(t, int32(10), s.Top)
	assert.Equal(t, int32(-1), s.TopPct)
	assert.Equal(t, int32(200), s.Width)
	assert.True(t, s.HasBorder)
	assert.Equal(t, int32(14), s.FontSize)
	assert.Equal(t, int32(4), s.Padding, "negative padding is ignored")
}

func TestLayoutAndHitTest(t *testing.T) {
	sheet, err := ParseCSS(`
#box { left: 10; top: 20; width: 100; height: 30; }
#right { left: 100%; top: 0; width: 50; height: 50; }
option { height: 24; }
`)
	require.NoError(t, err)
	e := New()
	e.SetStylesheet(sheet)

	clicked := ""
	box := NewNode(TypeCheckbox, "control", "box", "Wireframe")
	box.OnClick = func() { clicked = "box" }
	right := NewNode(TypePanel, "", "right", "")
	opt := NewNode(TypeOption, "", "", "Sphere")
	opt.Bounds = Rect{X: 10, Y: 50, Width: 100}
	opt.OnClick = func() { clicked = "opt" }
	hidden := NewNode(TypeOption, "", "", "Hidden")
	hidden.Bounds = Rect{X: 0, Y: 0, Width: 1000, Height: 1000}
	hidden.Hidden = true
	hidden.OnClick = func() { clicked = "hidden" }

	e.SetNodes([]*Node{hidden, box, right, opt})
	e.Layout(800, 600)

	assert.Equal(t, Rect{X: 10, Y: 20, Width: 100, Height: 30}, box.Bounds)
	assert.Equal(t, Rect{X: 750, Y: 0, Width: 50, Height: 50}, right.Bounds)
	assert.Equal(t, Rect{X: 10, Y: 50, Width: 100, Height: 24}, opt.Bounds)

	assert.True(t, e.Click(15, 25))
	assert.Equal(t, "box", clicked)
	assert.True(t, e.Click(20, 60))
	assert.Equal(t, "opt", clicked)
	assert.False(t, e.Click(400, 400), "hidden nodes do not take clicks")
	assert.Nil(t, e.HitTest(760, 10), "panels without handlers are not clickable")
	assert.True(t, e.Over(760, 10))
	assert.False(t, e.Over(400, 400))
}

func TestDrawCheckboxAndSkipsHidden(t *testing.T) {
	e := New()
	sheet, err := ParseCSS("checkbox { background: #000000; height: 30; width: 120; }")
	require.NoError(t, err)
	e.SetStylesheet(sheet)

	cb := NewNode(TypeCheckbox, "", "", "Dark Mode")
	cb.Checked = true
	h := NewNode(TypeLabel, "", "", "nope")
	h.Hidden = true
	e.SetNodes([]*Node{cb, h})

	var r recorder
	e.Draw(&r)
	assert.Empty(t, r.texts, "draw before layout is a no-op")

	e.Layout(800, 600)
	e.Draw(&r)
	assert.Equal(t, []string{"Dark Mode"}, r.texts)
	assert.Len(t, r.fills, 2, "background and tick")
	assert.Len(t, r.strokes, 1, "tick box outline")
}

func TestSetNodesKeepsCacheForSameNodes(t *testing.T) {
	e := New()
	n := NewNode(TypeLabel, "a", "", "x")
	e.SetNodes([]*Node{n})
	e.Layout(10, 10)
	assert.True(t, e.cacheValid)
	e.SetNodes([]*Node{n})
	assert.True(t, e.cacheValid)
	e.SetNodes([]*Node{n, n})
	assert.False(t, e.cacheValid)
}

func TestInspector(t *testing.T) {
	in := NewInspector()
	assert.Nil(t, in.AppendNodes(nil, false, Selection{}))

	nodes := in.AppendNodes(nil, true, Selection{
		Name: "TorusKnot", Geometry: "torusKnot", Params: []float32{1, 0.4, 128, 16},
		Vertices: 2193, Triangles: 4096, Color: "#4287f5", Wireframe: true,
	})
	require.Len(t, nodes, 7)
	var texts []string
	for _, n := range nodes {
		texts = append(texts, n.Text)
	}
	assert.Contains(t, texts, "Params: 1, 0.4, 128, 16")
	assert.Contains(t, texts, "Mesh: 2193 verts, 4096 tris")
	assert.Contains(t, texts, "Color: #4287f5 + wireframe")

	assert.Equal(t, "inspector", nodes[0].Class)
}
