// Package shell is the viewer's control overlay: the shape dropdown, the
// Wireframe and Dark Mode checkboxes, the color swatches and the info panel.
// It turns clicks, shortcuts and console commands into viewstate.Store
// mutations. Drawing goes through ui.Painter so the package has no window
// dependency.
package shell

import (
	"embed"
	"fmt"
	"image/color"
	"log/slog"

	"shape-viewer/internal/geometry"
	"shape-viewer/internal/shapes"
	"shape-viewer/internal/theme"
	"shape-viewer/internal/ui"
	"shape-viewer/internal/viewstate"
)

//go:embed css/*.css
var cssFS embed.FS

// Palette is the set of custom colors offered as swatches, after the
// "default" swatch that restores the theme color.
var Palette = []string{"#ef4444", "#f59e0b", "#22c55e", "#06b6d4", "#8b5cf6", "#ec4899"}

const swatchGap = 8

// Key is a keyboard shortcut understood by the shell.
type Key int

const (
	KeyWireframe Key = iota
	KeyTheme
	KeyPrevShape
	KeyNextShape
	KeyClearColor
	KeyInfo
)

// Input is what the shell reads from the window each frame.
type Input interface {
	ScreenSize() (w, h int32)
	// Click returns the pointer position when the primary button was pressed this frame.
	Click() (x, y float32, ok bool)
	KeyPressed(k Key) bool
}

// Shell owns the overlay nodes and keeps them in sync with the store.
type Shell struct {
	store  *viewstate.Store
	curves *shapes.Curves
	log    *slog.Logger

	engine     *ui.Engine
	darkSheet  *ui.Stylesheet
	lightSheet *ui.Stylesheet
	sheetDark  bool
	sheetSet   bool

	selectNode *ui.Node
	options    []*ui.Node
	wireframe  *ui.Node
	darkMode   *ui.Node
	colorLabel *ui.Node
	swatches   []*ui.Node
	swatchHex  []string // "" for the default swatch
	inspector  *ui.Inspector

	dropdownOpen bool
	showInfo     bool
	stats        map[shapes.ID][2]int
}

// New builds the overlay for store. Curves are used to describe the
// selected shape in the info panel.
func New(store *viewstate.Store, curves *shapes.Curves, log *slog.Logger) (*Shell, error) {
	dark, err := loadSheet("css/base.css", "css/dark.css")
	if err != nil {
		return nil, err
	}
	light, err := loadSheet("css/base.css", "css/light.css")
	if err != nil {
		return nil, err
	}
	if log == nil {
		log = slog.Default()
	}
	s := &Shell{
		store:      store,
		curves:     curves,
		log:        log,
		engine:     ui.New(),
		darkSheet:  dark,
		lightSheet: light,
		inspector:  ui.NewInspector(),
		stats:      make(map[shapes.ID][2]int),
	}
	s.build()
	s.sync()
	return s, nil
}

func loadSheet(paths ...string) (*ui.Stylesheet, error) {
	var css []byte
	for _, p := range paths {
		data, err := cssFS.ReadFile(p)
		if err != nil {
			return nil, fmt.Errorf("shell: %w", err)
		}
		css = append(css, data...)
		css = append(css, '\n')
	}
	sheet, err := ui.ParseCSS(string(css))
	if err != nil {
		return nil, fmt.Errorf("shell: %s: %w", paths[len(paths)-1], err)
	}
	return sheet, nil
}

func (s *Shell) build() {
	s.selectNode = ui.NewNode(ui.TypeSelect, "control", "shape-select", "")
	s.selectNode.OnClick = func() { s.dropdownOpen = !s.dropdownOpen }

	for _, id := range shapes.All {
		opt := ui.NewNode(ui.TypeOption, "", "", id.Label())
		opt.OnClick = func() {
			s.dropdownOpen = false
			s.selectShape(id)
		}
		s.options = append(s.options, opt)
	}

	s.wireframe = ui.NewNode(ui.TypeCheckbox, "control", "wireframe", "Wireframe")
	s.wireframe.OnClick = func() { s.store.SetWireframe(!s.store.Snapshot().Wireframe) }

	s.darkMode = ui.NewNode(ui.TypeCheckbox, "control", "dark-mode", "Dark Mode")
	s.darkMode.OnClick = func() { s.store.SetDarkMode(!s.store.Snapshot().DarkMode) }

	s.colorLabel = ui.NewNode(ui.TypeLabel, "control", "color-label", "Color")

	s.swatchHex = append([]string{""}, Palette...)
	for _, hex := range s.swatchHex {
		sw := ui.NewNode(ui.TypeSwatch, "", "", "")
		if hex != "" {
			c := theme.MustColor(hex)
			sw.Fill = &c
		} else {
			sw.Fill = new(color.RGBA)
		}
		sw.OnClick = func() {
			if err := s.store.SetCustomColor(hex); err != nil {
				s.log.Warn("color swatch rejected", "color", hex, "err", err)
			}
		}
		s.swatches = append(s.swatches, sw)
	}
}

func (s *Shell) selectShape(id shapes.ID) {
	if err := s.store.SetShape(id); err != nil {
		s.log.Warn("shape rejected", "shape", id, "err", err)
	}
}

// sync copies the store state into the nodes and hands the node list to
// the engine. Options come last so the open dropdown draws and hit-tests on top.
func (s *Shell) sync() {
	st := s.store.Snapshot()

	if !s.sheetSet || s.sheetDark != st.DarkMode {
		if st.DarkMode {
			s.engine.SetStylesheet(s.darkSheet)
		} else {
			s.engine.SetStylesheet(s.lightSheet)
		}
		s.sheetDark = st.DarkMode
		s.sheetSet = true
	}

	s.selectNode.Text = st.Shape.Label() + "  v"
	for i, opt := range s.options {
		opt.Hidden = !s.dropdownOpen
		opt.Checked = shapes.All[i] == st.Shape
	}
	s.wireframe.Checked = st.Wireframe
	s.darkMode.Checked = st.DarkMode

	*s.swatches[0].Fill = theme.MustColor(theme.Material(st.DarkMode, false, "").MainColor)
	for i, sw := range s.swatches {
		sw.Checked = s.swatchHex[i] == st.CustomColor
	}

	nodes := []*ui.Node{s.selectNode, s.wireframe, s.darkMode, s.colorLabel}
	nodes = append(nodes, s.swatches...)
	nodes = s.inspector.AppendNodes(nodes, s.showInfo, s.selection(st))
	nodes = append(nodes, s.options...)
	s.engine.SetNodes(nodes)
}

func (s *Shell) selection(st viewstate.ViewState) ui.Selection {
	p := shapes.Select(st.Shape, s.curves)
	verts, tris := s.meshStats(p)
	return ui.Selection{
		Name:      st.Shape.Label(),
		Geometry:  p.Geometry.Kind.String(),
		Params:    p.Geometry.Params,
		Vertices:  verts,
		Triangles: tris,
		Color:     st.Material().MainColor,
		Wireframe: st.Wireframe,
	}
}

func (s *Shell) meshStats(p shapes.Profile) (verts, tris int) {
	if st, ok := s.stats[p.ID]; ok {
		return st[0], st[1]
	}
	m, err := geometry.Build(p.Geometry)
	if err != nil {
		s.log.Warn("mesh stats", "shape", p.ID, "err", err)
		return 0, 0
	}
	s.stats[p.ID] = [2]int{m.VertexCount(), m.TriangleCount()}
	return m.VertexCount(), m.TriangleCount()
}

// Layout positions every node for a screen of w by h pixels.
func (s *Shell) Layout(w, h int32) {
	s.engine.Layout(w, h)

	sel := s.selectNode.Bounds
	for i, opt := range s.options {
		opt.Bounds.X = sel.X
		opt.Bounds.Y = sel.Y + sel.Height + float32(i)*opt.Bounds.Height
	}

	lbl := s.colorLabel.Bounds
	x := lbl.X + lbl.Width + swatchGap
	for _, sw := range s.swatches {
		sw.Bounds.X = x
		sw.Bounds.Y = lbl.Y + (lbl.Height-sw.Bounds.Height)/2
		x += sw.Bounds.Width + swatchGap
	}
}

// Update applies this frame's input and reports whether a control took
// this frame's click. Shortcuts are ignored while the console has the
// keyboard.
func (s *Shell) Update(in Input, consoleOpen bool) bool {
	s.Layout(in.ScreenSize())

	if !consoleOpen {
		s.handleKeys(in)
	}
	took := false
	if x, y, ok := in.Click(); ok {
		took = s.engine.Click(x, y)
		if !took {
			s.dropdownOpen = false
		}
	}
	s.sync()
	s.Layout(in.ScreenSize())
	return took
}

func (s *Shell) handleKeys(in Input) {
	st := s.store.Snapshot()
	switch {
	case in.KeyPressed(KeyWireframe):
		s.store.SetWireframe(!st.Wireframe)
	case in.KeyPressed(KeyTheme):
		s.store.SetDarkMode(!st.DarkMode)
	case in.KeyPressed(KeyPrevShape):
		s.selectShape(shapes.Step(st.Shape, -1))
	case in.KeyPressed(KeyNextShape):
		s.selectShape(shapes.Step(st.Shape, 1))
	case in.KeyPressed(KeyClearColor):
		s.store.ClearCustomColor()
	case in.KeyPressed(KeyInfo):
		s.showInfo = !s.showInfo
	}
}

// Draw paints the overlay. Call after Update in the same frame.
func (s *Shell) Draw(p ui.Painter) {
	s.engine.Draw(p)
}

// Over reports whether (x, y) is on a control, so pointer drags there do not orbit the camera.
func (s *Shell) Over(x, y float32) bool {
	return s.engine.Over(x, y)
}

// SetInfoVisible shows or hides the shape info panel.
func (s *Shell) SetInfoVisible(on bool) {
	s.showInfo = on
	s.sync()
}

// InfoVisible reports whether the shape info panel is shown.
func (s *Shell) InfoVisible() bool {
	return s.showInfo
}

// DropdownOpen reports whether the shape list is expanded.
func (s *Shell) DropdownOpen() bool {
	return s.dropdownOpen
}
