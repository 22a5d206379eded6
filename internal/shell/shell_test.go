package shell

import (
	"image/color"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shape-viewer/internal/commands"
	"shape-viewer/internal/shapes"
	"shape-viewer/internal/theme"
	"shape-viewer/internal/ui"
	"shape-viewer/internal/viewstate"
)

type fakeInput struct {
	click *[2]float32
	keys  map[Key]bool
}

func (f fakeInput) ScreenSize() (int32, int32) { return 1280, 800 }

func (f fakeInput) Click() (float32, float32, bool) {
	if f.click == nil {
		return 0, 0, false
	}
	return f.click[0], f.click[1], true
}

func (f fakeInput) KeyPressed(k Key) bool { return f.keys[k] }

func clickAt(x, y float32) fakeInput { return fakeInput{click: &[2]float32{x, y}} }

func press(k Key) fakeInput { return fakeInput{keys: map[Key]bool{k: true}} }

type textRecorder struct{ texts []string }

func (r *textRecorder) FillRect(ui.Rect, color.RGBA)   {}
func (r *textRecorder) StrokeRect(ui.Rect, color.RGBA) {}
func (r *textRecorder) Text(s string, _, _, _ float32, _ color.RGBA) {
	r.texts = append(r.texts, s)
}

func newShell(t *testing.T) (*Shell, *viewstate.Store) {
	t.Helper()
	store := viewstate.NewStore(viewstate.Default())
	s, err := New(store, shapes.NewCurves(), slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	s.Update(fakeInput{}, false)
	return s, store
}

func TestCheckboxClicksToggleFlags(t *testing.T) {
	s, store := newShell(t)

	s.Update(clickAt(210, 30), false)
	assert.True(t, store.Snapshot().Wireframe)
	s.Update(clickAt(210, 30), false)
	assert.False(t, store.Snapshot().Wireframe)

	s.Update(clickAt(400, 30), false)
	assert.False(t, store.Snapshot().DarkMode)
}

func TestDropdownSelectsShape(t *testing.T) {
	s, store := newShell(t)
	require.False(t, s.DropdownOpen())

	assert.True(t, s.Update(clickAt(30, 30), false))
	require.True(t, s.DropdownOpen())

	// Options stack under the select, 28px each; torus is the third.
	optX, optY := float32(30), float32(56+2*28+10)
	assert.True(t, s.Update(clickAt(optX, optY), false), "the option takes the click")
	assert.Equal(t, shapes.Torus, store.Snapshot().Shape)
	assert.False(t, s.DropdownOpen())
	assert.False(t, s.Over(optX, optY), "the closed list no longer covers the option")

	s.Update(clickAt(30, 30), false)
	require.True(t, s.DropdownOpen())
	assert.False(t, s.Update(clickAt(900, 600), false))
	assert.False(t, s.DropdownOpen(), "clicking elsewhere closes the list")
	assert.Equal(t, shapes.Torus, store.Snapshot().Shape)
}

func TestSwatchesSetAndClearColor(t *testing.T) {
	s, store := newShell(t)

	// Swatches start right of the 70px "Color" label at x=16.
	s.Update(clickAt(16+70+8+32+4, 80), false)
	assert.Equal(t, Palette[0], store.Snapshot().CustomColor)

	s.Update(clickAt(16+70+8+4, 80), false)
	assert.Empty(t, store.Snapshot().CustomColor)
}

func TestShortcuts(t *testing.T) {
	s, store := newShell(t)

	s.Update(press(KeyWireframe), false)
	assert.True(t, store.Snapshot().Wireframe)
	s.Update(press(KeyWireframe), true)
	assert.True(t, store.Snapshot().Wireframe, "ignored while the console is open")

	s.Update(press(KeyNextShape), false)
	assert.Equal(t, shapes.Sphere, store.Snapshot().Shape)
	s.Update(press(KeyPrevShape), false)
	s.Update(press(KeyPrevShape), false)
	assert.Equal(t, shapes.Extrude, store.Snapshot().Shape)

	s.Update(press(KeyTheme), false)
	assert.False(t, store.Snapshot().DarkMode)

	require.NoError(t, store.SetCustomColor("tomato"))
	s.Update(press(KeyClearColor), false)
	assert.Empty(t, store.Snapshot().CustomColor)

	s.Update(press(KeyInfo), false)
	assert.True(t, s.InfoVisible())
}

func TestDrawShowsStateAndInfo(t *testing.T) {
	s, store := newShell(t)

	var r textRecorder
	s.Draw(&r)
	assert.Equal(t, []string{"Cube  v", "Wireframe", "Dark Mode", "Color"}, r.texts)

	s.SetInfoVisible(true)
	require.NoError(t, store.SetShape(shapes.Cube))
	s.Update(fakeInput{}, false)
	r = textRecorder{}
	s.Draw(&r)
	assert.Contains(t, r.texts, "Mesh: 24 verts, 12 tris")
	assert.Contains(t, r.texts, "Geometry: box")
	assert.Contains(t, r.texts, "Params: 1, 1, 1")

	s.Update(clickAt(30, 30), false)
	r = textRecorder{}
	s.Draw(&r)
	assert.Contains(t, r.texts, "TorusKnot")
	assert.Contains(t, r.texts, "Extrude")
}

func TestOverCoversControlsOnly(t *testing.T) {
	s, _ := newShell(t)
	assert.True(t, s.Over(30, 30))
	assert.False(t, s.Over(640, 400))
}

func TestConsoleCommands(t *testing.T) {
	s, store := newShell(t)
	reg := commands.NewRegistry()
	fps := false
	s.Register(reg, func(on bool) { fps = on })

	run := func(line string) error {
		args, ok := commands.Parse(line)
		require.True(t, ok, line)
		return reg.Execute(args)
	}

	require.NoError(t, run("cmd shape -name torus"))
	assert.Equal(t, shapes.Torus, store.Snapshot().Shape)
	assert.ErrorIs(t, run("cmd shape -name hexagon"), viewstate.ErrUnknownShape)
	assert.Equal(t, shapes.Torus, store.Snapshot().Shape)
	require.NoError(t, run("cmd shape -next"))
	assert.Equal(t, shapes.TorusKnot, store.Snapshot().Shape)
	assert.Error(t, run("cmd shape"))

	require.NoError(t, run("cmd wireframe -on"))
	assert.True(t, store.Snapshot().Wireframe)
	require.NoError(t, run("cmd wireframe -on=false"))
	assert.False(t, store.Snapshot().Wireframe)

	require.NoError(t, run("cmd dark -on=false"))
	assert.False(t, store.Snapshot().DarkMode)

	require.NoError(t, run("cmd color -value #F80"))
	assert.Equal(t, "#ff8800", store.Snapshot().CustomColor)
	assert.ErrorIs(t, run("cmd color -value nocolor"), theme.ErrInvalidColor)
	assert.Equal(t, "#ff8800", store.Snapshot().CustomColor)
	require.NoError(t, run("cmd color -clear"))
	assert.Empty(t, store.Snapshot().CustomColor)

	require.NoError(t, run("cmd fps"))
	assert.True(t, fps)
	require.NoError(t, run("cmd info"))
	assert.True(t, s.InfoVisible())

	require.NoError(t, run("cmd help"))
	require.NoError(t, run("cmd shapes"))
}

func TestLogChanges(t *testing.T) {
	var buf strings.Builder
	store := viewstate.NewStore(viewstate.Default())
	s, err := New(store, shapes.NewCurves(), slog.New(slog.NewTextHandler(&buf, nil)))
	require.NoError(t, err)
	s.LogChanges()

	require.NoError(t, store.SetShape(shapes.Ring))
	store.SetWireframe(true)
	assert.Contains(t, buf.String(), "shape selected")
	assert.Contains(t, buf.String(), "shape=ring")
	assert.Contains(t, buf.String(), "wireframe")
}
