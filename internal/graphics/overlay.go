package graphics

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"

	"shape-viewer/internal/shell"
	"shape-viewer/internal/ui"
)

// Color converts an image/color value to raylib's.
func Color(c color.RGBA) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}

// Painter draws ui nodes in screen space with raylib. A zero Font uses the
// raylib default.
type Painter struct {
	Font rl.Font
}

func (p *Painter) FillRect(r ui.Rect, c color.RGBA) {
	rl.DrawRectangleRec(rect(r), Color(c))
}

func (p *Painter) StrokeRect(r ui.Rect, c color.RGBA) {
	rl.DrawRectangleLinesEx(rect(r), 1, Color(c))
}

func (p *Painter) Text(s string, x, y, size float32, c color.RGBA) {
	DrawText(p.Font, s, x, y, size, Color(c))
}

func rect(r ui.Rect) rl.Rectangle {
	return rl.NewRectangle(r.X, r.Y, r.Width, r.Height)
}

// DrawText draws s with font, falling back to the default font when font has no texture.
func DrawText(font rl.Font, s string, x, y, size float32, c rl.Color) {
	if font.Texture.ID != 0 {
		rl.DrawTextEx(font, s, rl.NewVector2(x, y), size, 1, c)
		return
	}
	rl.DrawText(s, int32(x), int32(y), int32(size), c)
}

// MeasureText returns the width of s as DrawText would draw it.
func MeasureText(font rl.Font, s string, size float32) float32 {
	if font.Texture.ID != 0 {
		return rl.MeasureTextEx(font, s, size, 1).X
	}
	return float32(rl.MeasureText(s, int32(size)))
}

// Input reads the window's keyboard and mouse for the shell.
type Input struct{}

var shellKeys = map[shell.Key]int32{
	shell.KeyWireframe:  rl.KeyW,
	shell.KeyTheme:      rl.KeyT,
	shell.KeyPrevShape:  rl.KeyLeft,
	shell.KeyNextShape:  rl.KeyRight,
	shell.KeyClearColor: rl.KeyC,
	shell.KeyInfo:       rl.KeyI,
}

func (Input) ScreenSize() (int32, int32) {
	return int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight())
}

func (Input) Click() (float32, float32, bool) {
	if !rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		return 0, 0, false
	}
	m := rl.GetMousePosition()
	return m.X, m.Y, true
}

func (Input) KeyPressed(k shell.Key) bool {
	key, ok := shellKeys[k]
	return ok && rl.IsKeyPressed(key)
}
