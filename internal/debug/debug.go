package debug

import (
	"fmt"
	"runtime"

	rl "github.com/gen2brain/raylib-go/raylib"

	"shape-viewer/internal/graphics"
)

const (
	fpsFontSize   = 20
	fpsPadding    = 12
	fpsLineHeight = fpsFontSize + 4
	// updateInterval: only refresh FPS/Mem text every N frames to reduce allocations.
	updateInterval = 30
	// bottomMargin keeps the counters clear of the console bar.
	bottomMargin = 110
)

// Debug holds runtime debugging overlays (FPS, heap). All are off by default.
type Debug struct {
	ShowFPS      bool
	ShowMemAlloc bool
	font         rl.Font
	frameCount   uint32
	lastFpsText  string
	lastMemText  string
	lastMemStats runtime.MemStats
}

// New returns a Debug system with all overlays hidden.
func New() *Debug {
	return &Debug{}
}

// SetShowFPS sets whether the FPS counter is drawn.
func (d *Debug) SetShowFPS(show bool) {
	d.ShowFPS = show
}

// SetShowMemAlloc sets whether the heap counter is drawn under the FPS counter.
func (d *Debug) SetShowMemAlloc(show bool) {
	d.ShowMemAlloc = show
}

// SetFont sets the font used to draw the counters. Zero texture ID = use raylib default.
func (d *Debug) SetFont(font rl.Font) {
	d.font = font
}

// Draw renders any enabled overlays in the bottom-right corner, where the
// control overlay and info panel never are. Call last in the draw loop.
// Text is only recomputed every updateInterval frames to limit allocations.
func (d *Debug) Draw() {
	d.frameCount++
	update := (d.frameCount % updateInterval) == 0
	if d.ShowFPS && d.lastFpsText == "" {
		update = true
	}
	if d.ShowMemAlloc && d.lastMemText == "" {
		update = true
	}

	if update && d.ShowFPS {
		d.lastFpsText = fmt.Sprintf("FPS: %d", rl.GetFPS())
	}
	if update && d.ShowMemAlloc {
		runtime.ReadMemStats(&d.lastMemStats)
		d.lastMemText = fmt.Sprintf("Mem: %.2f MiB", float64(d.lastMemStats.Alloc)/(1024*1024))
	}

	screenW := float32(rl.GetScreenWidth())
	y := float32(rl.GetScreenHeight()) - bottomMargin
	for _, line := range []struct {
		show bool
		text string
	}{{d.ShowMemAlloc, d.lastMemText}, {d.ShowFPS, d.lastFpsText}} {
		if !line.show || line.text == "" {
			continue
		}
		x := screenW - graphics.MeasureText(d.font, line.text, fpsFontSize) - fpsPadding
		graphics.DrawText(d.font, line.text, x, y, fpsFontSize, rl.Green)
		y -= fpsLineHeight
	}
}
