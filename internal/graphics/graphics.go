package graphics

import (
	"context"

	rl "github.com/gen2brain/raylib-go/raylib"

	"shape-viewer/internal/config"
)

// Run opens the window described by win and runs the main loop. Each frame it
// calls update with the frame time in seconds, then begins drawing, clears to
// the color background returns and calls draw.
// The loop ends when the window is closed or ctx is cancelled; onClose runs
// while the GL context still exists so GPU resources can be released.
// ESC is left to the console; it does not close the window.
func Run(ctx context.Context, win config.Window, update func(dt float32), background func() rl.Color, draw func(), onClose func()) {
	flags := uint32(rl.FlagWindowResizable)
	if win.MSAA {
		flags |= rl.FlagMsaa4xHint
	}
	if win.Fullscreen {
		flags |= rl.FlagFullscreenMode
	}
	rl.SetConfigFlags(flags)

	w, h := int32(win.Width), int32(win.Height)
	rl.InitWindow(w, h, win.Title)
	defer rl.CloseWindow()
	if win.Fullscreen {
		m := rl.GetCurrentMonitor()
		rl.SetWindowSize(rl.GetMonitorWidth(m), rl.GetMonitorHeight(m))
	}

	rl.SetExitKey(rl.KeyNull)
	rl.SetTargetFPS(int32(win.TargetFPS))

	for !rl.WindowShouldClose() && ctx.Err() == nil {
		update(rl.GetFrameTime())

		rl.BeginDrawing()
		rl.ClearBackground(background())
		draw()
		rl.EndDrawing()
	}
	if onClose != nil {
		onClose()
	}
}
