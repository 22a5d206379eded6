// shape-viewer - interactive 3D shape viewer.
//
// Controls:
//
//	Mouse drag  - Orbit the camera
//	Scroll      - Zoom in/out
//	W           - Toggle wireframe overlay
//	T           - Toggle dark/light theme
//	Left/Right  - Previous/next shape
//	C           - Back to the theme color
//	I           - Toggle shape info panel
//	Esc         - Open/close the console ("cmd help")
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/spf13/cobra"

	"shape-viewer/internal/commands"
	"shape-viewer/internal/config"
	"shape-viewer/internal/debug"
	"shape-viewer/internal/fonts"
	"shape-viewer/internal/graphics"
	"shape-viewer/internal/logger"
	"shape-viewer/internal/scene"
	"shape-viewer/internal/shapes"
	"shape-viewer/internal/shell"
	"shape-viewer/internal/terminal"
	"shape-viewer/internal/viewstate"
)

var (
	configPath string
	shapeFlag  string
	wireframe  bool
	dark       bool
	colorFlag  string
	logLevel   string
	logFile    string
)

func main() {
	cmd := &cobra.Command{
		Use:   "shape-viewer",
		Short: "Interactive 3D shape viewer",
		Long: `shape-viewer - Interactive 3D shape viewer

Shows one of 16 primitives in a lit, slowly orbiting scene, with a
wireframe overlay, a dark/light theme and custom colors.

Controls:
  Mouse drag  - Orbit
  Scroll      - Zoom
  W           - Wireframe
  T           - Theme
  Left/Right  - Previous/next shape
  C           - Theme color
  I           - Shape info
  Esc         - Console`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return run(cfg)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", config.DefaultPath, "YAML config file (missing file = defaults)")
	cmd.Flags().StringVar(&shapeFlag, "shape", "", "initial shape id (see the shapes subcommand)")
	cmd.Flags().BoolVar(&wireframe, "wireframe", false, "start with the wireframe overlay on")
	cmd.Flags().BoolVar(&dark, "dark", true, "start in dark mode")
	cmd.Flags().StringVar(&colorFlag, "color", "", "custom shape color (#rgb, #rrggbb or a color name)")
	cmd.Flags().StringVar(&logLevel, "log-level", "info", "debug, info, warn or error")
	cmd.Flags().StringVar(&logFile, "log-file", logger.LogFilePath, "log file path (empty disables)")

	shapesCmd := &cobra.Command{
		Use:   "shapes",
		Short: "List shapes with their geometry",
		Long:  "Print every shape id with its geometry kind, constructor parameters and the vertex and triangle count of its mesh.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return shapes.WriteTable(cmd.OutOrStdout(), shapes.NewCurves())
		},
	}
	cmd.AddCommand(shapesCmd)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "shape-viewer:", err)
		os.Exit(1)
	}
}

// loadConfig reads the config file and applies the flags that were set.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return cfg, err
	}
	flags := cmd.Flags()
	if flags.Changed("shape") {
		cfg.Initial.Shape = shapeFlag
	}
	if flags.Changed("wireframe") {
		cfg.Initial.Wireframe = wireframe
	}
	if flags.Changed("dark") {
		cfg.Initial.DarkMode = dark
	}
	if flags.Changed("color") {
		cfg.Initial.CustomColor = colorFlag
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("flags: %w", err)
	}
	return cfg, nil
}

func run(cfg config.Config) error {
	level, err := logger.ParseLevel(logLevel)
	if err != nil {
		return err
	}
	log, history, closeLog, err := logger.New(logger.Options{
		Level:    level,
		FilePath: logFile,
		Stderr:   os.Stderr,
	})
	if err != nil {
		return err
	}
	defer closeLog()
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	curves := shapes.NewCurves()
	store := viewstate.NewStore(cfg.ViewState())
	overlay, err := shell.New(store, curves, log)
	if err != nil {
		return err
	}
	overlay.LogChanges()

	dbg := debug.New()
	dbg.SetShowFPS(cfg.ShowFPS)
	dbg.SetShowMemAlloc(cfg.ShowMemAlloc)
	reg := commands.NewRegistry()
	overlay.Register(reg, dbg.SetShowFPS)
	term := terminal.New(log, history, reg)
	scn := scene.New(cfg.Camera, curves, log)

	painter := &graphics.Painter{}
	var font rl.Font
	fontLoaded := false
	input := graphics.Input{}

	start := store.Snapshot()
	log.Info("viewer starting", "shape", start.Shape, "dark", start.DarkMode, "wireframe", start.Wireframe, "config", configPath)

	update := func(dt float32) {
		if !fontLoaded {
			fontLoaded = true
			if f, ok := loadFont(cfg.Font, log); ok {
				font = f
				painter.Font = f
				term.SetFont(f)
				dbg.SetFont(f)
			}
		}
		term.Update()
		// An option click closes the dropdown before the scene sees the
		// pointer, so the press is captured here and not by Over.
		took := overlay.Update(input, term.IsOpen())
		scn.Update(dt, store.Snapshot(), func(x, y float32) bool {
			return took || overlay.Over(x, y)
		})
	}
	draw := func() {
		scn.Draw()
		overlay.Draw(painter)
		term.Draw()
		dbg.Draw()
	}
	onClose := func() {
		scn.Unload()
		if font.Texture.ID != 0 {
			rl.UnloadFont(font)
		}
	}
	graphics.Run(ctx, cfg.Window, update, scn.Background, draw, onClose)

	log.Info("viewer stopped")
	return nil
}

// loadFont loads the configured overlay font. Fonts need the GL context, so
// this runs on the first frame.
func loadFont(name string, log *slog.Logger) (rl.Font, bool) {
	if name == "" {
		return rl.Font{}, false
	}
	path, err := fonts.Resolve(name)
	if err != nil {
		log.Warn("font not loaded, using default", "font", name, "err", err)
		return rl.Font{}, false
	}
	f := rl.LoadFontEx(path, 64, nil)
	if f.Texture.ID == 0 {
		log.Warn("font not loaded, using default", "path", path)
		return rl.Font{}, false
	}
	rl.SetTextureFilter(f.Texture, rl.FilterBilinear)
	log.Info("font loaded", "path", path)
	return f, true
}
