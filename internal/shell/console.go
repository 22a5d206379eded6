package shell

import (
	"errors"
	"flag"
	"fmt"
	"strings"

	"shape-viewer/internal/commands"
	"shape-viewer/internal/shapes"
	"shape-viewer/internal/viewstate"
)

// Register adds the viewer's console commands to reg:
//
//	cmd shape -name torus     (or -next, -prev)
//	cmd wireframe -on=false
//	cmd dark -on
//	cmd color -value #ff8800  (or -clear)
//	cmd info -on
//	cmd fps -on
//	cmd shapes
//	cmd help
//
// setFPS toggles the frame counter and may be nil.
func (s *Shell) Register(reg *commands.Registry, setFPS func(bool)) {
	shapeFS := flag.NewFlagSet("shape", flag.ContinueOnError)
	name := shapeFS.String("name", "", "shape id")
	next := shapeFS.Bool("next", false, "select the next shape")
	prev := shapeFS.Bool("prev", false, "select the previous shape")
	reg.Register("shape", "select a shape: -name <id> | -next | -prev", shapeFS, func() error {
		cur := s.store.Snapshot().Shape
		var id shapes.ID
		switch {
		case *name != "":
			id = shapes.ID(*name)
		case *next:
			id = shapes.Step(cur, 1)
		case *prev:
			id = shapes.Step(cur, -1)
		default:
			return errors.New("shape: need -name, -next or -prev")
		}
		if err := s.store.SetShape(id); err != nil {
			return fmt.Errorf("shape: %w", err)
		}
		return nil
	})

	wireFS := flag.NewFlagSet("wireframe", flag.ContinueOnError)
	wireOn := wireFS.Bool("on", true, "show the wireframe overlay")
	reg.Register("wireframe", "toggle the wireframe overlay: -on[=false]", wireFS, func() error {
		s.store.SetWireframe(*wireOn)
		return nil
	})

	darkFS := flag.NewFlagSet("dark", flag.ContinueOnError)
	darkOn := darkFS.Bool("on", true, "use the dark theme")
	reg.Register("dark", "switch theme: -on[=false]", darkFS, func() error {
		s.store.SetDarkMode(*darkOn)
		return nil
	})

	colorFS := flag.NewFlagSet("color", flag.ContinueOnError)
	value := colorFS.String("value", "", "#rgb, #rrggbb or a color name")
	clearColor := colorFS.Bool("clear", false, "go back to the theme color")
	reg.Register("color", "set the shape color: -value <color> | -clear", colorFS, func() error {
		if *clearColor {
			s.store.ClearCustomColor()
			return nil
		}
		if *value == "" {
			return errors.New("color: need -value or -clear")
		}
		if err := s.store.SetCustomColor(*value); err != nil {
			return fmt.Errorf("color: %w", err)
		}
		return nil
	})

	infoFS := flag.NewFlagSet("info", flag.ContinueOnError)
	infoOn := infoFS.Bool("on", true, "show the shape info panel")
	reg.Register("info", "shape info panel: -on[=false]", infoFS, func() error {
		s.SetInfoVisible(*infoOn)
		return nil
	})

	fpsFS := flag.NewFlagSet("fps", flag.ContinueOnError)
	fpsOn := fpsFS.Bool("on", true, "show the frame counter")
	reg.Register("fps", "frame counter: -on[=false]", fpsFS, func() error {
		if setFPS == nil {
			return errors.New("fps: not available")
		}
		setFPS(*fpsOn)
		return nil
	})

	reg.Register("shapes", "list shape ids", flag.NewFlagSet("shapes", flag.ContinueOnError), func() error {
		ids := make([]string, len(shapes.All))
		for i, id := range shapes.All {
			ids[i] = string(id)
		}
		s.log.Info(strings.Join(ids, " "))
		return nil
	})

	reg.Register("help", "list commands", flag.NewFlagSet("help", flag.ContinueOnError), func() error {
		for _, line := range reg.Help() {
			s.log.Info(line)
		}
		return nil
	})
}

// LogChanges subscribes to the store and logs every state change.
func (s *Shell) LogChanges() {
	s.store.Subscribe(func(prev, next viewstate.ViewState) {
		if prev.Shape != next.Shape {
			s.log.Info("shape selected", "shape", next.Shape)
		}
		if prev.Wireframe != next.Wireframe {
			s.log.Info("wireframe", "on", next.Wireframe)
		}
		if prev.DarkMode != next.DarkMode {
			s.log.Info("dark mode", "on", next.DarkMode)
		}
		if prev.CustomColor != next.CustomColor {
			if next.CustomColor == "" {
				s.log.Info("custom color cleared")
			} else {
				s.log.Info("custom color", "color", next.CustomColor)
			}
		}
	})
}
