package scene

import (
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"

	"shape-viewer/internal/config"
	"shape-viewer/internal/primitives"
	"shape-viewer/internal/shapes"
	"shape-viewer/internal/stage"
	"shape-viewer/internal/theme"
	"shape-viewer/internal/viewstate"
)

// Scene holds the orbit camera and draws the selected shape. Update runs
// camera and rotation logic; Draw renders between BeginMode3D and EndMode3D.
type Scene struct {
	Camera rl.Camera3D
	Orbit  *stage.Orbit

	curves  *shapes.Curves
	meshes  *primitives.Registry
	log     *slog.Logger
	spin    stage.Spin
	elapsed float32
	frame   stage.Frame
	ready   bool

	dragging bool
	lastErr  string
}

// New returns a scene with a perspective camera placed as cam describes,
// looking at the origin.
func New(cam config.Camera, curves *shapes.Curves, log *slog.Logger) *Scene {
	pos := mgl32.Vec3{cam.Position[0], cam.Position[1], cam.Position[2]}
	orbit := stage.NewOrbit(pos, mgl32.Vec3{})
	orbit.AutoRotate = cam.AutoRotate
	orbit.AutoRotateSpeed = cam.AutoRotateSpeed
	orbit.ZoomEnabled = cam.EnableZoom

	s := &Scene{
		Orbit:  orbit,
		curves: curves,
		meshes: primitives.NewRegistry(),
		log:    log,
	}
	s.Camera.Up = rl.NewVector3(0, 1, 0)
	s.Camera.Fovy = cam.Fovy
	s.Camera.Projection = rl.CameraPerspective
	s.placeCamera()
	return s
}

func (s *Scene) placeCamera() {
	p := s.Orbit.Position()
	t := s.Orbit.Target
	s.Camera.Position = rl.NewVector3(p[0], p[1], p[2])
	s.Camera.Target = rl.NewVector3(t[0], t[1], t[2])
}

// Update runs once per frame. Left-drag orbits and the wheel zooms unless
// the pointer is on the overlay (captured reports that). The shape's
// rotation advances by one step of its profile's rule.
func (s *Scene) Update(dt float32, state viewstate.ViewState, captured func(x, y float32) bool) {
	s.elapsed += dt

	mouse := rl.GetMousePosition()
	onOverlay := captured != nil && captured(mouse.X, mouse.Y)
	if rl.IsMouseButtonPressed(rl.MouseButtonLeft) && !onOverlay {
		s.dragging = true
	}
	if !rl.IsMouseButtonDown(rl.MouseButtonLeft) {
		s.dragging = false
	}
	if s.dragging {
		d := rl.GetMouseDelta()
		s.Orbit.Drag(d.X, d.Y, float32(rl.GetScreenHeight()))
	}
	if !onOverlay {
		s.Orbit.Zoom(rl.GetMouseWheelMove())
	}
	s.Orbit.Update(dt)
	s.placeCamera()

	profile := shapes.Select(state.Shape, s.curves)
	s.spin.Advance(profile.Rotation, s.elapsed)
	s.frame = stage.Compose(state, profile, &s.spin)
	s.ready = true
}

// Background returns the clear color for the current frame.
func (s *Scene) Background() rl.Color {
	bg := theme.Scene(true).Background
	if s.ready {
		bg = s.frame.Scene.Background
	}
	c, err := theme.ParseColor(bg)
	if err != nil {
		return rl.Black
	}
	return rl.NewColor(c.R, c.G, c.B, 255)
}

// Draw renders the shape: the solid pass, then the wireframe overlay when
// on. Both passes share the mesh and the transform. Call after ClearBackground.
func (s *Scene) Draw() {
	if !s.ready {
		return
	}
	p := s.Camera.Position
	s.meshes.SetView([3]float32{p.X, p.Y, p.Z}, s.frame.Scene)

	rl.BeginMode3D(s.Camera)
	for _, pass := range s.frame.Passes {
		if err := s.meshes.Draw(s.frame.Profile, pass, s.frame.Transform); err != nil {
			s.reportOnce(err)
		}
	}
	rl.EndMode3D()
}

// reportOnce logs a draw error the first time it is seen instead of every frame.
func (s *Scene) reportOnce(err error) {
	if msg := err.Error(); msg != s.lastErr {
		s.lastErr = msg
		s.log.Error("draw", "shape", s.frame.Profile.ID, "err", err)
	}
}

// Unload releases GPU resources. Call before the window closes.
func (s *Scene) Unload() {
	s.meshes.Unload()
}
