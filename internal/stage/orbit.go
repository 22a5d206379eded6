package stage

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Orbit is a camera that circles a target on a sphere, the way an orbit
// control does: drag to rotate, wheel to zoom, optional steady auto-rotation.
// Azimuth is measured around +Y from +Z; Polar is measured down from +Y.
type Orbit struct {
	Target  mgl32.Vec3
	Radius  float32
	Azimuth float32
	Polar   float32

	AutoRotate      bool
	AutoRotateSpeed float32 // 2 means one turn every 30 s
	RotateSpeed     float32
	ZoomEnabled     bool
	MinRadius       float32
	MaxRadius       float32
}

const (
	// polarEpsilon keeps the camera off the poles where Up becomes degenerate.
	polarEpsilon = 1e-3
	// zoomStep is the distance factor per wheel notch.
	zoomStep = 0.95
)

// NewOrbit returns an orbit around target starting from position, with
// zoom enabled and auto-rotation off.
func NewOrbit(position, target mgl32.Vec3) *Orbit {
	o := &Orbit{
		Target:      target,
		RotateSpeed: 1,
		ZoomEnabled: true,
		MinRadius:   0.5,
		MaxRadius:   50,
	}
	off := position.Sub(target)
	o.Radius = off.Len()
	if o.Radius > 0 {
		o.Azimuth = math32.Atan2(off[0], off[2])
		o.Polar = math32.Acos(mgl32.Clamp(off[1]/o.Radius, -1, 1))
	}
	o.clamp()
	return o
}

// autoRotateAngle is the azimuth change for dt seconds: 2π/60 radians per
// second per unit of speed.
func (o *Orbit) autoRotateAngle(dt float32) float32 {
	return twoPi / 60 * o.AutoRotateSpeed * dt
}

// Update advances auto-rotation by dt seconds.
func (o *Orbit) Update(dt float32) {
	if o.AutoRotate {
		o.Azimuth -= o.autoRotateAngle(dt)
		o.Azimuth = wrapAngle(o.Azimuth)
	}
}

// Drag rotates the camera by a pointer movement of (dx, dy) pixels on a
// viewport of the given height. A drag across the full height is one turn.
func (o *Orbit) Drag(dx, dy, viewportHeight float32) {
	if viewportHeight <= 0 {
		return
	}
	o.Azimuth = wrapAngle(o.Azimuth - twoPi*dx/viewportHeight*o.RotateSpeed)
	o.Polar -= twoPi * dy / viewportHeight * o.RotateSpeed
	o.clamp()
}

// Zoom moves the camera in (positive notches) or out (negative notches).
func (o *Orbit) Zoom(notches float32) {
	if !o.ZoomEnabled || notches == 0 {
		return
	}
	o.Radius *= math32.Pow(zoomStep, notches)
	o.clamp()
}

// Position returns the camera position for the current angles.
func (o *Orbit) Position() mgl32.Vec3 {
	sinPolar := math32.Sin(o.Polar)
	return o.Target.Add(mgl32.Vec3{
		o.Radius * sinPolar * math32.Sin(o.Azimuth),
		o.Radius * math32.Cos(o.Polar),
		o.Radius * sinPolar * math32.Cos(o.Azimuth),
	})
}

func (o *Orbit) clamp() {
	o.Polar = mgl32.Clamp(o.Polar, polarEpsilon, math32.Pi-polarEpsilon)
	if o.MaxRadius > 0 {
		o.Radius = mgl32.Clamp(o.Radius, o.MinRadius, o.MaxRadius)
	}
}

func wrapAngle(a float32) float32 {
	a = math32.Mod(a, twoPi)
	if a < -math32.Pi {
		a += twoPi
	} else if a > math32.Pi {
		a -= twoPi
	}
	return a
}

const twoPi = 2 * math32.Pi
