package stage

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shape-viewer/internal/shapes"
	"shape-viewer/internal/theme"
	"shape-viewer/internal/viewstate"
)

func TestSpinAccumulatesPerFrame(t *testing.T) {
	curves := shapes.NewCurves()
	var s Spin
	rule := shapes.Select(shapes.TorusKnot, curves).Rotation
	for i := 0; i < 100; i++ {
		s.Advance(rule, float32(i)/60)
	}
	assert.InDelta(t, 0.3, s.Rotation[0], 1e-4)
	assert.InDelta(t, 0.5, s.Rotation[1], 1e-4)
	assert.InDelta(t, 0.2, s.Rotation[2], 1e-4)
}

func TestSpinDodecahedronUsesElapsed(t *testing.T) {
	var s Spin
	rule := shapes.Select(shapes.Dodecahedron, shapes.NewCurves()).Rotation
	s.Advance(rule, math32.Pi/2)
	assert.InDelta(t, 0.003, s.Rotation[0], 1e-7)
	assert.InDelta(t, 0, s.Rotation[1], 1e-7)
}

func TestSpinNilRule(t *testing.T) {
	var s Spin
	s.Advance(nil, 1)
	assert.Equal(t, mgl32.Vec3{}, s.Rotation)
}

func TestSpinTransform(t *testing.T) {
	s := Spin{Rotation: mgl32.Vec3{0, math32.Pi / 2, 0}}
	got := s.Transform().Mul4x1(mgl32.Vec4{1, 0, 0, 1})
	assert.InDelta(t, 0, got[0], 1e-6)
	assert.InDelta(t, -1, got[2], 1e-6)

	var zero Spin
	assert.True(t, zero.Transform().ApproxEqual(mgl32.Ident4()))
}

func TestPassesWireframeToggle(t *testing.T) {
	for _, dark := range []bool{true, false} {
		on := Passes(theme.Material(dark, true, ""), true)
		require.Len(t, on, 2)
		assert.Equal(t, Solid, on[0].Kind)
		assert.Equal(t, Overlay, on[1].Kind)
		assert.True(t, on[1].Wire())
		assert.False(t, on[0].Wire())

		off := Passes(theme.Material(dark, false, ""), false)
		require.Len(t, off, 1)
		assert.Equal(t, Solid, off[0].Kind)
		assert.Equal(t, float32(1), off[0].Opacity)
	}

	dark := Passes(theme.Material(true, true, ""), true)
	assert.Equal(t, float32(0.3), dark[0].Opacity)
	assert.Equal(t, float32(0.2), dark[1].Opacity)
	assert.Equal(t, "#00ff88", dark[1].Color)

	light := Passes(theme.Material(false, true, ""), true)
	assert.Equal(t, float32(0.4), light[0].Opacity)
	assert.Equal(t, float32(0.3), light[1].Opacity)
	assert.Equal(t, "#10b981", light[1].Color)
}

func TestSpecular(t *testing.T) {
	p1, s1 := Specular(0.2, 0.8)
	p2, s2 := Specular(0.3, 0.6)
	assert.Greater(t, p1, p2)
	assert.Greater(t, s1, s2)

	p, s := Specular(2, -1)
	assert.Equal(t, float32(8), p)
	assert.InDelta(t, 0.04, s, 1e-7)
}

func TestComposeSharesTransform(t *testing.T) {
	curves := shapes.NewCurves()
	state := viewstate.ViewState{Shape: shapes.Sphere, Wireframe: true, DarkMode: false, CustomColor: "#ff8800"}
	profile := shapes.Select(state.Shape, curves)
	spin := &Spin{}
	spin.Advance(profile.Rotation, 0)

	f := Compose(state, profile, spin)
	assert.Equal(t, spin.Transform(), f.Transform)
	require.Len(t, f.Passes, 2)
	assert.Equal(t, "#ff8800", f.Passes[0].Color)
	assert.Equal(t, float32(1.4), f.Scene.AmbientIntensity)
	assert.Equal(t, shapes.Sphere, f.Profile.ID)
}

func TestOrbitFromDefaultCamera(t *testing.T) {
	o := NewOrbit(mgl32.Vec3{0, 0, 5}, mgl32.Vec3{})
	assert.InDelta(t, 5, o.Radius, 1e-6)
	assert.InDelta(t, 0, o.Azimuth, 1e-6)
	assert.InDelta(t, math32.Pi/2, o.Polar, 1e-6)

	p := o.Position()
	assert.InDelta(t, 0, p[0], 1e-5)
	assert.InDelta(t, 0, p[1], 1e-5)
	assert.InDelta(t, 5, p[2], 1e-5)
}

func TestOrbitAutoRotate(t *testing.T) {
	o := NewOrbit(mgl32.Vec3{0, 0, 5}, mgl32.Vec3{})
	o.Update(1)
	assert.InDelta(t, 0, o.Azimuth, 1e-6, "auto-rotate is off by default")

	o.AutoRotate = true
	o.AutoRotateSpeed = 2
	o.Update(1)
	assert.InDelta(t, -twoPi/30, o.Azimuth, 1e-5)

	// A full 30 s turn comes back to the start.
	for i := 0; i < 29*60; i++ {
		o.Update(1.0 / 60)
	}
	p := o.Position()
	assert.InDelta(t, 0, p[0], 1e-2)
	assert.InDelta(t, 5, p[2], 1e-2)
}

func TestOrbitZoomAndClamp(t *testing.T) {
	o := NewOrbit(mgl32.Vec3{0, 0, 5}, mgl32.Vec3{})
	o.Zoom(1)
	assert.InDelta(t, 4.75, o.Radius, 1e-5)
	o.Zoom(-1000)
	assert.Equal(t, o.MaxRadius, o.Radius)

	o.ZoomEnabled = false
	o.Zoom(5)
	assert.Equal(t, o.MaxRadius, o.Radius)
}

func TestOrbitDragKeepsOffPoles(t *testing.T) {
	o := NewOrbit(mgl32.Vec3{0, 0, 5}, mgl32.Vec3{})
	o.Drag(0, 10000, 500)
	assert.InDelta(t, polarEpsilon, o.Polar, 1e-6)
	o.Drag(0, -100000, 500)
	assert.InDelta(t, math32.Pi-polarEpsilon, o.Polar, 1e-5)

	before := o.Azimuth
	o.Drag(125, 0, 500)
	assert.InDelta(t, wrapAngle(before-math32.Pi/2), o.Azimuth, 1e-5)

	o.Drag(10, 10, 0)
}
