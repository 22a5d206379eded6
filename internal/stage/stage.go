// Package stage composes one rendered frame of the viewer: the shape's
// accumulated rotation, the camera orbit and the draw passes. It does no
// drawing itself, so everything here runs without a window.
package stage

import (
	"github.com/go-gl/mathgl/mgl32"

	"shape-viewer/internal/shapes"
	"shape-viewer/internal/theme"
	"shape-viewer/internal/viewstate"
)

// Spin accumulates a shape's rotation frame by frame.
type Spin struct {
	Rotation mgl32.Vec3 // Euler angles in radians, applied X then Y then Z
}

// Advance adds one frame's delta from rule at the given elapsed seconds.
func (s *Spin) Advance(rule shapes.RotationRule, elapsed float32) {
	if rule == nil {
		return
	}
	s.Rotation = s.Rotation.Add(rule(elapsed))
}

// Transform returns the model matrix for the current rotation.
func (s *Spin) Transform() mgl32.Mat4 {
	r := s.Rotation
	return mgl32.HomogRotate3DX(r[0]).
		Mul4(mgl32.HomogRotate3DY(r[1])).
		Mul4(mgl32.HomogRotate3DZ(r[2]))
}

// PassKind tells the renderer how to draw one pass of the shared mesh.
type PassKind int

const (
	// Solid is the lit, filled mesh.
	Solid PassKind = iota
	// Overlay is the unlit wireframe drawn over the solid mesh.
	Overlay
)

func (k PassKind) String() string {
	if k == Overlay {
		return "overlay"
	}
	return "solid"
}

// Pass is one draw of the current mesh.
type Pass struct {
	Kind             PassKind
	Color            string
	Opacity          float32
	SpecularPower    float32
	SpecularStrength float32
}

// Wire reports whether the pass draws edges only.
func (p Pass) Wire() bool { return p.Kind == Overlay }

// Passes returns the solid pass and, with wireframe on, the overlay pass.
func Passes(style theme.MaterialStyle, wireframe bool) []Pass {
	power, strength := Specular(style.Roughness, style.Metalness)
	out := []Pass{{
		Kind:             Solid,
		Color:            style.MainColor,
		Opacity:          style.Opacity,
		SpecularPower:    power,
		SpecularStrength: strength,
	}}
	if wireframe {
		out = append(out, Pass{
			Kind:    Overlay,
			Color:   style.WireframeColor,
			Opacity: style.WireframeOpacity,
		})
	}
	return out
}

// Specular maps a roughness/metalness pair onto Blinn-Phong terms: rougher
// surfaces get a wider highlight, more metallic ones a stronger one.
func Specular(roughness, metalness float32) (power, strength float32) {
	roughness = mgl32.Clamp(roughness, 0, 1)
	metalness = mgl32.Clamp(metalness, 0, 1)
	power = 8 + (1-roughness)*(1-roughness)*248
	strength = 0.04 + metalness*0.96
	return power, strength
}

// Frame is everything the renderer draws for one frame.
type Frame struct {
	Scene     theme.SceneConfig
	Profile   shapes.Profile
	Transform mgl32.Mat4 // shared by every pass
	Passes    []Pass
}

// Compose derives the frame for state. spin must already be advanced for
// this frame.
func Compose(state viewstate.ViewState, profile shapes.Profile, spin *Spin) Frame {
	return Frame{
		Scene:     state.Scene(),
		Profile:   profile,
		Transform: spin.Transform(),
		Passes:    Passes(state.Material(), state.Wireframe),
	}
}
