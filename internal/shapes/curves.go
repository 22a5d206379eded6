package shapes

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	latheSegments = 32

	extrudeDepth          = 0.4
	extrudeBevelThickness = 0.1
	extrudeBevelSize      = 0.1
	extrudeBevelSegments  = 3

	latheProfilePoints = 10
	starPoints         = 5
	starOuterRadius    = 1
	starInnerRadius    = 0.45
)

// Curves is the 2D data lathe and extrude are swept from. Build it once with
// NewCurves and share it; nothing mutates it afterwards.
type Curves struct {
	LatheProfile   []mgl32.Vec2
	ExtrudeOutline []mgl32.Vec2
}

// NewCurves builds the vase-like lathe profile and the five-point star outline.
func NewCurves() *Curves {
	profile := make([]mgl32.Vec2, latheProfilePoints)
	for i := range profile {
		fi := float32(i)
		profile[i] = mgl32.Vec2{math32.Sin(fi*0.2)*0.5 + 0.3, (fi - 5) * 0.2}
	}

	outline := make([]mgl32.Vec2, 2*starPoints)
	for i := range outline {
		r := float32(starOuterRadius)
		if i%2 == 1 {
			r = starInnerRadius
		}
		a := math32.Pi/2 + float32(i)*math32.Pi/starPoints
		outline[i] = mgl32.Vec2{r * math32.Cos(a), r * math32.Sin(a)}
	}
	return &Curves{LatheProfile: profile, ExtrudeOutline: outline}
}

func (c *Curves) lathe() []mgl32.Vec2 {
	if c == nil {
		return nil
	}
	return c.LatheProfile
}

func (c *Curves) outline() []mgl32.Vec2 {
	if c == nil {
		return nil
	}
	return c.ExtrudeOutline
}
