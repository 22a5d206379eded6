package shapes

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

func constant(x, y, z float32) RotationRule {
	d := mgl32.Vec3{x, y, z}
	return func(float32) mgl32.Vec3 { return d }
}

var (
	torusKnotSpin = constant(0.003, 0.005, 0.002)
	sphereSpin    = constant(0.002, 0.003, 0)
	icosaSpin     = constant(0.006, 0.004, 0)
	capsuleSpin   = constant(0.004, 0, 0.003)
	defaultSpin   = constant(0.005, 0.005, 0)
)

// dodecaSpin sways back and forth with the clock instead of spinning steadily.
func dodecaSpin(elapsed float32) mgl32.Vec3 {
	return mgl32.Vec3{math32.Sin(elapsed) * 0.003, math32.Cos(elapsed) * 0.003, 0}
}

func rotationFor(id ID) RotationRule {
	switch id {
	case TorusKnot:
		return torusKnotSpin
	case Sphere:
		return sphereSpin
	case Icosahedron:
		return icosaSpin
	case Dodecahedron:
		return dodecaSpin
	case Capsule:
		return capsuleSpin
	default:
		return defaultSpin
	}
}
