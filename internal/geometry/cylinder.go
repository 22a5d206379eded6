package geometry

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// buildCylinder builds a closed frustum along Y centred on the origin.
// A zero radius on either end skips that cap, which is how cones are made.
func buildCylinder(radiusTop, radiusBottom, height float32, radialSegments int) *Mesh {
	var b builder
	half := height / 2
	slope := (radiusBottom - radiusTop) / height

	var rows [2][]uint16
	for y := 0; y <= 1; y++ {
		v := float32(y)
		radius := v*(radiusBottom-radiusTop) + radiusTop
		rows[y] = make([]uint16, radialSegments+1)
		for x := 0; x <= radialSegments; x++ {
			theta := float32(x) / float32(radialSegments) * twoPi
			sin, cos := math32.Sin(theta), math32.Cos(theta)
			p := mgl32.Vec3{radius * sin, -v*height + half, radius * cos}
			rows[y][x] = b.vertex(p, mgl32.Vec3{sin, slope, cos})
		}
	}
	for x := 0; x < radialSegments; x++ {
		a := rows[0][x]
		c := rows[1][x]
		d := rows[1][x+1]
		e := rows[0][x+1]
		b.tri(a, c, e)
		b.tri(c, d, e)
	}

	if radiusTop > 0 {
		cylinderCap(&b, radiusTop, half, radialSegments, true)
	}
	if radiusBottom > 0 {
		cylinderCap(&b, radiusBottom, half, radialSegments, false)
	}
	return b.mesh()
}

func cylinderCap(b *builder, radius, half float32, radialSegments int, top bool) {
	sign := float32(1)
	if !top {
		sign = -1
	}
	n := mgl32.Vec3{0, sign, 0}
	center := b.vertex(mgl32.Vec3{0, half * sign, 0}, n)
	ring := make([]uint16, radialSegments+1)
	for x := 0; x <= radialSegments; x++ {
		theta := float32(x) / float32(radialSegments) * twoPi
		ring[x] = b.vertex(mgl32.Vec3{radius * math32.Sin(theta), half * sign, radius * math32.Cos(theta)}, n)
	}
	for x := 0; x < radialSegments; x++ {
		if top {
			b.tri(ring[x], ring[x+1], center)
		} else {
			b.tri(ring[x+1], ring[x], center)
		}
	}
}

func buildCone(radius, height float32, radialSegments int) *Mesh {
	return buildCylinder(0, radius, height, radialSegments)
}

// capsuleProfile is the half outline of a capsule in the XY plane: a
// quarter circle at the bottom, the straight side, a quarter circle on top.
func capsuleProfile(radius, length float32, capSegments int) []mgl32.Vec2 {
	half := length / 2
	pts := make([]mgl32.Vec2, 0, 2*(capSegments+1))
	for i := 0; i <= capSegments; i++ {
		a := -math32.Pi/2 + float32(i)/float32(capSegments)*math32.Pi/2
		pts = append(pts, mgl32.Vec2{radius * math32.Cos(a), radius*math32.Sin(a) - half})
	}
	for i := 0; i <= capSegments; i++ {
		a := float32(i) / float32(capSegments) * math32.Pi / 2
		pts = append(pts, mgl32.Vec2{radius * math32.Cos(a), radius*math32.Sin(a) + half})
	}
	return pts
}

func buildCapsule(radius, length float32, capSegments, radialSegments int) *Mesh {
	return buildLathe(capsuleProfile(radius, length, capSegments), radialSegments)
}
