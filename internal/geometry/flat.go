package geometry

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

var facingZ = mgl32.Vec3{0, 0, 1}

func buildPlane(width, height float32) *Mesh {
	var b builder
	x, y := width/2, height/2
	a := b.vertex(mgl32.Vec3{-x, -y, 0}, facingZ)
	c := b.vertex(mgl32.Vec3{x, -y, 0}, facingZ)
	d := b.vertex(mgl32.Vec3{x, y, 0}, facingZ)
	e := b.vertex(mgl32.Vec3{-x, y, 0}, facingZ)
	b.tri(a, c, d)
	b.tri(a, d, e)
	return b.mesh()
}

func buildCircle(radius float32, segments int) *Mesh {
	var b builder
	center := b.vertex(mgl32.Vec3{}, facingZ)
	for s := 0; s <= segments; s++ {
		theta := float32(s) / float32(segments) * twoPi
		b.vertex(mgl32.Vec3{radius * math32.Cos(theta), radius * math32.Sin(theta), 0}, facingZ)
	}
	for s := 1; s <= segments; s++ {
		b.tri(uint16(s), uint16(s+1), center)
	}
	return b.mesh()
}

func buildRing(innerRadius, outerRadius float32, thetaSegments int) *Mesh {
	var b builder
	for j := 0; j <= 1; j++ {
		radius := innerRadius + float32(j)*(outerRadius-innerRadius)
		for i := 0; i <= thetaSegments; i++ {
			theta := float32(i) / float32(thetaSegments) * twoPi
			b.vertex(mgl32.Vec3{radius * math32.Cos(theta), radius * math32.Sin(theta), 0}, facingZ)
		}
	}
	stride := thetaSegments + 1
	for i := 0; i < thetaSegments; i++ {
		a := uint16(i)
		c := uint16(i + stride)
		d := uint16(i + stride + 1)
		e := uint16(i + 1)
		b.tri(a, c, e)
		b.tri(c, d, e)
	}
	return b.mesh()
}
