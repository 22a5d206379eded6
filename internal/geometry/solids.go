package geometry

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

func buildBox(w, h, d float32) *Mesh {
	var b builder
	x, y, z := w/2, h/2, d/2
	corners := [8]mgl32.Vec3{
		{-x, -y, -z}, {x, -y, -z}, {x, y, -z}, {-x, y, -z},
		{-x, -y, z}, {x, -y, z}, {x, y, z}, {-x, y, z},
	}
	faces := [6]struct {
		idx [4]int
		n   mgl32.Vec3
	}{
		{[4]int{1, 2, 6, 5}, mgl32.Vec3{1, 0, 0}},
		{[4]int{0, 4, 7, 3}, mgl32.Vec3{-1, 0, 0}},
		{[4]int{3, 7, 6, 2}, mgl32.Vec3{0, 1, 0}},
		{[4]int{0, 1, 5, 4}, mgl32.Vec3{0, -1, 0}},
		{[4]int{4, 5, 6, 7}, mgl32.Vec3{0, 0, 1}},
		{[4]int{0, 3, 2, 1}, mgl32.Vec3{0, 0, -1}},
	}
	for _, f := range faces {
		a := b.vertex(corners[f.idx[0]], f.n)
		c := b.vertex(corners[f.idx[1]], f.n)
		d := b.vertex(corners[f.idx[2]], f.n)
		e := b.vertex(corners[f.idx[3]], f.n)
		b.tri(a, c, d)
		b.tri(a, d, e)
	}
	return b.mesh()
}

func buildSphere(radius float32, widthSegments, heightSegments int) *Mesh {
	var b builder
	grid := make([][]uint16, heightSegments+1)
	for iy := 0; iy <= heightSegments; iy++ {
		v := float32(iy) / float32(heightSegments)
		row := make([]uint16, widthSegments+1)
		for ix := 0; ix <= widthSegments; ix++ {
			u := float32(ix) / float32(widthSegments)
			p := mgl32.Vec3{
				-radius * math32.Cos(u*twoPi) * math32.Sin(v*math32.Pi),
				radius * math32.Cos(v*math32.Pi),
				radius * math32.Sin(u*twoPi) * math32.Sin(v*math32.Pi),
			}
			row[ix] = b.vertex(p, p)
		}
		grid[iy] = row
	}
	for iy := 0; iy < heightSegments; iy++ {
		for ix := 0; ix < widthSegments; ix++ {
			a := grid[iy][ix+1]
			c := grid[iy][ix]
			d := grid[iy+1][ix]
			e := grid[iy+1][ix+1]
			if iy != 0 {
				b.tri(a, c, e)
			}
			if iy != heightSegments-1 {
				b.tri(c, d, e)
			}
		}
	}
	return b.mesh()
}

func buildTorus(radius, tube float32, radialSegments, tubularSegments int) *Mesh {
	var b builder
	for j := 0; j <= radialSegments; j++ {
		v := float32(j) / float32(radialSegments) * twoPi
		for i := 0; i <= tubularSegments; i++ {
			u := float32(i) / float32(tubularSegments) * twoPi
			p := mgl32.Vec3{
				(radius + tube*math32.Cos(v)) * math32.Cos(u),
				(radius + tube*math32.Cos(v)) * math32.Sin(u),
				tube * math32.Sin(v),
			}
			center := mgl32.Vec3{radius * math32.Cos(u), radius * math32.Sin(u), 0}
			b.vertex(p, p.Sub(center))
		}
	}
	stride := tubularSegments + 1
	for j := 1; j <= radialSegments; j++ {
		for i := 1; i <= tubularSegments; i++ {
			a := uint16(stride*j + i - 1)
			c := uint16(stride*(j-1) + i - 1)
			d := uint16(stride*(j-1) + i)
			e := uint16(stride*j + i)
			b.tri(a, c, e)
			b.tri(c, d, e)
		}
	}
	return b.mesh()
}

// torusKnotP and torusKnotQ are the winding numbers of the (2,3) trefoil knot.
const (
	torusKnotP = 2
	torusKnotQ = 3
)

func knotPoint(u, radius float32) mgl32.Vec3 {
	quOverP := torusKnotQ / float32(torusKnotP) * u
	cs := math32.Cos(quOverP)
	return mgl32.Vec3{
		radius * (2 + cs) * 0.5 * math32.Cos(u),
		radius * (2 + cs) * math32.Sin(u) * 0.5,
		radius * math32.Sin(quOverP) * 0.5,
	}
}

func buildTorusKnot(radius, tube float32, tubularSegments, radialSegments int) *Mesh {
	var b builder
	for i := 0; i <= tubularSegments; i++ {
		u := float32(i) / float32(tubularSegments) * torusKnotP * twoPi
		p1 := knotPoint(u, radius)
		p2 := knotPoint(u+0.01, radius)
		t := p2.Sub(p1)
		n := p2.Add(p1)
		bn := safeNormalize(t.Cross(n))
		n = safeNormalize(bn.Cross(t))
		for j := 0; j <= radialSegments; j++ {
			v := float32(j) / float32(radialSegments) * twoPi
			cx := -tube * math32.Cos(v)
			cy := tube * math32.Sin(v)
			p := p1.Add(n.Mul(cx)).Add(bn.Mul(cy))
			b.vertex(p, p.Sub(p1))
		}
	}
	stride := radialSegments + 1
	for j := 1; j <= tubularSegments; j++ {
		for i := 1; i <= radialSegments; i++ {
			a := uint16(stride*(j-1) + i - 1)
			c := uint16(stride*j + i - 1)
			d := uint16(stride*j + i)
			e := uint16(stride*(j-1) + i)
			b.tri(a, c, e)
			b.tri(c, d, e)
		}
	}
	return b.mesh()
}
