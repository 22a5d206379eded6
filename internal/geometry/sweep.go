package geometry

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// profileNormals returns the outward 2D normal at each point of a lathe
// profile, from the tangent across the neighbouring points.
func profileNormals(points []mgl32.Vec2) []mgl32.Vec2 {
	out := make([]mgl32.Vec2, len(points))
	for j := range points {
		prev, next := points[max(j-1, 0)], points[min(j+1, len(points)-1)]
		t := next.Sub(prev)
		n := mgl32.Vec2{t[1], -t[0]}
		if l := n.Len(); l > 1e-8 {
			n = n.Mul(1 / l)
		} else {
			n = mgl32.Vec2{1, 0}
		}
		out[j] = n
	}
	return out
}

// buildLathe revolves points (x = distance from the Y axis, y = height)
// a full turn around Y.
func buildLathe(points []mgl32.Vec2, segments int) *Mesh {
	var b builder
	normals := profileNormals(points)
	for i := 0; i <= segments; i++ {
		phi := float32(i) / float32(segments) * twoPi
		sin, cos := math32.Sin(phi), math32.Cos(phi)
		for j, p := range points {
			n := normals[j]
			b.vertex(
				mgl32.Vec3{p[0] * sin, p[1], p[0] * cos},
				mgl32.Vec3{n[0] * sin, n[1], n[0] * cos},
			)
		}
	}
	stride := len(points)
	for i := 0; i < segments; i++ {
		for j := 0; j < stride-1; j++ {
			base := j + i*stride
			a := uint16(base)
			c := uint16(base + stride)
			d := uint16(base + stride + 1)
			e := uint16(base + 1)
			b.tri(a, c, e)
			b.tri(d, e, c)
		}
	}
	return b.mesh()
}

// outlineOffsets returns, for a counter-clockwise outline, the outward
// bisector direction at each corner.
func outlineOffsets(outline []mgl32.Vec2) []mgl32.Vec2 {
	n := len(outline)
	out := make([]mgl32.Vec2, n)
	edgeNormal := func(a, b mgl32.Vec2) mgl32.Vec2 {
		d := b.Sub(a)
		v := mgl32.Vec2{d[1], -d[0]}
		if l := v.Len(); l > 1e-8 {
			return v.Mul(1 / l)
		}
		return v
	}
	for i := range outline {
		prev := outline[(i+n-1)%n]
		next := outline[(i+1)%n]
		bis := edgeNormal(prev, outline[i]).Add(edgeNormal(outline[i], next))
		if l := bis.Len(); l > 1e-8 {
			bis = bis.Mul(1 / l)
		}
		out[i] = bis
	}
	return out
}

// buildExtrude extrudes a closed counter-clockwise outline along +Z with a
// rounded bevel on both ends, then centres the result on the origin. The
// outline must be star-shaped around the origin; caps are fans from there.
func buildExtrude(outline []mgl32.Vec2, depth, bevelThickness, bevelSize float32, bevelSegments int) *Mesh {
	offsets := outlineOffsets(outline)
	layer := func(z, grow float32) []mgl32.Vec3 {
		ring := make([]mgl32.Vec3, len(outline))
		for i, p := range outline {
			q := p.Add(offsets[i].Mul(grow))
			ring[i] = mgl32.Vec3{q[0], q[1], z - depth/2}
		}
		return ring
	}

	var layers [][]mgl32.Vec3
	for s := 0; s <= bevelSegments; s++ {
		t := float32(s) / float32(max(bevelSegments, 1))
		layers = append(layers, layer(-bevelThickness*math32.Cos(t*math32.Pi/2), bevelSize*math32.Sin(t*math32.Pi/2)))
	}
	for s := bevelSegments; s >= 0; s-- {
		t := float32(s) / float32(max(bevelSegments, 1))
		layers = append(layers, layer(depth+bevelThickness*math32.Cos(t*math32.Pi/2), bevelSize*math32.Sin(t*math32.Pi/2)))
	}

	var b builder
	n := len(outline)
	for k := 0; k+1 < len(layers); k++ {
		lo, hi := layers[k], layers[k+1]
		for i := 0; i < n; i++ {
			j := (i + 1) % n
			mid := lo[i].Add(lo[j]).Add(hi[i]).Add(hi[j]).Mul(0.25)
			outward := mgl32.Vec3{mid[0], mid[1], 0}
			b.flatQuad(lo[i], lo[j], hi[j], hi[i], outward)
		}
	}

	front, back := layers[0], layers[len(layers)-1]
	frontN := mgl32.Vec3{0, 0, -1}
	backN := mgl32.Vec3{0, 0, 1}
	fc := b.vertex(mgl32.Vec3{0, 0, front[0][2]}, frontN)
	bc := b.vertex(mgl32.Vec3{0, 0, back[0][2]}, backN)
	fr := make([]uint16, n)
	br := make([]uint16, n)
	for i := 0; i < n; i++ {
		fr[i] = b.vertex(front[i], frontN)
		br[i] = b.vertex(back[i], backN)
	}
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		b.tri(fc, fr[j], fr[i])
		b.tri(bc, br[i], br[j])
	}
	return b.mesh()
}
