package geometry

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// polyhedron is a convex solid around the origin given as a vertex table and
// triangle index list. Vertices are projected onto the sphere of the
// requested radius before building, so every corner lies at that radius.
type polyhedron struct {
	vertices []mgl32.Vec3
	indices  []int
}

var phi = (1 + math32.Sqrt(5)) / 2

var tetrahedronTable = polyhedron{
	vertices: []mgl32.Vec3{{1, 1, 1}, {-1, -1, 1}, {-1, 1, -1}, {1, -1, -1}},
	indices:  []int{2, 1, 0, 0, 3, 2, 1, 3, 0, 2, 3, 1},
}

var octahedronTable = polyhedron{
	vertices: []mgl32.Vec3{{1, 0, 0}, {-1, 0, 0}, {0, 1, 0}, {0, -1, 0}, {0, 0, 1}, {0, 0, -1}},
	indices:  []int{0, 2, 4, 0, 4, 3, 0, 3, 5, 0, 5, 2, 1, 2, 5, 1, 5, 3, 1, 3, 4, 1, 4, 2},
}

var icosahedronTable = polyhedron{
	vertices: []mgl32.Vec3{
		{-1, phi, 0}, {1, phi, 0}, {-1, -phi, 0}, {1, -phi, 0},
		{0, -1, phi}, {0, 1, phi}, {0, -1, -phi}, {0, 1, -phi},
		{phi, 0, -1}, {phi, 0, 1}, {-phi, 0, -1}, {-phi, 0, 1},
	},
	indices: []int{
		0, 11, 5, 0, 5, 1, 0, 1, 7, 0, 7, 10, 0, 10, 11,
		1, 5, 9, 5, 11, 4, 11, 10, 2, 10, 7, 6, 7, 1, 8,
		3, 9, 4, 3, 4, 2, 3, 2, 6, 3, 6, 8, 3, 8, 9,
		4, 9, 5, 2, 4, 11, 6, 2, 10, 8, 6, 7, 9, 8, 1,
	},
}

var dodecahedronTable = func() polyhedron {
	r := 1 / phi
	return polyhedron{
		vertices: []mgl32.Vec3{
			{-1, -1, -1}, {-1, -1, 1}, {-1, 1, -1}, {-1, 1, 1},
			{1, -1, -1}, {1, -1, 1}, {1, 1, -1}, {1, 1, 1},
			{0, -r, -phi}, {0, -r, phi}, {0, r, -phi}, {0, r, phi},
			{-r, -phi, 0}, {-r, phi, 0}, {r, -phi, 0}, {r, phi, 0},
			{-phi, 0, -r}, {phi, 0, -r}, {-phi, 0, r}, {phi, 0, r},
		},
		indices: []int{
			3, 11, 7, 3, 7, 15, 3, 15, 13,
			7, 19, 17, 7, 17, 6, 7, 6, 15,
			17, 4, 8, 17, 8, 10, 17, 10, 6,
			8, 0, 16, 8, 16, 2, 8, 2, 10,
			0, 12, 1, 0, 1, 18, 0, 18, 16,
			6, 10, 2, 6, 2, 13, 6, 13, 15,
			2, 16, 18, 2, 18, 3, 2, 3, 13,
			18, 1, 9, 18, 9, 11, 18, 11, 3,
			4, 14, 12, 4, 12, 0, 4, 0, 8,
			11, 9, 5, 11, 5, 19, 11, 19, 7,
			19, 5, 14, 19, 14, 4, 19, 4, 17,
			1, 12, 14, 1, 14, 5, 1, 5, 9,
		},
	}
}()

// build emits flat-shaded triangles. The outward hint is the triangle
// centroid, valid because the solid is convex around the origin.
func (p polyhedron) build(radius float32) *Mesh {
	var b builder
	scaled := make([]mgl32.Vec3, len(p.vertices))
	for i, v := range p.vertices {
		scaled[i] = v.Normalize().Mul(radius)
	}
	for i := 0; i+2 < len(p.indices); i += 3 {
		a, c, d := scaled[p.indices[i]], scaled[p.indices[i+1]], scaled[p.indices[i+2]]
		centroid := a.Add(c).Add(d).Mul(1.0 / 3)
		b.flatTri(a, c, d, centroid)
	}
	return b.mesh()
}
