package geometry

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Mesh is an indexed triangle list on the CPU. Positions and Normals have the
// same length; every three Indices form one counter-clockwise triangle.
type Mesh struct {
	Positions []mgl32.Vec3
	Normals   []mgl32.Vec3
	Indices   []uint16
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int { return len(m.Positions) }

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int { return len(m.Indices) / 3 }

// Bounds returns the axis-aligned bounding box of all positions.
// An empty mesh has zero bounds.
func (m *Mesh) Bounds() (lo, hi mgl32.Vec3) {
	if len(m.Positions) == 0 {
		return lo, hi
	}
	lo, hi = m.Positions[0], m.Positions[0]
	for _, p := range m.Positions[1:] {
		for i := 0; i < 3; i++ {
			lo[i] = math32.Min(lo[i], p[i])
			hi[i] = math32.Max(hi[i], p[i])
		}
	}
	return lo, hi
}

// Flatten returns positions and normals as packed xyz float slices, the
// layout GPU vertex buffers expect.
func (m *Mesh) Flatten() (positions, normals []float32) {
	positions = make([]float32, 0, len(m.Positions)*3)
	normals = make([]float32, 0, len(m.Normals)*3)
	for i, p := range m.Positions {
		n := m.Normals[i]
		positions = append(positions, p[0], p[1], p[2])
		normals = append(normals, n[0], n[1], n[2])
	}
	return positions, normals
}

// Unindexed resolves Indices into a plain triangle list: three packed xyz
// positions and normals per triangle, in index order. Renderers that draw
// without an index buffer take vertices in exactly this order.
func (m *Mesh) Unindexed() (positions, normals []float32) {
	positions = make([]float32, 0, len(m.Indices)*3)
	normals = make([]float32, 0, len(m.Indices)*3)
	for _, i := range m.Indices {
		p, n := m.Positions[i], m.Normals[i]
		positions = append(positions, p[0], p[1], p[2])
		normals = append(normals, n[0], n[1], n[2])
	}
	return positions, normals
}

// builder accumulates vertices and triangles for one mesh.
type builder struct {
	m Mesh
}

func (b *builder) vertex(p, n mgl32.Vec3) uint16 {
	b.m.Positions = append(b.m.Positions, p)
	b.m.Normals = append(b.m.Normals, safeNormalize(n))
	return uint16(len(b.m.Positions) - 1)
}

func (b *builder) tri(a, c, d uint16) {
	b.m.Indices = append(b.m.Indices, a, c, d)
}

// flatTri adds a triangle with its own three vertices and a face normal.
// The winding is flipped when the face normal points against outward, so
// flat-shaded solids stay correct regardless of table order.
func (b *builder) flatTri(p0, p1, p2, outward mgl32.Vec3) {
	n := p1.Sub(p0).Cross(p2.Sub(p0))
	if n.Dot(outward) < 0 {
		p1, p2 = p2, p1
		n = n.Mul(-1)
	}
	i0 := b.vertex(p0, n)
	i1 := b.vertex(p1, n)
	i2 := b.vertex(p2, n)
	b.tri(i0, i1, i2)
}

// flatQuad adds the quad p0 p1 p2 p3 as two flat triangles.
func (b *builder) flatQuad(p0, p1, p2, p3, outward mgl32.Vec3) {
	b.flatTri(p0, p1, p2, outward)
	b.flatTri(p0, p2, p3, outward)
}

func (b *builder) mesh() *Mesh {
	m := b.m
	return &m
}

func safeNormalize(v mgl32.Vec3) mgl32.Vec3 {
	l := v.Len()
	if l < 1e-8 {
		return mgl32.Vec3{0, 1, 0}
	}
	return v.Mul(1 / l)
}

const twoPi = 2 * math32.Pi
