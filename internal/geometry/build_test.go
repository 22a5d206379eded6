package geometry

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testProfile = []mgl32.Vec2{{0.3, -1}, {0.6, -0.5}, {0.5, 0}, {0.7, 0.5}, {0.3, 1}}

var testStar = func() []mgl32.Vec2 {
	var pts []mgl32.Vec2
	for i := 0; i < 10; i++ {
		r := float32(1)
		if i%2 == 1 {
			r = 0.45
		}
		a := math32.Pi/2 + float32(i)*math32.Pi/5
		pts = append(pts, mgl32.Vec2{r * math32.Cos(a), r * math32.Sin(a)})
	}
	return pts
}()

func TestBuildAllKinds(t *testing.T) {
	tests := []Descriptor{
		{Kind: Box, Params: []float32{1, 1, 1}},
		{Kind: Sphere, Params: []float32{1, 32, 32}},
		{Kind: Torus, Params: []float32{1, 0.4, 32, 64}},
		{Kind: TorusKnot, Params: []float32{1, 0.4, 128, 16}},
		{Kind: Octahedron, Params: []float32{1}},
		{Kind: Icosahedron, Params: []float32{1}},
		{Kind: Dodecahedron, Params: []float32{1}},
		{Kind: Cone, Params: []float32{0.5, 2, 32}},
		{Kind: Cylinder, Params: []float32{0.5, 0.5, 2, 32}},
		{Kind: Capsule, Params: []float32{0.5, 1, 4, 8}},
		{Kind: Plane, Params: []float32{2, 2}},
		{Kind: Circle, Params: []float32{1, 32}},
		{Kind: Ring, Params: []float32{0.5, 1, 32}},
		{Kind: Tetrahedron, Params: []float32{1}},
		{Kind: Lathe, Params: []float32{32}, Points: testProfile},
		{Kind: Extrude, Params: []float32{0.4, 0.1, 0.1, 3}, Points: testStar},
	}
	for _, d := range tests {
		t.Run(d.Kind.String(), func(t *testing.T) {
			m, err := Build(d)
			require.NoError(t, err)
			require.NotZero(t, m.TriangleCount())
			assert.Len(t, m.Normals, m.VertexCount())
			assert.Zero(t, len(m.Indices)%3)
			for _, i := range m.Indices {
				require.Less(t, int(i), m.VertexCount())
			}
			for _, n := range m.Normals {
				assert.InDelta(t, 1, n.Len(), 1e-4)
			}
			pos, nor := m.Flatten()
			assert.Len(t, pos, 3*m.VertexCount())
			assert.Len(t, nor, 3*m.VertexCount())
		})
	}
}

func TestBoxBounds(t *testing.T) {
	m, err := Build(Descriptor{Kind: Box, Params: []float32{1, 2, 3}})
	require.NoError(t, err)
	lo, hi := m.Bounds()
	assert.Equal(t, mgl32.Vec3{-0.5, -1, -1.5}, lo)
	assert.Equal(t, mgl32.Vec3{0.5, 1, 1.5}, hi)
	assert.Equal(t, 12, m.TriangleCount())
}

func TestPolyhedraCornersOnRadius(t *testing.T) {
	for _, k := range []Kind{Tetrahedron, Octahedron, Icosahedron, Dodecahedron} {
		m, err := Build(Descriptor{Kind: k, Params: []float32{2}})
		require.NoError(t, err, k.String())
		for _, p := range m.Positions {
			assert.InDelta(t, 2, p.Len(), 1e-4, k.String())
		}
	}
}

func TestPolyhedraFaceCounts(t *testing.T) {
	want := map[Kind]int{Tetrahedron: 4, Octahedron: 8, Icosahedron: 20, Dodecahedron: 36}
	for k, n := range want {
		m, err := Build(Descriptor{Kind: k, Params: []float32{1}})
		require.NoError(t, err)
		assert.Equal(t, n, m.TriangleCount(), k.String())
	}
}

func TestFlatFacesPointOutward(t *testing.T) {
	m, err := Build(Descriptor{Kind: Dodecahedron, Params: []float32{1}})
	require.NoError(t, err)
	for i := 0; i < len(m.Indices); i += 3 {
		p := m.Positions[m.Indices[i]]
		assert.Positive(t, m.Normals[m.Indices[i]].Dot(p))
	}
}

func TestConeHasNoTopCap(t *testing.T) {
	cone, err := Build(Descriptor{Kind: Cone, Params: []float32{0.5, 2, 8}})
	require.NoError(t, err)
	cyl, err := Build(Descriptor{Kind: Cylinder, Params: []float32{0.5, 0.5, 2, 8}})
	require.NoError(t, err)
	assert.Equal(t, cyl.TriangleCount()-8, cone.TriangleCount())
	lo, hi := cone.Bounds()
	assert.InDelta(t, -1, lo[1], 1e-6)
	assert.InDelta(t, 1, hi[1], 1e-6)
}

func TestCapsuleHeight(t *testing.T) {
	m, err := Build(Descriptor{Kind: Capsule, Params: []float32{0.5, 1, 4, 8}})
	require.NoError(t, err)
	lo, hi := m.Bounds()
	assert.InDelta(t, -1, lo[1], 1e-5)
	assert.InDelta(t, 1, hi[1], 1e-5)
}

func TestExtrudeIsCentred(t *testing.T) {
	m, err := Build(Descriptor{Kind: Extrude, Params: []float32{0.4, 0.1, 0.1, 3}, Points: testStar})
	require.NoError(t, err)
	lo, hi := m.Bounds()
	assert.InDelta(t, -0.3, lo[2], 1e-5)
	assert.InDelta(t, 0.3, hi[2], 1e-5)
}

func TestBuildRejectsBadDescriptors(t *testing.T) {
	tests := []struct {
		name string
		d    Descriptor
	}{
		{"unknown kind", Descriptor{Kind: Kind(99)}},
		{"wrong param count", Descriptor{Kind: Sphere, Params: []float32{1}}},
		{"lathe without profile", Descriptor{Kind: Lathe, Params: []float32{12}}},
		{"extrude without outline", Descriptor{Kind: Extrude, Params: []float32{1, 0, 0, 0}, Points: testProfile[:2]}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Build(tt.d)
			assert.ErrorIs(t, err, ErrBadDescriptor)
		})
	}
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "torusKnot", TorusKnot.String())
	assert.Equal(t, "unknown", Kind(-1).String())
}

func TestUnindexedFollowsIndices(t *testing.T) {
	for _, d := range []Descriptor{
		{Kind: Box, Params: []float32{1, 1, 1}},
		{Kind: Sphere, Params: []float32{1, 32, 32}},
		{Kind: Torus, Params: []float32{1, 0.4, 32, 64}},
	} {
		t.Run(d.Kind.String(), func(t *testing.T) {
			m, err := Build(d)
			require.NoError(t, err)
			pos, nor := m.Unindexed()
			require.Len(t, pos, 9*m.TriangleCount())
			require.Len(t, nor, 9*m.TriangleCount())
			for k, i := range m.Indices {
				got := mgl32.Vec3{pos[3*k], pos[3*k+1], pos[3*k+2]}
				require.Equal(t, m.Positions[i], got, "slot %d", k)
				require.Equal(t, m.Normals[i], mgl32.Vec3{nor[3*k], nor[3*k+1], nor[3*k+2]}, "slot %d", k)
			}
		})
	}
}

func TestIndexedMeshesShareVertices(t *testing.T) {
	// Each box face shares two corners between its triangles.
	m, err := Build(Descriptor{Kind: Box, Params: []float32{1, 1, 1}})
	require.NoError(t, err)
	assert.Equal(t, 24, m.VertexCount())
	assert.Equal(t, []uint16{0, 1, 2, 0, 2, 3}, m.Indices[:6])
}
