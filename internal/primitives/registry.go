package primitives

import (
	"fmt"
	"runtime"
	"unsafe"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"

	"shape-viewer/internal/geometry"
	"shape-viewer/internal/shapes"
	"shape-viewer/internal/stage"
	"shape-viewer/internal/theme"
)

// cached is one uploaded shape. Only the GPU side is kept; CPU arrays are
// dropped after upload.
type cached struct {
	mesh rl.Mesh
}

// Registry maps shape ids to GPU meshes. Meshes are built and uploaded on
// first use so that GPU resources are allocated after the window/OpenGL
// context exists, and reused for every later frame and pass.
type Registry struct {
	cache     map[shapes.ID]*cached
	lit       rl.Material // solid pass
	basic     rl.Material // wireframe overlay, unlit
	materials bool
	viewPos   [3]float32
	scene     theme.SceneConfig
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		cache: make(map[shapes.ID]*cached),
		scene: theme.Scene(true),
	}
}

// SetView sets camera position and scene lighting for this frame. Call once
// per frame before drawing.
func (r *Registry) SetView(viewPos [3]float32, scene theme.SceneConfig) {
	r.viewPos = viewPos
	r.scene = scene
}

func (r *Registry) ensureMaterials() {
	if r.materials {
		return
	}
	r.lit = rl.LoadMaterialDefault()
	if shader := loadLitShader(); rl.IsShaderValid(shader) {
		r.lit.Shader = shader
	}
	r.basic = rl.LoadMaterialDefault()
	r.materials = true
}

// Ensure uploads the mesh for p if it is not cached yet.
func (r *Registry) Ensure(p shapes.Profile) error {
	if _, ok := r.cache[p.ID]; ok {
		return nil
	}
	m, err := geometry.Build(p.Geometry)
	if err != nil {
		return fmt.Errorf("primitives: %s: %w", p.ID, err)
	}
	r.cache[p.ID] = &cached{mesh: upload(m)}
	return nil
}

// meshArrays holds the vertex streams of one mesh as raylib draws them
// without an index buffer: every three vertices are one triangle.
type meshArrays struct {
	vertices      []float32
	normals       []float32
	texcoords     []float32
	vertexCount   int32
	triangleCount int32
}

func newMeshArrays(m *geometry.Mesh) meshArrays {
	vertices, normals := m.Unindexed()
	n := len(vertices) / 3
	return meshArrays{
		vertices:      vertices,
		normals:       normals,
		texcoords:     make([]float32, n*2),
		vertexCount:   int32(n),
		triangleCount: int32(n / 3),
	}
}

// upload copies m to the GPU as a plain triangle list. The Go arrays are
// pinned for the duration of the call and detached from the mesh afterwards,
// so raylib never frees or keeps Go memory. With no indices DrawMesh draws
// vertexCount vertices in order.
func upload(m *geometry.Mesh) rl.Mesh {
	a := newMeshArrays(m)

	var pin runtime.Pinner
	defer pin.Unpin()
	pin.Pin(unsafe.SliceData(a.vertices))
	pin.Pin(unsafe.SliceData(a.normals))
	pin.Pin(unsafe.SliceData(a.texcoords))

	mesh := rl.Mesh{
		VertexCount:   a.vertexCount,
		TriangleCount: a.triangleCount,
		Vertices:      unsafe.SliceData(a.vertices),
		Normals:       unsafe.SliceData(a.normals),
		Texcoords:     unsafe.SliceData(a.texcoords),
	}
	rl.UploadMesh(&mesh, false)

	mesh.Vertices = nil
	mesh.Normals = nil
	mesh.Texcoords = nil
	return mesh
}

// Draw draws one pass of the shape in p with transform.
// Must be called between BeginMode3D and EndMode3D, after SetView.
func (r *Registry) Draw(p shapes.Profile, pass stage.Pass, transform mgl32.Mat4) error {
	if err := r.Ensure(p); err != nil {
		return err
	}
	r.ensureMaterials()
	c := r.cache[p.ID]

	tint, err := tintColor(pass.Color, pass.Opacity)
	if err != nil {
		return err
	}
	mtl := r.lit
	if pass.Wire() {
		mtl = r.basic
	} else {
		r.setLitShaderUniforms(mtl.Shader, pass)
	}
	if albedo := mtl.GetMap(rl.MapAlbedo); albedo != nil {
		albedo.Color = tint
	}

	// Plane, circle and ring are single-sided.
	rl.DisableBackfaceCulling()
	if pass.Wire() {
		rl.EnableWireMode()
	}
	rl.DrawMesh(c.mesh, mtl, matrix(transform))
	if pass.Wire() {
		rl.DisableWireMode()
	}
	rl.EnableBackfaceCulling()
	return nil
}

// Unload releases every GPU mesh and the shaders. Call before the window closes.
func (r *Registry) Unload() {
	for id, c := range r.cache {
		rl.UnloadMesh(&c.mesh)
		delete(r.cache, id)
	}
	if r.materials {
		if rl.IsShaderValid(r.lit.Shader) {
			rl.UnloadShader(r.lit.Shader)
		}
		r.materials = false
	}
}

func tintColor(hex string, opacity float32) (rl.Color, error) {
	c, err := theme.ParseColor(hex)
	if err != nil {
		return rl.Color{}, err
	}
	return rl.NewColor(c.R, c.G, c.B, uint8(opacity*255+0.5)), nil
}

// matrix converts a column-major mgl32 matrix to raylib's layout, which is
// also column-major with fields named by storage index.
func matrix(m mgl32.Mat4) rl.Matrix {
	return rl.Matrix{
		M0: m[0], M1: m[1], M2: m[2], M3: m[3],
		M4: m[4], M5: m[5], M6: m[6], M7: m[7],
		M8: m[8], M9: m[9], M10: m[10], M11: m[11],
		M12: m[12], M13: m[13], M14: m[14], M15: m[15],
	}
}
