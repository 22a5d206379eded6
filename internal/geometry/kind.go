package geometry

import "github.com/go-gl/mathgl/mgl32"

// Kind is the family of mesh a Descriptor builds.
type Kind int

// Mesh kinds, one per geometry constructor.
const (
	Box Kind = iota
	Sphere
	Torus
	TorusKnot
	Octahedron
	Icosahedron
	Dodecahedron
	Cone
	Cylinder
	Capsule
	Plane
	Circle
	Ring
	Tetrahedron
	Lathe
	Extrude
)

var kindNames = [...]string{
	Box:          "box",
	Sphere:       "sphere",
	Torus:        "torus",
	TorusKnot:    "torusKnot",
	Octahedron:   "octahedron",
	Icosahedron:  "icosahedron",
	Dodecahedron: "dodecahedron",
	Cone:         "cone",
	Cylinder:     "cylinder",
	Capsule:      "capsule",
	Plane:        "plane",
	Circle:       "circle",
	Ring:         "ring",
	Tetrahedron:  "tetrahedron",
	Lathe:        "lathe",
	Extrude:      "extrude",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// paramCount is the number of numeric construction parameters each kind takes,
// in three.js constructor order.
var paramCount = [...]int{
	Box:          3, // width, height, depth
	Sphere:       3, // radius, widthSegments, heightSegments
	Torus:        4, // radius, tube, radialSegments, tubularSegments
	TorusKnot:    4, // radius, tube, tubularSegments, radialSegments
	Octahedron:   1, // radius
	Icosahedron:  1,
	Dodecahedron: 1,
	Cone:         3, // radius, height, radialSegments
	Cylinder:     4, // radiusTop, radiusBottom, height, radialSegments
	Capsule:      4, // radius, length, capSegments, radialSegments
	Plane:        2, // width, height
	Circle:       2, // radius, segments
	Ring:         3, // innerRadius, outerRadius, thetaSegments
	Tetrahedron:  1,
	Lathe:        1, // segments
	Extrude:      4, // depth, bevelThickness, bevelSize, bevelSegments
}

// Descriptor fully describes one mesh: its kind, the ordered numeric
// parameters, and for Lathe/Extrude the 2D curve the mesh is swept from.
// Points is shared, read-only data; builders never modify it.
type Descriptor struct {
	Kind   Kind
	Params []float32
	Points []mgl32.Vec2
}
