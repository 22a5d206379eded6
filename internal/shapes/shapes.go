// Package shapes maps a shape id to the geometry it shows and the way it spins.
package shapes

import (
	"strings"

	"github.com/go-gl/mathgl/mgl32"

	"shape-viewer/internal/geometry"
)

// ID names a selectable shape. The zero value is not a valid id; Select
// treats it, like any other unknown id, as Cube.
type ID string

const (
	Cube         ID = "cube"
	Sphere       ID = "sphere"
	Torus        ID = "torus"
	TorusKnot    ID = "torusKnot"
	Octahedron   ID = "octahedron"
	Icosahedron  ID = "icosahedron"
	Dodecahedron ID = "dodecahedron"
	Cone         ID = "cone"
	Cylinder     ID = "cylinder"
	Capsule      ID = "capsule"
	Plane        ID = "plane"
	Circle       ID = "circle"
	Ring         ID = "ring"
	Tetrahedron  ID = "tetrahedron"
	Lathe        ID = "lathe"
	Extrude      ID = "extrude"
)

// All lists every supported id in the order the shape selector shows them.
var All = []ID{
	Cube, Sphere, Torus, TorusKnot, Octahedron, Icosahedron, Dodecahedron, Cone,
	Cylinder, Capsule, Plane, Circle, Ring, Tetrahedron, Lathe, Extrude,
}

// Valid reports whether id is one of All.
func Valid(id ID) bool {
	for _, s := range All {
		if s == id {
			return true
		}
	}
	return false
}

// Label returns the display name: the id with its first letter upper-cased.
func (id ID) Label() string {
	if id == "" {
		return ""
	}
	return strings.ToUpper(string(id[:1])) + string(id[1:])
}

// Index returns the position of id in All, or -1.
func Index(id ID) int {
	for i, s := range All {
		if s == id {
			return i
		}
	}
	return -1
}

// Step returns the id delta places away from id in All, wrapping around.
// Unknown ids step from Cube.
func Step(id ID, delta int) ID {
	i := max(Index(id), 0)
	n := len(All)
	return All[((i+delta)%n+n)%n]
}

// Profile is everything the renderer needs to show a shape.
type Profile struct {
	ID       ID
	Geometry geometry.Descriptor
	Rotation RotationRule
}

// Select returns the profile for id. Lathe and extrude reuse the curve data
// in c by reference. Unknown ids get the cube profile.
func Select(id ID, c *Curves) Profile {
	p := Profile{ID: id, Rotation: rotationFor(id)}
	switch id {
	case Sphere:
		p.Geometry = desc(geometry.Sphere, 1, 32, 32)
	case Torus:
		p.Geometry = desc(geometry.Torus, 1, 0.4, 32, 64)
	case TorusKnot:
		p.Geometry = desc(geometry.TorusKnot, 1, 0.4, 128, 16)
	case Octahedron:
		p.Geometry = desc(geometry.Octahedron, 1)
	case Icosahedron:
		p.Geometry = desc(geometry.Icosahedron, 1)
	case Dodecahedron:
		p.Geometry = desc(geometry.Dodecahedron, 1)
	case Cone:
		p.Geometry = desc(geometry.Cone, 0.5, 2, 32)
	case Cylinder:
		p.Geometry = desc(geometry.Cylinder, 0.5, 0.5, 2, 32)
	case Capsule:
		p.Geometry = desc(geometry.Capsule, 0.5, 1, 4, 8)
	case Plane:
		p.Geometry = desc(geometry.Plane, 2, 2)
	case Circle:
		p.Geometry = desc(geometry.Circle, 1, 32)
	case Ring:
		p.Geometry = desc(geometry.Ring, 0.5, 1, 32)
	case Tetrahedron:
		p.Geometry = desc(geometry.Tetrahedron, 1)
	case Lathe:
		p.Geometry = desc(geometry.Lathe, latheSegments)
		p.Geometry.Points = c.lathe()
	case Extrude:
		p.Geometry = desc(geometry.Extrude, extrudeDepth, extrudeBevelThickness, extrudeBevelSize, extrudeBevelSegments)
		p.Geometry.Points = c.outline()
	default:
		p.ID = Cube
		p.Geometry = desc(geometry.Box, 1, 1, 1)
	}
	return p
}

func desc(k geometry.Kind, params ...float32) geometry.Descriptor {
	return geometry.Descriptor{Kind: k, Params: params}
}

// RotationRule returns the angular delta (radians per axis) to add to a
// shape's rotation for one rendered frame, given seconds since start.
type RotationRule func(elapsed float32) mgl32.Vec3
