// Package geometry builds CPU triangle meshes for the viewer's primitive
// shapes. Parameters are in three.js geometry constructor order.
package geometry

import (
	"errors"
	"fmt"
)

// ErrBadDescriptor is returned by Build for descriptors it cannot turn into a mesh.
var ErrBadDescriptor = errors.New("geometry: bad descriptor")

// Build turns d into a mesh centred on the origin.
func Build(d Descriptor) (*Mesh, error) {
	if d.Kind < 0 || int(d.Kind) >= len(paramCount) {
		return nil, fmt.Errorf("%w: unknown kind %d", ErrBadDescriptor, d.Kind)
	}
	if want := paramCount[d.Kind]; len(d.Params) != want {
		return nil, fmt.Errorf("%w: %s takes %d params, got %d", ErrBadDescriptor, d.Kind, want, len(d.Params))
	}
	p := d.Params
	seg := func(i, least int) int { return max(int(p[i]), least) }

	switch d.Kind {
	case Box:
		return buildBox(p[0], p[1], p[2]), nil
	case Sphere:
		return buildSphere(p[0], seg(1, 3), seg(2, 2)), nil
	case Torus:
		return buildTorus(p[0], p[1], seg(2, 2), seg(3, 3)), nil
	case TorusKnot:
		return buildTorusKnot(p[0], p[1], seg(2, 3), seg(3, 3)), nil
	case Octahedron:
		return octahedronTable.build(p[0]), nil
	case Icosahedron:
		return icosahedronTable.build(p[0]), nil
	case Dodecahedron:
		return dodecahedronTable.build(p[0]), nil
	case Tetrahedron:
		return tetrahedronTable.build(p[0]), nil
	case Cone:
		return buildCone(p[0], p[1], seg(2, 3)), nil
	case Cylinder:
		return buildCylinder(p[0], p[1], p[2], seg(3, 3)), nil
	case Capsule:
		return buildCapsule(p[0], p[1], seg(2, 1), seg(3, 3)), nil
	case Plane:
		return buildPlane(p[0], p[1]), nil
	case Circle:
		return buildCircle(p[0], seg(1, 3)), nil
	case Ring:
		return buildRing(p[0], p[1], seg(2, 3)), nil
	case Lathe:
		if len(d.Points) < 2 {
			return nil, fmt.Errorf("%w: lathe needs at least 2 profile points", ErrBadDescriptor)
		}
		return buildLathe(d.Points, seg(0, 3)), nil
	case Extrude:
		if len(d.Points) < 3 {
			return nil, fmt.Errorf("%w: extrude needs at least 3 outline points", ErrBadDescriptor)
		}
		return buildExtrude(d.Points, p[0], p[1], p[2], seg(3, 0)), nil
	}
	return nil, fmt.Errorf("%w: unhandled kind %s", ErrBadDescriptor, d.Kind)
}
