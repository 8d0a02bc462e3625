// Package geometry tessellates the supported printable shapes into
// triangle meshes with outward-facing normals.
package geometry

import "math"

// Vertex is a point in 3D space.
type Vertex struct {
	X, Y, Z float64
}

func (v Vertex) sub(o Vertex) Vertex {
	return Vertex{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

func (v Vertex) cross(o Vertex) Vertex {
	return Vertex{
		v.Y*o.Z - v.Z*o.Y,
		v.Z*o.X - v.X*o.Z,
		v.X*o.Y - v.Y*o.X,
	}
}

func (v Vertex) length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Triangle is one mesh facet. Normal is unit length and faces outward
// per the right-hand winding of V0, V1, V2.
type Triangle struct {
	Normal Vertex
	V0     Vertex
	V1     Vertex
	V2     Vertex
}

// Mesh is an ordered triangle list approximating a surface. Closed solids
// hold the watertight invariant: every undirected edge belongs to exactly
// two triangles with opposite winding.
type Mesh []Triangle

// newTriangle builds a facet from three vertices given in outward winding
// order, deriving the unit normal from the winding. A zero-area triangle
// keeps a zero normal; the generators never emit one.
func newTriangle(v0, v1, v2 Vertex) Triangle {
	n := v1.sub(v0).cross(v2.sub(v0))
	if l := n.length(); l > 0 {
		n = Vertex{n.X / l, n.Y / l, n.Z / l}
	}
	return Triangle{Normal: n, V0: v0, V1: v1, V2: v2}
}
