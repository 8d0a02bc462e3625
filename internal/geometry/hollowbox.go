package geometry

import (
	"fmt"
	"math"
)

// HollowBox returns an open-topped rectangular container: the outer shell
// spans [0,length] x [0,width] x [0,height] and the cavity is inset by the
// wall thickness on the four sides and the bottom. The top stays open so
// the part prints as a usable container; the opening is sealed by four flat
// rim strips joining the outer and inner top edges, which keeps the shell
// watertight. Always 28 triangles.
//
// All facets point away from solid material: outer faces outward,
// cavity faces into the cavity, rim faces up.
//
// A thickness of at least half the smallest dimension leaves no interior
// volume and fails with a *GeometryError before any triangle is emitted.
func HollowBox(length, width, height, thickness float64) (Mesh, error) {
	if thickness >= math.Min(length, math.Min(width, height))/2 {
		return nil, &GeometryError{Msg: fmt.Sprintf(
			"wall thickness %g leaves no interior in a %gx%gx%g box",
			thickness, length, width, height)}
	}

	t := thickness
	o := [8]Vertex{
		{0, 0, 0}, {length, 0, 0}, {length, width, 0}, {0, width, 0},
		{0, 0, height}, {length, 0, height}, {length, width, height}, {0, width, height},
	}
	in := [8]Vertex{
		{t, t, t}, {length - t, t, t}, {length - t, width - t, t}, {t, width - t, t},
		{t, t, height}, {length - t, t, height}, {length - t, width - t, height}, {t, width - t, height},
	}

	m := make(Mesh, 0, 28)
	quad := func(a, b, c, d Vertex) {
		m = append(m, newTriangle(a, b, c), newTriangle(a, c, d))
	}

	// Outer bottom (-z) and the four outer walls.
	quad(o[0], o[3], o[2], o[1])
	quad(o[0], o[1], o[5], o[4])
	quad(o[1], o[2], o[6], o[5])
	quad(o[2], o[3], o[7], o[6])
	quad(o[3], o[0], o[4], o[7])

	// Cavity floor (+z) and the four cavity walls.
	quad(in[0], in[1], in[2], in[3])
	quad(in[0], in[4], in[5], in[1])
	quad(in[1], in[5], in[6], in[2])
	quad(in[2], in[6], in[7], in[3])
	quad(in[3], in[7], in[4], in[0])

	// Rim strips (+z) closing the wall tops.
	quad(o[4], o[5], in[5], in[4])
	quad(o[5], o[6], in[6], in[5])
	quad(o[6], o[7], in[7], in[6])
	quad(o[7], o[4], in[4], in[7])

	return m, nil
}
