package geometry

import "math"

// Cylinder returns a closed cylinder with its axis on +z and its bottom cap
// on the z=0 plane. segments is the number of wall quads; the mesh always
// has exactly 4*segments triangles: 2 per wall quad plus one per segment in
// each cap, fan-triangulated from the ring centroid. The bottom cap faces
// -z, the top cap +z, and wall facets point radially outward.
func Cylinder(radius, height float64, segments int) Mesh {
	n := segments
	bottom := make([]Vertex, n)
	top := make([]Vertex, n)
	for i := 0; i < n; i++ {
		a := 2 * math.Pi * float64(i) / float64(n)
		x := radius * math.Cos(a)
		y := radius * math.Sin(a)
		bottom[i] = Vertex{x, y, 0}
		top[i] = Vertex{x, y, height}
	}

	cb := Vertex{0, 0, 0}
	ct := Vertex{0, 0, height}

	m := make(Mesh, 0, 4*n)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		m = append(m,
			newTriangle(cb, bottom[j], bottom[i]),
			newTriangle(ct, top[i], top[j]),
			newTriangle(bottom[i], bottom[j], top[i]),
			newTriangle(bottom[j], top[j], top[i]),
		)
	}
	return m
}
