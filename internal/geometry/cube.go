package geometry

// Cube returns the axis-aligned cube with one corner at the origin and the
// opposite corner at (size, size, size). Always 12 triangles, two per face,
// all wound outward.
func Cube(size float64) Mesh {
	s := size
	v := [8]Vertex{
		{0, 0, 0}, {s, 0, 0}, {s, s, 0}, {0, s, 0},
		{0, 0, s}, {s, 0, s}, {s, s, s}, {0, s, s},
	}
	faces := [12][3]int{
		{0, 2, 1}, {0, 3, 2}, // bottom, -z
		{4, 5, 6}, {4, 6, 7}, // top, +z
		{0, 1, 5}, {0, 5, 4}, // front, -y
		{2, 3, 7}, {2, 7, 6}, // back, +y
		{3, 0, 4}, {3, 4, 7}, // left, -x
		{1, 2, 6}, {1, 6, 5}, // right, +x
	}
	m := make(Mesh, 0, len(faces))
	for _, f := range faces {
		m = append(m, newTriangle(v[f[0]], v[f[1]], v[f[2]]))
	}
	return m
}
