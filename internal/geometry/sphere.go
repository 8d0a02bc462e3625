package geometry

import "math"

// Sphere returns a UV sphere of the given radius centered at the origin.
//
// segments is the longitude count. The latitude band count is derived as
// ceil(segments/2), so an odd segment count rounds up. Both poles are single
// vertices with a fan band of segments triangles each; every interior band
// contributes 2*segments. Total triangles: 2*segments*(ceil(segments/2)-1).
// Every vertex lies at distance radius from the origin.
func Sphere(radius float64, segments int) Mesh {
	n := segments
	stacks := (n + 1) / 2

	// Interior latitude rings, pole to pole. rings[i] sits at polar angle
	// pi*(i+1)/stacks.
	rings := make([][]Vertex, stacks-1)
	for i := range rings {
		phi := math.Pi * float64(i+1) / float64(stacks)
		ring := make([]Vertex, n)
		for j := 0; j < n; j++ {
			theta := 2 * math.Pi * float64(j) / float64(n)
			ring[j] = Vertex{
				X: radius * math.Sin(phi) * math.Cos(theta),
				Y: radius * math.Sin(phi) * math.Sin(theta),
				Z: radius * math.Cos(phi),
			}
		}
		rings[i] = ring
	}

	north := Vertex{0, 0, radius}
	south := Vertex{0, 0, -radius}
	first := rings[0]
	last := rings[len(rings)-1]

	m := make(Mesh, 0, 2*n*(stacks-1))
	for j := 0; j < n; j++ {
		k := (j + 1) % n
		m = append(m, newTriangle(north, first[j], first[k]))
	}
	for i := 0; i+1 < len(rings); i++ {
		upper, lower := rings[i], rings[i+1]
		for j := 0; j < n; j++ {
			k := (j + 1) % n
			m = append(m,
				newTriangle(upper[j], lower[j], lower[k]),
				newTriangle(upper[j], lower[k], upper[k]),
			)
		}
	}
	for j := 0; j < n; j++ {
		k := (j + 1) % n
		m = append(m, newTriangle(south, last[k], last[j]))
	}
	return m
}
