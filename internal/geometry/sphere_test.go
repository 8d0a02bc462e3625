package geometry

import (
	"math"
	"testing"
)

func TestSphereTriangleCount(t *testing.T) {
	for _, n := range []int{6, 7, 20, 33, 128} {
		m := Sphere(5, n)
		stacks := (n + 1) / 2
		if want := 2 * n * (stacks - 1); len(m) != want {
			t.Errorf("n=%d: expected %d triangles, got %d", n, want, len(m))
		}
	}
}

func TestSphereVertexRadius(t *testing.T) {
	for _, r := range []float64{0.1, 5, 250} {
		m := Sphere(r, 16)
		for i, tri := range m {
			for _, v := range [3]Vertex{tri.V0, tri.V1, tri.V2} {
				if d := v.length(); math.Abs(d-r) > 1e-6*r {
					t.Fatalf("r=%g triangle %d: vertex at distance %g", r, i, d)
				}
			}
		}
	}
}

func TestSphereWatertight(t *testing.T) {
	for _, n := range []int{6, 7, 20} {
		m := Sphere(5, n)
		checkWatertight(t, m)
		checkNormals(t, m)
	}
}
