package geometry

import "testing"

func TestCube(t *testing.T) {
	m := Cube(20)

	if len(m) != 12 {
		t.Fatalf("expected 12 triangles, got %d", len(m))
	}
	checkWatertight(t, m)
	checkNormals(t, m)

	for i, tri := range m {
		for _, v := range [3]Vertex{tri.V0, tri.V1, tri.V2} {
			for _, c := range [3]float64{v.X, v.Y, v.Z} {
				if c != 0 && c != 20 {
					t.Fatalf("triangle %d: coordinate %g, want 0 or 20", i, c)
				}
			}
		}
	}
}

func TestCubeSizes(t *testing.T) {
	for _, size := range []float64{0.1, 1, 50, 500} {
		m := Cube(size)
		if len(m) != 12 {
			t.Errorf("size %g: expected 12 triangles, got %d", size, len(m))
		}
		checkWatertight(t, m)
	}
}
