package geometry

import (
	"errors"
	"testing"
)

func TestHollowBox(t *testing.T) {
	m, err := HollowBox(20, 15, 10, 2)
	if err != nil {
		t.Fatalf("hollow box: %v", err)
	}
	if len(m) != 28 {
		t.Fatalf("expected 28 triangles, got %d", len(m))
	}
	checkWatertight(t, m)
	checkNormals(t, m)
}

func TestHollowBoxCavityBounds(t *testing.T) {
	const l, w, h, thick = 20.0, 15.0, 10.0, 2.0
	m, _ := HollowBox(l, w, h, thick)

	// Every vertex sits on the outer shell or on the cavity surface.
	for i, tri := range m {
		for _, v := range [3]Vertex{tri.V0, tri.V1, tri.V2} {
			if v.X < 0 || v.X > l || v.Y < 0 || v.Y > w || v.Z < 0 || v.Z > h {
				t.Fatalf("triangle %d: vertex %v outside the outer shell", i, v)
			}
		}
	}
}

func TestHollowBoxDegenerate(t *testing.T) {
	cases := []struct {
		l, w, h, thick float64
	}{
		{10, 10, 10, 5},   // thickness exactly half the min dimension
		{10, 10, 10, 6},   // more than half
		{20, 15, 4, 2},    // height is the limiting dimension
		{500, 500, 1, 50}, // extreme aspect
	}
	for _, c := range cases {
		m, err := HollowBox(c.l, c.w, c.h, c.thick)
		if m != nil {
			t.Errorf("%gx%gx%g t=%g: expected no mesh, got %d triangles",
				c.l, c.w, c.h, c.thick, len(m))
		}
		var gerr *GeometryError
		if !errors.As(err, &gerr) {
			t.Errorf("%gx%gx%g t=%g: expected GeometryError, got %v",
				c.l, c.w, c.h, c.thick, err)
		}
	}
}
