package stl

import (
	"math"
	"strings"
	"testing"

	"github.com/rcliao/stl-forge/internal/geometry"
)

func TestEncodeFormat(t *testing.T) {
	m := geometry.Cube(10)
	payload := string(Encode(m, "cube"))

	lines := strings.Split(strings.TrimSpace(payload), "\n")
	if lines[0] != "solid cube" {
		t.Errorf("header = %q", lines[0])
	}
	if last := lines[len(lines)-1]; last != "endsolid cube" {
		t.Errorf("footer = %q", last)
	}
	if n := strings.Count(payload, "facet normal"); n != len(m) {
		t.Errorf("expected %d facets, got %d", len(m), n)
	}
	if strings.Count(payload, "endfacet") != strings.Count(payload, "facet normal") {
		t.Error("facet/endfacet mismatch")
	}
}

func TestRoundTrip(t *testing.T) {
	meshes := map[string]geometry.Mesh{
		"cube":     geometry.Cube(20),
		"cylinder": geometry.Cylinder(2.5, 7.5, 17),
		"sphere":   geometry.Sphere(250, 33),
	}
	for name, m := range meshes {
		got, gotName, err := Decode(Encode(m, name))
		if err != nil {
			t.Fatalf("%s: decode: %v", name, err)
		}
		if gotName != name {
			t.Errorf("%s: solid name = %q", name, gotName)
		}
		if len(got) != len(m) {
			t.Fatalf("%s: expected %d triangles, got %d", name, len(m), len(got))
		}
		for i := range m {
			wantV := [3]geometry.Vertex{m[i].V0, m[i].V1, m[i].V2}
			gotV := [3]geometry.Vertex{got[i].V0, got[i].V1, got[i].V2}
			for j := range wantV {
				if dist(wantV[j], gotV[j]) > 1e-6 {
					t.Fatalf("%s: triangle %d vertex %d: %v != %v", name, i, j, wantV[j], gotV[j])
				}
			}
			if dist(m[i].Normal, got[i].Normal) > 1e-6 {
				t.Fatalf("%s: triangle %d normal drifted: %v != %v", name, i, m[i].Normal, got[i].Normal)
			}
		}
	}
}

func TestDecodeRejectsMalformed(t *testing.T) {
	cases := []string{
		"",
		"not an stl",
		"solid x\n  facet normal 0 0 1\n    outer loop\n      vertex 0 0 0\n",
		"solid x\n  facet normal 0 0 nope\n    outer loop\n      vertex 0 0 0\n      vertex 1 0 0\n      vertex 0 1 0\n    endloop\n  endfacet\nendsolid x\n",
	}
	for _, c := range cases {
		if _, _, err := Decode([]byte(c)); err == nil {
			t.Errorf("expected error for %q", c)
		}
	}
}

func dist(a, b geometry.Vertex) float64 {
	return math.Max(math.Abs(a.X-b.X), math.Max(math.Abs(a.Y-b.Y), math.Abs(a.Z-b.Z)))
}
