package geometry

import (
	"errors"
	"testing"

	"github.com/rcliao/stl-forge/internal/model"
)

func TestGenerateDispatch(t *testing.T) {
	cases := []struct {
		spec model.ModelSpec
		want int
	}{
		{model.ModelSpec{Type: model.TypeCube, Params: map[string]float64{"size": 10}}, 12},
		{model.ModelSpec{Type: model.TypeCylinder, Params: map[string]float64{"radius": 5, "height": 10, "segments": 20}}, 80},
		{model.ModelSpec{Type: model.TypeSphere, Params: map[string]float64{"radius": 5, "segments": 20}}, 360},
		{model.ModelSpec{Type: model.TypeHollowBox, Params: map[string]float64{"length": 20, "width": 15, "height": 10, "wall_thickness": 2}}, 28},
	}
	for _, c := range cases {
		m, err := Generate(c.spec)
		if err != nil {
			t.Fatalf("%s: %v", c.spec.Type, err)
		}
		if len(m) != c.want {
			t.Errorf("%s: expected %d triangles, got %d", c.spec.Type, c.want, len(m))
		}
	}
}

func TestGenerateRejectsBeforeWork(t *testing.T) {
	m, err := Generate(model.ModelSpec{
		Type:   model.TypeSphere,
		Params: map[string]float64{"radius": 5, "segments": 500},
	})
	if m != nil {
		t.Fatal("expected no mesh for invalid params")
	}
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}
