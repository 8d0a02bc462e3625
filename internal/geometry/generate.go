package geometry

import (
	"fmt"

	"github.com/rcliao/stl-forge/internal/model"
)

// Generator produces a mesh from a spec. The primitive shapes all run
// through Generate; alternate mesh sources (e.g. an AI-backed generator)
// plug in behind the same signature.
type Generator func(spec model.ModelSpec) (Mesh, error)

// Generate validates spec and dispatches on its type tag. It returns a
// *ValidationError or *GeometryError without side effects on failure.
func Generate(spec model.ModelSpec) (Mesh, error) {
	if err := Validate(spec); err != nil {
		return nil, err
	}
	p := spec.Params
	switch spec.Type {
	case model.TypeCube:
		return Cube(p["size"]), nil
	case model.TypeCylinder:
		return Cylinder(p["radius"], p["height"], int(p["segments"])), nil
	case model.TypeSphere:
		return Sphere(p["radius"], int(p["segments"])), nil
	case model.TypeHollowBox:
		return HollowBox(p["length"], p["width"], p["height"], p["wall_thickness"])
	default:
		return nil, &ValidationError{Fields: []FieldError{
			{Field: "model_type", Reason: fmt.Sprintf("unknown type %q", spec.Type)},
		}}
	}
}
