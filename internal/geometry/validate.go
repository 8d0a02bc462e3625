package geometry

import (
	"fmt"
	"math"

	"github.com/rcliao/stl-forge/internal/model"
)

// bound is one inclusive parameter range.
type bound struct {
	field    string
	min, max float64
	integer  bool
}

var shapeBounds = map[model.ModelType][]bound{
	model.TypeCube: {
		{field: "size", min: 0.1, max: 500},
	},
	model.TypeCylinder: {
		{field: "radius", min: 0.1, max: 250},
		{field: "height", min: 0.1, max: 500},
		{field: "segments", min: 6, max: 256, integer: true},
	},
	model.TypeSphere: {
		{field: "radius", min: 0.1, max: 250},
		{field: "segments", min: 6, max: 128, integer: true},
	},
	model.TypeHollowBox: {
		{field: "length", min: 1, max: 500},
		{field: "width", min: 1, max: 500},
		{field: "height", min: 1, max: 500},
		{field: "wall_thickness", min: 0.1, max: 50},
	},
}

// Validate checks spec parameters against the per-shape bounds before any
// geometry work. Out-of-range values are rejected, not clamped. The
// returned *ValidationError names every offending field.
func Validate(spec model.ModelSpec) error {
	bounds, ok := shapeBounds[spec.Type]
	if !ok {
		return &ValidationError{Fields: []FieldError{
			{Field: "model_type", Reason: fmt.Sprintf("unknown type %q", spec.Type)},
		}}
	}

	var fields []FieldError
	for _, b := range bounds {
		v, ok := spec.Params[b.field]
		if !ok {
			fields = append(fields, FieldError{Field: b.field, Reason: "required"})
			continue
		}
		if b.integer && v != math.Trunc(v) {
			fields = append(fields, FieldError{Field: b.field, Reason: "must be an integer"})
			continue
		}
		if v < b.min || v > b.max {
			fields = append(fields, FieldError{
				Field:  b.field,
				Reason: fmt.Sprintf("must be between %g and %g", b.min, b.max),
			})
		}
	}

	// Cross-field rule, checked only once the individual bounds hold.
	if spec.Type == model.TypeHollowBox && len(fields) == 0 {
		p := spec.Params
		limit := math.Min(p["length"], math.Min(p["width"], p["height"])) / 2
		if p["wall_thickness"] >= limit {
			fields = append(fields, FieldError{
				Field:  "wall_thickness",
				Reason: fmt.Sprintf("must be less than %g", limit),
			})
		}
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}
