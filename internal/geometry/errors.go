package geometry

import "strings"

// FieldError names one offending parameter and why it was rejected.
type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// ValidationError reports every parameter that failed validation. It is
// returned before any geometry work happens; valid fields are never
// partially applied.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = f.Field + ": " + f.Reason
	}
	return "invalid parameters: " + strings.Join(parts, "; ")
}

// GeometryError reports degenerate geometry detected inside a generator,
// before any triangle is emitted.
type GeometryError struct {
	Msg string
}

func (e *GeometryError) Error() string {
	return "degenerate geometry: " + e.Msg
}
