// Package model defines the core catalogue data types.
package model

import "time"

// ModelType identifies one of the supported shape generators.
type ModelType string

// Supported model types.
const (
	TypeCube      ModelType = "cube"
	TypeCylinder  ModelType = "cylinder"
	TypeSphere    ModelType = "sphere"
	TypeHollowBox ModelType = "hollow_box"
)

// ValidTypes are the model types the generator accepts.
var ValidTypes = map[ModelType]bool{
	TypeCube:      true,
	TypeCylinder:  true,
	TypeSphere:    true,
	TypeHollowBox: true,
}

// ModelSpec describes a shape to generate. Immutable once constructed.
type ModelSpec struct {
	Type   ModelType          `json:"model_type"`
	Params map[string]float64 `json:"params"`
}

// FileRecord is the metadata record for one generated mesh file. Records
// are created when the catalogue commits a store and never change after.
type FileRecord struct {
	Filename      string    `json:"filename"`
	ModelType     ModelType `json:"model_type"`
	TriangleCount int       `json:"triangle_count"`
	SizeBytes     int64     `json:"size_bytes"`
	CreatedAt     time.Time `json:"created_at"`
	Category      string    `json:"category,omitempty"`
	Prompt        string    `json:"prompt,omitempty"`
}
