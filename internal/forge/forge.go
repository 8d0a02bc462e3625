// Package forge ties validation, tessellation, serialization, and the
// catalogue into the model-generation service.
package forge

import (
	"context"

	"go.uber.org/zap"

	"github.com/rcliao/stl-forge/internal/archive"
	"github.com/rcliao/stl-forge/internal/catalog"
	"github.com/rcliao/stl-forge/internal/geometry"
	"github.com/rcliao/stl-forge/internal/model"
	"github.com/rcliao/stl-forge/internal/stl"
)

// Service implements the generate/list/get/archive operations over an
// injected catalogue. Generation itself is pure, so any number of Generate
// calls may run in parallel; the catalogue handles its own coordination.
type Service struct {
	cat catalog.Catalog
	log *zap.Logger
}

// New returns a Service over cat. A nil logger disables logging.
func New(cat catalog.Catalog, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{cat: cat, log: logger}
}

// GenerateParams carries the shape spec plus the optional descriptive
// record fields.
type GenerateParams struct {
	Spec     model.ModelSpec
	Category string
	Prompt   string
}

// Generate runs the full pipeline: validate, tessellate, encode, store.
// A failure at any step leaves no catalogue entry.
func (s *Service) Generate(ctx context.Context, p GenerateParams) (*model.FileRecord, error) {
	mesh, err := geometry.Generate(p.Spec)
	if err != nil {
		s.log.Warn("generate rejected",
			zap.String("model_type", string(p.Spec.Type)),
			zap.Error(err))
		return nil, err
	}

	payload := stl.Encode(mesh, string(p.Spec.Type))
	rec, err := s.cat.Store(ctx, payload, catalog.StoreParams{
		ModelType:     p.Spec.Type,
		TriangleCount: len(mesh),
		Category:      p.Category,
		Prompt:        p.Prompt,
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("model generated",
		zap.String("filename", rec.Filename),
		zap.String("model_type", string(rec.ModelType)),
		zap.Int("triangles", rec.TriangleCount),
		zap.Int64("size_bytes", rec.SizeBytes))
	return rec, nil
}

// ListFiles returns all committed records, newest first.
func (s *Service) ListFiles(ctx context.Context) ([]model.FileRecord, error) {
	return s.cat.List(ctx)
}

// GetFile returns the raw payload stored under filename.
func (s *Service) GetFile(ctx context.Context, filename string) ([]byte, error) {
	return s.cat.Get(ctx, filename)
}

// BuildArchive bundles the named files into one ZIP stream and reports the
// entry count.
func (s *Service) BuildArchive(ctx context.Context, filenames []string) ([]byte, int, error) {
	data, n, err := archive.Build(ctx, s.cat, filenames)
	if err != nil {
		s.log.Warn("archive failed", zap.Error(err))
		return nil, 0, err
	}
	s.log.Info("archive built",
		zap.Int("entries", n),
		zap.Int("size_bytes", len(data)))
	return data, n, nil
}

// Stats returns catalogue statistics.
func (s *Service) Stats(ctx context.Context) (*catalog.Stats, error) {
	return s.cat.Stats(ctx)
}
