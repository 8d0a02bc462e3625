// Package archive bundles catalogue entries into a single ZIP stream.
package archive

import (
	"archive/zip"
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/klauspost/compress/flate"

	"github.com/rcliao/stl-forge/internal/catalog"
)

// EmptyInputError reports an archive request with no filenames.
type EmptyInputError struct{}

func (e *EmptyInputError) Error() string {
	return "archive: no filenames given"
}

// Build resolves each filename through the catalogue and returns a ZIP
// archive holding the payloads under their original names, plus the entry
// count. Duplicate filenames collapse to their first occurrence. Any
// missing file fails the whole build with the catalogue's NotFoundError;
// nothing partial is ever returned.
func Build(ctx context.Context, cat catalog.Catalog, filenames []string) ([]byte, int, error) {
	if len(filenames) == 0 {
		return nil, 0, &EmptyInputError{}
	}

	seen := make(map[string]bool, len(filenames))
	names := make([]string, 0, len(filenames))
	for _, f := range filenames {
		if !seen[f] {
			seen[f] = true
			names = append(names, f)
		}
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	zw.RegisterCompressor(zip.Deflate, func(w io.Writer) (io.WriteCloser, error) {
		return flate.NewWriter(w, flate.DefaultCompression)
	})

	for _, name := range names {
		payload, err := cat.Get(ctx, name)
		if err != nil {
			zw.Close()
			return nil, 0, err
		}
		w, err := zw.Create(name)
		if err != nil {
			zw.Close()
			return nil, 0, fmt.Errorf("archive %s: %w", name, err)
		}
		if _, err := w.Write(payload); err != nil {
			zw.Close()
			return nil, 0, fmt.Errorf("archive %s: %w", name, err)
		}
	}

	if err := zw.Close(); err != nil {
		return nil, 0, fmt.Errorf("archive: %w", err)
	}
	return buf.Bytes(), len(names), nil
}
