package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
	_ "modernc.org/sqlite"

	"github.com/rcliao/stl-forge/internal/model"
)

// timeLayout keeps a fixed-width fraction so stored timestamps order
// lexicographically. RFC3339Nano trims trailing zeros and does not.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// SQLiteCatalog implements Catalog with one payload file per entry on disk
// and the metadata records in SQLite, both under an injected directory.
// The inserted row is the commit point: listings only ever see entries
// whose payload rename already completed.
type SQLiteCatalog struct {
	dir string
	db  *sql.DB
}

// NewSQLiteCatalog opens or creates a catalogue rooted at dir.
func NewSQLiteCatalog(dir string) (*SQLiteCatalog, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create catalog dir: %w", err)
	}

	dsn := filepath.Join(dir, "catalog.db") + "?_pragma=journal_mode(wal)&_pragma=busy_timeout(5000)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	c := &SQLiteCatalog{dir: dir, db: db}
	if err := c.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return c, nil
}

func (c *SQLiteCatalog) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS files (
		filename   TEXT PRIMARY KEY,
		model_type TEXT NOT NULL,
		triangles  INTEGER NOT NULL,
		size_bytes INTEGER NOT NULL,
		created_at TEXT NOT NULL,
		category   TEXT,
		prompt     TEXT
	);
	CREATE INDEX IF NOT EXISTS idx_files_created ON files(created_at DESC);
	CREATE INDEX IF NOT EXISTS idx_files_type ON files(model_type);
	`
	_, err := c.db.Exec(schema)
	return err
}

// newFilename returns a fresh collision-resistant name for a payload of the
// given type. ULIDs come from the package-level locked entropy source, so
// concurrent stores stay unique.
func newFilename(t model.ModelType) string {
	id := ulid.MustNew(ulid.Timestamp(time.Now()), ulid.DefaultEntropy())
	return fmt.Sprintf("%s_%s.stl", t, strings.ToLower(id.String()))
}

func (c *SQLiteCatalog) Store(ctx context.Context, payload []byte, p StoreParams) (*model.FileRecord, error) {
	filename := newFilename(p.ModelType)
	path := filepath.Join(c.dir, filename)

	// Payload first, via temp file and rename so a reader can never observe
	// a partial write under the final name.
	tmp, err := os.CreateTemp(c.dir, ".store-*")
	if err != nil {
		return nil, fmt.Errorf("store %s: %w", filename, err)
	}
	if _, err := tmp.Write(payload); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return nil, fmt.Errorf("store %s: %w", filename, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return nil, fmt.Errorf("store %s: %w", filename, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return nil, fmt.Errorf("store %s: %w", filename, err)
	}

	rec := &model.FileRecord{
		Filename:      filename,
		ModelType:     p.ModelType,
		TriangleCount: p.TriangleCount,
		SizeBytes:     int64(len(payload)),
		CreatedAt:     time.Now().UTC(),
		Category:      p.Category,
		Prompt:        p.Prompt,
	}

	var category, prompt *string
	if p.Category != "" {
		category = &p.Category
	}
	if p.Prompt != "" {
		prompt = &p.Prompt
	}

	_, err = c.db.ExecContext(ctx, `
		INSERT INTO files (filename, model_type, triangles, size_bytes, created_at, category, prompt)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		rec.Filename, string(rec.ModelType), rec.TriangleCount, rec.SizeBytes,
		rec.CreatedAt.Format(timeLayout), category, prompt)
	if err != nil {
		// Failed commit leaves no trace.
		os.Remove(path)
		return nil, fmt.Errorf("store %s: %w", filename, err)
	}
	return rec, nil
}

func (c *SQLiteCatalog) List(ctx context.Context) ([]model.FileRecord, error) {
	rows, err := c.db.QueryContext(ctx, `
		SELECT filename, model_type, triangles, size_bytes, created_at, category, prompt
		FROM files ORDER BY created_at DESC, filename DESC`)
	if err != nil {
		return nil, fmt.Errorf("list: %w", err)
	}
	defer rows.Close()

	var records []model.FileRecord
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("list: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

func (c *SQLiteCatalog) Get(ctx context.Context, filename string) ([]byte, error) {
	var one int
	err := c.db.QueryRowContext(ctx,
		`SELECT 1 FROM files WHERE filename = ?`, filename).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &NotFoundError{Filename: filename}
	}
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", filename, err)
	}

	b, err := os.ReadFile(filepath.Join(c.dir, filename))
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", filename, err)
	}
	return b, nil
}

func (c *SQLiteCatalog) Stats(ctx context.Context) (*Stats, error) {
	st := &Stats{Dir: c.dir}

	err := c.db.QueryRowContext(ctx,
		`SELECT COUNT(*), COALESCE(SUM(size_bytes), 0) FROM files`).
		Scan(&st.TotalFiles, &st.TotalBytes)
	if err != nil {
		return nil, fmt.Errorf("stats: %w", err)
	}

	rows, err := c.db.QueryContext(ctx, `
		SELECT model_type, COUNT(*), COALESCE(SUM(size_bytes), 0)
		FROM files GROUP BY model_type ORDER BY COUNT(*) DESC`)
	if err != nil {
		return nil, fmt.Errorf("stats: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var ts TypeStats
		var typ string
		if err := rows.Scan(&typ, &ts.Count, &ts.Bytes); err != nil {
			return nil, fmt.Errorf("stats: %w", err)
		}
		ts.ModelType = model.ModelType(typ)
		st.ByType = append(st.ByType, ts)
	}
	return st, rows.Err()
}

func (c *SQLiteCatalog) Close() error {
	return c.db.Close()
}

func scanRecord(rows *sql.Rows) (model.FileRecord, error) {
	var rec model.FileRecord
	var typ, createdAt string
	var category, prompt sql.NullString

	err := rows.Scan(&rec.Filename, &typ, &rec.TriangleCount, &rec.SizeBytes,
		&createdAt, &category, &prompt)
	if err != nil {
		return rec, err
	}

	rec.ModelType = model.ModelType(typ)
	rec.CreatedAt, err = time.Parse(timeLayout, createdAt)
	if err != nil {
		return rec, fmt.Errorf("parse created_at: %w", err)
	}
	if category.Valid {
		rec.Category = category.String
	}
	if prompt.Valid {
		rec.Prompt = prompt.String
	}
	return rec, nil
}
