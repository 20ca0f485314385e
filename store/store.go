// SPDX-License-Identifier: MIT

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// Kind is the element type of a dataset.
type Kind string

const (
	KindReal    Kind = "real"
	KindComplex Kind = "complex"
)

// Groups used by the loaders and savers of this package.
const (
	GroupData    = "data"
	GroupResults = "results"
)

// Dataset describes one stored array.
type Dataset struct {
	Group string
	Name  string
	Kind  Kind
	Shape []int
}

// File is an open dataset file.
type File struct {
	db   *sql.DB
	path string
}

const schema = `
CREATE TABLE IF NOT EXISTS datasets (
	grp   TEXT NOT NULL,
	name  TEXT NOT NULL,
	kind  TEXT NOT NULL,
	shape TEXT NOT NULL,
	data  BLOB NOT NULL,
	PRIMARY KEY (grp, name)
);`

// Open opens path for reading and writing, creating the file and its parent
// directory when missing.
func Open(ctx context.Context, path string) (*File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, storeErrorf(opOpen, fmt.Errorf("create directory: %w", err))
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, storeErrorf(opOpen, fmt.Errorf("%s: %w", path, err))
	}
	// A single connection serialises writers on the file.
	db.SetMaxOpenConns(1)
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, storeErrorf(opOpen, fmt.Errorf("%s: init schema: %w", path, err))
	}

	return &File{db: db, path: path}, nil
}

// OpenExisting is Open for a file that must already exist.
func OpenExisting(ctx context.Context, path string) (*File, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, storeErrorf(opOpen, fmt.Errorf("%s: %w", path, ErrNotFound))
		}
		return nil, storeErrorf(opOpen, err)
	}

	return Open(ctx, path)
}

// Close releases the database handle.
func (f *File) Close() error { return f.db.Close() }

// Path returns the file path.
func (f *File) Path() string { return f.path }

func (f *File) write(ctx context.Context, group, name string, kind Kind, shape []int, payload []byte) error {
	_, err := f.db.ExecContext(ctx,
		`INSERT INTO datasets (grp, name, kind, shape, data) VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT (grp, name) DO UPDATE SET kind = excluded.kind, shape = excluded.shape, data = excluded.data`,
		group, name, string(kind), encodeShape(shape), payload)
	if err != nil {
		return storeErrorf(opWrite, fmt.Errorf("%s/%s in %s: %w", group, name, f.path, err))
	}

	return nil
}

func (f *File) read(ctx context.Context, group, name string, want Kind) ([]int, []byte, error) {
	var (
		kind, shape string
		payload     []byte
	)
	err := f.db.QueryRowContext(ctx,
		`SELECT kind, shape, data FROM datasets WHERE grp = ? AND name = ?`, group, name,
	).Scan(&kind, &shape, &payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil, storeErrorf(opRead, fmt.Errorf("%s/%s in %s: %w", group, name, f.path, ErrNotFound))
	}
	if err != nil {
		return nil, nil, storeErrorf(opRead, fmt.Errorf("%s/%s in %s: %w", group, name, f.path, err))
	}
	if Kind(kind) != want {
		return nil, nil, storeErrorf(opRead, fmt.Errorf("%s/%s is %s, want %s: %w", group, name, kind, want, ErrKindMismatch))
	}
	dims, err := decodeShape(shape)
	if err != nil {
		return nil, nil, storeErrorf(opRead, err)
	}

	return dims, payload, nil
}

// WriteReal stores data with the given shape, replacing any existing
// dataset of the same group and name.
func (f *File) WriteReal(ctx context.Context, group, name string, shape []int, data []float64) error {
	if volume(shape) != len(data) {
		return storeErrorf(opWrite, fmt.Errorf("%s/%s: shape %v holds %d values, got %d: %w",
			group, name, shape, volume(shape), len(data), ErrShape))
	}

	return f.write(ctx, group, name, KindReal, shape, encodeFloats(data))
}

// ReadReal loads a real dataset.
func (f *File) ReadReal(ctx context.Context, group, name string) ([]int, []float64, error) {
	shape, payload, err := f.read(ctx, group, name, KindReal)
	if err != nil {
		return nil, nil, err
	}
	data, err := decodeFloats(payload)
	if err != nil {
		return nil, nil, storeErrorf(opRead, err)
	}
	if len(data) != volume(shape) {
		return nil, nil, storeErrorf(opRead, fmt.Errorf("%s/%s: %d values for shape %v: %w", group, name, len(data), shape, ErrShape))
	}

	return shape, data, nil
}

// WriteComplex stores complex data with the given shape.
func (f *File) WriteComplex(ctx context.Context, group, name string, shape []int, data []complex128) error {
	if volume(shape) != len(data) {
		return storeErrorf(opWrite, fmt.Errorf("%s/%s: shape %v holds %d values, got %d: %w",
			group, name, shape, volume(shape), len(data), ErrShape))
	}

	return f.write(ctx, group, name, KindComplex, shape, encodeComplex(data))
}

// ReadComplex loads a complex dataset.
func (f *File) ReadComplex(ctx context.Context, group, name string) ([]int, []complex128, error) {
	shape, payload, err := f.read(ctx, group, name, KindComplex)
	if err != nil {
		return nil, nil, err
	}
	data, err := decodeComplex(payload)
	if err != nil {
		return nil, nil, storeErrorf(opRead, err)
	}
	if len(data) != volume(shape) {
		return nil, nil, storeErrorf(opRead, fmt.Errorf("%s/%s: %d values for shape %v: %w", group, name, len(data), shape, ErrShape))
	}

	return shape, data, nil
}

// List describes every dataset in group, ordered by name. An empty group
// lists the whole file.
func (f *File) List(ctx context.Context, group string) ([]Dataset, error) {
	q := `SELECT grp, name, kind, shape FROM datasets WHERE grp = ? ORDER BY grp, name`
	args := []any{group}
	if group == "" {
		q = `SELECT grp, name, kind, shape FROM datasets ORDER BY grp, name`
		args = nil
	}
	rows, err := f.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, storeErrorf(opList, err)
	}
	defer rows.Close()

	var out []Dataset
	for rows.Next() {
		var (
			ds          Dataset
			kind, shape string
		)
		if err := rows.Scan(&ds.Group, &ds.Name, &kind, &shape); err != nil {
			return nil, storeErrorf(opList, err)
		}
		ds.Kind = Kind(kind)
		if ds.Shape, err = decodeShape(shape); err != nil {
			return nil, storeErrorf(opList, err)
		}
		out = append(out, ds)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErrorf(opList, err)
	}

	return out, nil
}
