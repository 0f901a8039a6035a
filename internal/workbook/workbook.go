// Package workbook keeps the party plan in a local SQLite file. It
// implements the same gateway contract as the remote bridge, so the rest of
// the app cannot tell whether the plan lives in a shared spreadsheet or on
// disk. Worksheets are created explicitly (by `fete setup`), matching a real
// spreadsheet where tabs exist before anyone writes to them.
package workbook

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"fete/internal/gateway"

	_ "modernc.org/sqlite" // register sqlite driver
)

// Workbook is a Gateway backed by a local SQLite file.
type Workbook struct {
	db *sql.DB
}

// Open opens or creates the workbook database at the given path.
func Open(path string) (*Workbook, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("workbook: creating dir: %w", err)
	}

	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("workbook: opening db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("workbook: creating schema: %w", err)
	}

	return &Workbook{db: db}, nil
}

// Close closes the workbook database.
func (w *Workbook) Close() error {
	return w.db.Close()
}

// CreateWorksheet adds an empty worksheet. Creating an existing worksheet
// is a no-op, as in a spreadsheet UI.
func (w *Workbook) CreateWorksheet(ctx context.Context, name string) error {
	_, err := w.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO worksheets (name, created_at) VALUES (?, ?)`,
		name, time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("workbook: creating worksheet %q: %w", name, err)
	}
	return nil
}

// Worksheets returns the names of all worksheets in creation order.
func (w *Workbook) Worksheets(ctx context.Context) ([]string, error) {
	rows, err := w.db.QueryContext(ctx, `SELECT name FROM worksheets ORDER BY created_at, name`)
	if err != nil {
		return nil, fmt.Errorf("workbook: listing worksheets: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var names []string
	for rows.Next() {
		var n string
		if err := rows.Scan(&n); err != nil {
			return nil, err
		}
		names = append(names, n)
	}
	return names, rows.Err()
}

// Read returns the full values matrix for a worksheet.
func (w *Workbook) Read(ctx context.Context, worksheet string) ([][]string, error) {
	exists, err := w.exists(ctx, worksheet)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, gateway.ErrWorksheetNotFound
	}

	rows, err := w.db.QueryContext(ctx,
		`SELECT row, col, value FROM cells WHERE sheet = ? ORDER BY row, col`, worksheet)
	if err != nil {
		return nil, fmt.Errorf("workbook: reading %q: %w", worksheet, err)
	}
	defer func() { _ = rows.Close() }()

	var values [][]string
	for rows.Next() {
		var r, c int
		var v string
		if err := rows.Scan(&r, &c, &v); err != nil {
			return nil, err
		}
		for len(values) <= r {
			values = append(values, nil)
		}
		values[r] = append(values[r], v)
	}
	return values, rows.Err()
}

// Write replaces the full contents of a worksheet in one transaction.
func (w *Workbook) Write(ctx context.Context, worksheet string, values [][]string) error {
	exists, err := w.exists(ctx, worksheet)
	if err != nil {
		return err
	}
	if !exists {
		return gateway.ErrWorksheetNotFound
	}

	tx, err := w.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("workbook: writing %q: %w", worksheet, err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM cells WHERE sheet = ?`, worksheet); err != nil {
		return fmt.Errorf("workbook: clearing %q: %w", worksheet, err)
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO cells (sheet, row, col, value) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("workbook: writing %q: %w", worksheet, err)
	}
	defer func() { _ = stmt.Close() }()

	for r, row := range values {
		for c, v := range row {
			if _, err := stmt.ExecContext(ctx, worksheet, r, c, v); err != nil {
				return fmt.Errorf("workbook: writing %q cell (%d,%d): %w", worksheet, r, c, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("workbook: writing %q: %w", worksheet, err)
	}
	return nil
}

func (w *Workbook) exists(ctx context.Context, worksheet string) (bool, error) {
	var one int
	err := w.db.QueryRowContext(ctx,
		`SELECT 1 FROM worksheets WHERE name = ?`, worksheet).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("workbook: checking %q: %w", worksheet, err)
	}
	return true, nil
}
