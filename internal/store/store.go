// Package store handles SQLite persistence of catalogs.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/verte-zerg/carousel/internal/catalog"

	_ "modernc.org/sqlite" // SQLite driver.
)

// Store wraps SQLite access for catalog data.
type Store struct {
	db *sql.DB
}

// Open opens or creates the SQLite database and applies migrations.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close on migration failure.
			_ = cerr
		}
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS pages (
			id INTEGER PRIMARY KEY,
			position INTEGER NOT NULL UNIQUE,
			name TEXT NOT NULL UNIQUE
		);`,
		`CREATE TABLE IF NOT EXISTS items (
			page_id INTEGER NOT NULL,
			position INTEGER NOT NULL,
			value TEXT NOT NULL,
			PRIMARY KEY (page_id, position)
		);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// SaveCatalog replaces the stored catalog with cat.
func (s *Store) SaveCatalog(ctx context.Context, cat catalog.Catalog) (err error) {
	if err := cat.Validate(); err != nil {
		return err
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			if rerr := tx.Rollback(); rerr != nil {
				// Best-effort rollback.
				_ = rerr
			}
		}
	}()

	for _, stmt := range []string{`DELETE FROM items`, `DELETE FROM pages`} {
		if _, err = tx.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}

	itemStmt, err := tx.PrepareContext(ctx, `INSERT INTO items (page_id, position, value) VALUES (?, ?, ?)`)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := itemStmt.Close(); cerr != nil {
			// Best-effort statement close.
			_ = cerr
		}
	}()

	for pos, page := range cat.Pages {
		var res sql.Result
		res, err = tx.ExecContext(ctx, `INSERT INTO pages (position, name) VALUES (?, ?)`, pos, page.Name)
		if err != nil {
			return err
		}
		var pageID int64
		pageID, err = res.LastInsertId()
		if err != nil {
			return err
		}
		for i, item := range page.Items {
			if _, err = itemStmt.ExecContext(ctx, pageID, i, item); err != nil {
				return err
			}
		}
	}

	return tx.Commit()
}

// LoadCatalog reads the stored catalog in page and item order.
func (s *Store) LoadCatalog(ctx context.Context) (catalog.Catalog, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT p.id, p.name, i.value
		FROM pages p
		LEFT JOIN items i ON i.page_id = p.id
		ORDER BY p.position ASC, i.position ASC`)
	if err != nil {
		return catalog.Catalog{}, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var cat catalog.Catalog
	lastID := int64(-1)
	for rows.Next() {
		var id int64
		var name string
		var value sql.NullString
		if err := rows.Scan(&id, &name, &value); err != nil {
			return catalog.Catalog{}, err
		}
		if id != lastID {
			cat.Pages = append(cat.Pages, catalog.Page{Name: name, Items: []string{}})
			lastID = id
		}
		if value.Valid {
			page := &cat.Pages[len(cat.Pages)-1]
			page.Items = append(page.Items, value.String)
		}
	}
	if err := rows.Err(); err != nil {
		return catalog.Catalog{}, err
	}
	if err := cat.Validate(); err != nil {
		return catalog.Catalog{}, fmt.Errorf("stored catalog: %w", err)
	}
	return cat, nil
}
