package export

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/shreeramghimire/salmonometer/internal/catalog"
	"github.com/shreeramghimire/salmonometer/internal/models"
	_ "modernc.org/sqlite"
)

// EncodeSQLite writes the record set into a standalone database file holding
// one table named after the category slug, and returns the file bytes.
func EncodeSQLite(set models.RecordSet) ([]byte, error) {
	dir, err := os.MkdirTemp("", "salmonometer-export-*")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp dir: %w", err)
	}
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, set.Slug+".sqlite")
	if err := writeSQLite(context.Background(), path, set); err != nil {
		return nil, err
	}
	return os.ReadFile(path)
}

func writeSQLite(ctx context.Context, path string, set models.RecordSet) error {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	table := quoteIdent(set.Slug)
	defs := make([]string, len(set.Columns))
	names := make([]string, len(set.Columns))
	marks := make([]string, len(set.Columns))
	for i, col := range set.Columns {
		names[i] = quoteIdent(col.Name)
		defs[i] = names[i] + " " + sqliteType(col.Kind)
		marks[i] = "?"
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, fmt.Sprintf("CREATE TABLE %s (%s)", table, strings.Join(defs, ", "))); err != nil {
		return fmt.Errorf("failed to create table %s: %w", set.Slug, err)
	}

	stmt, err := tx.PrepareContext(ctx, fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		table, strings.Join(names, ", "), strings.Join(marks, ", ")))
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, cells := range set.Table() {
		args := make([]any, len(cells))
		for i, v := range cells {
			args[i] = workbookValue(v, set.Columns[i])
		}
		if _, err := stmt.ExecContext(ctx, args...); err != nil {
			return fmt.Errorf("failed to insert row: %w", err)
		}
	}

	return tx.Commit()
}

func sqliteType(k catalog.Kind) string {
	switch k {
	case catalog.KindScale, catalog.KindCount:
		return "INTEGER"
	case catalog.KindReal:
		return "REAL"
	default:
		return "TEXT"
	}
}

func quoteIdent(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
