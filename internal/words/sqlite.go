// internal/words/sqlite.go
//
// SQLite word source.
//   - LoadSQLite reads the "word" column of a table into a Dictionary.
//   - WriteSQLite creates/fills such a table from a list (used to prepare a
//     database from a plain word list).
//
// The database is opened with a busy timeout; the table name must be a plain
// SQL identifier since it cannot be bound as a parameter.

package words

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"
)

const defaultTable = "words"

// openDB opens a SQLite database with a busy timeout.
func openDB(dsn string) (*sql.DB, error) {
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	db, err := sql.Open("sqlite3", dsn+sep+"_busy_timeout=5000")
	if err != nil {
		return nil, err
	}
	return db, nil
}

// tableName validates name (default "words").
func tableName(name string) (string, error) {
	if name == "" {
		return defaultTable, nil
	}
	for i, r := range name {
		ok := r == '_' || r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || (i > 0 && r >= '0' && r <= '9')
		if !ok {
			return "", fmt.Errorf("words: invalid table name %q", name)
		}
	}
	return name, nil
}

// LoadSQLite reads every row of table's "word" column.
func LoadSQLite(ctx context.Context, dsn, table string) (*Dictionary, error) {
	table, err := tableName(table)
	if err != nil {
		return nil, err
	}
	db, err := openDB(dsn)
	if err != nil {
		return nil, fmt.Errorf("words: open %s: %w", dsn, err)
	}
	defer db.Close()

	query, args, err := squirrel.Select("word").From(table).ToSql()
	if err != nil {
		return nil, fmt.Errorf("words: build query: %w", err)
	}
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("words: query %s: %w", table, err)
	}
	defer rows.Close()

	var list []string
	for rows.Next() {
		var w string
		if err := rows.Scan(&w); err != nil {
			return nil, fmt.Errorf("words: scan %s: %w", table, err)
		}
		list = append(list, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("words: rows %s: %w", table, err)
	}

	d, err := nonEmpty(New(list))
	if err != nil {
		return nil, err
	}
	log.Info().Str("table", table).Int("words", d.Len()).Msg("dictionary loaded from sqlite")
	return d, nil
}

// WriteSQLite creates table if missing and inserts list in one transaction.
// Duplicate words are ignored.
func WriteSQLite(ctx context.Context, dsn, table string, list []string) error {
	table, err := tableName(table)
	if err != nil {
		return err
	}
	db, err := openDB(dsn)
	if err != nil {
		return fmt.Errorf("words: open %s: %w", dsn, err)
	}
	defer db.Close()

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS `+table+` (word TEXT PRIMARY KEY)`); err != nil {
		return fmt.Errorf("words: create %s: %w", table, err)
	}
	insert, _, err := squirrel.Insert(table).Options("OR IGNORE").Columns("word").Values("").ToSql()
	if err != nil {
		return fmt.Errorf("words: build insert: %w", err)
	}
	stmt, err := tx.PrepareContext(ctx, insert)
	if err != nil {
		return fmt.Errorf("words: prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, w := range list {
		if _, err := stmt.ExecContext(ctx, w); err != nil {
			return fmt.Errorf("words: insert %q: %w", w, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("words: commit %s: %w", table, err)
	}
	return nil
}
