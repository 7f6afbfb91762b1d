// Package store handles SQLite persistence for generation history.
package store

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/verte-zerg/lexname/internal/model"

	_ "modernc.org/sqlite" // SQLite driver.
)

// Store wraps SQLite access for batch history.
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
		`CREATE TABLE IF NOT EXISTS batches (
			id INTEGER PRIMARY KEY,
			generated_at TEXT NOT NULL,
			count INTEGER NOT NULL,
			case_style TEXT NOT NULL,
			number_style TEXT NOT NULL,
			min_len INTEGER NOT NULL,
			langs TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS batch_entries (
			batch_id INTEGER NOT NULL,
			position INTEGER NOT NULL,
			username TEXT NOT NULL,
			lang_code TEXT NOT NULL,
			lang_name TEXT NOT NULL,
			PRIMARY KEY (batch_id, position)
		);`,
		`CREATE INDEX IF NOT EXISTS idx_batches_generated_at ON batches(generated_at);`,
		`CREATE INDEX IF NOT EXISTS idx_batch_entries_lang_code ON batch_entries(lang_code);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// InsertBatch stores a completed batch and its entries.
func (s *Store) InsertBatch(ctx context.Context, batch model.Batch) (int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() {
		if err != nil {
			if rerr := tx.Rollback(); rerr != nil {
				// Best-effort rollback.
				_ = rerr
			}
		}
	}()

	res, err := tx.ExecContext(ctx,
		`INSERT INTO batches (generated_at, count, case_style, number_style, min_len, langs)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		batch.GeneratedAt.Format(time.RFC3339Nano),
		batch.Count,
		batch.CaseStyle,
		batch.NumberStyle,
		batch.MinLen,
		strings.Join(batch.Langs, ","),
	)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}

	if len(batch.Entries) > 0 {
		stmt, err := tx.PrepareContext(ctx,
			`INSERT INTO batch_entries (batch_id, position, username, lang_code, lang_name)
			 VALUES (?, ?, ?, ?, ?)`)
		if err != nil {
			return 0, err
		}
		defer func() {
			if cerr := stmt.Close(); cerr != nil {
				// Best-effort statement close.
				_ = cerr
			}
		}()
		for i, entry := range batch.Entries {
			if _, err := stmt.ExecContext(ctx, id, i, entry.Username, entry.LangCode, entry.LangName); err != nil {
				return 0, err
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return id, nil
}

// ListBatches returns batch summaries, newest first, limited when limit > 0.
func (s *Store) ListBatches(ctx context.Context, limit int) ([]model.BatchSummary, error) {
	query := `SELECT id, generated_at, count, case_style, number_style
		FROM batches
		ORDER BY generated_at DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var batches []model.BatchSummary
	for rows.Next() {
		var summary model.BatchSummary
		var generatedAt string
		if err := rows.Scan(&summary.ID, &generatedAt, &summary.Count, &summary.CaseStyle, &summary.NumberStyle); err != nil {
			return nil, err
		}
		parsed, err := time.Parse(time.RFC3339Nano, generatedAt)
		if err != nil {
			return nil, err
		}
		summary.GeneratedAt = parsed
		batches = append(batches, summary)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return batches, nil
}

// GetBatchEntries returns the stored entries of one batch in stored order.
func (s *Store) GetBatchEntries(ctx context.Context, batchID int64) ([]model.Entry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT username, lang_code, lang_name
		 FROM batch_entries
		 WHERE batch_id = ?
		 ORDER BY position ASC`, batchID)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var entries []model.Entry
	for rows.Next() {
		var entry model.Entry
		if err := rows.Scan(&entry.Username, &entry.LangCode, &entry.LangName); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

// LanguageTotals aggregates usernames per language across all batches,
// most frequent first.
func (s *Store) LanguageTotals(ctx context.Context) ([]model.LangCount, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT lang_name, COUNT(*) AS total
		 FROM batch_entries
		 GROUP BY lang_name
		 ORDER BY total DESC, lang_name ASC`)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var totals []model.LangCount
	for rows.Next() {
		var lc model.LangCount
		if err := rows.Scan(&lc.LangName, &lc.Count); err != nil {
			return nil, err
		}
		totals = append(totals, lc)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return totals, nil
}
