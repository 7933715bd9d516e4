// Package store persists a mix memory: final mixed outputs keyed by source
// text, target language and formality threshold, so repeated inputs skip the
// translation backend entirely.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/unicode/norm"
	_ "modernc.org/sqlite"
)

type Store struct {
	db *sql.DB
}

func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate: %w", err)
	}
	return s, nil
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS mix_memory (
		id TEXT PRIMARY KEY,
		source_text TEXT NOT NULL,
		target_lang TEXT NOT NULL,
		threshold INTEGER NOT NULL,
		mixed_text TEXT NOT NULL,
		engine TEXT,
		usage_count INTEGER DEFAULT 1,
		last_used TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		UNIQUE(source_text, target_lang, threshold)
	);
	CREATE INDEX IF NOT EXISTS idx_mix_memory_lookup
		ON mix_memory(source_text, target_lang, threshold);
	`
	_, err := s.db.Exec(schema)
	return err
}

// normalizeKey makes cache keys insensitive to unicode composition and
// surrounding whitespace.
func normalizeKey(text string) string {
	return norm.NFC.String(strings.TrimSpace(text))
}

// Get returns the cached mixed output for (text, lang, threshold) and bumps
// its usage counter.
func (s *Store) Get(ctx context.Context, text, targetLang string, threshold int) (string, bool, error) {
	key := normalizeKey(text)

	var mixed string
	err := s.db.QueryRowContext(ctx,
		`SELECT mixed_text FROM mix_memory
		 WHERE source_text = ? AND target_lang = ? AND threshold = ?`,
		key, targetLang, threshold).Scan(&mixed)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to query mix memory: %w", err)
	}

	_, _ = s.db.ExecContext(ctx,
		`UPDATE mix_memory SET usage_count = usage_count + 1, last_used = ?
		 WHERE source_text = ? AND target_lang = ? AND threshold = ?`,
		time.Now().UTC(), key, targetLang, threshold)

	return mixed, true, nil
}

// Save stores a mixed output, replacing any previous entry for the key.
func (s *Store) Save(ctx context.Context, text, targetLang string, threshold int, mixed, engine string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO mix_memory (id, source_text, target_lang, threshold, mixed_text, engine)
		 VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT(source_text, target_lang, threshold) DO UPDATE SET
			mixed_text = excluded.mixed_text,
			engine = excluded.engine,
			last_used = CURRENT_TIMESTAMP`,
		uuid.NewString(), normalizeKey(text), targetLang, threshold, mixed, engine)
	if err != nil {
		return fmt.Errorf("failed to save mix memory: %w", err)
	}
	return nil
}

// Count reports the number of cached entries.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM mix_memory`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count mix memory: %w", err)
	}
	return n, nil
}

// Purge deletes entries unused for longer than maxAge; maxAge <= 0 clears
// everything.
func (s *Store) Purge(ctx context.Context, maxAge time.Duration) (int64, error) {
	var res sql.Result
	var err error
	if maxAge <= 0 {
		res, err = s.db.ExecContext(ctx, `DELETE FROM mix_memory`)
	} else {
		cutoff := time.Now().UTC().Add(-maxAge)
		res, err = s.db.ExecContext(ctx, `DELETE FROM mix_memory WHERE last_used < ?`, cutoff)
	}
	if err != nil {
		return 0, fmt.Errorf("failed to purge mix memory: %w", err)
	}
	return res.RowsAffected()
}

func (s *Store) Close() error {
	return s.db.Close()
}
