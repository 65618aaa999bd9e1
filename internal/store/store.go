// Package store caches computed features in SQLite so repeated queries skip
// the simulation.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	_ "modernc.org/sqlite"

	"github.com/lox/holdthem/equity"
	"github.com/lox/holdthem/poker"
)

// Key identifies one feature computation. Two queries with equal keys
// produce the same features when the seed is set.
type Key struct {
	Hero     poker.HoleCards
	Board    poker.Board
	Trials   int64
	Ranker   string
	Sampling string
	Seed     int64
}

// boardKey orders the board cards by index; features do not depend on the
// order the cards were dealt in.
func (k Key) boardKey() string {
	return poker.FormatCards(k.Board.Set().Cards())
}

// Store is a SQLite backed feature cache.
type Store struct {
	db     *sql.DB
	logger zerolog.Logger
}

// Open opens (creating if needed) the cache at dbPath and migrates it.
func Open(dbPath string, logger zerolog.Logger) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if _, err := db.Exec(`PRAGMA journal_mode=WAL; PRAGMA synchronous=NORMAL;`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("set sqlite pragmas: %w", err)
	}
	if err := runMigrations(db, logger); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Store{db: db, logger: logger}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

var (
	featureColumns = strings.Join(equity.FeatureNames[:], ", ")
	selectSQL      = `SELECT ` + featureColumns + ` FROM features
		WHERE hero = ? AND board = ? AND trials = ? AND ranker = ? AND sampling = ? AND seed = ?`
	upsertSQL = buildUpsert()
)

func buildUpsert() string {
	updates := make([]string, 0, len(equity.FeatureNames)+1)
	for _, name := range equity.FeatureNames {
		updates = append(updates, fmt.Sprintf("%s=excluded.%s", name, name))
	}
	updates = append(updates, "updated_at=excluded.updated_at")

	placeholders := strings.TrimSuffix(strings.Repeat("?, ", 6+len(equity.FeatureNames)+1), ", ")
	return `INSERT INTO features(hero, board, trials, ranker, sampling, seed, ` + featureColumns + `, updated_at)
		VALUES(` + placeholders + `)
		ON CONFLICT(hero, board, trials, ranker, sampling, seed) DO UPDATE SET
		` + strings.Join(updates, ",\n\t\t")
}

// Get returns the cached features for key, if present.
func (s *Store) Get(ctx context.Context, key Key) (equity.Features, bool, error) {
	var v [15]float64
	dest := make([]any, len(v))
	for i := range v {
		dest[i] = &v[i]
	}
	err := s.db.QueryRowContext(ctx, selectSQL,
		key.Hero.String(), key.boardKey(), key.Trials, key.Ranker, key.Sampling, key.Seed,
	).Scan(dest...)
	if errors.Is(err, sql.ErrNoRows) {
		return equity.Features{}, false, nil
	}
	if err != nil {
		return equity.Features{}, false, fmt.Errorf("query features: %w", err)
	}
	return equity.FeaturesFromVector(v), true, nil
}

// Put stores features for key, replacing any previous entry.
func (s *Store) Put(ctx context.Context, key Key, f equity.Features) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		args := []any{key.Hero.String(), key.boardKey(), key.Trials, key.Ranker, key.Sampling, key.Seed}
		for _, x := range f.Vector() {
			args = append(args, x)
		}
		args = append(args, time.Now().UTC().Format(time.RFC3339Nano))
		if _, err := tx.ExecContext(ctx, upsertSQL, args...); err != nil {
			return fmt.Errorf("upsert features: %w", err)
		}
		return nil
	})
}

// Count returns the number of cached entries.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM features`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count features: %w", err)
	}
	return n, nil
}

// GetOrCompute returns cached features for key or computes and stores them.
// The bool reports whether the result came from the cache.
func (s *Store) GetOrCompute(ctx context.Context, key Key, compute func(context.Context) (equity.Features, error)) (equity.Features, bool, error) {
	if f, ok, err := s.Get(ctx, key); err != nil || ok {
		return f, ok, err
	}

	f, err := compute(ctx)
	if err != nil {
		return equity.Features{}, false, err
	}
	if err := s.Put(ctx, key, f); err != nil {
		return equity.Features{}, false, err
	}
	s.logger.Debug().
		Str("hero", key.Hero.String()).
		Str("board", key.boardKey()).
		Int64("trials", key.Trials).
		Msg("Cached features")
	return f, false, nil
}

func (s *Store) withTx(ctx context.Context, fn func(*sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, &sql.TxOptions{})
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}
