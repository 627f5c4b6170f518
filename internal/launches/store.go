package launches

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/ziadkadry99/cosmic-code/internal/db"
)

// Store persists launches.
type Store struct {
	db  *db.DB
	now func() time.Time
}

// NewStore creates a Store backed by the given database.
func NewStore(database *db.DB) *Store {
	return &Store{db: database, now: time.Now}
}

// Record saves a launch of code and returns it with its ID and timestamp.
func (s *Store) Record(ctx context.Context, code, language string) (Launch, error) {
	l := Launch{
		ID:        uuid.New().String(),
		Code:      code,
		Language:  language,
		CreatedAt: s.now().UTC(),
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO launches (id, code, language, created_at) VALUES (?, ?, ?, ?)`,
		l.ID, l.Code, l.Language, l.CreatedAt.Format(timeLayout),
	)
	if err != nil {
		return Launch{}, fmt.Errorf("inserting launch: %w", err)
	}
	return l, nil
}

// List returns the most recent launches, newest first. limit is clamped to
// [1, MaxLimit]; zero or negative means DefaultLimit.
func (s *Store) List(ctx context.Context, limit int) ([]Launch, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, code, language, created_at FROM launches
		 ORDER BY created_at DESC, rowid DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying launches: %w", err)
	}
	defer rows.Close()

	var out []Launch
	for rows.Next() {
		var (
			l  Launch
			ts string
		)
		if err := rows.Scan(&l.ID, &l.Code, &l.Language, &ts); err != nil {
			return nil, fmt.Errorf("scanning launch: %w", err)
		}
		if t, parseErr := time.Parse(timeLayout, ts); parseErr == nil {
			l.CreatedAt = t
		} else if t, parseErr := time.Parse(time.RFC3339Nano, ts); parseErr == nil {
			l.CreatedAt = t
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

// Count returns the total number of launches.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM launches`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting launches: %w", err)
	}
	return n, nil
}
