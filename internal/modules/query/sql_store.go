package query

import (
	"context"
	"database/sql"
	"fmt"

	"travelrelay/internal/types"
)

// SQLStore keeps records in the queries table (migrations/0001_queries.sql).
// Request fields are stored as their JSON literal so numbers stay numbers.
type SQLStore struct {
	db *sql.DB
}

func NewSQLStore(db *sql.DB) *SQLStore {
	return &SQLStore{db: db}
}

// Append takes an exclusive table lock so that count + 1 is unique without a sequence.
func (s *SQLStore) Append(ctx context.Context, r Record) (Record, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return Record{}, fmt.Errorf("sql store: begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `LOCK TABLE queries IN EXCLUSIVE MODE`); err != nil {
		return Record{}, fmt.Errorf("sql store: lock: %w", err)
	}

	var id int
	if err := tx.QueryRowContext(ctx, `SELECT COUNT(*) + 1 FROM queries`).Scan(&id); err != nil {
		return Record{}, fmt.Errorf("sql store: next id: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO queries (
			id, destination, days, budget, preferences, prompt,
			response, created_at, status
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		id,
		r.Destination.Key(),
		r.Days.Key(),
		r.Budget.Key(),
		r.Preferences.Key(),
		r.Prompt.Key(),
		r.Response,
		r.Timestamp,
		r.Status,
	)
	if err != nil {
		return Record{}, fmt.Errorf("sql store: insert: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return Record{}, fmt.Errorf("sql store: commit: %w", err)
	}
	r.ID = id
	return r, nil
}

func (s *SQLStore) List(ctx context.Context) ([]Record, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, destination, days, budget, preferences, prompt,
		       response, created_at, status
		FROM queries
		ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("sql store: select: %w", err)
	}
	defer rows.Close()

	out := []Record{}
	for rows.Next() {
		var r Record
		var dest, days, budget, prefs, prompt string
		if err := rows.Scan(&r.ID, &dest, &days, &budget, &prefs, &prompt, &r.Response, &r.Timestamp, &r.Status); err != nil {
			return nil, fmt.Errorf("sql store: scan: %w", err)
		}
		fields := []struct {
			dst *types.Field
			raw string
		}{
			{&r.Destination, dest},
			{&r.Days, days},
			{&r.Budget, budget},
			{&r.Preferences, prefs},
			{&r.Prompt, prompt},
		}
		for _, f := range fields {
			if err := f.dst.UnmarshalJSON([]byte(f.raw)); err != nil {
				return nil, fmt.Errorf("sql store: decode field: %w", err)
			}
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
