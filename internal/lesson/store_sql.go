package lesson

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"
)

// SQLStore persists records in a lessons table. Works against both the
// sqlite and postgres drivers opened by internal/db.
type SQLStore struct {
	db *sql.DB
}

func NewSQLStore(db *sql.DB) *SQLStore {
	return &SQLStore{db: db}
}

func (s *SQLStore) Get(ctx context.Context, date string) (json.RawMessage, error) {
	var rec string
	err := s.db.QueryRowContext(ctx, `SELECT record FROM lessons WHERE date=$1`, date).Scan(&rec)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return json.RawMessage(rec), nil
}

func (s *SQLStore) Put(ctx context.Context, date string, record json.RawMessage) error {
	_, err := s.db.ExecContext(ctx, `INSERT INTO lessons (date,record,created_at)
		VALUES ($1,$2,$3)
		ON CONFLICT (date) DO UPDATE SET record=EXCLUDED.record`,
		date, string(record), time.Now().Unix())
	return err
}

func (s *SQLStore) PutIfAbsent(ctx context.Context, date string, record json.RawMessage) (json.RawMessage, bool, error) {
	res, err := s.db.ExecContext(ctx, `INSERT INTO lessons (date,record,created_at)
		VALUES ($1,$2,$3)
		ON CONFLICT (date) DO NOTHING`,
		date, string(record), time.Now().Unix())
	if err != nil {
		return nil, false, err
	}
	if n, err := res.RowsAffected(); err == nil && n > 0 {
		return record, true, nil
	}
	existing, err := s.Get(ctx, date)
	if err != nil {
		return nil, false, err
	}
	return existing, false, nil
}

func (s *SQLStore) List(ctx context.Context) (map[string]json.RawMessage, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT date, record FROM lessons`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := map[string]json.RawMessage{}
	for rows.Next() {
		var date, rec string
		if err := rows.Scan(&date, &rec); err != nil {
			return nil, err
		}
		out[date] = json.RawMessage(rec)
	}
	return out, rows.Err()
}
