package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"shhplace/models"
)

// PostgresStore keeps the serialized collection in a single row of a
// key/value slot table, so the persistence contract is identical to the
// file backend: one key, whole-text rewrite on every save.
type PostgresStore struct {
	conn *pgx.Conn
	key  string
}

// NewPostgresStore connects and makes sure the slot table exists.
func NewPostgresStore(ctx context.Context, dsn, key string) (*PostgresStore, error) {
	conn, err := pgx.Connect(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("store: connect: %w", err)
	}

	_, err = conn.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS slots (
			key     TEXT PRIMARY KEY,
			payload TEXT NOT NULL
		)`)
	if err != nil {
		conn.Close(ctx)
		return nil, fmt.Errorf("store: create slots table: %w", err)
	}

	return &PostgresStore{conn: conn, key: key}, nil
}

func (s *PostgresStore) Load() ([]models.Spot, error) {
	var payload string
	err := s.conn.QueryRow(
		context.Background(),
		`SELECT payload FROM slots WHERE key = $1`, s.key,
	).Scan(&payload)
	if errors.Is(err, pgx.ErrNoRows) {
		return []models.Spot{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("store: select slot %q: %w", s.key, err)
	}

	var spots []models.Spot
	if err := json.Unmarshal([]byte(payload), &spots); err != nil {
		// Same fallback as the file backend: corrupt payload reads as empty.
		return []models.Spot{}, nil
	}
	if spots == nil {
		spots = []models.Spot{}
	}
	return spots, nil
}

func (s *PostgresStore) Save(spots []models.Spot) error {
	raw, err := json.Marshal(spots)
	if err != nil {
		return fmt.Errorf("store: marshal: %w", err)
	}
	_, err = s.conn.Exec(
		context.Background(),
		`INSERT INTO slots (key, payload) VALUES ($1, $2)
		 ON CONFLICT (key) DO UPDATE SET payload = EXCLUDED.payload`,
		s.key, string(raw),
	)
	if err != nil {
		return fmt.Errorf("store: upsert slot %q: %w", s.key, err)
	}
	return nil
}

func (s *PostgresStore) Reset() error {
	_, err := s.conn.Exec(context.Background(), `DELETE FROM slots WHERE key = $1`, s.key)
	if err != nil {
		return fmt.Errorf("store: reset slot %q: %w", s.key, err)
	}
	return nil
}

func (s *PostgresStore) Close() error {
	return s.conn.Close(context.Background())
}
