package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/osmesirius-ship-it/instant-oracle/internal/domain"
)

const schema = `
CREATE TABLE IF NOT EXISTS decks (
    client_id  TEXT PRIMARY KEY,
    record     TEXT NOT NULL,
    created_at TEXT NOT NULL
);`

// SQLiteStore persists deck records as JSON documents keyed by client ID.
// A record is written exactly once; later saves for the same client ID fail
// with domain.ErrDeckExists and the stored record stays untouched.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (or creates) the database at path and ensures the
// schema. Use ":memory:" for an ephemeral store.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) SaveDeck(ctx context.Context, deck domain.DeckRecord) error {
	doc, err := json.Marshal(deck)
	if err != nil {
		return fmt.Errorf("encode deck %s: %w", deck.ClientID, err)
	}

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO decks (client_id, record, created_at) VALUES (?, ?, ?)
		 ON CONFLICT (client_id) DO NOTHING`,
		deck.ClientID, string(doc), time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("save deck %s: %w", deck.ClientID, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("save deck %s: %w", deck.ClientID, err)
	}
	if n == 0 {
		return fmt.Errorf("deck %s: %w", deck.ClientID, domain.ErrDeckExists)
	}
	return nil
}

func (s *SQLiteStore) GetDeck(ctx context.Context, clientID string) (domain.DeckRecord, error) {
	var doc string
	err := s.db.QueryRowContext(ctx,
		`SELECT record FROM decks WHERE client_id = ?`, clientID,
	).Scan(&doc)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.DeckRecord{}, fmt.Errorf("deck %s: %w", clientID, domain.ErrDeckNotFound)
	}
	if err != nil {
		return domain.DeckRecord{}, fmt.Errorf("load deck %s: %w", clientID, err)
	}

	var deck domain.DeckRecord
	if err := json.Unmarshal([]byte(doc), &deck); err != nil {
		return domain.DeckRecord{}, fmt.Errorf("decode deck %s: %w", clientID, err)
	}
	return deck, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
