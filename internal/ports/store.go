package ports

import (
	"context"

	"github.com/osmesirius-ship-it/instant-oracle/internal/domain"
)

// DeckStore persists generated decks keyed by client ID. Records are written
// once and read many times; SaveDeck must never overwrite an existing record
// and returns domain.ErrDeckExists when the client ID is already stored.
type DeckStore interface {
	SaveDeck(ctx context.Context, deck domain.DeckRecord) error
	GetDeck(ctx context.Context, clientID string) (domain.DeckRecord, error)
}
