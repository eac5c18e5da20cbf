package ports

import (
	"context"

	"github.com/osmesirius-ship-it/instant-oracle/internal/domain"
)

// MeaningSource provides the canonical base meanings for the closed set of
// 78 card names.
type MeaningSource interface {
	Meanings(ctx context.Context) (domain.MeaningTable, error)
}
