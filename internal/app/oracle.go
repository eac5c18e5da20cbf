package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/osmesirius-ship-it/instant-oracle/internal/domain"
	"github.com/osmesirius-ship-it/instant-oracle/internal/ports"
)

// GenerateDeckRequest is the application-level intake (no HTTP types).
type GenerateDeckRequest struct {
	Name      string
	DOB       string
	Time      string
	Location  string
	Intention string
}

// GenerateDeckResponse carries the deck plus whether this call created it or
// found it already persisted.
type GenerateDeckResponse struct {
	Deck    domain.DeckRecord
	Created bool
}

// OracleService orchestrates deck generation, write-once persistence, and
// dispatch to the rendering collaborator.
type OracleService struct {
	meanings ports.MeaningSource
	store    ports.DeckStore
	renderer ports.Renderer
	layout   domain.Layout
}

func NewOracleService(ms ports.MeaningSource, store ports.DeckStore, renderer ports.Renderer, layout domain.Layout) *OracleService {
	return &OracleService{
		meanings: ms,
		store:    store,
		renderer: renderer,
		layout:   layout,
	}
}

// GenerateDeck normalizes the intake, runs the pure generation pipeline, and
// persists the result. Because generation is deterministic, a client ID that
// is already stored simply returns the stored record.
func (s *OracleService) GenerateDeck(ctx context.Context, req GenerateDeckRequest) (GenerateDeckResponse, error) {
	rec, err := domain.NormalizeIntake(req.Name, req.DOB, req.Time, req.Location, req.Intention)
	if err != nil {
		return GenerateDeckResponse{}, fmt.Errorf("normalize intake: %w", err)
	}

	table, err := s.meanings.Meanings(ctx)
	if err != nil {
		return GenerateDeckResponse{}, fmt.Errorf("load meanings: %w", err)
	}

	deck, err := domain.GenerateDeck(rec, table, s.layout)
	if err != nil {
		return GenerateDeckResponse{}, fmt.Errorf("generate deck: %w", err)
	}

	if err := s.store.SaveDeck(ctx, deck); err != nil {
		if errors.Is(err, domain.ErrDeckExists) {
			stored, getErr := s.store.GetDeck(ctx, deck.ClientID)
			if getErr != nil {
				return GenerateDeckResponse{}, fmt.Errorf("load existing deck: %w", getErr)
			}
			return GenerateDeckResponse{Deck: stored, Created: false}, nil
		}
		return GenerateDeckResponse{}, fmt.Errorf("persist deck: %w", err)
	}

	return GenerateDeckResponse{Deck: deck, Created: true}, nil
}

// GetDeck reads a persisted deck for reprints and audits.
func (s *OracleService) GetDeck(ctx context.Context, clientID string) (domain.DeckRecord, error) {
	deck, err := s.store.GetDeck(ctx, clientID)
	if err != nil {
		return domain.DeckRecord{}, fmt.Errorf("get deck: %w", err)
	}
	return deck, nil
}

// DeckPrompts builds the exact payload the image-rendering collaborator
// consumes: client ID plus one prompt per card in display order.
func (s *OracleService) DeckPrompts(ctx context.Context, clientID string) (ports.RenderInput, error) {
	deck, err := s.GetDeck(ctx, clientID)
	if err != nil {
		return ports.RenderInput{}, err
	}

	prompts := make([]ports.CardPrompt, len(deck.Cards))
	for i, card := range deck.Cards {
		prompts[i] = ports.CardPrompt{Index: i, Name: card.Name, Prompt: card.Prompt}
	}
	return ports.RenderInput{ClientID: clientID, Prompts: prompts}, nil
}

// RenderDeck hands a stored deck's prompts to the rendering collaborator.
// Generation itself never performs I/O; rendering is always this separate,
// explicit step.
func (s *OracleService) RenderDeck(ctx context.Context, clientID string) (ports.RenderOutput, error) {
	if s.renderer == nil {
		return ports.RenderOutput{}, fmt.Errorf("render deck %s: %w", clientID, domain.ErrRendererDisabled)
	}

	in, err := s.DeckPrompts(ctx, clientID)
	if err != nil {
		return ports.RenderOutput{}, err
	}

	out, err := s.renderer.RenderDeck(ctx, in)
	if err != nil {
		return ports.RenderOutput{}, fmt.Errorf("render deck: %w", err)
	}
	return out, nil
}
