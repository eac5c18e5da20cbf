package app_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/osmesirius-ship-it/instant-oracle/internal/app"
	"github.com/osmesirius-ship-it/instant-oracle/internal/domain"
	"github.com/osmesirius-ship-it/instant-oracle/internal/ports"
)

type mockMeanings struct {
	table domain.MeaningTable
	err   error
}

func (m *mockMeanings) Meanings(_ context.Context) (domain.MeaningTable, error) {
	return m.table, m.err
}

type memStore struct {
	decks map[string]domain.DeckRecord
	saves int
}

func newMemStore() *memStore {
	return &memStore{decks: make(map[string]domain.DeckRecord)}
}

func (s *memStore) SaveDeck(_ context.Context, deck domain.DeckRecord) error {
	s.saves++
	if _, ok := s.decks[deck.ClientID]; ok {
		return fmt.Errorf("deck %s: %w", deck.ClientID, domain.ErrDeckExists)
	}
	s.decks[deck.ClientID] = deck
	return nil
}

func (s *memStore) GetDeck(_ context.Context, clientID string) (domain.DeckRecord, error) {
	deck, ok := s.decks[clientID]
	if !ok {
		return domain.DeckRecord{}, fmt.Errorf("deck %s: %w", clientID, domain.ErrDeckNotFound)
	}
	return deck, nil
}

type mockRenderer struct {
	got ports.RenderInput
	out ports.RenderOutput
	err error
}

func (m *mockRenderer) RenderDeck(_ context.Context, in ports.RenderInput) (ports.RenderOutput, error) {
	m.got = in
	return m.out, m.err
}

func testTable() domain.MeaningTable {
	table := make(domain.MeaningTable, 78)
	for _, name := range domain.Majors {
		table[name] = domain.BaseMeaning{Keywords: []string{"kw"}, Upright: "Up.", Reversed: "Down."}
	}
	for _, suit := range domain.Suits {
		for _, rank := range domain.Ranks {
			table[domain.MinorName(rank, suit)] = domain.BaseMeaning{Keywords: []string{"kw"}, Upright: "Up.", Reversed: "Down."}
		}
	}
	return table
}

func testRequest() app.GenerateDeckRequest {
	return app.GenerateDeckRequest{
		Name:      "Aria Lumen",
		DOB:       "2004-09-12",
		Time:      "18:45",
		Location:  "Portland, USA",
		Intention: "align my art with my purpose",
	}
}

func newService(store *memStore, renderer *mockRenderer) *app.OracleService {
	return app.NewOracleService(
		&mockMeanings{table: testTable()},
		store,
		renderer,
		domain.Layout{SheetSize: "A3", CardsPerSheet: 9, BleedMM: 3, MarginMM: 5},
	)
}

func TestGenerateDeck_CreatesAndPersists(t *testing.T) {
	store := newMemStore()
	svc := newService(store, &mockRenderer{})

	resp, err := svc.GenerateDeck(context.Background(), testRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !resp.Created {
		t.Error("first generation should report created=true")
	}
	if len(resp.Deck.Cards) != 78 {
		t.Errorf("expected 78 cards, got %d", len(resp.Deck.Cards))
	}
	if _, ok := store.decks[resp.Deck.ClientID]; !ok {
		t.Error("deck was not persisted")
	}
}

func TestGenerateDeck_SecondCallReturnsStored(t *testing.T) {
	store := newMemStore()
	svc := newService(store, &mockRenderer{})

	first, err := svc.GenerateDeck(context.Background(), testRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := svc.GenerateDeck(context.Background(), testRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if second.Created {
		t.Error("second generation should report created=false")
	}
	if first.Deck.ClientID != second.Deck.ClientID {
		t.Error("identical intake should resolve to one client ID")
	}
	if len(store.decks) != 1 {
		t.Errorf("expected one stored deck, got %d", len(store.decks))
	}
}

func TestGenerateDeck_ValidationError(t *testing.T) {
	svc := newService(newMemStore(), &mockRenderer{})

	req := testRequest()
	req.Name = "  "
	_, err := svc.GenerateDeck(context.Background(), req)
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("expected ErrValidation, got %v", err)
	}
}

func TestGetDeck_NotFound(t *testing.T) {
	svc := newService(newMemStore(), &mockRenderer{})

	_, err := svc.GetDeck(context.Background(), "0000000000000000000000000000000000000000000000000000000000000000")
	if !errors.Is(err, domain.ErrDeckNotFound) {
		t.Errorf("expected ErrDeckNotFound, got %v", err)
	}
}

func TestDeckPrompts_OnePromptPerCard(t *testing.T) {
	store := newMemStore()
	svc := newService(store, &mockRenderer{})

	resp, err := svc.GenerateDeck(context.Background(), testRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	in, err := svc.DeckPrompts(context.Background(), resp.Deck.ClientID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if in.ClientID != resp.Deck.ClientID {
		t.Errorf("prompts payload has wrong client ID: %s", in.ClientID)
	}
	if len(in.Prompts) != 78 {
		t.Fatalf("expected 78 prompts, got %d", len(in.Prompts))
	}
	for i, p := range in.Prompts {
		if p.Index != i {
			t.Errorf("prompt %d: expected index %d, got %d", i, i, p.Index)
		}
		if p.Prompt == "" {
			t.Errorf("prompt %d (%s): empty prompt text", i, p.Name)
		}
	}
}

func TestRenderDeck_DispatchesPrompts(t *testing.T) {
	store := newMemStore()
	renderer := &mockRenderer{out: ports.RenderOutput{Model: "artificer/aurora-v2"}}
	svc := newService(store, renderer)

	resp, err := svc.GenerateDeck(context.Background(), testRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out, err := svc.RenderDeck(context.Background(), resp.Deck.ClientID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if out.Model != "artificer/aurora-v2" {
		t.Errorf("unexpected model: %s", out.Model)
	}
	if len(renderer.got.Prompts) != 78 {
		t.Errorf("renderer should receive 78 prompts, got %d", len(renderer.got.Prompts))
	}
}

func TestRenderDeck_RendererDisabled(t *testing.T) {
	store := newMemStore()
	svc := app.NewOracleService(
		&mockMeanings{table: testTable()},
		store,
		nil,
		domain.Layout{SheetSize: "A3", CardsPerSheet: 9, BleedMM: 3, MarginMM: 5},
	)

	resp, err := svc.GenerateDeck(context.Background(), testRequest())
	if err != nil {
		t.Fatalf("generation must work without a renderer: %v", err)
	}

	_, err = svc.RenderDeck(context.Background(), resp.Deck.ClientID)
	if !errors.Is(err, domain.ErrRendererDisabled) {
		t.Errorf("expected ErrRendererDisabled, got %v", err)
	}
}

func TestRenderDeck_UpstreamFailure(t *testing.T) {
	store := newMemStore()
	renderer := &mockRenderer{err: domain.ErrUpstreamRenderer}
	svc := newService(store, renderer)

	resp, err := svc.GenerateDeck(context.Background(), testRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = svc.RenderDeck(context.Background(), resp.Deck.ClientID)
	if !errors.Is(err, domain.ErrUpstreamRenderer) {
		t.Errorf("expected ErrUpstreamRenderer, got %v", err)
	}
}
