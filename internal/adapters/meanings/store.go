package meanings

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/osmesirius-ship-it/instant-oracle/internal/domain"
)

//go:embed data/*.json
var meaningFS embed.FS

const majorFile = "data/major_meanings.json"

// rankThemes drive the composed minor meanings: one theme per rank, shared
// across all four suits.
var rankThemes = map[domain.Rank]struct {
	keyword  string
	upright  string
	reversed string
}{
	"Ace":    {"spark", "a raw, undivided beginning", "a beginning withheld or wasted"},
	"Two":    {"balance", "a pairing that must be weighed", "a pairing pulled out of balance"},
	"Three":  {"growth", "first results taking visible shape", "growth checked by friction"},
	"Four":   {"foundation", "a stable base worth consolidating", "stability calcifying into stasis"},
	"Five":   {"conflict", "a trial that tests the footing", "a trial prolonged past its lesson"},
	"Six":    {"harmony", "generous equilibrium after effort", "equilibrium kept by avoidance"},
	"Seven":  {"assessment", "a pause to measure the long game", "measurement turned to second-guessing"},
	"Eight":  {"momentum", "disciplined movement gathering speed", "movement without direction"},
	"Nine":   {"attainment", "a near-complete harvest", "a harvest hoarded or doubted"},
	"Ten":    {"culmination", "the full weight of an ending cycle", "a cycle overstayed"},
	"Page":   {"curiosity", "a messenger still learning the terrain", "a message garbled by inexperience"},
	"Knight": {"pursuit", "single-minded motion toward the goal", "pursuit tipping into excess"},
	"Queen":  {"mastery", "receptive command of the element", "command turned inward and brittle"},
	"King":   {"sovereignty", "settled authority over the element", "authority grown distant or rigid"},
}

// suitDomains give each suit its arena and a second keyword.
var suitDomains = map[domain.Suit]struct {
	keyword string
	domain  string
}{
	"Wands":     {"passion", "creative fire and ambition"},
	"Cups":      {"feeling", "emotion and relationship"},
	"Swords":    {"thought", "intellect and conflict"},
	"Pentacles": {"matter", "work, body, and material ground"},
}

// Store is the canonical meaning source: 22 major meanings loaded from an
// embedded table, 56 minor meanings composed from rank and suit tables at
// first use.
type Store struct {
	once  sync.Once
	table domain.MeaningTable
	err   error
}

func NewStore() *Store {
	return &Store{}
}

func (s *Store) init() {
	raw, err := meaningFS.ReadFile(majorFile)
	if err != nil {
		s.err = fmt.Errorf("read embedded meanings: %w", err)
		return
	}

	var majors []struct {
		Name string `json:"name"`
		domain.BaseMeaning
	}
	if err := json.Unmarshal(raw, &majors); err != nil {
		s.err = fmt.Errorf("parse embedded meanings: %w", err)
		return
	}
	if len(majors) != domain.MajorCount {
		s.err = fmt.Errorf("embedded meanings: expected %d majors, found %d", domain.MajorCount, len(majors))
		return
	}

	table := make(domain.MeaningTable, domain.MajorCount+domain.MinorCount)
	for _, m := range majors {
		table[m.Name] = m.BaseMeaning
	}
	for _, suit := range domain.Suits {
		for _, rank := range domain.Ranks {
			table[domain.MinorName(rank, suit)] = composeMinor(rank, suit)
		}
	}
	s.table = table
}

func composeMinor(rank domain.Rank, suit domain.Suit) domain.BaseMeaning {
	rt := rankThemes[rank]
	sd := suitDomains[suit]
	return domain.BaseMeaning{
		Keywords: []string{rt.keyword, sd.keyword},
		Upright:  fmt.Sprintf("The %s of %s marks %s in the realm of %s.", rank, suit, rt.upright, sd.domain),
		Reversed: fmt.Sprintf("Reversed, the %s of %s marks %s in the realm of %s.", rank, suit, rt.reversed, sd.domain),
	}
}

func (s *Store) Meanings(_ context.Context) (domain.MeaningTable, error) {
	s.once.Do(s.init)
	if s.err != nil {
		return nil, s.err
	}
	return s.table, nil
}
