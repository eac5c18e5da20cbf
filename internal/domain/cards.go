package domain

import "fmt"

// Arcana distinguishes the two halves of the deck.
type Arcana string

const (
	ArcanaMajor Arcana = "major"
	ArcanaMinor Arcana = "minor"
)

// Suit is one of the four minor suits.
type Suit string

// Rank is one of the fourteen minor ranks.
type Rank string

// Suits in canonical order. Index order matters: the allocator derives a
// suit from a pair index, so this slice must never be reordered.
var Suits = []Suit{"Wands", "Cups", "Swords", "Pentacles"}

// Ranks in canonical order, Ace low through King.
var Ranks = []Rank{
	"Ace", "Two", "Three", "Four", "Five", "Six", "Seven",
	"Eight", "Nine", "Ten", "Page", "Knight", "Queen", "King",
}

// Majors are the 22 major arcana in their traditional order. Names and order
// are fixed for every deck; only derived attributes vary per client.
var Majors = []string{
	"The Fool",
	"The Magician",
	"The High Priestess",
	"The Empress",
	"The Emperor",
	"The Hierophant",
	"The Lovers",
	"The Chariot",
	"Strength",
	"The Hermit",
	"Wheel of Fortune",
	"Justice",
	"The Hanged Man",
	"Death",
	"Temperance",
	"The Devil",
	"The Tower",
	"The Star",
	"The Moon",
	"The Sun",
	"Judgement",
	"The World",
}

// MinorName renders the canonical display name for a (rank, suit) pair.
func MinorName(rank Rank, suit Suit) string {
	return fmt.Sprintf("%s of %s", rank, suit)
}

// CardAttributes is the palette and mood derived from a single byte value.
type CardAttributes struct {
	Hue        int      `json:"hue"`
	Saturation int      `json:"saturation"`
	Lightness  int      `json:"lightness"`
	Element    Element  `json:"element"`
	Tone       Tone     `json:"tone"`
	Sigils     []string `json:"sigils"`
}

// CardRecord is one fully derived card. Created once by deck assembly and
// never mutated afterwards.
type CardRecord struct {
	Arcana        Arcana         `json:"arcana"`
	Index         int            `json:"index"`
	Name          string         `json:"name"`
	Suit          Suit           `json:"suit,omitempty"`
	Rank          Rank           `json:"rank,omitempty"`
	Attributes    CardAttributes `json:"attributes"`
	Keywords      []string       `json:"keywords"`
	Upright       string         `json:"upright"`
	Reversed      string         `json:"reversed"`
	Note          string         `json:"note"`
	HashSignature byte           `json:"hash_signature"`
	Prompt        string         `json:"prompt"`
	ImagePath     string         `json:"image_path"`
}

// Layout carries print-layout constants. They are opaque pass-through values
// for the layout collaborator; nothing in this package computes with them.
type Layout struct {
	SheetSize     string  `json:"sheet_size"`
	CardsPerSheet int     `json:"cards_per_sheet"`
	BleedMM       float64 `json:"bleed_mm"`
	MarginMM      float64 `json:"margin_mm"`
}

// DeckRecord is the complete generated deck for one client: 22 majors in
// canonical order followed by 56 minors in slot order.
type DeckRecord struct {
	ClientID string       `json:"client_id"`
	Intake   IntakeRecord `json:"intake"`
	Cards    []CardRecord `json:"cards"`
	Layout   Layout       `json:"layout"`
}

// BaseMeaning is the canonical meaning text for one card name, before any
// client-specific overlay.
type BaseMeaning struct {
	Keywords []string `json:"keywords"`
	Upright  string   `json:"upright"`
	Reversed string   `json:"reversed"`
}

// MeaningTable maps every canonical card name (all 78) to its base meaning.
type MeaningTable map[string]BaseMeaning
