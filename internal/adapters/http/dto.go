package http

import (
	"github.com/osmesirius-ship-it/instant-oracle/internal/domain"
	"github.com/osmesirius-ship-it/instant-oracle/internal/ports"
)

// GenerateDeckBody is the JSON body for POST /v1/decks.
type GenerateDeckBody struct {
	Name      string `json:"name"`
	DOB       string `json:"dob"`
	Time      string `json:"time"`
	Location  string `json:"location"`
	Intention string `json:"intention"`
}

// DeckResponse is the JSON shape returned for a generated or stored deck.
type DeckResponse struct {
	ClientID string              `json:"client_id"`
	Intake   domain.IntakeRecord `json:"intake"`
	Cards    []CardResponse      `json:"cards"`
	Layout   domain.Layout       `json:"layout"`
	Meta     MetaResp            `json:"meta"`
}

type CardResponse struct {
	Arcana        domain.Arcana         `json:"arcana"`
	Index         int                   `json:"index"`
	Name          string                `json:"name"`
	Suit          domain.Suit           `json:"suit,omitempty"`
	Rank          domain.Rank           `json:"rank,omitempty"`
	Attributes    domain.CardAttributes `json:"attributes"`
	Keywords      []string              `json:"keywords"`
	Upright       string                `json:"upright"`
	Reversed      string                `json:"reversed"`
	Note          string                `json:"note"`
	HashSignature byte                  `json:"hash_signature"`
	Prompt        string                `json:"prompt"`
	ImagePath     string                `json:"image_path"`
}

// PromptsResponse is the payload handed to the image-rendering collaborator.
type PromptsResponse struct {
	ClientID string             `json:"client_id"`
	Prompts  []ports.CardPrompt `json:"prompts"`
	Meta     MetaResp           `json:"meta"`
}

// RenderResponse reports the collaborator's rendered image paths.
type RenderResponse struct {
	ClientID string                `json:"client_id"`
	Images   []ports.RenderedImage `json:"images"`
	Model    string                `json:"model"`
	Meta     MetaResp              `json:"meta"`
}

type MetaResp struct {
	RequestID string `json:"request_id"`
	LatencyMS int64  `json:"latency_ms,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
