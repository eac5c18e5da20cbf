package ports

import "context"

// CardPrompt is one illustration prompt as handed to the rendering
// collaborator.
type CardPrompt struct {
	Index  int    `json:"index"`
	Name   string `json:"name"`
	Prompt string `json:"prompt"`
}

// RenderInput is the full payload for one deck: the 78 prompts plus the
// client ID the collaborator keys its output by.
type RenderInput struct {
	ClientID string       `json:"client_id"`
	Prompts  []CardPrompt `json:"prompts"`
}

// RenderedImage is one produced card image at an agreed path.
type RenderedImage struct {
	Index int    `json:"index"`
	Path  string `json:"path"`
}

// RenderOutput is the collaborator's response for one deck.
type RenderOutput struct {
	Images []RenderedImage `json:"images"`
	Model  string          `json:"model"`
}

// Renderer is the image-rendering collaborator boundary. Implementations
// perform network I/O; the generation core never calls this.
type Renderer interface {
	RenderDeck(ctx context.Context, in RenderInput) (RenderOutput, error)
}
