package artificer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/osmesirius-ship-it/instant-oracle/internal/domain"
	"github.com/osmesirius-ship-it/instant-oracle/internal/ports"
)

// Client implements ports.Renderer against an Artificer-compatible batch
// image API.
type Client struct {
	httpClient     *http.Client
	apiKey         string
	baseURL        string
	model          string
	fallbackModels []string
	logger         *slog.Logger
}

func NewClient(httpClient *http.Client, apiKey, baseURL, model string, fallbackModels []string, logger *slog.Logger) *Client {
	return &Client{
		httpClient:     httpClient,
		apiKey:         apiKey,
		baseURL:        strings.TrimRight(baseURL, "/"),
		model:          model,
		fallbackModels: fallbackModels,
		logger:         logger,
	}
}

// batchRequest / batchResponse mirror the Artificer batch-render API shapes.
type batchPrompt struct {
	Index  int    `json:"index"`
	Name   string `json:"name"`
	Prompt string `json:"prompt"`
}

type batchRequest struct {
	Model    string        `json:"model"`
	ClientID string        `json:"client_id"`
	Prompts  []batchPrompt `json:"prompts"`
}

type batchResponse struct {
	Images []struct {
		Index int    `json:"index"`
		Path  string `json:"path"`
	} `json:"images"`
}

func (c *Client) RenderDeck(ctx context.Context, in ports.RenderInput) (ports.RenderOutput, error) {
	models := make([]string, 0, 1+len(c.fallbackModels))
	models = append(models, c.model)
	models = append(models, c.fallbackModels...)

	var lastErr error
	for _, model := range models {
		out, err := c.renderWithModel(ctx, in, model)
		if err == nil {
			return out, nil
		}
		lastErr = err
		if len(models) > 1 {
			c.logger.WarnContext(ctx, "render model failed, trying next", "model", model, "error", err)
		}
	}

	return ports.RenderOutput{}, lastErr
}

func (c *Client) renderWithModel(ctx context.Context, in ports.RenderInput, model string) (ports.RenderOutput, error) {
	prompts := make([]batchPrompt, len(in.Prompts))
	for i, p := range in.Prompts {
		prompts[i] = batchPrompt{Index: p.Index, Name: p.Name, Prompt: p.Prompt}
	}

	body, err := json.Marshal(batchRequest{Model: model, ClientID: in.ClientID, Prompts: prompts})
	if err != nil {
		return ports.RenderOutput{}, fmt.Errorf("marshal request: %w", err)
	}

	respBody, err := c.callBatch(ctx, body)
	if err != nil {
		return ports.RenderOutput{}, err
	}

	var batch batchResponse
	if err := json.Unmarshal(respBody, &batch); err != nil {
		c.logger.WarnContext(ctx, "renderer returned invalid JSON, retrying", "model", model, "error", err)
		respBody, err = c.callBatch(ctx, body)
		if err != nil {
			return ports.RenderOutput{}, err
		}
		if err := json.Unmarshal(respBody, &batch); err != nil {
			return ports.RenderOutput{}, fmt.Errorf("%w: %w", domain.ErrInvalidRendererJSON, err)
		}
	}

	if len(batch.Images) != len(in.Prompts) {
		return ports.RenderOutput{}, fmt.Errorf("%w: expected %d images, got %d", domain.ErrUpstreamRenderer, len(in.Prompts), len(batch.Images))
	}

	out := ports.RenderOutput{Model: model, Images: make([]ports.RenderedImage, len(batch.Images))}
	for i, img := range batch.Images {
		out.Images[i] = ports.RenderedImage{Index: img.Index, Path: img.Path}
	}
	return out, nil
}

func (c *Client) callBatch(ctx context.Context, body []byte) ([]byte, error) {
	url := c.baseURL + "/v1/images/batch"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: http call: %w", domain.ErrUpstreamRenderer, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read response: %w", domain.ErrUpstreamRenderer, err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: upstream status %d: %s", domain.ErrUpstreamRenderer, resp.StatusCode, string(respBody))
	}

	return respBody, nil
}
