package http

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/osmesirius-ship-it/instant-oracle/internal/app"
	"github.com/osmesirius-ship-it/instant-oracle/internal/domain"
)

const clientIDLen = 64

type Handler struct {
	svc *app.OracleService
}

func NewHandler(svc *app.OracleService) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Register(e *echo.Echo) {
	e.GET("/healthz", h.Healthz)
	e.POST("/v1/decks", h.GenerateDeck)
	e.GET("/v1/decks/:client_id", h.GetDeck)
	e.GET("/v1/decks/:client_id/prompts", h.GetPrompts)
	e.POST("/v1/decks/:client_id/render", h.RenderDeck)
}

func (h *Handler) Healthz(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

func (h *Handler) GenerateDeck(c echo.Context) error {
	var body GenerateDeckBody
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "malformed JSON body"})
	}

	start := time.Now()
	resp, err := h.svc.GenerateDeck(c.Request().Context(), app.GenerateDeckRequest{
		Name:      body.Name,
		DOB:       body.DOB,
		Time:      body.Time,
		Location:  body.Location,
		Intention: body.Intention,
	})
	if err != nil {
		return mapError(c, err)
	}

	status := http.StatusOK
	if resp.Created {
		status = http.StatusCreated
	}
	return c.JSON(status, toDeckResponse(resp.Deck, meta(c, time.Since(start))))
}

func (h *Handler) GetDeck(c echo.Context) error {
	clientID := c.Param("client_id")
	if len(clientID) != clientIDLen {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "client_id must be a 64-character hex digest"})
	}

	deck, err := h.svc.GetDeck(c.Request().Context(), clientID)
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(http.StatusOK, toDeckResponse(deck, meta(c, 0)))
}

func (h *Handler) GetPrompts(c echo.Context) error {
	clientID := c.Param("client_id")
	if len(clientID) != clientIDLen {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "client_id must be a 64-character hex digest"})
	}

	in, err := h.svc.DeckPrompts(c.Request().Context(), clientID)
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(http.StatusOK, PromptsResponse{
		ClientID: in.ClientID,
		Prompts:  in.Prompts,
		Meta:     meta(c, 0),
	})
}

func (h *Handler) RenderDeck(c echo.Context) error {
	clientID := c.Param("client_id")
	if len(clientID) != clientIDLen {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "client_id must be a 64-character hex digest"})
	}

	start := time.Now()
	out, err := h.svc.RenderDeck(c.Request().Context(), clientID)
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(http.StatusOK, RenderResponse{
		ClientID: clientID,
		Images:   out.Images,
		Model:    out.Model,
		Meta:     meta(c, time.Since(start)),
	})
}

func meta(c echo.Context, latency time.Duration) MetaResp {
	requestID, _ := c.Get("request_id").(string)
	return MetaResp{RequestID: requestID, LatencyMS: latency.Milliseconds()}
}

func toDeckResponse(deck domain.DeckRecord, m MetaResp) DeckResponse {
	cards := make([]CardResponse, len(deck.Cards))
	for i, card := range deck.Cards {
		cards[i] = CardResponse{
			Arcana:        card.Arcana,
			Index:         card.Index,
			Name:          card.Name,
			Suit:          card.Suit,
			Rank:          card.Rank,
			Attributes:    card.Attributes,
			Keywords:      card.Keywords,
			Upright:       card.Upright,
			Reversed:      card.Reversed,
			Note:          card.Note,
			HashSignature: card.HashSignature,
			Prompt:        card.Prompt,
			ImagePath:     card.ImagePath,
		}
	}
	return DeckResponse{
		ClientID: deck.ClientID,
		Intake:   deck.Intake,
		Cards:    cards,
		Layout:   deck.Layout,
		Meta:     m,
	}
}

func mapError(c echo.Context, err error) error {
	requestID, _ := c.Get("request_id").(string)

	switch {
	case errors.Is(err, domain.ErrValidation):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrDeckNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrRendererDisabled):
		return c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "rendering is not enabled"})
	case errors.Is(err, domain.ErrUpstreamRenderer), errors.Is(err, domain.ErrInvalidRendererJSON):
		slog.Error("upstream renderer failure", "request_id", requestID, "error", err)
		return c.JSON(http.StatusBadGateway, ErrorResponse{Error: "upstream renderer failure"})
	case errors.Is(err, domain.ErrAllocationExhausted), errors.Is(err, domain.ErrUnknownCard):
		slog.Error("generation invariant failure", "request_id", requestID, "error", err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "deck generation failed"})
	default:
		slog.Error("internal error", "request_id", requestID, "error", err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
}
