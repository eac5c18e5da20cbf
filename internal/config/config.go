package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/osmesirius-ship-it/instant-oracle/internal/domain"
)

// Renderer provider values. "none" runs the service without a rendering
// collaborator: generation and reprints work, render requests are refused.
const (
	ProviderArtificer = "artificer"
	ProviderNone      = "none"
)

type Config struct {
	HTTPAddr               string
	LogLevel               slog.Level
	StorePath              string
	RendererProvider       string
	RendererBaseURL        string
	RendererAPIKey         string
	RendererModel          string
	RendererFallbackModels []string
	RendererTimeout        time.Duration
	Layout                 domain.Layout
}

func Load() (Config, error) {
	c := Config{
		HTTPAddr:               envOr("HTTP_ADDR", ":8080"),
		StorePath:              envOr("STORE_PATH", "oracle.db"),
		RendererProvider:       envOr("RENDER_PROVIDER", ProviderArtificer),
		RendererBaseURL:        envOr("ARTIFICER_BASE_URL", "https://artificer.example.com/api"),
		RendererAPIKey:         os.Getenv("ARTIFICER_API_KEY"),
		RendererModel:          envOr("RENDER_MODEL", "artificer/aurora-v2"),
		RendererFallbackModels: parseFallbackModels(os.Getenv("RENDER_FALLBACK_MODELS")),
		RendererTimeout:        120 * time.Second,
	}

	if v := os.Getenv("RENDER_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid RENDER_TIMEOUT %q: %w", v, err)
		}
		c.RendererTimeout = d
	}

	level, err := parseLogLevel(envOr("LOG_LEVEL", "info"))
	if err != nil {
		return Config{}, err
	}
	c.LogLevel = level

	layout, err := loadLayout()
	if err != nil {
		return Config{}, err
	}
	c.Layout = layout

	switch c.RendererProvider {
	case ProviderArtificer:
		if c.RendererAPIKey == "" {
			return Config{}, fmt.Errorf("ARTIFICER_API_KEY is required when RENDER_PROVIDER=%s", ProviderArtificer)
		}
	case ProviderNone:
	default:
		return Config{}, fmt.Errorf("invalid RENDER_PROVIDER %q", c.RendererProvider)
	}

	return c, nil
}

// loadLayout reads the print-layout pass-through constants. The core never
// computes with them; they travel with every deck record for the layout
// collaborator.
func loadLayout() (domain.Layout, error) {
	layout := domain.Layout{
		SheetSize:     envOr("LAYOUT_SHEET_SIZE", "A3"),
		CardsPerSheet: 9,
		BleedMM:       3,
		MarginMM:      5,
	}

	if v := os.Getenv("LAYOUT_CARDS_PER_SHEET"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return domain.Layout{}, fmt.Errorf("invalid LAYOUT_CARDS_PER_SHEET %q", v)
		}
		layout.CardsPerSheet = n
	}
	if v := os.Getenv("LAYOUT_BLEED_MM"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil || f < 0 {
			return domain.Layout{}, fmt.Errorf("invalid LAYOUT_BLEED_MM %q", v)
		}
		layout.BleedMM = f
	}
	if v := os.Getenv("LAYOUT_MARGIN_MM"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil || f < 0 {
			return domain.Layout{}, fmt.Errorf("invalid LAYOUT_MARGIN_MM %q", v)
		}
		layout.MarginMM = f
	}

	return layout, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseFallbackModels(s string) []string {
	if s == "" {
		return nil
	}
	var models []string
	for _, m := range strings.Split(s, ",") {
		m = strings.TrimSpace(m)
		if m != "" {
			models = append(models, m)
		}
	}
	return models
}

func parseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid LOG_LEVEL %q", s)
	}
}
