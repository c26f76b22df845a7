package gemini

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/joseph-ayodele/docintel/internal/common"
)

// Config for the Gemini multimodal provider.
type Config struct {
	APIKey      string        // if empty, falls back to env GEMINI_API_KEY
	Model       string        // e.g., "gemini-2.0-flash"
	Temperature float32
	Timeout     time.Duration // per-call wall clock, multimodal default 90s
}

// Client is the two-pass multimodal provider built on the Gemini file-native
// API. Pass 1 classifies, pass 2 extracts with the full schema, reusing the
// uploaded-file reference between passes.
type Client struct {
	cfg   Config
	genai *genai.Client
	log   *slog.Logger
}

// inlineLimitBytes is the point past which files go through the Files API
// instead of inline base64 parts.
const inlineLimitBytes = 15 * 1024 * 1024

func NewClient(ctx context.Context, cfg Config, logger *slog.Logger) (*Client, error) {
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("GEMINI_API_KEY")
	}
	if cfg.APIKey == "" {
		return nil, common.MissingCredentialsError("gemini")
	}
	if cfg.Model == "" {
		cfg.Model = "gemini-2.0-flash"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 90 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}

	gc, err := genai.NewClient(ctx, option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, common.UpstreamUnavailableError("create gemini client", err)
	}
	return &Client{cfg: cfg, genai: gc, log: logger}, nil
}

// Close releases the underlying genai client.
func (c *Client) Close() error {
	return c.genai.Close()
}
