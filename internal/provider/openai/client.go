package openai

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/docintel/constants"
	"github.com/joseph-ayodele/docintel/internal/common"
	"github.com/joseph-ayodele/docintel/internal/entity"
	"github.com/joseph-ayodele/docintel/internal/normalize"
	"github.com/joseph-ayodele/docintel/internal/provider"
)

// Client is the single-pass chat-completions provider. It embeds the JSON
// schema into a role-scoped prompt, attaches the document as an inline data
// URL, and parses one structured response. Suited to small, simple
// documents; PDFs go to the multimodal provider.
var _ provider.Provider = (*Client)(nil)

func (c *Client) Name() string { return "openai" }

// Classify runs a single classification completion against the attached image.
func (c *Client) Classify(ctx context.Context, in provider.Input) (entity.Classification, error) {
	rid := uuid.New().String()
	start := time.Now()

	if err := c.gate(in); err != nil {
		return entity.Classification{}, err
	}

	schema := provider.BuildClassificationJSONSchema()
	content, err := c.complete(ctx, rid, provider.BuildClassificationPrompt(), schema, &in)
	if err != nil {
		return entity.Classification{}, err
	}

	parsed, err := provider.ParseExtractionJSON(content, c.log)
	if err != nil {
		return entity.Classification{}, err
	}

	cls := entity.Classification{Type: constants.Document}
	if s, ok := parsed["document_type"].(string); ok {
		if dt, known := constants.Canonicalize(s); known {
			cls.Type = dt
		}
	}
	if f, ok := parsed["confidence"].(float64); ok {
		cls.Confidence = f
	}
	if s, ok := parsed["reasoning"].(string); ok {
		cls.Reasoning = s
	}

	c.log.Info("openai.classify.ok",
		"req_id", rid,
		"type", cls.Type,
		"confidence", cls.Confidence,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return cls, nil
}

// Extract runs a single schema-guided completion and normalizes the output.
func (c *Client) Extract(ctx context.Context, in provider.Input, schemaType constants.DocType, promptOverride string) (*entity.ExtractionResult, error) {
	rid := uuid.New().String()
	start := time.Now()

	c.log.Info("openai.extract.start",
		"req_id", rid,
		"model", c.cfg.Model,
		"file_id", in.FileID,
		"mime", in.MimeType,
		"bytes", len(in.Bytes),
		"schema_type", schemaType,
	)

	if err := c.gate(in); err != nil {
		return nil, err
	}

	schema := provider.BuildExtractionJSONSchema(schemaType)
	content, err := c.complete(ctx, rid, provider.BuildExtractionPrompt(schemaType, promptOverride), schema, &in)
	if err != nil {
		c.log.Error("openai.extract.failed",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return nil, err
	}

	parsed, err := provider.ParseExtractionJSON(content, c.log)
	if err != nil {
		return nil, err
	}

	// schema mismatches are diagnostic only; off-schema shapes are regrouped
	// by the normalizer below
	if verr := provider.ValidateParsed(schema, parsed); verr != nil {
		c.log.Warn("openai.extract.schema_mismatch", "req_id", rid, "error", verr)
	}

	entities := normalize.Entities(parsed, schemaType)
	res := &entity.ExtractionResult{
		ProviderName: c.Name(),
		ModelID:      c.cfg.Model,
		Entities:     entities,
		RawText:      string(content),
		RawResponse:  json.RawMessage(content),
	}

	c.log.Info("openai.extract.ok",
		"req_id", rid,
		"entities", len(entities),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return res, nil
}

// Summarize asks for a bounded plain-text summary.
func (c *Client) Summarize(ctx context.Context, text string, maxLen int) (string, error) {
	rid := uuid.New().String()
	content, err := c.complete(ctx, rid, provider.BuildSummaryPrompt(text, maxLen), nil, nil)
	if err != nil {
		return "", err
	}
	out := strings.TrimSpace(string(content))
	if maxLen > 0 {
		out = provider.TruncateRunes(out, maxLen)
	}
	return out, nil
}

// SuggestTags asks for up to maxTags short tags.
func (c *Client) SuggestTags(ctx context.Context, text string, maxTags int) ([]string, error) {
	rid := uuid.New().String()
	content, err := c.complete(ctx, rid, provider.BuildTagsPrompt(text, maxTags), nil, nil)
	if err != nil {
		return nil, err
	}
	var tags []string
	trimmed := strings.TrimSpace(string(content))
	if err := json.Unmarshal([]byte(trimmed), &tags); err != nil {
		// tolerate fenced or chatty responses
		parsed, rerr := provider.ParseExtractionJSON(content, c.log)
		if rerr != nil {
			return nil, common.ResponseInvalidError("tags response not a JSON array", err)
		}
		if arr, ok := parsed["entities"].([]any); ok {
			for _, v := range arr {
				if s, ok := v.(string); ok {
					tags = append(tags, s)
				}
			}
		}
	}
	if maxTags > 0 && len(tags) > maxTags {
		tags = tags[:maxTags]
	}
	return tags, nil
}

// gate rejects inputs this provider cannot take before any network call.
func (c *Client) gate(in provider.Input) error {
	if c.cfg.APIKey == "" {
		return common.MissingCredentialsError(c.Name())
	}
	if len(in.Bytes) > constants.MaxFileSizeBytes {
		return common.FileTooLargeError(fmt.Sprintf("%d bytes exceeds limit of %d", len(in.Bytes), constants.MaxFileSizeBytes))
	}
	if _, ok := constants.SupportedMimeTypes[in.MimeType]; !ok {
		return common.UnsupportedMimeError(in.MimeType)
	}
	if in.MimeType == "application/pdf" {
		// chat completions take images only; PDFs belong to the multimodal path
		return common.UnsupportedMimeError(in.MimeType)
	}
	return nil
}

// complete issues one chat completion. When in is non-nil the document is
// attached as an inline data URL; when schema is non-nil the JSON schema is
// appended as a system message and json_object response format is requested.
func (c *Client) complete(ctx context.Context, rid, prompt string, schema map[string]any, in *provider.Input) ([]byte, error) {
	if c.cfg.APIKey == "" {
		return nil, common.MissingCredentialsError(c.Name())
	}

	userContent := any(prompt)
	if in != nil {
		dataURL := "data:" + in.MimeType + ";base64," + base64.StdEncoding.EncodeToString(in.Bytes)
		userContent = []map[string]any{
			{"type": "text", "text": prompt},
			{"type": "image_url", "image_url": map[string]any{"url": dataURL}},
		}
	}

	messages := []map[string]any{
		{"role": "system", "content": "You are a precise document intelligence engine."},
		{"role": "user", "content": userContent},
	}
	body := map[string]any{
		"model":       c.cfg.Model,
		"temperature": c.cfg.Temperature,
		"messages":    messages,
	}
	if schema != nil {
		body["response_format"] = map[string]any{"type": "json_object"}
		body["messages"] = append(messages, map[string]any{
			"role":    "system",
			"content": "JSON Schema:\n" + provider.MustJSON(schema),
		})
	}

	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + "/chat/completions"
	raw, status, err := c.post(ctx, endpoint, body)
	if err != nil {
		return nil, c.mapHTTPError(rid, status, err)
	}

	var cc struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(raw, &cc); err != nil {
		return nil, common.ResponseInvalidError("decode completion envelope", err)
	}
	if len(cc.Choices) == 0 {
		return nil, common.ResponseInvalidError("no choices in completion response", nil)
	}
	return []byte(strings.TrimSpace(cc.Choices[0].Message.Content)), nil
}

func (c *Client) post(ctx context.Context, url string, body map[string]any) ([]byte, int, error) {
	b, err := json.Marshal(body)
	if err != nil {
		return nil, 0, fmt.Errorf("marshal request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return nil, 0, err
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer func(Body io.ReadCloser) {
		if err := Body.Close(); err != nil {
			c.log.Warn("openai response body close error", "error", err)
		}
	}(resp.Body)

	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return raw, resp.StatusCode, fmt.Errorf("openai status %d: %s", resp.StatusCode, string(raw))
	}
	return raw, resp.StatusCode, nil
}

// mapHTTPError folds transport failures into the retryable taxonomy.
func (c *Client) mapHTTPError(rid string, status int, err error) error {
	c.log.Error("openai.http_error", "req_id", rid, "status", status, "error", err)
	switch {
	case status == http.StatusTooManyRequests:
		return common.RateLimitedError("openai rate limited", err)
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return common.MissingCredentialsError(c.Name())
	case status >= 500:
		return common.UpstreamUnavailableError(fmt.Sprintf("openai status %d", status), err)
	case status == 0:
		// transport-level failure or timeout
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			return common.UpstreamUnavailableError("openai call timed out", err)
		}
		return common.UpstreamUnavailableError("openai unreachable", err)
	default:
		return common.ResponseInvalidError(fmt.Sprintf("openai status %d", status), err)
	}
}
