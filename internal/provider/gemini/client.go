package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"github.com/google/uuid"
	"google.golang.org/api/googleapi"

	"github.com/joseph-ayodele/docintel/constants"
	"github.com/joseph-ayodele/docintel/internal/common"
	"github.com/joseph-ayodele/docintel/internal/entity"
	"github.com/joseph-ayodele/docintel/internal/normalize"
	"github.com/joseph-ayodele/docintel/internal/provider"
)

var _ provider.Provider = (*Client)(nil)

// minClassifyConfidence is the pass-1 confidence below which the declared
// schema type wins over the detected one.
const minClassifyConfidence = 0.5

func (c *Client) Name() string { return "gemini" }

// Classify submits the raw file with the small classification schema.
func (c *Client) Classify(ctx context.Context, in provider.Input) (entity.Classification, error) {
	rid := uuid.New().String()
	start := time.Now()

	if err := c.gate(in); err != nil {
		return entity.Classification{}, err
	}

	part, cleanup, err := c.attach(ctx, rid, in)
	if err != nil {
		return entity.Classification{}, err
	}
	defer cleanup()

	cls, err := c.classifyWithPart(ctx, rid, part)
	if err != nil {
		return entity.Classification{}, err
	}
	c.log.Info("gemini.classify.ok",
		"req_id", rid,
		"type", cls.Type,
		"confidence", cls.Confidence,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return cls, nil
}

// Extract runs the two-pass strategy: classify, then extract with the full
// schema for the detected type, reusing the same uploaded-file reference so
// the document is shipped at most once.
func (c *Client) Extract(ctx context.Context, in provider.Input, schemaType constants.DocType, promptOverride string) (*entity.ExtractionResult, error) {
	rid := uuid.New().String()
	start := time.Now()

	c.log.Info("gemini.extract.start",
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

	largeFile := planLargeFile(in.Bytes, in.MimeType)
	var excerpt string
	if largeFile != nil {
		excerpt = TextExcerpt(in.Bytes, constants.MaxExcerptBytes)
		c.log.Warn("gemini.extract.large_file",
			"req_id", rid,
			"strategy", largeFile.Strategy,
			"page_count", largeFile.PageCount,
			"sample_pages", largeFile.SamplePages,
		)
	}

	part, cleanup, err := c.attach(ctx, rid, in)
	if err != nil {
		return nil, err
	}
	defer cleanup()

	// Pass 1: classification.
	cls, err := c.classifyWithPart(ctx, rid, part)
	if err != nil {
		return nil, err
	}

	effective := schemaType
	if cls.Type != constants.Other && cls.Type != constants.Document && cls.Confidence >= minClassifyConfidence {
		effective = cls.Type
	}
	if effective == "" || effective == constants.Other {
		effective = constants.Document
	}

	// Pass 2: full-schema extraction, carrying pass-1 output as context.
	prompt := provider.BuildExtractionPrompt(effective, promptOverride)
	var ctxBits []string
	ctxBits = append(ctxBits, fmt.Sprintf("A first pass classified this document as '%s' (confidence %.2f).", cls.Type, cls.Confidence))
	if cls.Reasoning != "" {
		ctxBits = append(ctxBits, "Classifier reasoning: "+cls.Reasoning)
	}
	if largeFile != nil {
		if largeFile.Strategy == strategySamplePages {
			ctxBits = append(ctxBits, fmt.Sprintf(
				"The document has %d pages; read ONLY the sampled pages %v and the supplementary text excerpt below.",
				largeFile.PageCount, largeFile.SamplePages))
		}
		if excerpt != "" {
			ctxBits = append(ctxBits, "Supplementary text excerpt:\n"+excerpt)
		}
	}

	schema := provider.BuildExtractionJSONSchema(effective)
	raw, err := c.generateJSON(ctx, rid, prompt, schema, part, strings.Join(ctxBits, "\n"))
	if err != nil {
		c.log.Error("gemini.extract.failed",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return nil, err
	}

	parsed, err := provider.ParseExtractionJSON(raw, c.log)
	if err != nil {
		return nil, err
	}

	// schema mismatches are diagnostic only; off-schema shapes are regrouped
	// by the normalizer below
	if verr := provider.ValidateParsed(schema, parsed); verr != nil {
		c.log.Warn("gemini.extract.schema_mismatch", "req_id", rid, "error", verr)
	}

	entities := normalize.Entities(parsed, effective)
	res := &entity.ExtractionResult{
		ProviderName:   c.Name(),
		ModelID:        c.cfg.Model,
		Entities:       entities,
		RawText:        string(raw),
		RawResponse:    json.RawMessage(raw),
		LargeFile:      largeFile,
		Classification: &cls,
	}

	c.log.Info("gemini.extract.ok",
		"req_id", rid,
		"entities", len(entities),
		"schema_type", effective,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return res, nil
}

// Summarize is a text-only call with no document attachment.
func (c *Client) Summarize(ctx context.Context, text string, maxLen int) (string, error) {
	rid := uuid.New().String()
	out, err := c.generateText(ctx, rid, provider.BuildSummaryPrompt(text, maxLen))
	if err != nil {
		return "", err
	}
	out = strings.TrimSpace(out)
	if maxLen > 0 {
		out = provider.TruncateRunes(out, maxLen)
	}
	return out, nil
}

func (c *Client) SuggestTags(ctx context.Context, text string, maxTags int) ([]string, error) {
	rid := uuid.New().String()
	out, err := c.generateText(ctx, rid, provider.BuildTagsPrompt(text, maxTags))
	if err != nil {
		return nil, err
	}
	var tags []string
	candidate := strings.TrimSpace(out)
	if i := strings.IndexByte(candidate, '['); i >= 0 {
		if j := strings.LastIndexByte(candidate, ']'); j > i {
			candidate = candidate[i : j+1]
		}
	}
	if err := json.Unmarshal([]byte(candidate), &tags); err != nil {
		return nil, common.ResponseInvalidError("tags response not a JSON array", err)
	}
	if maxTags > 0 && len(tags) > maxTags {
		tags = tags[:maxTags]
	}
	return tags, nil
}

// gate rejects oversized or unsupported inputs before any network call.
func (c *Client) gate(in provider.Input) error {
	if len(in.Bytes) > constants.MaxFileSizeBytes {
		return common.FileTooLargeError(fmt.Sprintf("%d bytes exceeds limit of %d", len(in.Bytes), constants.MaxFileSizeBytes))
	}
	if _, ok := constants.SupportedMimeTypes[in.MimeType]; !ok {
		return common.UnsupportedMimeError(in.MimeType)
	}
	return nil
}

// attach returns the document part for a generation call: an inline blob for
// small files, an uploaded-file reference for big ones. The cleanup func
// deletes any uploaded file.
func (c *Client) attach(ctx context.Context, rid string, in provider.Input) (genai.Part, func(), error) {
	noop := func() {}
	if len(in.Bytes) <= inlineLimitBytes {
		return genai.Blob{MIMEType: in.MimeType, Data: in.Bytes}, noop, nil
	}

	f, err := c.genai.UploadFile(ctx, "", bytes.NewReader(in.Bytes), &genai.UploadFileOptions{
		MIMEType:    in.MimeType,
		DisplayName: in.Filename,
	})
	if err != nil {
		return nil, noop, c.mapError(rid, "upload", err)
	}

	// The Files API processes uploads asynchronously; poll until active.
	for f.State == genai.FileStateProcessing {
		select {
		case <-ctx.Done():
			return nil, noop, common.UpstreamUnavailableError("file processing timed out", ctx.Err())
		case <-time.After(500 * time.Millisecond):
		}
		f, err = c.genai.GetFile(ctx, f.Name)
		if err != nil {
			return nil, noop, c.mapError(rid, "poll", err)
		}
	}
	if f.State != genai.FileStateActive {
		return nil, noop, common.UpstreamUnavailableError(fmt.Sprintf("uploaded file state %v", f.State), nil)
	}

	c.log.Info("gemini.file.uploaded", "req_id", rid, "name", f.Name, "bytes", len(in.Bytes))
	cleanup := func() {
		if err := c.genai.DeleteFile(context.Background(), f.Name); err != nil {
			c.log.Warn("gemini.file.delete_failed", "req_id", rid, "name", f.Name, "error", err)
		}
	}
	return genai.FileData{MIMEType: in.MimeType, URI: f.URI}, cleanup, nil
}

func (c *Client) classifyWithPart(ctx context.Context, rid string, part genai.Part) (entity.Classification, error) {
	raw, err := c.generateJSON(ctx, rid, provider.BuildClassificationPrompt(), provider.BuildClassificationJSONSchema(), part, "")
	if err != nil {
		return entity.Classification{}, err
	}
	parsed, err := provider.ParseExtractionJSON(raw, c.log)
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
	return cls, nil
}

// generateJSON issues one generation call constrained to a JSON response.
func (c *Client) generateJSON(ctx context.Context, rid, prompt string, schema map[string]any, docPart genai.Part, contextText string) ([]byte, error) {
	model := c.genai.GenerativeModel(c.cfg.Model)
	model.SetTemperature(c.cfg.Temperature)
	model.ResponseMIMEType = "application/json"

	parts := []genai.Part{genai.Text(prompt + "\n\nJSON Schema:\n" + provider.MustJSON(schema))}
	if docPart != nil {
		parts = append(parts, docPart)
	}
	if contextText != "" {
		parts = append(parts, genai.Text(contextText))
	}

	cctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	resp, err := model.GenerateContent(cctx, parts...)
	if err != nil {
		return nil, c.mapError(rid, "generate", err)
	}
	return responseText(resp)
}

func (c *Client) generateText(ctx context.Context, rid, prompt string) (string, error) {
	model := c.genai.GenerativeModel(c.cfg.Model)
	model.SetTemperature(c.cfg.Temperature)

	cctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	resp, err := model.GenerateContent(cctx, genai.Text(prompt))
	if err != nil {
		return "", c.mapError(rid, "generate", err)
	}
	b, err := responseText(resp)
	return string(b), err
}

func responseText(resp *genai.GenerateContentResponse) ([]byte, error) {
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, common.ResponseInvalidError("empty candidates in gemini response", nil)
	}
	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			sb.WriteString(string(txt))
		}
	}
	return []byte(strings.TrimSpace(sb.String())), nil
}

// mapError folds genai transport failures into the retryable taxonomy.
func (c *Client) mapError(rid, op string, err error) error {
	c.log.Error("gemini."+op+".error", "req_id", rid, "error", err)

	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		switch {
		case gerr.Code == 429:
			return common.RateLimitedError("gemini rate limited", err)
		case gerr.Code == 401 || gerr.Code == 403:
			return common.MissingCredentialsError(c.Name())
		case gerr.Code >= 500:
			return common.UpstreamUnavailableError(fmt.Sprintf("gemini status %d", gerr.Code), err)
		}
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return common.UpstreamUnavailableError("gemini call timed out", err)
	}
	return common.UpstreamUnavailableError("gemini call failed", err)
}
