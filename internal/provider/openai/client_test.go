package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joseph-ayodele/docintel/constants"
	"github.com/joseph-ayodele/docintel/internal/common"
	"github.com/joseph-ayodele/docintel/internal/provider"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(Config{APIKey: "test-key", BaseURL: srv.URL}, nil)
}

func completionResponse(w http.ResponseWriter, content string) {
	resp := map[string]any{
		"choices": []map[string]any{
			{"message": map[string]any{"content": content}},
		},
	}
	_ = json.NewEncoder(w).Encode(resp)
}

func pngInput() provider.Input {
	return provider.Input{Bytes: []byte("not-really-a-png"), MimeType: "image/png", Filename: "r.png"}
}

func TestExtractCanonicalResponse(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		completionResponse(w, `{"entities":[{"type":"receipt","confidence_score":0.93,"data":{"merchant":{"name":"ACME"},"totals":{"total_amount":12.5,"currency_code":"USD"}}}]}`)
	})

	res, err := c.Extract(context.Background(), pngInput(), constants.Receipt, "")
	require.NoError(t, err)
	assert.Equal(t, "openai", res.ProviderName)
	require.Len(t, res.Entities, 1)
	assert.Equal(t, constants.Receipt, res.Entities[0].Type)
	assert.Equal(t, 0.93, res.Entities[0].ConfidenceScore)
}

func TestExtractOffSchemaResponseIsRegrouped(t *testing.T) {
	// flat payloads fail schema validation but still normalize into the
	// nested canonical groups
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		completionResponse(w, `{"entities":[{"merchant_name":"ACME","total":5.0,"payment_method":"card"}]}`)
	})

	res, err := c.Extract(context.Background(), pngInput(), constants.Receipt, "")
	require.NoError(t, err)
	require.Len(t, res.Entities, 1)
	assert.Equal(t, constants.Receipt, res.Entities[0].Type)

	data := res.Entities[0].Data
	merchant, ok := data["merchant"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "ACME", merchant["name"])
	totals, ok := data["totals"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, 5.0, totals["total_amount"])
}

func TestExtractRateLimited(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"error":{"message":"slow down"}}`, http.StatusTooManyRequests)
	})

	_, err := c.Extract(context.Background(), pngInput(), constants.Receipt, "")
	require.Error(t, err)
	assert.Equal(t, common.KindRateLimited, common.KindOf(err))
	assert.True(t, common.IsRetryable(err))
}

func TestExtractRejectsPDF(t *testing.T) {
	c := NewClient(Config{APIKey: "test-key"}, nil)
	_, err := c.Extract(context.Background(), provider.Input{Bytes: []byte("%PDF-"), MimeType: "application/pdf"}, constants.Receipt, "")
	require.Error(t, err)
	assert.Equal(t, common.KindUnsupportedMime, common.KindOf(err))
}
