// Package resilient decorates any provider with failure isolation. Primary
// calls (Classify, Extract) are logged and re-raised so the pipeline stops;
// best-effort enrichment (Summarize, SuggestTags) degrades to safe defaults
// and never fails an otherwise-successful extraction. A circuit breaker
// under the decorator sheds load while a provider is unhealthy.
package resilient

import (
	"context"
	"log/slog"

	"github.com/joseph-ayodele/docintel/constants"
	"github.com/joseph-ayodele/docintel/internal/common"
	"github.com/joseph-ayodele/docintel/internal/entity"
	"github.com/joseph-ayodele/docintel/internal/provider"
)

type Wrapper struct {
	inner   provider.Provider
	breaker *Breaker
	log     *slog.Logger
}

var _ provider.Provider = (*Wrapper)(nil)

// Wrap decorates inner with logging, fallbacks and the given breaker.
// A nil breaker gets defaults.
func Wrap(inner provider.Provider, breaker *Breaker, logger *slog.Logger) *Wrapper {
	if breaker == nil {
		breaker = NewBreaker(BreakerConfig{})
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Wrapper{inner: inner, breaker: breaker, log: logger}
}

func (w *Wrapper) Name() string { return w.inner.Name() }

// Breaker exposes the circuit handle for health surfaces.
func (w *Wrapper) Breaker() *Breaker { return w.breaker }

func (w *Wrapper) shortCircuit(method string) error {
	w.log.Warn("provider.circuit_open",
		"provider", w.inner.Name(),
		"method", method,
	)
	return common.UpstreamUnavailableError("provider circuit open: "+w.inner.Name(), nil)
}

func (w *Wrapper) observe(method string, err error) {
	if err == nil {
		w.breaker.Success()
		return
	}
	w.breaker.Failure()
	w.log.Error("provider.call_failed",
		"provider", w.inner.Name(),
		"method", method,
		"kind", common.KindOf(err),
		"retryable", common.IsRetryable(err),
		"error", err,
	)
}

// Classify is a primary call: failures surface to the caller.
func (w *Wrapper) Classify(ctx context.Context, in provider.Input) (entity.Classification, error) {
	if !w.breaker.Allow() {
		return entity.Classification{}, w.shortCircuit("classify")
	}
	cls, err := w.inner.Classify(ctx, in)
	w.observe("classify", err)
	if err != nil {
		return entity.Classification{}, err
	}
	return cls, nil
}

// Extract is a primary call: failures surface to the caller. No entity may
// be persisted from a failed extraction.
func (w *Wrapper) Extract(ctx context.Context, in provider.Input, schemaType constants.DocType, promptOverride string) (*entity.ExtractionResult, error) {
	if !w.breaker.Allow() {
		return nil, w.shortCircuit("extract")
	}
	res, err := w.inner.Extract(ctx, in, schemaType, promptOverride)
	w.observe("extract", err)
	if err != nil {
		return nil, err
	}
	return res, nil
}

// Summarize is best-effort: failures are swallowed and an empty string
// returned.
func (w *Wrapper) Summarize(ctx context.Context, text string, maxLen int) (string, error) {
	if !w.breaker.Allow() {
		w.log.Warn("provider.circuit_open", "provider", w.inner.Name(), "method", "summarize")
		return "", nil
	}
	out, err := w.inner.Summarize(ctx, text, maxLen)
	w.observe("summarize", err)
	if err != nil {
		return "", nil
	}
	return out, nil
}

// SuggestTags is best-effort: failures are swallowed and an empty list
// returned.
func (w *Wrapper) SuggestTags(ctx context.Context, text string, maxTags int) ([]string, error) {
	if !w.breaker.Allow() {
		w.log.Warn("provider.circuit_open", "provider", w.inner.Name(), "method", "suggest_tags")
		return nil, nil
	}
	tags, err := w.inner.SuggestTags(ctx, text, maxTags)
	w.observe("suggest_tags", err)
	if err != nil {
		return nil, nil
	}
	return tags, nil
}
