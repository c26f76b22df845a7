package resilient

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joseph-ayodele/docintel/constants"
	"github.com/joseph-ayodele/docintel/internal/common"
	"github.com/joseph-ayodele/docintel/internal/entity"
	"github.com/joseph-ayodele/docintel/internal/provider"
)

type stubProvider struct {
	extractErr  error
	summaryErr  error
	tagsErr     error
	extractions int
}

func (s *stubProvider) Name() string { return "stub" }

func (s *stubProvider) Classify(ctx context.Context, in provider.Input) (entity.Classification, error) {
	if s.extractErr != nil {
		return entity.Classification{}, s.extractErr
	}
	return entity.Classification{Type: constants.Receipt, Confidence: 0.9}, nil
}

func (s *stubProvider) Extract(ctx context.Context, in provider.Input, schemaType constants.DocType, promptOverride string) (*entity.ExtractionResult, error) {
	s.extractions++
	if s.extractErr != nil {
		return nil, s.extractErr
	}
	return &entity.ExtractionResult{ProviderName: "stub"}, nil
}

func (s *stubProvider) Summarize(ctx context.Context, text string, maxLen int) (string, error) {
	if s.summaryErr != nil {
		return "", s.summaryErr
	}
	return "summary", nil
}

func (s *stubProvider) SuggestTags(ctx context.Context, text string, maxTags int) ([]string, error) {
	if s.tagsErr != nil {
		return nil, s.tagsErr
	}
	return []string{"tag"}, nil
}

func TestWrapperPrimaryCallsSurfaceErrors(t *testing.T) {
	stub := &stubProvider{extractErr: common.UpstreamUnavailableError("boom", nil)}
	w := Wrap(stub, NewBreaker(BreakerConfig{FailureThreshold: 100}), nil)

	_, err := w.Extract(context.Background(), provider.Input{}, constants.Receipt, "")
	require.Error(t, err)
	assert.Equal(t, common.KindUpstreamUnavailable, common.KindOf(err))

	_, err = w.Classify(context.Background(), provider.Input{})
	require.Error(t, err)
}

func TestWrapperEnrichmentDegrades(t *testing.T) {
	stub := &stubProvider{
		summaryErr: common.RateLimitedError("slow down", nil),
		tagsErr:    common.ResponseInvalidError("garbage", nil),
	}
	w := Wrap(stub, nil, nil)

	sum, err := w.Summarize(context.Background(), "text", 100)
	assert.NoError(t, err)
	assert.Empty(t, sum)

	tags, err := w.SuggestTags(context.Background(), "text", 5)
	assert.NoError(t, err)
	assert.Nil(t, tags)
}

func TestWrapperShortCircuitsOnOpenBreaker(t *testing.T) {
	stub := &stubProvider{extractErr: common.UpstreamUnavailableError("boom", nil)}
	breaker := NewBreaker(BreakerConfig{FailureThreshold: 2})
	w := Wrap(stub, breaker, nil)

	for i := 0; i < 2; i++ {
		_, _ = w.Extract(context.Background(), provider.Input{}, constants.Receipt, "")
	}
	assert.Equal(t, StateOpen, breaker.State())
	assert.Equal(t, 2, stub.extractions)

	// circuit open: the inner provider is not called again
	_, err := w.Extract(context.Background(), provider.Input{}, constants.Receipt, "")
	require.Error(t, err)
	assert.Equal(t, common.KindUpstreamUnavailable, common.KindOf(err))
	assert.True(t, common.IsRetryable(err))
	assert.Equal(t, 2, stub.extractions)
}

func TestWrapperRecoversAfterSuccess(t *testing.T) {
	stub := &stubProvider{}
	breaker := NewBreaker(BreakerConfig{FailureThreshold: 2})
	w := Wrap(stub, breaker, nil)

	res, err := w.Extract(context.Background(), provider.Input{}, constants.Receipt, "")
	require.NoError(t, err)
	assert.Equal(t, "stub", res.ProviderName)
	assert.Equal(t, StateClosed, breaker.State())
}
