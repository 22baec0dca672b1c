package gateway

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

type stubSearcher struct {
	result SearchResult
	calls  int
}

func (s *stubSearcher) SearchNews(_ context.Context, _ Query) SearchResult {
	s.calls++
	return s.result
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "ok", StatusOK.String())
	assert.Equal(t, "empty", StatusEmpty.String())
	assert.Equal(t, "failed", StatusFailed.String())
	assert.Equal(t, "unknown", Status(42).String())
}

func TestResultConstructors(t *testing.T) {
	v := "70.1"

	assert.Equal(t, StatusEmpty, HistoryOK(nil).Status)
	assert.Equal(t, StatusOK, HistoryOK([]PriceRecord{{Period: "2024-01-01", Value: &v}}).Status)
	assert.Equal(t, StatusEmpty, SearchOK([]Article{}).Status)
	assert.Equal(t, StatusOK, SearchOK([]Article{{Title: "t"}}).Status)

	reason := errors.New("boom")
	failed := HistoryFailed(reason)
	assert.Equal(t, StatusFailed, failed.Status)
	assert.ErrorIs(t, failed.Reason, reason)
	assert.ErrorIs(t, SearchFailed(reason).Reason, reason)
}

func TestFallbackSearcher(t *testing.T) {
	tests := []struct {
		name          string
		primary       SearchResult
		wantStatus    Status
		wantFallbacks int
	}{
		{"primary ok", SearchOK([]Article{{Title: "p"}}), StatusOK, 0},
		{"primary empty is not retried", SearchOK(nil), StatusEmpty, 0},
		{"primary failed uses fallback", SearchFailed(errors.New("down")), StatusOK, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			primary := &stubSearcher{result: tt.primary}
			fallback := &stubSearcher{result: SearchOK([]Article{{Title: "f"}})}

			s := NewFallbackSearcher(primary, fallback, zerolog.Nop())
			got := s.SearchNews(context.Background(), Query{Text: "ai energy"})

			assert.Equal(t, tt.wantStatus, got.Status)
			assert.Equal(t, 1, primary.calls)
			assert.Equal(t, tt.wantFallbacks, fallback.calls)
		})
	}
}

func TestFallbackSearcher_NoFallback(t *testing.T) {
	primary := &stubSearcher{result: SearchFailed(errors.New("down"))}
	s := NewFallbackSearcher(primary, nil, zerolog.Nop())

	got := s.SearchNews(context.Background(), Query{})
	assert.Equal(t, StatusFailed, got.Status)
}
