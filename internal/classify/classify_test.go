package classify

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrei/stealth-scout/internal/llm"
	"github.com/andrei/stealth-scout/internal/types"
)

// mockLLM returns a canned response or error for every call.
type mockLLM struct {
	response string
	err      error
	calls    int
}

func (m *mockLLM) GenerateJSON(_ context.Context, _ string, _ llm.ModelTier) (string, error) {
	m.calls++
	return m.response, m.err
}

func (m *mockLLM) Close() error { return nil }

func TestClassifyHeuristicsOnly(t *testing.T) {
	c := New(nil)

	tests := []struct {
		name         string
		subTitle     string
		wantFounder  bool
		wantStealth  bool
		wantConf     types.Confidence
		wantRetained bool
	}{
		{
			name:         "founder and stealth is high confidence",
			subTitle:     "Founder, building something new",
			wantFounder:  true,
			wantStealth:  true,
			wantConf:     types.ConfidenceHigh,
			wantRetained: true,
		},
		{
			name:         "founder with named company is medium",
			subTitle:     "Founder at Acme",
			wantFounder:  true,
			wantStealth:  false,
			wantConf:     types.ConfidenceMedium,
			wantRetained: true,
		},
		{
			name:         "single stealth indicator is low",
			subTitle:     "stealth",
			wantFounder:  false,
			wantStealth:  true,
			wantConf:     types.ConfidenceLow,
			wantRetained: true,
		},
		{
			name:         "multiple stealth indicators are medium",
			subTitle:     "In stealth, working on something",
			wantFounder:  false,
			wantStealth:  true,
			wantConf:     types.ConfidenceMedium,
			wantRetained: true,
		},
		{
			name:         "two bonus indicators retain without flags",
			subTitle:     "Angel investor in crypto",
			wantFounder:  false,
			wantStealth:  false,
			wantConf:     types.ConfidenceMedium,
			wantRetained: true,
		},
		{
			name:         "no signals is dropped",
			subTitle:     "Software Engineer",
			wantFounder:  false,
			wantStealth:  false,
			wantConf:     types.ConfidenceLow,
			wantRetained: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, retained := c.Classify(context.Background(), types.Profile{ProfileID: "p1", SubTitle: tt.subTitle})
			assert.Equal(t, tt.wantFounder, result.IsFounder, "IsFounder")
			assert.Equal(t, tt.wantStealth, result.IsStealth, "IsStealth")
			assert.Equal(t, tt.wantConf, result.Confidence, "Confidence")
			assert.Equal(t, tt.wantRetained, retained, "retained")
		})
	}
}

func TestClassifyLLMAddsFlags(t *testing.T) {
	mock := &mockLLM{response: `{"is_stealth": true, "is_founder": true, "reason": "headline hints at an undisclosed venture"}`}
	c := New(mock)

	// Heuristics alone see nothing in this headline.
	result, retained := c.Classify(context.Background(), types.Profile{ProfileID: "p1", SubTitle: "Doing my own thing"})

	assert.True(t, result.IsFounder)
	assert.True(t, result.IsStealth)
	assert.Contains(t, result.FounderIndicators, "llm_classifier")
	assert.Contains(t, result.StealthIndicators, "llm_classifier")
	assert.Equal(t, "headline hints at an undisclosed venture", result.Reason)
	assert.Equal(t, types.ConfidenceHigh, result.Confidence)
	assert.True(t, retained)
	assert.Equal(t, 1, mock.calls)
}

func TestClassifyLLMDoesNotDuplicateHeuristicFlags(t *testing.T) {
	mock := &mockLLM{response: `{"is_stealth": true, "is_founder": true, "reason": "ok"}`}
	c := New(mock)

	result, _ := c.Classify(context.Background(), types.Profile{SubTitle: "Founder, building something new"})

	assert.NotContains(t, result.FounderIndicators, "llm_classifier")
	assert.NotContains(t, result.StealthIndicators, "llm_classifier")
}

func TestClassifyLLMFailureDegrades(t *testing.T) {
	mock := &mockLLM{err: errors.New("rate limited")}
	c := New(mock)

	result, retained := c.Classify(context.Background(), types.Profile{ProfileID: "p1", SubTitle: "Founder at Acme"})

	// The heuristic verdict survives; the degraded call contributes the
	// fallback reason and nothing else.
	assert.True(t, result.IsFounder)
	assert.False(t, result.IsStealth)
	assert.Equal(t, "API Error", result.Reason)
	assert.True(t, retained)
}

func TestClassifyLLMMalformedPayloadDegrades(t *testing.T) {
	tests := []struct {
		name     string
		response string
	}{
		{"not JSON", "sorry, I cannot help with that"},
		{"missing required fields", `{"is_stealth": true}`},
		{"wrong types", `{"is_stealth": "yes", "is_founder": "no", "reason": 1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(&mockLLM{response: tt.response})
			result, _ := c.Classify(context.Background(), types.Profile{SubTitle: "Founder at Acme"})
			assert.Equal(t, "API Error", result.Reason)
			assert.True(t, result.IsFounder, "heuristic flags survive a malformed verdict")
		})
	}
}

func TestClassifyAll(t *testing.T) {
	c := New(nil)
	profiles := []types.Profile{
		{ProfileID: "1", SubTitle: "Founder, building something new"},
		{ProfileID: "2", SubTitle: "Software Engineer"},
		{ProfileID: "3", SubTitle: "stealth"},
	}

	leads := c.ClassifyAll(context.Background(), profiles)

	require.Len(t, leads, 2)
	assert.Equal(t, "1", leads[0].Profile.ProfileID, "input order preserved")
	assert.Equal(t, "3", leads[1].Profile.ProfileID)
}

func TestScoreConfidence(t *testing.T) {
	tests := []struct {
		name     string
		result   types.ClassificationResult
		expected types.Confidence
	}{
		{
			name:     "founder and stealth",
			result:   types.ClassificationResult{IsFounder: true, IsStealth: true},
			expected: types.ConfidenceHigh,
		},
		{
			name:     "founder only",
			result:   types.ClassificationResult{IsFounder: true},
			expected: types.ConfidenceMedium,
		},
		{
			name:     "stealth with one indicator",
			result:   types.ClassificationResult{IsStealth: true, StealthIndicators: []string{"stealth"}},
			expected: types.ConfidenceLow,
		},
		{
			name:     "stealth with two indicators",
			result:   types.ClassificationResult{IsStealth: true, StealthIndicators: []string{"stealth", "working on"}},
			expected: types.ConfidenceMedium,
		},
		{
			name:     "two bonus indicators alone",
			result:   types.ClassificationResult{BonusIndicators: []string{"angel", "crypto"}},
			expected: types.ConfidenceMedium,
		},
		{
			name:     "one bonus indicator alone",
			result:   types.ClassificationResult{BonusIndicators: []string{"angel"}},
			expected: types.ConfidenceLow,
		},
		{
			name:     "nothing",
			result:   types.ClassificationResult{},
			expected: types.ConfidenceLow,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, scoreConfidence(tt.result))
		})
	}
}
