package analysis_test

import (
	"context"
	"errors"
	"testing"

	"campusdesk/backend/internal/analysis"

	"github.com/stretchr/testify/assert"
)

// TestSeverityFromModelDigit verifies a plain digit reply wins.
func TestSeverityFromModelDigit(t *testing.T) {
	scorer := &analysis.SeverityScorer{Model: &fakeModel{replies: []string{"3"}}}

	score, source := scorer.Score(context.Background(), "The reading room fans are noisy.")

	assert.Equal(t, 3, score)
	assert.Equal(t, analysis.SeverityFromModel, source)
}

// TestSeverityDigitWithTrailingText verifies the digit is read from the
// first five characters of the reply.
func TestSeverityDigitWithTrailingText(t *testing.T) {
	scorer := &analysis.SeverityScorer{Model: &fakeModel{replies: []string{"4 - serious problem"}}}

	score, source := scorer.Score(context.Background(), "The hostel wifi drops every evening.")

	assert.Equal(t, 4, score)
	assert.Equal(t, analysis.SeverityFromModel, source)
}

// TestSeverityClampsOutOfRangeDigit verifies an out-of-range model digit is
// clamped, not sent to the keyword fallback.
func TestSeverityClampsOutOfRangeDigit(t *testing.T) {
	scorer := &analysis.SeverityScorer{Model: &fakeModel{replies: []string{"9"}}}

	score, source := scorer.Score(context.Background(), "A quiet room request.")

	assert.Equal(t, 5, score)
	assert.Equal(t, analysis.SeverityFromModel, source)
}

// TestSeverityDigitBeyondWindowFallsBack verifies a digit past the first
// five characters does not count as a model score.
func TestSeverityDigitBeyondWindowFallsBack(t *testing.T) {
	scorer := &analysis.SeverityScorer{Model: &fakeModel{replies: []string{"Severity: 4"}}}

	score, source := scorer.Score(context.Background(), "The notice board is outdated.")

	assert.Equal(t, analysis.SeverityFromKeyword, source)
	assert.Equal(t, 2, score)
}

// TestSeverityKeywordFallbackOnModelError verifies urgent text with the
// model down still scores 5 via keywords.
func TestSeverityKeywordFallbackOnModelError(t *testing.T) {
	scorer := &analysis.SeverityScorer{Model: &fakeModel{err: errors.New("model unavailable")}}

	score, source := scorer.Score(context.Background(), "There is a fire in the hostel, immediate danger!")

	assert.Equal(t, 5, score)
	assert.Equal(t, analysis.SeverityFromKeyword, source)
}

// TestSeverityKeywordFallbackBlandText verifies a bland complaint with no
// keyword matches and no model lands on 2.
func TestSeverityKeywordFallbackBlandText(t *testing.T) {
	scorer := &analysis.SeverityScorer{Model: &fakeModel{err: errors.New("model unavailable")}}

	score, source := scorer.Score(context.Background(), "The garden could use a few more benches.")

	assert.Equal(t, 2, score)
	assert.Equal(t, analysis.SeverityFromKeyword, source)
}

// TestKeywordScoreTiers verifies tier priority from critical down.
func TestKeywordScoreTiers(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{"critical keyword", "There was a power cut in the lab during the exam.", 5},
		{"critical wins over lower tiers", "Urgent: the food is bad and the wifi is not working.", 5},
		{"serious keyword", "The food in the mess is bad.", 4},
		{"moderate keyword", "The printer in the library is not working.", 3},
		{"no keywords", "Could the common room stay open longer on weekends?", 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, analysis.KeywordScore(tt.text))
		})
	}
}
