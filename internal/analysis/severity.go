package analysis

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"
	"unicode"

	"campusdesk/backend/internal/config"
	"campusdesk/backend/internal/llm"
)

// SeveritySource records which path produced a severity score.
type SeveritySource string

const (
	SeverityFromModel   SeveritySource = "model"
	SeverityFromKeyword SeveritySource = "keyword"
)

// SeverityScorer rates complaint text 1-5 using the model, with a keyword
// heuristic as the fallback policy.
type SeverityScorer struct {
	Model llm.Client
}

const severityPrompt = `You are an assistant for %s's complaint system.
Analyze the following student complaint and rate its SEVERITY from 1 to 5:

1 - Very minor inconvenience or suggestion
2 - Minor issue, can wait
3 - Moderate issue, causes discomfort but not urgent
4 - Serious problem, needs quick attention
5 - Critical or safety issue, requires immediate response

Complaint: "%s"

Return ONLY a single digit (1-5) as the severity score.`

// Score never fails. A reply carrying a digit wins; a failed call or a
// digit-free reply both route to the same keyword fallback, regardless of
// why the model path did not produce a score. The result is always clamped
// to [1,5].
func (s *SeverityScorer) Score(ctx context.Context, text string) (int, SeveritySource) {
	reply, err := s.Model.Complete(ctx, fmt.Sprintf(severityPrompt, config.Institute, text))
	if err != nil {
		log.Printf("WARN: severity model call failed, using keyword heuristic: %v", err)
	} else if score, ok := scoreFromReply(reply); ok {
		return clamp(score), SeverityFromModel
	}
	return clamp(KeywordScore(text)), SeverityFromKeyword
}

// scoreFromReply extracts the first contiguous digit run within the first
// five characters of the trimmed reply.
func scoreFromReply(reply string) (int, bool) {
	head := []rune(strings.TrimSpace(reply))
	if len(head) > 5 {
		head = head[:5]
	}
	var digits strings.Builder
	for _, r := range head {
		if unicode.IsDigit(r) {
			digits.WriteRune(r)
		} else if digits.Len() > 0 {
			break
		}
	}
	if digits.Len() == 0 {
		return 0, false
	}
	score, err := strconv.Atoi(digits.String())
	if err != nil {
		return 0, false
	}
	return score, true
}

// KeywordScore is the fallback severity policy: a pure keyword scan over the
// lowercased complaint text, evaluated from the most to the least severe
// tier. Complaints matching no tier score 2.
func KeywordScore(text string) int {
	t := strings.ToLower(text)
	if containsAny(t, config.SeverityCriticalKeywords) {
		return 5
	}
	if containsAny(t, config.SeveritySeriousKeywords) {
		return 4
	}
	if containsAny(t, config.SeverityModerateKeywords) {
		return 3
	}
	return 2
}

func containsAny(text string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(text, k) {
			return true
		}
	}
	return false
}

func clamp(score int) int {
	if score < 1 {
		return 1
	}
	if score > 5 {
		return 5
	}
	return score
}
