package analysis

import (
	"context"
	"fmt"
	"log"
	"strings"
	"unicode/utf8"

	"campusdesk/backend/internal/config"
	"campusdesk/backend/internal/llm"
)

const maxSuggestions = 4

// Fixed fallback lists. FallbackEmptyReply answers a reply with no usable
// lines; FallbackCallFailed answers a failed model call.
var (
	FallbackEmptyReply = []string{
		"Please wait while the department reviews your complaint.",
		"You may follow up politely if no response within a few days.",
	}
	FallbackCallFailed = []string{
		"Your complaint has been recorded. Please wait while it is processed.",
		"You can contact your department representative for urgent concerns.",
	}
)

// SuggestionGenerator produces interim suggestions a student can follow
// while one department reviews the complaint.
type SuggestionGenerator struct {
	Model llm.Client
}

const suggestionPrompt = `You are an %s administrator assisting students with complaints.

Complaint:
%s

Department Concerned:
%s

Give 3-4 short, realistic, and actionable suggestions a student can follow
while their complaint is being reviewed by the %s department.
Keep the tone polite, supportive, and student-friendly. Avoid generic or repetitive advice.
Begin each suggestion with a bullet like '- '.`

// Generate never fails: a dead model yields FallbackCallFailed and a reply
// with no usable lines yields FallbackEmptyReply.
func (g *SuggestionGenerator) Generate(ctx context.Context, text, department string) []string {
	prompt := fmt.Sprintf(suggestionPrompt, config.Institute, text, department, department)
	reply, err := g.Model.Complete(ctx, prompt)
	if err != nil {
		log.Printf("WARN: suggestion model call failed for %s: %v", department, err)
		return FallbackCallFailed
	}
	cleaned := cleanSuggestions(reply)
	if len(cleaned) == 0 {
		return FallbackEmptyReply
	}
	return cleaned
}

// cleanSuggestions splits a bulleted reply into suggestion lines: leading
// bullet markers stripped, blank and near-empty lines dropped, at most four
// lines kept.
func cleanSuggestions(reply string) []string {
	var suggestions []string
	for _, line := range strings.Split(reply, "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimLeft(line, "-•* \t")
		line = strings.TrimSpace(line)
		if utf8.RuneCountInString(line) <= 3 {
			continue
		}
		suggestions = append(suggestions, line)
		if len(suggestions) == maxSuggestions {
			break
		}
	}
	return suggestions
}
