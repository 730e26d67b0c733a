package analysis

import (
	"context"
	"fmt"
	"strings"

	"campusdesk/backend/internal/llm"
)

const (
	chunkSize    = 500
	chunkOverlap = 50
)

// Summarizer produces short abstractive summaries via map-reduce over
// overlapping chunks. Typical complaints fit one chunk and cost one call.
type Summarizer struct {
	Model llm.Client
}

// Summarize summarizes each chunk independently, then reduces the joined
// chunk summaries into one. Errors propagate: summarization is a hard
// pipeline stage.
func (s *Summarizer) Summarize(ctx context.Context, text string) (string, error) {
	chunks := splitChunks(text, chunkSize, chunkOverlap)
	if len(chunks) == 1 {
		return s.summarizeOnce(ctx, chunks[0])
	}

	partials := make([]string, 0, len(chunks))
	for _, chunk := range chunks {
		partial, err := s.summarizeOnce(ctx, chunk)
		if err != nil {
			return "", err
		}
		partials = append(partials, partial)
	}
	return s.summarizeOnce(ctx, strings.Join(partials, "\n"))
}

func (s *Summarizer) summarizeOnce(ctx context.Context, text string) (string, error) {
	prompt := "Write a concise one-sentence summary of the following student complaint:\n\n" + text
	reply, err := s.Model.Complete(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("summarize: %w", err)
	}
	return strings.TrimSpace(reply), nil
}

// splitChunks slices text into rune windows of the given size, each window
// starting size-overlap runes after the previous one. Text at or under the
// window size comes back as a single chunk.
func splitChunks(text string, size, overlap int) []string {
	runes := []rune(text)
	if len(runes) <= size {
		return []string{text}
	}
	step := size - overlap
	var chunks []string
	for start := 0; start < len(runes); start += step {
		end := start + size
		if end >= len(runes) {
			chunks = append(chunks, string(runes[start:]))
			break
		}
		chunks = append(chunks, string(runes[start:end]))
	}
	return chunks
}
