// Package complaint orchestrates the enrichment pipeline that turns raw
// complaint text into a persisted ComplaintRecord.
package complaint

import (
	"context"
	"log"
	"time"

	"campusdesk/backend/internal/analysis"
	"campusdesk/backend/internal/config"
	"campusdesk/backend/internal/llm"
	"campusdesk/backend/internal/models"
	"campusdesk/backend/internal/storage"
)

// Service runs the complaint pipeline and persists the result.
type Service struct {
	Storage     storage.Storage
	Classifier  *analysis.Classifier
	Severity    *analysis.SeverityScorer
	Summarizer  *analysis.Summarizer
	Suggestions *analysis.SuggestionGenerator
}

// NewService wires the pipeline steps around one shared model client.
func NewService(s storage.Storage, model llm.Client) *Service {
	return &Service{
		Storage:     s,
		Classifier:  &analysis.Classifier{Model: model},
		Severity:    &analysis.SeverityScorer{Model: model},
		Summarizer:  &analysis.Summarizer{Model: model},
		Suggestions: &analysis.SuggestionGenerator{Model: model},
	}
}

// Process runs the fixed pipeline stages in order: classify, score,
// summarize, look up contacts, gather suggestions per department, brief,
// assemble, persist. Classification, summarization and storage failures
// abort the request; severity scoring and suggestion generation fall back
// internally and never abort. Nothing is persisted before the final stage.
func (s *Service) Process(ctx context.Context, text string) (*models.ComplaintRecord, error) {
	timestamp := time.Now().UTC().Format(time.RFC3339)

	departments, err := s.Classifier.Classify(ctx, text)
	if err != nil {
		return nil, err
	}
	log.Printf("INFO: classified into %d department(s): %v", len(departments), departments)

	severity, source := s.Severity.Score(ctx, text)
	log.Printf("INFO: severity %d/5 (%s)", severity, source)

	summary, err := s.Summarizer.Summarize(ctx, text)
	if err != nil {
		return nil, err
	}

	contacts := config.ContactsFor(departments)

	suggestions := []string{}
	for _, dept := range departments {
		suggestions = append(suggestions, s.Suggestions.Generate(ctx, text, dept)...)
	}

	record := &models.ComplaintRecord{
		// Milliseconds since epoch at persistence time. Two requests
		// finishing in the same millisecond would collide; the store mutex
		// plus model-call latency makes that window academic.
		ID: time.Now().UTC().UnixMilli(),
		StudentView: models.StudentView{
			Complaint: text,
			Timestamp: timestamp,
			Status:    models.StatusPending,
		},
		AdminView: models.AdminView{
			Timestamp:     timestamp,
			Severity:      severity,
			Summary:       summary,
			Complaint:     text,
			Departments:   departments,
			DepartmentIDs: config.IDsFor(departments),
			Contacts:      contacts,
			Suggestions:   suggestions,
			Institute:     config.Institute,
			OfficerBrief:  analysis.OfficerBrief(summary, severity, departments),
		},
	}

	if err := s.Storage.Append(record); err != nil {
		return nil, err
	}
	log.Printf("INFO: complaint %d processed and saved", record.ID)
	return record, nil
}
