// Package analysis implements the enrichment steps of the complaint
// pipeline: department classification, severity scoring, summarization,
// interim suggestions and the officer brief.
package analysis

import (
	"context"
	"fmt"
	"strings"

	"campusdesk/backend/internal/config"
	"campusdesk/backend/internal/llm"
)

// Classifier maps complaint text to departments from the fixed campus set.
type Classifier struct {
	Model llm.Client
}

// Classify asks the model for a comma-separated department list and keeps
// only names that match the closed set. An empty result is legal: the
// complaint is still summarized and briefed, just not routed anywhere.
func (c *Classifier) Classify(ctx context.Context, text string) ([]string, error) {
	prompt := fmt.Sprintf(`Given this complaint by a student at %s:
%s
Classify it into one or more of the following campus departments:
%s.
Return only department names as a comma-separated list.`,
		config.Institute, text, strings.Join(config.Departments, ", "))

	reply, err := c.Model.Complete(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("classify departments: %w", err)
	}
	return parseDepartments(reply), nil
}

// parseDepartments keeps only comma-separated tokens that exactly match a
// known department name (case-sensitive, whitespace-trimmed), in the order
// the model listed them. Everything else the model said is discarded.
func parseDepartments(reply string) []string {
	departments := []string{}
	for _, token := range strings.Split(reply, ",") {
		name := strings.TrimSpace(token)
		if config.IsDepartment(name) {
			departments = append(departments, name)
		}
	}
	return departments
}
