package analysis_test

import (
	"context"
	"errors"
	"testing"

	"campusdesk/backend/internal/analysis"
	"campusdesk/backend/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestClassifierKeepsOnlyKnownDepartments verifies hallucinated names and
// extra prose around one valid department are discarded.
func TestClassifierKeepsOnlyKnownDepartments(t *testing.T) {
	model := &fakeModel{replies: []string{"This sounds like plumbing, Maintenance, Facilities Team"}}
	classifier := &analysis.Classifier{Model: model}

	departments, err := classifier.Classify(context.Background(), "The tap in my room is leaking.")

	require.NoError(t, err)
	assert.Equal(t, []string{"Maintenance"}, departments)
}

// TestClassifierPreservesModelOrder verifies output keeps the order the
// model listed, with whitespace trimmed.
func TestClassifierPreservesModelOrder(t *testing.T) {
	model := &fakeModel{replies: []string{" Library ,Transport"}}
	classifier := &analysis.Classifier{Model: model}

	departments, err := classifier.Classify(context.Background(), "The bus to the library is always late.")

	require.NoError(t, err)
	assert.Equal(t, []string{"Library", "Transport"}, departments)
}

// TestClassifierOutputIsSubsetOfDepartments verifies the closed-set
// invariant for a noisy reply.
func TestClassifierOutputIsSubsetOfDepartments(t *testing.T) {
	model := &fakeModel{replies: []string{"Mess & Dining, Canteen, Hostel Office / Residence Life, unknown"}}
	classifier := &analysis.Classifier{Model: model}

	departments, err := classifier.Classify(context.Background(), "The mess food made several students sick.")

	require.NoError(t, err)
	for _, d := range departments {
		assert.True(t, config.IsDepartment(d), "classifier emitted unknown department %q", d)
	}
	assert.Equal(t, []string{"Mess & Dining", "Hostel Office / Residence Life"}, departments)
}

// TestClassifierCaseSensitiveMatch verifies lowercase variants are rejected.
func TestClassifierCaseSensitiveMatch(t *testing.T) {
	model := &fakeModel{replies: []string{"maintenance, transport"}}
	classifier := &analysis.Classifier{Model: model}

	departments, err := classifier.Classify(context.Background(), "Something broke.")

	require.NoError(t, err)
	assert.Empty(t, departments)
}

// TestClassifierEmptyReply verifies an empty reply yields an empty list, not
// an error.
func TestClassifierEmptyReply(t *testing.T) {
	model := &fakeModel{}
	classifier := &analysis.Classifier{Model: model}

	departments, err := classifier.Classify(context.Background(), "General feedback, nothing specific.")

	require.NoError(t, err)
	assert.Empty(t, departments)
}

// TestClassifierModelErrorPropagates verifies classification is a hard stage.
func TestClassifierModelErrorPropagates(t *testing.T) {
	model := &fakeModel{err: errors.New("model unavailable")}
	classifier := &analysis.Classifier{Model: model}

	_, err := classifier.Classify(context.Background(), "The tap is leaking.")

	assert.Error(t, err)
}
