package analysis_test

import (
	"testing"

	"campusdesk/backend/internal/analysis"

	"github.com/stretchr/testify/assert"
)

// TestOfficerBriefWithDepartments verifies the exact template output.
func TestOfficerBriefWithDepartments(t *testing.T) {
	brief := analysis.OfficerBrief("a broken water cooler", 4, []string{"Drinking Water", "Maintenance"})

	assert.Equal(t,
		"A student complaint has been received regarding a broken water cooler. It is rated 4/5 in severity and forwarded to the Drinking Water, Maintenance department(s).",
		brief)
}

// TestOfficerBriefNoDepartments verifies the placeholder for unrouted
// complaints.
func TestOfficerBriefNoDepartments(t *testing.T) {
	brief := analysis.OfficerBrief("general dissatisfaction", 2, nil)

	assert.Equal(t,
		"A student complaint has been received regarding general dissatisfaction. It is rated 2/5 in severity and forwarded to the relevant department department(s).",
		brief)
}
