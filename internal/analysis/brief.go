package analysis

import (
	"fmt"
	"strings"
)

// OfficerBrief renders the one-sentence routing brief shown to duty
// officers. Purely deterministic, no model call.
func OfficerBrief(summary string, severity int, departments []string) string {
	dept := "relevant department"
	if len(departments) > 0 {
		dept = strings.Join(departments, ", ")
	}
	return fmt.Sprintf("A student complaint has been received regarding %s. It is rated %d/5 in severity and forwarded to the %s department(s).", summary, severity, dept)
}
