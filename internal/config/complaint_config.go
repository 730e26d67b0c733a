// Package config holds runtime settings and the fixed routing tables for the
// campus complaint system.
package config

// Institute is the campus this deployment serves.
const Institute = "IIIT Nagpur"

// Departments is the closed set of routable campus departments. Classifier
// output is always a subset of this list.
var Departments = []string{
	"Drinking Water",
	"Network & IT",
	"Housekeeping",
	"Maintenance",
	"Transport",
	"Mess & Dining",
	"Accounts / Fee Office",
	"Academics / Registrar",
	"Library",
	"Hostel Office / Residence Life",
}

// DepartmentIDs projects department names onto routing ids.
var DepartmentIDs = map[string]string{
	"Drinking Water":                 "D00",
	"Network & IT":                   "D01",
	"Housekeeping":                   "D02",
	"Maintenance":                    "D03",
	"Transport":                      "D04",
	"Mess & Dining":                  "D05",
	"Accounts / Fee Office":          "D06",
	"Academics / Registrar":          "D07",
	"Library":                        "D08",
	"Hostel Office / Residence Life": "D09",
}

// DepartmentContacts maps departments to their contact inboxes.
var DepartmentContacts = map[string]string{
	"Drinking Water":                 "water@iiit-nagpur.ac.in",
	"Network & IT":                   "it@iiit-nagpur.ac.in",
	"Housekeeping":                   "housekeeping@iiit-nagpur.ac.in",
	"Maintenance":                    "maintenance@iiit-nagpur.ac.in",
	"Transport":                      "transport@iiit-nagpur.ac.in",
	"Mess & Dining":                  "mess@iiit-nagpur.ac.in",
	"Accounts / Fee Office":          "accounts@iiit-nagpur.ac.in",
	"Academics / Registrar":          "academics@iiit-nagpur.ac.in",
	"Library":                        "library@iiit-nagpur.ac.in",
	"Hostel Office / Residence Life": "hostel@iiit-nagpur.ac.in",
}

// Keyword tiers for the fallback severity heuristic, most severe first.
var (
	SeverityCriticalKeywords = []string{"urgent", "immediate", "emergency", "fire", "danger", "broken", "water leakage", "power cut"}
	SeveritySeriousKeywords  = []string{"bad", "poor", "problem", "issue", "slow", "leak", "complaint"}
	SeverityModerateKeywords = []string{"inconvenience", "delay", "not working", "not available"}
)

var departmentSet = func() map[string]struct{} {
	set := make(map[string]struct{}, len(Departments))
	for _, d := range Departments {
		set[d] = struct{}{}
	}
	return set
}()

// IsDepartment reports whether name is one of the known departments.
// Matching is case-sensitive.
func IsDepartment(name string) bool {
	_, ok := departmentSet[name]
	return ok
}

// IDsFor projects departments through the id table. Names without an id are
// silently dropped.
func IDsFor(departments []string) []string {
	ids := make([]string, 0, len(departments))
	for _, d := range departments {
		if id, ok := DepartmentIDs[d]; ok {
			ids = append(ids, id)
		}
	}
	return ids
}

// ContactsFor returns the contact inbox for every department that has one.
func ContactsFor(departments []string) map[string]string {
	contacts := make(map[string]string, len(departments))
	for _, d := range departments {
		if email, ok := DepartmentContacts[d]; ok {
			contacts[d] = email
		}
	}
	return contacts
}
