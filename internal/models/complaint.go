// Package models defines the persisted complaint record and the API payloads.
package models

// StatusPending is the status every new complaint starts in.
const StatusPending = "Pending"

// StudentView is the record subset shown to the submitting student.
type StudentView struct {
	Complaint string `json:"complaint"`
	Timestamp string `json:"timestamp"`
	Status    string `json:"status"` // the only field mutable after creation
}

// AdminView carries the full enrichment output for department officers.
type AdminView struct {
	Timestamp     string            `json:"timestamp"`
	Severity      int               `json:"severity"`
	Summary       string            `json:"summary"`
	Complaint     string            `json:"complaint"`
	Departments   []string          `json:"departments"`
	DepartmentIDs []string          `json:"departments_id"`
	Contacts      map[string]string `json:"contacts"`
	Suggestions   []string          `json:"suggestions"`
	Institute     string            `json:"institute"`
	OfficerBrief  string            `json:"officer_brief"`
}

// ComplaintRecord is the unit of persistence. ID is assigned from the wall
// clock at persistence time, in milliseconds since epoch.
type ComplaintRecord struct {
	ID          int64       `json:"id"`
	StudentView StudentView `json:"student_view"`
	AdminView   AdminView   `json:"admin_view"`
}
