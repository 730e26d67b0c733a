package models

// ProcessRequest is the POST /process payload.
type ProcessRequest struct {
	Complaint string `json:"complaint"`
}

// StatusUpdateRequest is the POST /complaints/update payload.
type StatusUpdateRequest struct {
	ComplaintID int64  `json:"complaint_id"`
	Status      string `json:"status"`
}

// DialogRequest is the POST /dialogflow/message payload. SessionID is
// optional; a fresh session is generated when it is empty.
type DialogRequest struct {
	Text      string `json:"text"`
	SessionID string `json:"sessionId"`
}
