package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/gin-gonic/gin"

	"campusdesk/backend/internal/models"
	"campusdesk/backend/internal/storage"
)

const maxComplaintChars = 5000

// ProcessComplaint runs the full enrichment pipeline on the submitted text
// and returns the persisted record.
func (h *Handler) ProcessComplaint(c *gin.Context) {
	if c.ContentType() != "application/json" {
		c.JSON(http.StatusUnsupportedMediaType, gin.H{"error": "Content-Type must be application/json"})
		return
	}

	var req models.ProcessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "complaint field is required"})
		return
	}
	text := strings.TrimSpace(req.Complaint)
	if text == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "complaint field is required"})
		return
	}
	if utf8.RuneCountInString(text) > maxComplaintChars {
		c.JSON(http.StatusBadRequest, gin.H{"error": "complaint text too long"})
		return
	}

	record, err := h.Complaints.Process(c.Request.Context(), text)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, record)
}

// ListComplaints returns every stored record, oldest first.
func (h *Handler) ListComplaints(c *gin.Context) {
	records, err := h.Store.List()
	if err != nil {
		// The admin dashboard polls this route; it expects an array body
		// even on failure.
		c.JSON(http.StatusInternalServerError, []models.ComplaintRecord{})
		return
	}
	if records == nil {
		records = []models.ComplaintRecord{}
	}
	c.JSON(http.StatusOK, records)
}

// GetComplaint returns one record by its numeric id. Non-numeric and unknown
// ids both read as not found.
func (h *Handler) GetComplaint(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	record, err := h.Store.GetByID(id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, record)
}

// UpdateComplaintStatus changes the student-visible status of one record.
func (h *Handler) UpdateComplaintStatus(c *gin.Context) {
	var req models.StatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ComplaintID == 0 || req.Status == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "complaint_id and status required"})
		return
	}
	if err := h.Store.UpdateStatus(req.ComplaintID, req.Status); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Complaint not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Status updated successfully"})
}
