// Package handler exposes the complaint pipeline and the chat agent over
// gin routes.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"campusdesk/backend/internal/complaint"
	"campusdesk/backend/internal/config"
	"campusdesk/backend/internal/dialog"
	"campusdesk/backend/internal/storage"
)

// Handler bundles the dependencies the routes share. Dialog may be nil when
// no service account key was found; the chat endpoint reports that itself.
type Handler struct {
	Complaints *complaint.Service
	Store      storage.Storage
	Dialog     *dialog.Client
}

func NewHandler(complaints *complaint.Service, store storage.Storage, dlg *dialog.Client) *Handler {
	return &Handler{Complaints: complaints, Store: store, Dialog: dlg}
}

// Home answers the root route with a service banner.
func (h *Handler) Home(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": config.Institute + " Complaint System API",
		"status":  "running",
	})
}

// Health is the liveness probe.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
