package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"campusdesk/backend/internal/models"
)

// DialogflowMessage forwards one chat utterance to the Dialogflow agent.
// A missing sessionId starts a fresh session whose id is echoed back so the
// client can keep the conversation going.
func (h *Handler) DialogflowMessage(c *gin.Context) {
	if h.Dialog == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Dialogflow not initialized"})
		return
	}

	var req models.DialogRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Text) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "text field is required"})
		return
	}
	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	reply, err := h.Dialog.DetectIntent(c.Request.Context(), sessionID, req.Text)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"fulfillment_text": reply.FulfillmentText,
		"intent":           reply.Intent,
		"confidence":       reply.Confidence,
		"sessionId":        sessionID,
	})
}
