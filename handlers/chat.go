package handlers

import (
	"context"
	"net/http"

	"concierge/models"
	"concierge/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ChatService processes one conversation turn.
type ChatService interface {
	Chat(ctx context.Context, sessionID, message string) (string, error)
}

// ChatHandler exposes the conversational endpoint.
type ChatHandler struct {
	Svc ChatService
}

func NewChatHandler(svc ChatService) *ChatHandler {
	return &ChatHandler{Svc: svc}
}

// HandleChat routes one user message through the agent. The conversation
// identity comes from the request body, the X-Session-ID header, or is
// generated fresh; it is echoed back so the client can continue the
// conversation.
func (h *ChatHandler) HandleChat(c *gin.Context) {
	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid chat request", err.Error())
		return
	}

	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = c.GetHeader("X-Session-ID")
	}
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	reply, err := h.Svc.Chat(c.Request.Context(), sessionID, req.Message)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Chat failed", err.Error())
		return
	}

	c.JSON(http.StatusOK, models.ChatResponse{Reply: reply, SessionID: sessionID})
}
