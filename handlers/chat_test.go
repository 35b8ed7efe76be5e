package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"concierge/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubChatService struct {
	lastSessionID string
	lastMessage   string
	reply         string
	err           error
}

func (s *stubChatService) Chat(ctx context.Context, sessionID, message string) (string, error) {
	s.lastSessionID = sessionID
	s.lastMessage = message
	if s.err != nil {
		return "", s.err
	}
	return s.reply, nil
}

func chatRouter(svc ChatService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/chat", NewChatHandler(svc).HandleChat)
	return r
}

func TestHandleChatEchoesSessionID(t *testing.T) {
	svc := &stubChatService{reply: "hello there"}
	r := chatRouter(svc)

	body, _ := json.Marshal(models.ChatRequest{Message: "hello bot", SessionID: "sess-42"})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/chat", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp models.ChatResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "hello there", resp.Reply)
	assert.Equal(t, "sess-42", resp.SessionID)
	assert.Equal(t, "sess-42", svc.lastSessionID)
	assert.Equal(t, "hello bot", svc.lastMessage)
}

func TestHandleChatGeneratesSessionID(t *testing.T) {
	svc := &stubChatService{reply: "hi"}
	r := chatRouter(svc)

	body, _ := json.Marshal(models.ChatRequest{Message: "hello"})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/chat", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp models.ChatResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.SessionID)
	assert.Equal(t, resp.SessionID, svc.lastSessionID)
}

func TestHandleChatUsesHeaderSessionID(t *testing.T) {
	svc := &stubChatService{reply: "hi"}
	r := chatRouter(svc)

	body, _ := json.Marshal(models.ChatRequest{Message: "hello"})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/chat", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Session-ID", "header-sess")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "header-sess", svc.lastSessionID)
}

func TestHandleChatRejectsMissingMessage(t *testing.T) {
	r := chatRouter(&stubChatService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/chat", bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
