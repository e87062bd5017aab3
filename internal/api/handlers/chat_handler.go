package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/patelajay005/Saathi/internal/api/dto"
	"github.com/patelajay005/Saathi/internal/api/middleware"
	"github.com/patelajay005/Saathi/internal/domain/chat"
)

// ChatHandler handles HTTP requests for the AI wellness coach
type ChatHandler struct {
	service chat.Service
}

// NewChatHandler creates a new ChatHandler instance
func NewChatHandler(service chat.Service) *ChatHandler {
	return &ChatHandler{service: service}
}

// CreateSession starts a new conversation
func (h *ChatHandler) CreateSession(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	session, err := h.service.CreateSession(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": ChatSessionToResponse(session)})
}

// ListSessions returns the user's conversations, most recent first
func (h *ChatHandler) ListSessions(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	sessions, err := h.service.ListSessions(c.Request.Context(), userID, 0)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	responses := make([]*dto.ChatSessionResponse, 0, len(sessions))
	for i := range sessions {
		responses = append(responses, ChatSessionToResponse(&sessions[i]))
	}

	c.JSON(http.StatusOK, gin.H{"data": responses})
}

// GetConversation returns a session with its full message history
func (h *ChatHandler) GetConversation(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	sessionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid session ID"})
		return
	}

	conversation, err := h.service.GetConversation(c.Request.Context(), sessionID, userID)
	if err != nil {
		statusCode := http.StatusInternalServerError
		if errors.Is(err, chat.ErrSessionNotFound) {
			statusCode = http.StatusNotFound
		}
		c.JSON(statusCode, gin.H{"error": err.Error()})
		return
	}

	messages := make([]dto.ChatMessageResponse, 0, len(conversation.Messages))
	for i := range conversation.Messages {
		messages = append(messages, *ChatMessageToResponse(&conversation.Messages[i]))
	}

	c.JSON(http.StatusOK, gin.H{"data": dto.ConversationResponse{
		Session:  *ChatSessionToResponse(conversation.Session),
		Messages: messages,
	}})
}

// SendMessage submits a message and returns the assistant's reply
func (h *ChatHandler) SendMessage(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	sessionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid session ID"})
		return
	}

	var req dto.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.service.SendMessage(c.Request.Context(), sessionID, userID, req.Message, req.Language)
	if err != nil {
		statusCode := http.StatusInternalServerError
		switch {
		case errors.Is(err, chat.ErrSessionNotFound):
			statusCode = http.StatusNotFound
		case errors.Is(err, chat.ErrEmptyMessage):
			statusCode = http.StatusBadRequest
		}
		c.JSON(statusCode, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": dto.SendMessageResponse{
		UserMessage:      *ChatMessageToResponse(result.UserMessage),
		AssistantMessage: *ChatMessageToResponse(result.AssistantMessage),
		XPEarned:         result.XPEarned,
	}})
}

// DeleteSession removes a conversation and its messages
func (h *ChatHandler) DeleteSession(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	sessionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid session ID"})
		return
	}

	if err := h.service.DeleteSession(c.Request.Context(), sessionID, userID); err != nil {
		statusCode := http.StatusInternalServerError
		if errors.Is(err, chat.ErrSessionNotFound) {
			statusCode = http.StatusNotFound
		}
		c.JSON(statusCode, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "chat session deleted successfully"})
}
