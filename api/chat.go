package api

import (
	"net/http"

	"github.com/Domenick1991/hotelconcierge/internal/service/concierge"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ChatHandler struct {
	service concierge.ChatUseCase
}

type chatRequest struct {
	SessionID string `json:"session_id"`
	Text      string `json:"text" binding:"required"`
}

type chatResponse struct {
	SessionID string `json:"session_id"`
	Action    string `json:"action"`
	Message   string `json:"message"`
	Pending   bool   `json:"pending"`
}

func NewChatHandler(service concierge.ChatUseCase) *ChatHandler {
	return &ChatHandler{service: service}
}

func (h *ChatHandler) Register(router *gin.RouterGroup) {
	router.POST("/", h.chat)
	router.DELETE("/:session_id", h.end)
}

func (h *ChatHandler) chat(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session, resp, err := h.service.Chat(c.Request.Context(), req.SessionID, req.Text)
	if err != nil {
		zap.L().Error("chat turn failed", zap.String("session_id", req.SessionID), zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, chatResponse{
		SessionID: session.ID,
		Action:    string(resp.Action),
		Message:   resp.Message,
		Pending:   session.HasPending(),
	})
}

func (h *ChatHandler) end(c *gin.Context) {
	if err := h.service.EndSession(c.Request.Context(), c.Param("session_id")); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
