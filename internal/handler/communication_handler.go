package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"coffee-app/internal/models"
	"coffee-app/internal/services"
)

type CommunicationHandler struct {
	service services.CommunicationService
}

func NewCommunicationHandler(service services.CommunicationService) *CommunicationHandler {
	return &CommunicationHandler{service: service}
}

func senderFromContext(c *gin.Context) models.User {
	return models.User{
		ID:   c.GetString("userId"),
		Role: c.GetString("role"),
	}
}

func (h *CommunicationHandler) SendMessage(c *gin.Context) {
	var body struct {
		To       string                  `json:"to"`
		Content  string                  `json:"content"`
		Type     models.MessageType      `json:"type"`
		Metadata *models.MessageMetadata `json:"metadata"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.To == "" || body.Content == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	ok := h.service.SendMessage(c.Request.Context(), senderFromContext(c), body.To, body.Content, body.Type, body.Metadata)
	c.JSON(http.StatusOK, gin.H{"success": ok})
}

func (h *CommunicationHandler) SendQuickMessage(c *gin.Context) {
	var body struct {
		To     string `json:"to"`
		Preset string `json:"preset"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.To == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	ok := h.service.SendQuickMessage(c.Request.Context(), senderFromContext(c), body.To, body.Preset)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown preset"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *CommunicationHandler) SendLocation(c *gin.Context) {
	var body struct {
		To       string                     `json:"to"`
		Location models.MessageLocationMeta `json:"location"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.To == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	ok := h.service.SendLocationUpdate(c.Request.Context(), senderFromContext(c), body.To, body.Location)
	c.JSON(http.StatusOK, gin.H{"success": ok})
}

func (h *CommunicationHandler) SendRoute(c *gin.Context) {
	var body struct {
		To        string      `json:"to"`
		RouteData interface{} `json:"routeData"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.To == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	ok := h.service.SendRouteOptimization(c.Request.Context(), senderFromContext(c), body.To, body.RouteData)
	c.JSON(http.StatusOK, gin.H{"success": ok})
}

func (h *CommunicationHandler) LogCall(c *gin.Context) {
	var body struct {
		To       string `json:"to"`
		Duration int    `json:"duration"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.To == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	ok := h.service.LogCall(c.Request.Context(), senderFromContext(c), body.To, body.Duration)
	c.JSON(http.StatusOK, gin.H{"success": ok})
}

func (h *CommunicationHandler) GetMessages(c *gin.Context) {
	messages, err := h.service.Messages(c.Request.Context(), c.GetString("userId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, messages)
}

func (h *CommunicationHandler) GetConversations(c *gin.Context) {
	conversations, err := h.service.GetAllConversations(c.Request.Context(), c.GetString("userId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, conversations)
}

func (h *CommunicationHandler) GetConversation(c *gin.Context) {
	messages, err := h.service.GetConversation(c.Request.Context(), c.GetString("userId"), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, messages)
}

func (h *CommunicationHandler) GetUnreadCount(c *gin.Context) {
	count, err := h.service.UnreadCount(c.Request.Context(), c.GetString("userId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": count})
}

func (h *CommunicationHandler) MarkAsRead(c *gin.Context) {
	if err := h.service.MarkAsRead(c.Request.Context(), c.GetString("userId"), c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Message marked as read"})
}

func (h *CommunicationHandler) MarkAllAsRead(c *gin.Context) {
	if err := h.service.MarkAllAsRead(c.Request.Context(), c.GetString("userId")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "All messages marked as read"})
}

func (h *CommunicationHandler) DeleteMessage(c *gin.Context) {
	if err := h.service.DeleteMessage(c.Request.Context(), c.GetString("userId"), c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Message deleted"})
}
