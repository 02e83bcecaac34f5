package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"coffee-app/internal/models"
	"coffee-app/internal/services"
)

type ClientHandler struct {
	service services.ClientService
}

func NewClientHandler(service services.ClientService) *ClientHandler {
	return &ClientHandler{service: service}
}

func (h *ClientHandler) GetClients(c *gin.Context) {
	clients, err := h.service.LoadClients(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, clients)
}

func (h *ClientHandler) AddClient(c *gin.Context) {
	var client models.Client
	if err := c.ShouldBindJSON(&client); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}
	if err := client.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, ok := h.service.AddClient(c.Request.Context(), client)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add client"})
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *ClientHandler) UpdateClient(c *gin.Context) {
	var client models.Client
	if err := c.ShouldBindJSON(&client); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}
	client.ID = c.Param("id")

	if ok := h.service.UpdateClient(c.Request.Context(), client); !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update client"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Client updated"})
}

func (h *ClientHandler) DeleteClient(c *gin.Context) {
	if ok := h.service.DeleteClient(c.Request.Context(), c.Param("id")); !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete client"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Client deleted"})
}
