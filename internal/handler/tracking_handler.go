package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"coffee-app/internal/models"
	"coffee-app/internal/services"
)

type TrackingHandler struct {
	service services.TrackingService
}

func NewTrackingHandler(service services.TrackingService) *TrackingHandler {
	return &TrackingHandler{service: service}
}

func (h *TrackingHandler) GetTechnicians(c *gin.Context) {
	techs, err := h.service.LoadTechnicians(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, techs)
}

func (h *TrackingHandler) AddTechnician(c *gin.Context) {
	var tech models.Technician
	if err := c.ShouldBindJSON(&tech); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	created, err := h.service.AddTechnician(c.Request.Context(), tech)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *TrackingHandler) UpdateLocation(c *gin.Context) {
	var body struct {
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
		Address   string  `json:"address"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	// Адрес не обязателен: при его отсутствии геокодируем best-effort.
	address := body.Address
	if address == "" {
		address = h.service.ReverseGeocode(c.Request.Context(), body.Latitude, body.Longitude)
	}

	err := h.service.UpdateTechnicianLocation(c.Request.Context(), c.Param("id"), body.Latitude, body.Longitude, address)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Location updated"})
}

func (h *TrackingHandler) UpdateStatus(c *gin.Context) {
	var body struct {
		Status models.TechnicianStatus `json:"status"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	switch body.Status {
	case models.TechActive, models.TechBusy, models.TechOffline:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown status"})
		return
	}

	if err := h.service.UpdateTechnicianStatus(c.Request.Context(), c.Param("id"), body.Status); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Status updated"})
}
