package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"coffee-app/internal/models"
	"coffee-app/internal/services"
)

type VisitHandler struct {
	service services.VisitService
}

func NewVisitHandler(service services.VisitService) *VisitHandler {
	return &VisitHandler{service: service}
}

func (h *VisitHandler) GetAllVisits(c *gin.Context) {
	visits, err := h.service.LoadVisits(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, visits)
}

func (h *VisitHandler) GetMyVisits(c *gin.Context) {
	userID := c.GetString("userId")
	visits, err := h.service.VisitsForTechnician(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, visits)
}

func (h *VisitHandler) GetTodaysVisits(c *gin.Context) {
	userID := c.GetString("userId")
	visits, err := h.service.TodaysVisits(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, visits)
}

func (h *VisitHandler) GetUpcomingVisits(c *gin.Context) {
	userID := c.GetString("userId")
	limit := 3
	if raw := c.Query("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = parsed
		}
	}
	visits, err := h.service.UpcomingVisits(c.Request.Context(), userID, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, visits)
}

func (h *VisitHandler) AddVisit(c *gin.Context) {
	var visit models.Visit
	if err := c.ShouldBindJSON(&visit); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}
	if err := h.service.AddVisit(c.Request.Context(), visit); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, visit)
}

func (h *VisitHandler) UpdateStatus(c *gin.Context) {
	var body struct {
		Status models.VisitStatus `json:"status"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	err := h.service.UpdateVisitStatus(c.Request.Context(), c.Param("id"), body.Status)
	if errors.Is(err, models.ErrInvalidTransition) || errors.Is(err, models.ErrInvalidStatus) {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Visit status updated"})
}

func (h *VisitHandler) GenerateNext(c *gin.Context) {
	if err := h.service.GenerateNextVisits(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Next visits generated"})
}

// OptimizeRoute сортирует переданные визиты по удалению от точки отсчёта.
func (h *VisitHandler) OptimizeRoute(c *gin.Context) {
	var body struct {
		Reference models.GeoPoint `json:"reference"`
		Visits    []models.Visit  `json:"visits"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}
	c.JSON(http.StatusOK, services.OptimizeByProximity(body.Visits, body.Reference))
}
