package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"coffee-app/internal/services"
	"coffee-app/internal/utils"
)

type AuthHandler struct {
	service services.AuthService
	jwtUtil *utils.JWTUtil
}

func NewAuthHandler(service services.AuthService, jwtUtil *utils.JWTUtil) *AuthHandler {
	return &AuthHandler{service: service, jwtUtil: jwtUtil}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	user, ok := h.service.Login(c.Request.Context(), body.Email, body.Password)
	if !ok {
		// Намеренно без различения «нет такого email» / «неверный пароль».
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	token, err := h.jwtUtil.GenerateToken(user.ID, user.Role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "user": user})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.service.Logout(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

func (h *AuthHandler) Me(c *gin.Context) {
	user := h.service.CurrentUser()
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}
	c.JSON(http.StatusOK, user)
}
