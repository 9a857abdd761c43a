package handler

import (
	"github.com/gin-gonic/gin"

	appidentity "github.com/agusydk3/Aplikasi-Pembayaran-Listrik-Pascabayar/internal/application/identity"
	"github.com/agusydk3/Aplikasi-Pembayaran-Listrik-Pascabayar/internal/interfaces/http/middleware"
)

// AuthHandler handles login and logout for both identity spaces
type AuthHandler struct {
	BaseHandler
	authService *appidentity.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *appidentity.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login authenticates a caller and issues a token
// POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req appidentity.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	resp, err := h.authService.Login(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// Logout revokes the presented token
// POST /api/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	token := middleware.BearerToken(c)
	if token == "" {
		h.Unauthorized(c, "authentication required")
		return
	}

	if err := h.authService.Logout(c.Request.Context(), token); err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, gin.H{"message": "logged out"})
}

// Me returns the verified identity of the caller
// GET /api/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		h.Unauthorized(c, "authentication required")
		return
	}

	h.Success(c, gin.H{
		"user_id":      claims.UserID,
		"username":     claims.Username,
		"name":         claims.Name,
		"role":         claims.Role,
		"meter_number": claims.MeterNumber,
		"capacity":     claims.Capacity,
		"tariff_rate":  claims.TariffRate,
	})
}
