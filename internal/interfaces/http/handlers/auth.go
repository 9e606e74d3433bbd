// internal/interfaces/http/handlers/auth.go
package handlers

import (
	"net/http"

	"github.com/S-Khan786/Medicine-Mart-App/internal/config"
	"github.com/S-Khan786/Medicine-Mart-App/internal/domain/session"
	"github.com/S-Khan786/Medicine-Mart-App/internal/interfaces/http/middleware"
	"github.com/S-Khan786/Medicine-Mart-App/internal/pkg/auth"
	"github.com/gin-gonic/gin"
)

// AuthHandler handles sign-in and profile endpoints
type AuthHandler struct {
	sessions   *session.Service
	jwtManager *auth.JWTManager
	config     *config.Config
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(sessions *session.Service, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		sessions:   sessions,
		jwtManager: auth.NewJWTManager(cfg),
		config:     cfg,
	}
}

// LoginRequest is the sign-in payload. Sign-in is credential-less; a
// name and phone number identify the customer.
type LoginRequest struct {
	Name   string `json:"name" binding:"required"`
	Phone  string `json:"phone" binding:"required"`
	Email  string `json:"email"`
	Avatar string `json:"avatar"`
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	user := session.User{
		Name:   req.Name,
		Phone:  req.Phone,
		Email:  req.Email,
		Avatar: req.Avatar,
	}

	// The form gates submission on these checks; the session itself
	// accepts whatever it is handed.
	if err := user.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	if err := h.sessions.Login(user); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to sign in",
		})
		return
	}

	token, err := h.jwtManager.GenerateAccessToken(user.Name, user.Phone)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to generate token",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"data": gin.H{
			"user":         user,
			"access_token": token,
		},
	})
}

// Logout handles POST /auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	h.sessions.Logout()

	c.JSON(http.StatusOK, gin.H{
		"message": "Logout successful",
	})
}

// Profile handles GET /auth/profile. Identity comes from the token
// claims; the stored session only enriches the response when it
// belongs to the same phone.
func (h *AuthHandler) Profile(c *gin.Context) {
	phone, ok := middleware.GetUserPhoneFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Not signed in",
		})
		return
	}

	user, ok := h.sessions.Current()
	if !ok || user.Phone != phone {
		name, _ := middleware.GetUserNameFromContext(c)
		user = session.User{Name: name, Phone: phone}
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Profile retrieved successfully",
		"data":    user,
	})
}
