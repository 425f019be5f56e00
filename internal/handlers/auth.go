package handlers

import (
	"errors"
	"net/http"

	"recipebox/internal/services"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=2,max=20"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (h *Handler) RegisterUser(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.accountService.Register(req.Username, req.Email, req.Password, c.ClientIP())
	if err != nil {
		var weak *services.WeakPasswordError
		switch {
		case errors.As(err, &weak):
			c.JSON(http.StatusBadRequest, gin.H{"error": weak.Rule})
		case errors.Is(err, services.ErrDuplicateUsername):
			c.JSON(http.StatusConflict, gin.H{"error": "Username already taken"})
		case errors.Is(err, services.ErrDuplicateEmail):
			c.JSON(http.StatusConflict, gin.H{"error": "Email already registered"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "User created successfully", "api_key": user.APIKey})
}

func (h *Handler) LoginUser(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.accountService.Verify(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrAuthFailure) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		}
		return
	}

	// Re-establishing an existing session for the same user is fine;
	// Set simply overwrites.
	session := sessions.Default(c)
	session.Set("user_id", user.ID)
	if err := session.Save(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save session"})
		return
	}

	h.auditService.LogAction(&user.ID, "LOGIN", user.Username, nil, c.ClientIP())

	c.JSON(http.StatusOK, gin.H{"message": "Login successful", "api_key": user.APIKey})
}

func (h *Handler) LogoutUser(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	if err := session.Save(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear session"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}
