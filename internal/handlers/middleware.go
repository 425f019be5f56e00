package handlers

import (
	"net/http"

	"recipebox/internal/models"
	"recipebox/internal/services"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// AuthRequired guards protected routes. Identity comes from the session
// cookie, or from an X-API-Key header for API clients.
func (h *Handler) AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		if session.Get("user_id") != nil {
			c.Next()
			return
		}

		apiKey := c.GetHeader("X-API-Key")
		if apiKey != "" {
			var user models.User
			if err := h.db.Where("api_key = ?", apiKey).First(&user).Error; err == nil {
				c.Set("user_id", user.ID)
				c.Next()
				return
			}
		}

		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		c.Abort()
	}
}

// currentUserID resolves the authenticated user for a request: the context
// value set by API-key auth wins, otherwise the session is consulted.
func currentUserID(c *gin.Context) (uint, bool) {
	if val, exists := c.Get("user_id"); exists {
		if id, ok := val.(uint); ok {
			return id, true
		}
	}

	session := sessions.Default(c)
	if val := session.Get("user_id"); val != nil {
		if id, ok := val.(uint); ok {
			return id, true
		}
	}

	return 0, false
}

func (h *Handler) RateLimitMiddleware(limiter *services.IPRateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		l := limiter.GetLimiter(ip)
		if !l.Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "Rate limit exceeded. Please try again later.",
			})
			return
		}
		c.Next()
	}
}
