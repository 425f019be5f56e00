package handlers

import (
	"recipebox/internal/services"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

func (h *Handler) SetupRouter(rateLimiter *services.IPRateLimiter) *gin.Engine {
	r := gin.Default()

	// Middleware
	if rateLimiter != nil {
		r.Use(h.RateLimitMiddleware(rateLimiter))
	}

	store := cookie.NewStore([]byte(h.cfg.SessionSecret))
	r.Use(sessions.Sessions("recipebox_session", store))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "healthy"})
	})

	// Public Routes
	r.GET("/", h.SearchRecipes)
	r.POST("/api/register", h.RegisterUser)
	r.POST("/api/login", h.LoginUser)
	r.POST("/api/logout", h.LogoutUser)
	r.GET("/api/v1/search", h.SearchRecipes)
	r.GET("/api/v1/external/:id", h.ViewExternalRecipe)
	r.GET("/api/v1/recipes/:id", h.GetRecipe)
	r.GET("/api/v1/recipes/:id/qr", h.RecipeShareQR)

	// Protected Routes
	authorized := r.Group("/api/v1")
	authorized.Use(h.AuthRequired())
	{
		authorized.POST("/recipes", h.CreateRecipe)
		authorized.GET("/recipes", h.ListRecipes)
		authorized.POST("/saved/:id", h.SaveRecipe)
		authorized.GET("/saved", h.ListSavedRecipes)
		authorized.DELETE("/saved/:id", h.DeleteSavedRecipe)
	}

	return r
}
