package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"recipebox/internal/services"

	"github.com/gin-gonic/gin"
)

type CreateRecipeRequest struct {
	Title        string `json:"title" binding:"required,max=150"`
	Ingredients  string `json:"ingredients" binding:"required"`
	Instructions string `json:"instructions" binding:"required"`
}

func (h *Handler) CreateRecipe(c *gin.Context) {
	var req CreateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	recipe, err := h.recipeService.CreateAuthoredRecipe(userID, req.Title, req.Ingredients, req.Instructions, c.ClientIP())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create recipe"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"recipe": recipe})
}

func (h *Handler) ListRecipes(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	recipes, err := h.recipeService.ListAuthoredRecipes(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list recipes"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"recipes": recipes})
}

func (h *Handler) GetRecipe(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid recipe ID"})
		return
	}

	recipe, err := h.recipeService.GetAuthoredRecipe(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch recipe"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"recipe": recipe})
}

// RecipeShareQR returns a QR code PNG pointing at the recipe's view URL.
func (h *Handler) RecipeShareQR(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid recipe ID"})
		return
	}

	if _, err := h.recipeService.GetAuthoredRecipe(uint(id)); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch recipe"})
		}
		return
	}

	shareURL := fmt.Sprintf("http://%s/api/v1/recipes/%d", c.Request.Host, id)

	png, err := services.GenerateShareQR(shareURL, 256)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate QR code"})
		return
	}

	c.Data(http.StatusOK, "image/png", png)
}
