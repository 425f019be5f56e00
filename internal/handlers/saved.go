package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"recipebox/internal/services"

	"github.com/gin-gonic/gin"
)

// SaveRecipe bookmarks an external recipe by its upstream ID.
func (h *Handler) SaveRecipe(c *gin.Context) {
	externalID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid recipe ID"})
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	saved, err := h.recipeService.SaveRecipe(c.Request.Context(), userID, uint(externalID), c.ClientIP())
	if err != nil {
		switch {
		case errors.Is(err, services.ErrAlreadySaved):
			c.JSON(http.StatusOK, gin.H{"message": "Recipe already saved"})
		case errors.Is(err, services.ErrRecipeUnavailable):
			c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found upstream"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save recipe"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Recipe saved", "saved": saved})
}

func (h *Handler) ListSavedRecipes(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	saved, err := h.recipeService.ListSavedRecipes(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list saved recipes"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"saved": saved})
}

func (h *Handler) DeleteSavedRecipe(c *gin.Context) {
	savedID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid saved recipe ID"})
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.recipeService.DeleteSavedRecipe(userID, uint(savedID)); err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Saved recipe not found"})
		case errors.Is(err, services.ErrForbidden):
			c.JSON(http.StatusForbidden, gin.H{"error": "Not your saved recipe"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete saved recipe"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Saved recipe removed"})
}
