package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"recipebox/internal/services"

	"github.com/gin-gonic/gin"
)

// SearchRecipes queries the external search API. An empty query skips the
// upstream call; upstream failures surface as an empty result set.
func (h *Handler) SearchRecipes(c *gin.Context) {
	query := strings.TrimSpace(c.Query("query"))
	if query == "" {
		c.JSON(http.StatusOK, gin.H{"results": []services.RecipeSummary{}})
		return
	}

	results, err := h.searchClient.Search(c.Request.Context(), query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Search failed"})
		return
	}
	if results == nil {
		results = []services.RecipeSummary{}
	}

	c.JSON(http.StatusOK, gin.H{"results": results})
}

// ViewExternalRecipe shows an external recipe by its upstream ID. A local
// mirror is served when present, saving the API call.
func (h *Handler) ViewExternalRecipe(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid recipe ID"})
		return
	}

	if mirror, merr := h.recipeService.GetMirroredRecipe(uint(id)); merr == nil {
		c.JSON(http.StatusOK, gin.H{
			"id":           mirror.ID,
			"title":        mirror.Title,
			"ingredients":  mirror.Ingredients,
			"instructions": mirror.Instructions,
		})
		return
	}

	details, err := h.searchClient.FetchDetails(c.Request.Context(), uint(id))
	if err != nil {
		if errors.Is(err, services.ErrRecipeUnavailable) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found upstream"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch recipe"})
		}
		return
	}

	ingredients := make([]string, 0, len(details.ExtendedIngredients))
	for _, ing := range details.ExtendedIngredients {
		ingredients = append(ingredients, ing.Name)
	}

	c.JSON(http.StatusOK, gin.H{
		"id":           details.ID,
		"title":        details.Title,
		"ingredients":  strings.Join(ingredients, ", "),
		"instructions": details.Instructions,
	})
}
