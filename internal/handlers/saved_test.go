package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"recipebox/internal/models"
	"recipebox/internal/services"

	"github.com/stretchr/testify/assert"
)

func TestSaveRecipeHandler(t *testing.T) {
	h, db, search := setupTestHandler()
	r := setupTestRouter(h)
	db.Create(&models.User{ID: 1, Username: "alice", Email: "alice@example.com", PasswordHash: "x", APIKey: "alice-key"})
	db.Create(&models.User{ID: 2, Username: "bob", Email: "bob@example.com", PasswordHash: "x", APIKey: "bob-key"})

	search.details[42] = &services.RecipeDetails{
		ID:    42,
		Title: "Spaghetti Carbonara",
		ExtendedIngredients: []services.Ingredient{
			{Name: "spaghetti"}, {Name: "eggs"},
		},
		Instructions: "Boil. Fry. Combine.",
	}

	t.Run("unauthenticated", func(t *testing.T) {
		req, _ := http.NewRequest("POST", "/api/v1/saved/42", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("first save mirrors and saves", func(t *testing.T) {
		cookie := loginAs(t, r, 1)

		req, _ := http.NewRequest("POST", "/api/v1/saved/42", nil)
		req.Header.Set("Cookie", cookie)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)

		var mirror models.MirroredRecipe
		assert.NoError(t, db.First(&mirror, 42).Error)
		assert.Equal(t, "spaghetti, eggs", mirror.Ingredients)
	})

	t.Run("second save is informational", func(t *testing.T) {
		cookie := loginAs(t, r, 1)

		req, _ := http.NewRequest("POST", "/api/v1/saved/42", nil)
		req.Header.Set("Cookie", cookie)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp map[string]string
		json.Unmarshal(w.Body.Bytes(), &resp)
		assert.Equal(t, "Recipe already saved", resp["message"])

		var mirrors int64
		db.Model(&models.MirroredRecipe{}).Where("id = ?", 42).Count(&mirrors)
		assert.Equal(t, int64(1), mirrors)
	})

	t.Run("another user shares the mirror", func(t *testing.T) {
		cookie := loginAs(t, r, 2)

		req, _ := http.NewRequest("POST", "/api/v1/saved/42", nil)
		req.Header.Set("Cookie", cookie)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)

		var mirrors int64
		db.Model(&models.MirroredRecipe{}).Where("id = ?", 42).Count(&mirrors)
		assert.Equal(t, int64(1), mirrors)

		var saves int64
		db.Model(&models.SavedRecipe{}).Where("recipe_id = ?", 42).Count(&saves)
		assert.Equal(t, int64(2), saves)
	})

	t.Run("unknown upstream recipe", func(t *testing.T) {
		cookie := loginAs(t, r, 1)

		req, _ := http.NewRequest("POST", "/api/v1/saved/9999", nil)
		req.Header.Set("Cookie", cookie)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)

		var resp map[string]string
		json.Unmarshal(w.Body.Bytes(), &resp)
		assert.Equal(t, "Recipe not found upstream", resp["error"])
	})
}

func TestListSavedRecipesHandler(t *testing.T) {
	h, db, search := setupTestHandler()
	r := setupTestRouter(h)
	db.Create(&models.User{ID: 1, Username: "alice", Email: "alice@example.com", PasswordHash: "x", APIKey: "alice-key"})

	search.details[7] = &services.RecipeDetails{ID: 7, Title: "Toast", Instructions: "Toast the bread."}

	cookie := loginAs(t, r, 1)

	req, _ := http.NewRequest("POST", "/api/v1/saved/7", nil)
	req.Header.Set("Cookie", cookie)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusCreated, w.Code)

	req, _ = http.NewRequest("GET", "/api/v1/saved", nil)
	req.Header.Set("Cookie", cookie)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Saved []models.SavedRecipe `json:"saved"`
	}
	json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Len(t, resp.Saved, 1)
	assert.NotNil(t, resp.Saved[0].Recipe)
	assert.Equal(t, "Toast", resp.Saved[0].Recipe.Title)
}

func TestDeleteSavedRecipeHandler(t *testing.T) {
	h, db, search := setupTestHandler()
	r := setupTestRouter(h)
	db.Create(&models.User{ID: 1, Username: "alice", Email: "alice@example.com", PasswordHash: "x", APIKey: "alice-key"})
	db.Create(&models.User{ID: 2, Username: "bob", Email: "bob@example.com", PasswordHash: "x", APIKey: "bob-key"})

	search.details[7] = &services.RecipeDetails{ID: 7, Title: "Toast", Instructions: "Toast the bread."}

	aliceCookie := loginAs(t, r, 1)
	bobCookie := loginAs(t, r, 2)

	req, _ := http.NewRequest("POST", "/api/v1/saved/7", nil)
	req.Header.Set("Cookie", aliceCookie)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusCreated, w.Code)

	var saved models.SavedRecipe
	assert.NoError(t, db.Where("user_id = ?", 1).First(&saved).Error)
	savedPath := "/api/v1/saved/" + strconv.FormatUint(uint64(saved.ID), 10)

	t.Run("not the owner", func(t *testing.T) {
		req, _ := http.NewRequest("DELETE", savedPath, nil)
		req.Header.Set("Cookie", bobCookie)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)

		var count int64
		db.Model(&models.SavedRecipe{}).Where("id = ?", saved.ID).Count(&count)
		assert.Equal(t, int64(1), count)
	})

	t.Run("not found", func(t *testing.T) {
		req, _ := http.NewRequest("DELETE", "/api/v1/saved/9999", nil)
		req.Header.Set("Cookie", aliceCookie)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("owner deletes", func(t *testing.T) {
		req, _ := http.NewRequest("DELETE", savedPath, nil)
		req.Header.Set("Cookie", aliceCookie)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var count int64
		db.Model(&models.SavedRecipe{}).Where("id = ?", saved.ID).Count(&count)
		assert.Equal(t, int64(0), count)
	})
}
