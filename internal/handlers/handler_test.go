package handlers

import (
	"context"
	"log/slog"
	"os"
	"strconv"

	"recipebox/internal/config"
	"recipebox/internal/models"
	"recipebox/internal/services"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

// stubSearchClient keeps handler tests off the network.
type stubSearchClient struct {
	summaries []services.RecipeSummary
	details   map[uint]*services.RecipeDetails
}

func (s *stubSearchClient) Search(ctx context.Context, query string) ([]services.RecipeSummary, error) {
	return s.summaries, nil
}

func (s *stubSearchClient) FetchDetails(ctx context.Context, id uint) (*services.RecipeDetails, error) {
	if d, ok := s.details[id]; ok {
		return d, nil
	}
	return nil, services.ErrRecipeUnavailable
}

func setupTestHandler() (*Handler, *gorm.DB, *stubSearchClient) {
	db, _ := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	db.AutoMigrate(
		&models.User{},
		&models.Recipe{},
		&models.MirroredRecipe{},
		&models.SavedRecipe{},
		&models.Comment{},
		&models.AuditLog{},
	)

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	cfg := config.Config{
		SessionSecret: "test-secret-12345678901234567890123456789012",
	}

	audit := services.NewAuditService(db, logger)
	search := &stubSearchClient{details: map[uint]*services.RecipeDetails{}}
	accounts := services.NewAccountService(db, audit)
	recipes := services.NewRecipeService(db, search, audit)

	h := NewHandler(cfg, logger, db, accounts, recipes, search, audit)
	return h, db, search
}

func setupTestRouter(h *Handler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := h.SetupRouter(nil)

	// Helper route for establishing a session in tests
	r.GET("/set-session/:id", func(c *gin.Context) {
		session := sessions.Default(c)
		id, _ := strconv.ParseUint(c.Param("id"), 10, 32)
		session.Set("user_id", uint(id))
		session.Save()
		c.Status(200)
	})

	return r
}
