package services

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"recipebox/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Recipe{},
		&models.MirroredRecipe{},
		&models.SavedRecipe{},
		&models.Comment{},
		&models.AuditLog{},
	); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, nil))
}

// stubSearchClient satisfies SearchClient without the network.
type stubSearchClient struct {
	summaries []RecipeSummary
	details   map[uint]*RecipeDetails
	calls     int
}

func (s *stubSearchClient) Search(ctx context.Context, query string) ([]RecipeSummary, error) {
	return s.summaries, nil
}

func (s *stubSearchClient) FetchDetails(ctx context.Context, id uint) (*RecipeDetails, error) {
	s.calls++
	if d, ok := s.details[id]; ok {
		return d, nil
	}
	return nil, ErrRecipeUnavailable
}
