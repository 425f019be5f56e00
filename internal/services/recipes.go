package services

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"recipebox/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RecipeService struct {
	db           *gorm.DB
	search       SearchClient
	auditService *AuditService
}

func NewRecipeService(db *gorm.DB, search SearchClient, auditService *AuditService) *RecipeService {
	return &RecipeService{
		db:           db,
		search:       search,
		auditService: auditService,
	}
}

// SaveRecipe bookmarks an external recipe for a user, mirroring it into
// the local database the first time anyone saves it.
//
// The mirror insert uses ON CONFLICT DO NOTHING on the external-ID primary
// key: if two users race on a never-yet-mirrored recipe, one insert wins
// and the other proceeds against the existing row. The per-user dedup is
// likewise backed by the (user_id, recipe_id) unique index, so the prior
// existence check is advisory only.
func (s *RecipeService) SaveRecipe(ctx context.Context, userID, externalID uint, ipAddress string) (*models.SavedRecipe, error) {
	var mirror models.MirroredRecipe
	err := s.db.First(&mirror, externalID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		details, derr := s.search.FetchDetails(ctx, externalID)
		if derr != nil {
			return nil, ErrRecipeUnavailable
		}

		mirror = models.MirroredRecipe{
			ID:           externalID,
			Title:        details.Title,
			Ingredients:  joinIngredients(details.ExtendedIngredients),
			Instructions: details.Instructions,
			FirstSaverID: userID,
		}
		cerr := s.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&mirror).Error
		if cerr != nil && !errors.Is(cerr, gorm.ErrDuplicatedKey) {
			return nil, cerr
		}
	} else if err != nil {
		return nil, err
	}

	var existing models.SavedRecipe
	err = s.db.Where("user_id = ? AND recipe_id = ?", userID, externalID).First(&existing).Error
	if err == nil {
		return &existing, ErrAlreadySaved
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	saved := models.SavedRecipe{UserID: userID, RecipeID: externalID}
	if err := s.db.Create(&saved).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrAlreadySaved
		}
		return nil, err
	}

	s.auditService.LogAction(&userID, "SAVE_RECIPE", strconv.FormatUint(uint64(externalID), 10), nil, ipAddress)

	return &saved, nil
}

// DeleteSavedRecipe removes a bookmark. Only the owner may delete it.
func (s *RecipeService) DeleteSavedRecipe(userID, savedID uint) error {
	var saved models.SavedRecipe
	if err := s.db.First(&saved, savedID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	if saved.UserID != userID {
		return ErrForbidden
	}

	return s.db.Delete(&saved).Error
}

func (s *RecipeService) ListSavedRecipes(userID uint) ([]models.SavedRecipe, error) {
	var saved []models.SavedRecipe
	err := s.db.Preload("Recipe").Where("user_id = ?", userID).Find(&saved).Error
	return saved, err
}

func (s *RecipeService) CreateAuthoredRecipe(userID uint, title, ingredients, instructions, ipAddress string) (*models.Recipe, error) {
	recipe := models.Recipe{
		UserID:       userID,
		Title:        title,
		Ingredients:  ingredients,
		Instructions: instructions,
	}

	if err := s.db.Create(&recipe).Error; err != nil {
		return nil, err
	}

	s.auditService.LogAction(&userID, "CREATE_RECIPE", strconv.FormatUint(uint64(recipe.ID), 10), map[string]interface{}{
		"title": title,
	}, ipAddress)

	return &recipe, nil
}

func (s *RecipeService) GetAuthoredRecipe(id uint) (*models.Recipe, error) {
	var recipe models.Recipe
	if err := s.db.First(&recipe, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &recipe, nil
}

func (s *RecipeService) ListAuthoredRecipes(userID uint) ([]models.Recipe, error) {
	var recipes []models.Recipe
	err := s.db.Where("user_id = ?", userID).Find(&recipes).Error
	return recipes, err
}

// GetMirroredRecipe returns the local mirror of an external recipe, if any
// user has saved it before.
func (s *RecipeService) GetMirroredRecipe(externalID uint) (*models.MirroredRecipe, error) {
	var mirror models.MirroredRecipe
	if err := s.db.First(&mirror, externalID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &mirror, nil
}

func joinIngredients(ingredients []Ingredient) string {
	names := make([]string, 0, len(ingredients))
	for _, ing := range ingredients {
		names = append(names, ing.Name)
	}
	return strings.Join(names, ", ")
}
