package models

import (
	"time"
)

// SavedRecipe is a per-user bookmark of a mirrored recipe. The composite
// unique index keeps a user from saving the same recipe twice.
type SavedRecipe struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	UserID    uint            `gorm:"not null;uniqueIndex:idx_saved_user_recipe" json:"user_id"`
	RecipeID  uint            `gorm:"not null;uniqueIndex:idx_saved_user_recipe" json:"recipe_id"`
	Recipe    *MirroredRecipe `gorm:"foreignKey:RecipeID" json:"recipe,omitempty"`
	CreatedAt time.Time       `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
}
