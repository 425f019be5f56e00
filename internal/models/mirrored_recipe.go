package models

import (
	"time"
)

// MirroredRecipe is a local copy of a recipe fetched from the external
// search API, created the first time any user saves it. The primary key
// is the external service's recipe ID (assigned, not auto-incremented),
// so there is at most one mirror per external recipe.
type MirroredRecipe struct {
	ID           uint      `gorm:"primaryKey;autoIncrement:false" json:"id"`
	Title        string    `gorm:"not null;size:150" json:"title"`
	Ingredients  string    `gorm:"type:text" json:"ingredients"` // Comma-joined ingredient names
	Instructions string    `gorm:"type:text" json:"instructions"`
	FirstSaverID uint      `json:"first_saver_id"` // Informational only, carries no access-control meaning
	CreatedAt    time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (MirroredRecipe) TableName() string {
	return "mirrored_recipes"
}
