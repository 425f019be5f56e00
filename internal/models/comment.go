package models

import (
	"time"
)

// Comment is part of the schema but has no handler surface yet.
type Comment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	RecipeID  uint      `gorm:"not null;index" json:"recipe_id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	Content   string    `gorm:"not null;type:text" json:"content"`
	Rating    *int      `json:"rating,omitempty"`
	CreatedAt time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
}
