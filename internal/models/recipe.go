package models

import (
	"time"
)

// Recipe is a recipe authored directly by a user. Externally-sourced
// recipes live in MirroredRecipe.
type Recipe struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	UserID       uint      `gorm:"not null;index" json:"user_id"`
	User         *User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Title        string    `gorm:"not null;size:150" json:"title"`
	Ingredients  string    `gorm:"not null;type:text" json:"ingredients"`
	Instructions string    `gorm:"not null;type:text" json:"instructions"`
	CreatedAt    time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
}
