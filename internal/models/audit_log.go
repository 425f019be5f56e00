package models

import (
	"time"
)

type AuditLog struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    *uint     `gorm:"index" json:"user_id"`           // Nullable for anonymous actions (e.g. failed logins)
	Action    string    `gorm:"size:50;not null" json:"action"` // e.g., "REGISTER", "LOGIN", "SAVE_RECIPE"
	EntityID  string    `gorm:"size:50" json:"entity_id"`       // ID of the object affected (e.g. recipe ID or username)
	Details   string    `gorm:"type:text" json:"details"`       // JSON or text description
	IPAddress string    `gorm:"size:45" json:"ip_address"`
	Timestamp time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"timestamp"`
}
