package models

import (
	"time"
)

// User is created once at registration and never mutated afterwards.
// SessionToken is the opaque credential the client presents on every
// protected request; it is assigned at creation and never rotated.
type User struct {
	ID           string    `gorm:"type:uuid;primaryKey" json:"id"`
	Name         string    `gorm:"not null" json:"name"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	SessionToken string    `gorm:"uniqueIndex;not null" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
