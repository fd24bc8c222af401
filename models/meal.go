package models

import (
	"time"
)

// Meal belongs to exactly one user; every query against it must filter by
// both id and user_id so one user can never see another's records.
type Meal struct {
	ID          string    `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      string    `gorm:"type:uuid;index;not null" json:"user_id"`
	Name        string    `gorm:"not null" json:"name"`
	Description string    `json:"description"`
	OccurredAt  time.Time `gorm:"not null" json:"date"`
	IsOnDiet    bool      `json:"is_on_diet"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
