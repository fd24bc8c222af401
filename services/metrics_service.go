package services

import (
	"context"

	"backend/models"

	"gorm.io/gorm"
)

type MetricsService struct{ db *gorm.DB }

func NewMetricsService(db *gorm.DB) *MetricsService { return &MetricsService{db: db} }

type MealMetrics struct {
	TotalMeals         int `json:"totalMeals"`
	MealsOnDiet        int `json:"mealsOnDiet"`
	MealsOffDiet       int `json:"mealsOffDiet"`
	BestOnDietSequence int `json:"bestOnDietSequence"`
}

// Summary aggregates a user's whole meal history. The streak is a temporal
// measure, so rows are ordered by when the meal happened, not when it was
// recorded; created_at keeps ties in insertion order.
func (s *MetricsService) Summary(ctx context.Context, userID string) (*MealMetrics, error) {
	var meals []models.Meal
	if err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("occurred_at ASC, created_at ASC").
		Find(&meals).Error; err != nil {
		return nil, err
	}

	m := &MealMetrics{TotalMeals: len(meals)}

	current := 0
	for _, meal := range meals {
		if meal.IsOnDiet {
			m.MealsOnDiet++
			current++
			if current > m.BestOnDietSequence {
				m.BestOnDietSequence = current
			}
		} else {
			current = 0
		}
	}
	m.MealsOffDiet = m.TotalMeals - m.MealsOnDiet

	return m, nil
}
