package services

import (
	"context"
	"errors"
	"time"

	"backend/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrMealNotFound covers both a missing row and a row owned by another user;
// callers must not be able to tell the two apart.
var ErrMealNotFound = errors.New("Meal not found.")

type MealService struct{ db *gorm.DB }

func NewMealService(db *gorm.DB) *MealService { return &MealService{db: db} }

type MealInput struct {
	Name        string
	Description string
	OccurredAt  time.Time
	IsOnDiet    bool
}

func (s *MealService) Create(ctx context.Context, userID string, in MealInput) (*models.Meal, error) {
	meal := &models.Meal{
		ID:          uuid.NewString(),
		UserID:      userID,
		Name:        in.Name,
		Description: in.Description,
		OccurredAt:  in.OccurredAt,
		IsOnDiet:    in.IsOnDiet,
	}
	if err := s.db.WithContext(ctx).Create(meal).Error; err != nil {
		return nil, err
	}
	return meal, nil
}

func (s *MealService) List(ctx context.Context, userID string) ([]models.Meal, error) {
	var meals []models.Meal
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Find(&meals).Error
	return meals, err
}

func (s *MealService) Get(ctx context.Context, userID, mealID string) (*models.Meal, error) {
	var meal models.Meal
	err := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", mealID, userID).
		First(&meal).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrMealNotFound
	}
	if err != nil {
		return nil, err
	}
	return &meal, nil
}

// Update replaces every mutable field in one conditional statement. The
// ownership filter and the write are the same statement, so a concurrent
// delete of the row shows up here as RowsAffected == 0, never as a write to
// someone else's meal.
func (s *MealService) Update(ctx context.Context, userID, mealID string, in MealInput) error {
	res := s.db.WithContext(ctx).
		Model(&models.Meal{}).
		Where("id = ? AND user_id = ?", mealID, userID).
		Updates(map[string]interface{}{
			"name":        in.Name,
			"description": in.Description,
			"occurred_at": in.OccurredAt,
			"is_on_diet":  in.IsOnDiet,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrMealNotFound
	}
	return nil
}

// Delete physically removes the meal. Of two concurrent deletes of the same
// row, at most one sees RowsAffected == 1; the other reports not found.
func (s *MealService) Delete(ctx context.Context, userID, mealID string) error {
	res := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", mealID, userID).
		Delete(&models.Meal{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrMealNotFound
	}
	return nil
}
