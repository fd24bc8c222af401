package controllers

import (
	"errors"
	"net/http"
	"time"

	"backend/config"
	"backend/services"

	"github.com/gin-gonic/gin"
)

type MealBody struct {
	Name        string    `json:"name" binding:"required"`
	Description string    `json:"description"`
	IsOnDiet    *bool     `json:"isOnDiet" binding:"required"`
	Date        time.Time `json:"date" binding:"required"`
}

func (b MealBody) toInput() services.MealInput {
	return services.MealInput{
		Name:        b.Name,
		Description: b.Description,
		OccurredAt:  b.Date,
		IsOnDiet:    *b.IsOnDiet,
	}
}

func mealNotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{"message": "Meal not found."})
}

func CreateMeal(c *gin.Context) {
	var body MealBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	userID := c.GetString("userID")

	svc := services.NewMealService(config.DB)
	meal, err := svc.Create(c.Request.Context(), userID, body.toInput())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": meal.ID})
}

func ListMeals(c *gin.Context) {
	userID := c.GetString("userID")

	svc := services.NewMealService(config.DB)
	meals, err := svc.List(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"meals": meals})
}

func GetMeal(c *gin.Context) {
	userID := c.GetString("userID")

	svc := services.NewMealService(config.DB)
	meal, err := svc.Get(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrMealNotFound) {
			mealNotFound(c)
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, meal)
}

func UpdateMeal(c *gin.Context) {
	var body MealBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	userID := c.GetString("userID")

	svc := services.NewMealService(config.DB)
	if err := svc.Update(c.Request.Context(), userID, c.Param("id"), body.toInput()); err != nil {
		if errors.Is(err, services.ErrMealNotFound) {
			mealNotFound(c)
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Meal updated"})
}

func DeleteMeal(c *gin.Context) {
	userID := c.GetString("userID")

	svc := services.NewMealService(config.DB)
	if err := svc.Delete(c.Request.Context(), userID, c.Param("id")); err != nil {
		if errors.Is(err, services.ErrMealNotFound) {
			mealNotFound(c)
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

func GetMealMetrics(c *gin.Context) {
	userID := c.GetString("userID")

	svc := services.NewMetricsService(config.DB)
	metrics, err := svc.Summary(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, metrics)
}
