package controllers

import (
	"errors"
	"net/http"

	"backend/config"
	"backend/middlewares"
	"backend/services"

	"github.com/gin-gonic/gin"
)

type RegisterInput struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
}

// sessionCookieMaxAge keeps the client signed in for seven days.
const sessionCookieMaxAge = 7 * 24 * 60 * 60

func RegisterUser(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// A caller that already holds a session keeps it; no new cookie is set.
	existingToken, _ := c.Cookie(middlewares.SessionCookie)

	svc := services.NewUserService(config.DB)
	user, err := svc.Register(c.Request.Context(), input.Name, input.Email, existingToken)
	if err != nil {
		if errors.Is(err, services.ErrUserAlreadyExists) {
			c.JSON(http.StatusConflict, gin.H{"message": "User already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if existingToken == "" {
		c.SetCookie(middlewares.SessionCookie, user.SessionToken, sessionCookieMaxAge, "/", "", false, true)
	}

	c.JSON(http.StatusCreated, gin.H{"id": user.ID})
}
