package routes

import (
	"backend/controllers"
	"backend/middlewares"

	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	// Registration is the only unguarded route; it mints the session.
	users := r.Group("/users")
	{
		users.POST("", controllers.RegisterUser)
	}

	meals := r.Group("/meals")
	meals.Use(middlewares.SessionMiddleware())
	{
		meals.POST("", controllers.CreateMeal)
		meals.GET("", controllers.ListMeals)
		meals.GET("/metrics", controllers.GetMealMetrics)
		meals.GET("/:id", controllers.GetMeal)
		meals.PUT("/:id", controllers.UpdateMeal)
		meals.DELETE("/:id", controllers.DeleteMeal)
	}

	return r
}
