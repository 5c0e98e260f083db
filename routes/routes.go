package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/borsatogiordano/daily-diet-api/controllers"
	"github.com/borsatogiordano/daily-diet-api/middlewares"
	"github.com/borsatogiordano/daily-diet-api/repositories"
)

func SetupRouter(
	logger *zap.Logger,
	users repositories.UserRepository,
	userCtl *controllers.UserController,
	mealCtl *controllers.MealController,
) *gin.Engine {
	r := gin.New()
	r.Use(middlewares.RequestLogger(logger), gin.Recovery())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.POST("/users", userCtl.Register)

	// Everything meal-shaped goes through the session gate.
	meals := r.Group("/meals")
	meals.Use(middlewares.SessionAuth(users))
	{
		meals.POST("", mealCtl.Create)
		meals.GET("", mealCtl.List)
		meals.GET("/summary", mealCtl.Summary)
		meals.GET("/:id", mealCtl.Get)
		meals.PUT("/:id", mealCtl.Update)
		meals.DELETE("/:id", mealCtl.Delete)
	}

	return r
}
