package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/borsatogiordano/daily-diet-api/middlewares"
	"github.com/borsatogiordano/daily-diet-api/services"
)

// MealInput is the create/update body. Date is RFC 3339; storage
// normalizes it to epoch milliseconds.
type MealInput struct {
	Name        string    `json:"name" binding:"required"`
	Description string    `json:"description" binding:"required"`
	Date        time.Time `json:"date" binding:"required"`
	IsOnDiet    *bool     `json:"is_on_diet" binding:"required"`
}

func (in MealInput) fields() services.MealFields {
	return services.MealFields{
		Name:        in.Name,
		Description: in.Description,
		OccurredAt:  in.Date,
		IsOnDiet:    *in.IsOnDiet,
	}
}

type MealController struct {
	meals   *services.MealService
	summary *services.SummaryService
	logger  *zap.Logger
}

func NewMealController(meals *services.MealService, summary *services.SummaryService, logger *zap.Logger) *MealController {
	return &MealController{meals: meals, summary: summary, logger: logger}
}

func (ctl *MealController) Create(c *gin.Context) {
	ownerID, ok := middlewares.BoundUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var input MealInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	meal, err := ctl.meals.Create(c.Request.Context(), ownerID, input.fields())
	if err != nil {
		ctl.logger.Error("create meal", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create meal"})
		return
	}
	c.JSON(http.StatusCreated, meal)
}

func (ctl *MealController) List(c *gin.Context) {
	ownerID, ok := middlewares.BoundUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	meals, err := ctl.meals.List(c.Request.Context(), ownerID)
	if err != nil {
		ctl.logger.Error("list meals", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list meals"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"meals": meals})
}

func (ctl *MealController) Get(c *gin.Context) {
	ownerID, ok := middlewares.BoundUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	mealID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		// a non-uuid id can never name an owned meal
		c.JSON(http.StatusNotFound, gin.H{"error": "meal not found"})
		return
	}

	meal, err := ctl.meals.Get(c.Request.Context(), ownerID, mealID)
	if err != nil {
		if errors.Is(err, services.ErrMealNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "meal not found"})
			return
		}
		ctl.logger.Error("get meal", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch meal"})
		return
	}
	c.JSON(http.StatusOK, meal)
}

func (ctl *MealController) Update(c *gin.Context) {
	ownerID, ok := middlewares.BoundUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	mealID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "meal not found"})
		return
	}

	var input MealInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	meal, err := ctl.meals.Update(c.Request.Context(), ownerID, mealID, input.fields())
	if err != nil {
		if errors.Is(err, services.ErrMealNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "meal not found"})
			return
		}
		ctl.logger.Error("update meal", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update meal"})
		return
	}
	c.JSON(http.StatusOK, meal)
}

func (ctl *MealController) Delete(c *gin.Context) {
	ownerID, ok := middlewares.BoundUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	mealID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		// idempotent: nothing to delete is still success
		c.Status(http.StatusNoContent)
		return
	}

	if err := ctl.meals.Delete(c.Request.Context(), ownerID, mealID); err != nil {
		ctl.logger.Error("delete meal", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not delete meal"})
		return
	}
	c.Status(http.StatusNoContent)
}

func (ctl *MealController) Summary(c *gin.Context) {
	ownerID, ok := middlewares.BoundUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	summary, err := ctl.summary.Summarize(c.Request.Context(), ownerID)
	if err != nil {
		ctl.logger.Error("summarize meals", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not build summary"})
		return
	}
	c.JSON(http.StatusOK, summary)
}
