package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/borsatogiordano/daily-diet-api/models"
	"github.com/borsatogiordano/daily-diet-api/repositories"
)

// MealFields carries the mutable part of a meal. Updates are a full
// replace of all four fields.
type MealFields struct {
	Name        string
	Description string
	OccurredAt  time.Time
	IsOnDiet    bool
}

type MealService struct {
	meals repositories.MealRepository
}

func NewMealService(meals repositories.MealRepository) *MealService {
	return &MealService{meals: meals}
}

func (s *MealService) Create(ctx context.Context, ownerID uuid.UUID, fields MealFields) (*models.Meal, error) {
	meal := &models.Meal{
		UserID:      ownerID,
		Name:        fields.Name,
		Description: fields.Description,
		Date:        fields.OccurredAt.UnixMilli(),
		IsOnDiet:    fields.IsOnDiet,
	}
	if err := s.meals.Insert(ctx, meal); err != nil {
		return nil, err
	}
	return meal, nil
}

func (s *MealService) Get(ctx context.Context, ownerID, mealID uuid.UUID) (*models.Meal, error) {
	meal, err := s.meals.FindByID(ctx, ownerID, mealID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMealNotFound
		}
		return nil, err
	}
	return meal, nil
}

func (s *MealService) List(ctx context.Context, ownerID uuid.UUID) ([]models.Meal, error) {
	return s.meals.ListByOwner(ctx, ownerID)
}

func (s *MealService) Update(ctx context.Context, ownerID, mealID uuid.UUID, fields MealFields) (*models.Meal, error) {
	meal, err := s.meals.FindByID(ctx, ownerID, mealID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMealNotFound
		}
		return nil, err
	}

	meal.Name = fields.Name
	meal.Description = fields.Description
	meal.Date = fields.OccurredAt.UnixMilli()
	meal.IsOnDiet = fields.IsOnDiet
	if err := s.meals.Save(ctx, meal); err != nil {
		return nil, err
	}
	return meal, nil
}

// Delete succeeds whether or not the meal existed. A caller who does not
// own the row cannot learn whether anything was deleted.
func (s *MealService) Delete(ctx context.Context, ownerID, mealID uuid.UUID) error {
	return s.meals.Delete(ctx, ownerID, mealID)
}
