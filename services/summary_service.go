package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/borsatogiordano/daily-diet-api/repositories"
)

type Summary struct {
	TotalMeals     int64 `json:"total_meals"`
	MealsOnDiet    int64 `json:"meals_on_diet"`
	MealsNotOnDiet int64 `json:"meals_not_on_diet"`
	BestSequence   int64 `json:"best_sequence"`
}

type SummaryService struct {
	meals repositories.MealRepository
}

func NewSummaryService(meals repositories.MealRepository) *SummaryService {
	return &SummaryService{meals: meals}
}

// Summarize computes the aggregates over the user's current meals. The
// best sequence is the longest run of on-diet meals when ordered by meal
// time; nothing is cached between calls.
func (s *SummaryService) Summarize(ctx context.Context, ownerID uuid.UUID) (*Summary, error) {
	total, err := s.meals.CountByOwner(ctx, ownerID, nil)
	if err != nil {
		return nil, err
	}

	onDiet := true
	on, err := s.meals.CountByOwner(ctx, ownerID, &onDiet)
	if err != nil {
		return nil, err
	}

	offDiet := false
	off, err := s.meals.CountByOwner(ctx, ownerID, &offDiet)
	if err != nil {
		return nil, err
	}

	meals, err := s.meals.ListByOwnerChronological(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	var current, best int64
	for _, meal := range meals {
		if !meal.IsOnDiet {
			current = 0
			continue
		}
		current++
		if current > best {
			best = current
		}
	}

	return &Summary{
		TotalMeals:     total,
		MealsOnDiet:    on,
		MealsNotOnDiet: off,
		BestSequence:   best,
	}, nil
}
