package services

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/borsatogiordano/daily-diet-api/models"
)

// fakeMealStore is an in-memory MealRepository mirroring the SQL
// ownership scoping: every read and write filters by (id, user_id).
type fakeMealStore struct {
	meals map[uuid.UUID]models.Meal
	seq   int
}

func newFakeMealStore() *fakeMealStore {
	return &fakeMealStore{meals: map[uuid.UUID]models.Meal{}}
}

func (f *fakeMealStore) Insert(ctx context.Context, meal *models.Meal) error {
	if meal.ID == uuid.Nil {
		meal.ID = uuid.New()
	}
	f.seq++
	meal.CreatedAt = time.Unix(0, int64(f.seq)).UTC()
	f.meals[meal.ID] = *meal
	return nil
}

func (f *fakeMealStore) FindByID(ctx context.Context, ownerID, mealID uuid.UUID) (*models.Meal, error) {
	meal, ok := f.meals[mealID]
	if !ok || meal.UserID != ownerID {
		return nil, gorm.ErrRecordNotFound
	}
	return &meal, nil
}

func (f *fakeMealStore) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Meal, error) {
	meals := f.ownedBy(ownerID)
	sort.Slice(meals, func(i, j int) bool { return meals[i].Date > meals[j].Date })
	return meals, nil
}

func (f *fakeMealStore) ListByOwnerChronological(ctx context.Context, ownerID uuid.UUID) ([]models.Meal, error) {
	meals := f.ownedBy(ownerID)
	sort.Slice(meals, func(i, j int) bool {
		if meals[i].Date != meals[j].Date {
			return meals[i].Date < meals[j].Date
		}
		if !meals[i].CreatedAt.Equal(meals[j].CreatedAt) {
			return meals[i].CreatedAt.Before(meals[j].CreatedAt)
		}
		return meals[i].ID.String() < meals[j].ID.String()
	})
	return meals, nil
}

func (f *fakeMealStore) Save(ctx context.Context, meal *models.Meal) error {
	f.meals[meal.ID] = *meal
	return nil
}

func (f *fakeMealStore) Delete(ctx context.Context, ownerID, mealID uuid.UUID) error {
	if meal, ok := f.meals[mealID]; ok && meal.UserID == ownerID {
		delete(f.meals, mealID)
	}
	return nil
}

func (f *fakeMealStore) CountByOwner(ctx context.Context, ownerID uuid.UUID, onDiet *bool) (int64, error) {
	var count int64
	for _, meal := range f.meals {
		if meal.UserID != ownerID {
			continue
		}
		if onDiet != nil && meal.IsOnDiet != *onDiet {
			continue
		}
		count++
	}
	return count, nil
}

func (f *fakeMealStore) ownedBy(ownerID uuid.UUID) []models.Meal {
	var meals []models.Meal
	for _, meal := range f.meals {
		if meal.UserID == ownerID {
			meals = append(meals, meal)
		}
	}
	return meals
}

// mockMealRepo overrides individual operations, for error-path tests.
type mockMealRepo struct {
	insertFunc     func(ctx context.Context, meal *models.Meal) error
	findByIDFunc   func(ctx context.Context, ownerID, mealID uuid.UUID) (*models.Meal, error)
	listFunc       func(ctx context.Context, ownerID uuid.UUID) ([]models.Meal, error)
	listChronoFunc func(ctx context.Context, ownerID uuid.UUID) ([]models.Meal, error)
	saveFunc       func(ctx context.Context, meal *models.Meal) error
	deleteFunc     func(ctx context.Context, ownerID, mealID uuid.UUID) error
	countFunc      func(ctx context.Context, ownerID uuid.UUID, onDiet *bool) (int64, error)
}

func (m *mockMealRepo) Insert(ctx context.Context, meal *models.Meal) error {
	return m.insertFunc(ctx, meal)
}

func (m *mockMealRepo) FindByID(ctx context.Context, ownerID, mealID uuid.UUID) (*models.Meal, error) {
	return m.findByIDFunc(ctx, ownerID, mealID)
}

func (m *mockMealRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Meal, error) {
	return m.listFunc(ctx, ownerID)
}

func (m *mockMealRepo) ListByOwnerChronological(ctx context.Context, ownerID uuid.UUID) ([]models.Meal, error) {
	return m.listChronoFunc(ctx, ownerID)
}

func (m *mockMealRepo) Save(ctx context.Context, meal *models.Meal) error {
	return m.saveFunc(ctx, meal)
}

func (m *mockMealRepo) Delete(ctx context.Context, ownerID, mealID uuid.UUID) error {
	return m.deleteFunc(ctx, ownerID, mealID)
}

func (m *mockMealRepo) CountByOwner(ctx context.Context, ownerID uuid.UUID, onDiet *bool) (int64, error) {
	return m.countFunc(ctx, ownerID, onDiet)
}
