package repositories

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/borsatogiordano/daily-diet-api/models"
)

// MealRepository owns meal rows. Every read and write is scoped to the
// owning user; a miss on (owner, id) is reported as gorm.ErrRecordNotFound
// and callers decide what that means.
type MealRepository interface {
	Insert(ctx context.Context, meal *models.Meal) error
	FindByID(ctx context.Context, ownerID, mealID uuid.UUID) (*models.Meal, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Meal, error)
	ListByOwnerChronological(ctx context.Context, ownerID uuid.UUID) ([]models.Meal, error)
	Save(ctx context.Context, meal *models.Meal) error
	Delete(ctx context.Context, ownerID, mealID uuid.UUID) error
	CountByOwner(ctx context.Context, ownerID uuid.UUID, onDiet *bool) (int64, error)
}

type mealRepository struct {
	db *gorm.DB
}

func NewMealRepository(db *gorm.DB) MealRepository {
	return &mealRepository{db: db}
}

func (r *mealRepository) Insert(ctx context.Context, meal *models.Meal) error {
	if err := r.db.WithContext(ctx).Create(meal).Error; err != nil {
		return fmt.Errorf("insert meal: %w", err)
	}
	return nil
}

func (r *mealRepository) FindByID(ctx context.Context, ownerID, mealID uuid.UUID) (*models.Meal, error) {
	var meal models.Meal
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", mealID, ownerID).
		First(&meal).Error
	if err != nil {
		return nil, err
	}
	return &meal, nil
}

func (r *mealRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Meal, error) {
	var meals []models.Meal
	err := r.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Order("date DESC").
		Find(&meals).Error
	return meals, err
}

// ListByOwnerChronological orders by meal time ascending. The secondary
// keys keep the order stable for equal timestamps.
func (r *mealRepository) ListByOwnerChronological(ctx context.Context, ownerID uuid.UUID) ([]models.Meal, error) {
	var meals []models.Meal
	err := r.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Order("date ASC, created_at ASC, id ASC").
		Find(&meals).Error
	return meals, err
}

func (r *mealRepository) Save(ctx context.Context, meal *models.Meal) error {
	if err := r.db.WithContext(ctx).Save(meal).Error; err != nil {
		return fmt.Errorf("save meal %s: %w", meal.ID, err)
	}
	return nil
}

// Delete is idempotent: deleting a row that does not exist, or is owned
// by someone else, affects nothing and is not an error.
func (r *mealRepository) Delete(ctx context.Context, ownerID, mealID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", mealID, ownerID).
		Delete(&models.Meal{}).Error
}

func (r *mealRepository) CountByOwner(ctx context.Context, ownerID uuid.UUID, onDiet *bool) (int64, error) {
	var count int64
	q := r.db.WithContext(ctx).Model(&models.Meal{}).Where("user_id = ?", ownerID)
	if onDiet != nil {
		q = q.Where("is_on_diet = ?", *onDiet)
	}
	err := q.Count(&count).Error
	return count, err
}
