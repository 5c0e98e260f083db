// Package repositories provides the data access layer over GORM.
package repositories

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/borsatogiordano/daily-diet-api/models"
)

// UserRepository owns user rows. FindBySessionID doubles as the session
// resolver: a presented token either maps to exactly one user or misses.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	FindBySessionID(ctx context.Context, sessionID uuid.UUID) (*models.User, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

func (r *userRepository) FindBySessionID(ctx context.Context, sessionID uuid.UUID) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).Where("session_id = ?", sessionID).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}
