package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/borsatogiordano/daily-diet-api/models"
	"github.com/borsatogiordano/daily-diet-api/repositories"
)

type UserService struct {
	users repositories.UserRepository
}

func NewUserService(users repositories.UserRepository) *UserService {
	return &UserService{users: users}
}

// Register creates a user with a fresh session id. The session id is the
// only credential this API ever issues; it is fixed at registration.
func (s *UserService) Register(ctx context.Context, name string) (*models.User, error) {
	user := &models.User{
		Name:      name,
		SessionID: uuid.New(),
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrNameTaken
		}
		return nil, err
	}
	return user, nil
}
