package service

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"renthub/internal/errors"
	"renthub/internal/model"
	"renthub/internal/repository"
	"renthub/internal/storage"
)

// UserService handles profile operations.
type UserService interface {
	UpdateImage(ctx context.Context, userID uuid.UUID, image io.Reader, imageName string) (*model.User, error)
}

type userService struct {
	users    repository.UserRepository
	uploader storage.Uploader
}

// NewUserService creates a new user service.
func NewUserService(users repository.UserRepository, uploader storage.Uploader) UserService {
	return &userService{
		users:    users,
		uploader: uploader,
	}
}

// UpdateImage uploads a new profile image and stores its URL on the user.
func (s *userService) UpdateImage(ctx context.Context, userID uuid.UUID, image io.Reader, imageName string) (*model.User, error) {
	if _, err := s.users.FindByID(ctx, userID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	imageURL, err := s.uploader.Upload(ctx, image, imageName, "users")
	if err != nil {
		return nil, fmt.Errorf("upload profile image: %w", err)
	}

	if err := s.users.UpdateImage(ctx, userID, imageURL); err != nil {
		return nil, fmt.Errorf("update user image: %w", err)
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("reload user: %w", err)
	}
	return user, nil
}
