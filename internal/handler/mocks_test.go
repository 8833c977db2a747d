package handler

import (
	"context"
	"io"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"renthub/internal/model"
	"renthub/internal/service"
)

// MockCarService is a mock implementation of service.CarService.
type MockCarService struct {
	mock.Mock
}

func (m *MockCarService) Search(ctx context.Context, filter service.CatalogFilter) ([]model.Car, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Car), args.Error(1)
}

func (m *MockCarService) AddCar(ctx context.Context, ownerID uuid.UUID, input service.CarInput, image io.Reader, imageName string) (*model.Car, error) {
	args := m.Called(ctx, ownerID, input, image, imageName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Car), args.Error(1)
}

func (m *MockCarService) ListOwnerCars(ctx context.Context, ownerID uuid.UUID) ([]model.Car, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Car), args.Error(1)
}

func (m *MockCarService) ToggleAvailability(ctx context.Context, callerID, carID uuid.UUID) (*model.Car, error) {
	args := m.Called(ctx, callerID, carID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Car), args.Error(1)
}

func (m *MockCarService) DeleteCar(ctx context.Context, callerID, carID uuid.UUID) error {
	args := m.Called(ctx, callerID, carID)
	return args.Error(0)
}

// MockUserService is a mock implementation of service.UserService.
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) UpdateImage(ctx context.Context, userID uuid.UUID, image io.Reader, imageName string) (*model.User, error) {
	args := m.Called(ctx, userID, image, imageName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}
