package repository

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"renthub/internal/model"
)

// CarRepository defines car persistence operations.
type CarRepository interface {
	Create(ctx context.Context, car *model.Car) error
	Update(ctx context.Context, car *model.Car) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Car, error)
	FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.Car, error)
	Search(ctx context.Context, location string, excludeIDs []uuid.UUID) ([]model.Car, error)
}

type carRepository struct {
	db *gorm.DB
}

// NewCarRepository creates a new car repository.
func NewCarRepository(db *gorm.DB) CarRepository {
	return &carRepository{db: db}
}

// Create creates a new car.
func (r *carRepository) Create(ctx context.Context, car *model.Car) error {
	return r.db.WithContext(ctx).Create(car).Error
}

// Update updates an existing car.
func (r *carRepository) Update(ctx context.Context, car *model.Car) error {
	return r.db.WithContext(ctx).Save(car).Error
}

// Delete removes a car.
func (r *carRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Car{}, "id = ?", id).Error
}

// FindByID finds a car by ID.
func (r *carRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Car, error) {
	var car model.Car
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&car).Error; err != nil {
		return nil, err
	}
	return &car, nil
}

// FindByOwner lists all cars owned by a user.
func (r *carRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.Car, error) {
	var cars []model.Car
	if err := r.db.WithContext(ctx).Where("owner_id = ?", ownerID).Find(&cars).Error; err != nil {
		return nil, err
	}
	return cars, nil
}

// Search lists available cars, optionally filtered by a case-insensitive
// location substring and excluding the given car IDs.
func (r *carRepository) Search(ctx context.Context, location string, excludeIDs []uuid.UUID) ([]model.Car, error) {
	q := r.db.WithContext(ctx).Where("is_available = ?", true)
	if location != "" {
		q = q.Where("LOWER(location) LIKE ?", "%"+strings.ToLower(location)+"%")
	}
	if len(excludeIDs) > 0 {
		q = q.Where("id NOT IN ?", excludeIDs)
	}

	var cars []model.Car
	if err := q.Find(&cars).Error; err != nil {
		return nil, err
	}
	return cars, nil
}
