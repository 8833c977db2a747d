package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"renthub/internal/cache"
	"renthub/internal/errors"
	"renthub/internal/model"
	"renthub/internal/repository"
	"renthub/internal/storage"
)

const (
	catalogCacheKey = "catalog:available"
	catalogCacheTTL = time.Minute
)

// CatalogFilter narrows a catalog search. With both dates set, cars that have
// a pending or approved booking overlapping the range are excluded.
type CatalogFilter struct {
	Location   string
	PickupDate *time.Time
	ReturnDate *time.Time
}

// CarInput carries the listing fields an owner supplies for a new car.
type CarInput struct {
	Brand           string
	Model           string
	Year            int
	Category        string
	SeatingCapacity int
	FuelType        string
	Transmission    string
	PricePerDay     decimal.Decimal
	Location        string
	Description     string
}

// CarService handles the public catalog and owner-side car management.
type CarService interface {
	Search(ctx context.Context, filter CatalogFilter) ([]model.Car, error)
	AddCar(ctx context.Context, ownerID uuid.UUID, input CarInput, image io.Reader, imageName string) (*model.Car, error)
	ListOwnerCars(ctx context.Context, ownerID uuid.UUID) ([]model.Car, error)
	ToggleAvailability(ctx context.Context, callerID, carID uuid.UUID) (*model.Car, error)
	DeleteCar(ctx context.Context, callerID, carID uuid.UUID) error
}

type carService struct {
	cars     repository.CarRepository
	bookings repository.BookingRepository
	uploader storage.Uploader
	cache    *cache.Client
}

// NewCarService creates a new car service.
func NewCarService(cars repository.CarRepository, bookings repository.BookingRepository, uploader storage.Uploader, cache *cache.Client) CarService {
	return &carService{
		cars:     cars,
		bookings: bookings,
		uploader: uploader,
		cache:    cache,
	}
}

// Search lists available cars matching the filter. The unfiltered listing is
// served from cache when possible.
func (s *carService) Search(ctx context.Context, filter CatalogFilter) ([]model.Car, error) {
	unfiltered := filter.Location == "" && (filter.PickupDate == nil || filter.ReturnDate == nil)
	if unfiltered {
		if data, _ := s.cache.Get(ctx, catalogCacheKey); data != nil {
			var cached []model.Car
			if err := json.Unmarshal(data, &cached); err == nil {
				return cached, nil
			}
		}
	}

	var excludeIDs []uuid.UUID
	if filter.PickupDate != nil && filter.ReturnDate != nil {
		ids, err := s.bookings.FindOverlappingCarIDs(ctx, *filter.PickupDate, *filter.ReturnDate)
		if err != nil {
			return nil, fmt.Errorf("find booked cars: %w", err)
		}
		excludeIDs = ids
	}

	cars, err := s.cars.Search(ctx, filter.Location, excludeIDs)
	if err != nil {
		return nil, fmt.Errorf("search cars: %w", err)
	}

	if unfiltered {
		if payload, err := json.Marshal(cars); err == nil {
			_ = s.cache.Set(ctx, catalogCacheKey, payload, catalogCacheTTL)
		}
	}
	return cars, nil
}

// AddCar uploads the listing image and creates the car for the owner.
func (s *carService) AddCar(ctx context.Context, ownerID uuid.UUID, input CarInput, image io.Reader, imageName string) (*model.Car, error) {
	imageURL, err := s.uploader.Upload(ctx, image, imageName, "cars")
	if err != nil {
		return nil, fmt.Errorf("upload car image: %w", err)
	}

	car := &model.Car{
		OwnerID:         ownerID,
		Brand:           input.Brand,
		Model:           input.Model,
		Year:            input.Year,
		Category:        input.Category,
		SeatingCapacity: input.SeatingCapacity,
		FuelType:        input.FuelType,
		Transmission:    input.Transmission,
		PricePerDay:     input.PricePerDay,
		Location:        input.Location,
		Description:     input.Description,
		Image:           imageURL,
		IsAvailable:     true,
	}
	if err := s.cars.Create(ctx, car); err != nil {
		return nil, fmt.Errorf("create car: %w", err)
	}

	_ = s.cache.Delete(ctx, catalogCacheKey)
	return car, nil
}

// ListOwnerCars lists the caller's cars.
func (s *carService) ListOwnerCars(ctx context.Context, ownerID uuid.UUID) ([]model.Car, error) {
	cars, err := s.cars.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list owner cars: %w", err)
	}
	return cars, nil
}

// ToggleAvailability flips the listing flag of a car owned by the caller.
func (s *carService) ToggleAvailability(ctx context.Context, callerID, carID uuid.UUID) (*model.Car, error) {
	car, err := s.findOwned(ctx, callerID, carID)
	if err != nil {
		return nil, err
	}

	car.IsAvailable = !car.IsAvailable
	if err := s.cars.Update(ctx, car); err != nil {
		return nil, fmt.Errorf("update car: %w", err)
	}

	_ = s.cache.Delete(ctx, catalogCacheKey)
	return car, nil
}

// DeleteCar removes a car owned by the caller.
func (s *carService) DeleteCar(ctx context.Context, callerID, carID uuid.UUID) error {
	if _, err := s.findOwned(ctx, callerID, carID); err != nil {
		return err
	}

	if err := s.cars.Delete(ctx, carID); err != nil {
		return fmt.Errorf("delete car: %w", err)
	}

	_ = s.cache.Delete(ctx, catalogCacheKey)
	return nil
}

// findOwned loads a car and verifies the caller owns it.
func (s *carService) findOwned(ctx context.Context, callerID, carID uuid.UUID) (*model.Car, error) {
	car, err := s.cars.FindByID(ctx, carID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrCarNotFound
		}
		return nil, fmt.Errorf("find car: %w", err)
	}
	if car.OwnerID != callerID {
		return nil, errors.ErrNotCarOwner
	}
	return car, nil
}
