package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"renthub/internal/errors"
	"renthub/internal/model"
	"renthub/internal/repository"
)

// BookingInput carries the fields a renter supplies when booking a car.
// Location fields default to the car's location when empty.
type BookingInput struct {
	CarID           uuid.UUID
	PickupDate      time.Time
	ReturnDate      time.Time
	PickupLocation  string
	DropoffLocation string
}

// BookingService handles the reservation lifecycle.
type BookingService interface {
	CheckAvailability(ctx context.Context, carID uuid.UUID, pickup, ret time.Time) (bool, error)
	Create(ctx context.Context, renterID uuid.UUID, input BookingInput) (*model.Booking, error)
	ListForRenter(ctx context.Context, renterID uuid.UUID) ([]model.Booking, error)
	ListForOwner(ctx context.Context, ownerID uuid.UUID, callerRole string) ([]model.Booking, error)
	ChangeStatus(ctx context.Context, callerID, bookingID uuid.UUID, status model.BookingStatus) (string, error)
}

type bookingService struct {
	cars     repository.CarRepository
	bookings repository.BookingRepository
}

// NewBookingService creates a new booking service.
func NewBookingService(cars repository.CarRepository, bookings repository.BookingRepository) BookingService {
	return &bookingService{
		cars:     cars,
		bookings: bookings,
	}
}

// CheckAvailability reports whether the car has no pending or approved
// booking overlapping the inclusive [pickup, ret] range.
func (s *bookingService) CheckAvailability(ctx context.Context, carID uuid.UUID, pickup, ret time.Time) (bool, error) {
	if _, err := s.cars.FindByID(ctx, carID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return false, errors.ErrCarNotFound
		}
		return false, fmt.Errorf("find car: %w", err)
	}

	count, err := s.bookings.CountOverlapping(ctx, carID, pickup, ret)
	if err != nil {
		return false, fmt.Errorf("count overlapping bookings: %w", err)
	}
	return count == 0, nil
}

// Create books a car for the renter. The availability check and the insert
// run in one transaction at the repository, so concurrent overlapping
// requests cannot both succeed.
func (s *bookingService) Create(ctx context.Context, renterID uuid.UUID, input BookingInput) (*model.Booking, error) {
	car, err := s.cars.FindByID(ctx, input.CarID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrCarNotFound
		}
		return nil, fmt.Errorf("find car: %w", err)
	}

	days := rentalDays(input.PickupDate, input.ReturnDate)
	totalAmount := car.PricePerDay.Mul(decimal.NewFromInt(days))

	pickupLocation := input.PickupLocation
	if pickupLocation == "" {
		pickupLocation = car.Location
	}
	dropoffLocation := input.DropoffLocation
	if dropoffLocation == "" {
		dropoffLocation = car.Location
	}

	booking := &model.Booking{
		UserID:          renterID,
		CarID:           car.ID,
		OwnerID:         car.OwnerID,
		PickupLocation:  pickupLocation,
		DropoffLocation: dropoffLocation,
		PickupDate:      input.PickupDate,
		ReturnDate:      input.ReturnDate,
		TotalAmount:     totalAmount,
		Status:          model.BookingStatusPending,
	}

	if err := s.bookings.CreateIfAvailable(ctx, booking); err != nil {
		if errors.IsDomain(err) {
			return nil, err
		}
		return nil, fmt.Errorf("create booking: %w", err)
	}
	return booking, nil
}

// ListForRenter lists the caller's bookings, newest first.
func (s *bookingService) ListForRenter(ctx context.Context, renterID uuid.UUID) ([]model.Booking, error) {
	bookings, err := s.bookings.FindByUser(ctx, renterID)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	return bookings, nil
}

// ListForOwner lists bookings on the caller's cars, newest first. Only owners
// may call it.
func (s *bookingService) ListForOwner(ctx context.Context, ownerID uuid.UUID, callerRole string) ([]model.Booking, error) {
	if callerRole != model.RoleOwner {
		return nil, errors.ErrOwnerBookingsForbidden
	}
	bookings, err := s.bookings.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list owner bookings: %w", err)
	}
	return bookings, nil
}

// ChangeStatus transitions a booking to the given status. Only the owner
// referenced by the booking may do this, whatever the target status.
func (s *bookingService) ChangeStatus(ctx context.Context, callerID, bookingID uuid.UUID, status model.BookingStatus) (string, error) {
	booking, err := s.bookings.FindByID(ctx, bookingID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return "", errors.ErrBookingNotFound
		}
		return "", fmt.Errorf("find booking: %w", err)
	}

	if booking.OwnerID != callerID {
		return "", errors.ErrNotBookingOwner
	}

	booking.Status = status
	if err := s.bookings.Save(ctx, booking); err != nil {
		return "", fmt.Errorf("save booking: %w", err)
	}

	switch status {
	case model.BookingStatusApproved:
		return "Booking approved successfully! The customer will be notified.", nil
	case model.BookingStatusRejected:
		return "Booking rejected successfully. The customer will be notified.", nil
	default:
		return "Booking status updated successfully", nil
	}
}

// rentalDays returns the chargeable days for an inclusive date range: the
// rounded-up day difference plus the pickup day itself.
func rentalDays(pickup, ret time.Time) int64 {
	diff := ret.Sub(pickup)
	if diff < 0 {
		diff = -diff
	}
	return int64(math.Ceil(diff.Hours()/24)) + 1
}
