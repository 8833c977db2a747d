package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"renthub/internal/errors"
	"renthub/internal/model"
)

var blockingStatuses = []model.BookingStatus{
	model.BookingStatusPending,
	model.BookingStatusApproved,
}

// BookingRepository defines booking persistence operations, including the
// date-overlap availability queries.
type BookingRepository interface {
	Create(ctx context.Context, booking *model.Booking) error
	// CreateIfAvailable atomically re-checks the overlap predicate and inserts
	// the booking in one transaction. Returns errors.ErrCarUnavailable when a
	// blocking booking overlaps the requested range.
	CreateIfAvailable(ctx context.Context, booking *model.Booking) error
	Save(ctx context.Context, booking *model.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Booking, error)
	FindByUser(ctx context.Context, userID uuid.UUID) ([]model.Booking, error)
	FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.Booking, error)
	CountOverlapping(ctx context.Context, carID uuid.UUID, pickup, ret time.Time) (int64, error)
	FindOverlappingCarIDs(ctx context.Context, pickup, ret time.Time) ([]uuid.UUID, error)
}

type bookingRepository struct {
	db *gorm.DB
}

// NewBookingRepository creates a new booking repository.
func NewBookingRepository(db *gorm.DB) BookingRepository {
	return &bookingRepository{db: db}
}

// Create creates a new booking without an availability check.
func (r *bookingRepository) Create(ctx context.Context, booking *model.Booking) error {
	return r.db.WithContext(ctx).Create(booking).Error
}

// CreateIfAvailable inserts the booking only if no blocking booking overlaps
// its inclusive date range. The overlap rows are read with a row lock inside
// the transaction so two concurrent bookings for the same range cannot both
// pass the check.
func (r *bookingRepository) CreateIfAvailable(ctx context.Context, booking *model.Booking) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		err := tx.Model(&model.Booking{}).
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("car_id = ?", booking.CarID).
			Where("status IN ?", blockingStatuses).
			Where("pickup_date <= ? AND return_date >= ?", booking.ReturnDate, booking.PickupDate).
			Count(&count).Error
		if err != nil {
			return err
		}
		if count > 0 {
			return errors.ErrCarUnavailable
		}
		return tx.Create(booking).Error
	})
}

// Save persists changes to an existing booking.
func (r *bookingRepository) Save(ctx context.Context, booking *model.Booking) error {
	return r.db.WithContext(ctx).Save(booking).Error
}

// FindByID finds a booking by ID.
func (r *bookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Booking, error) {
	var booking model.Booking
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&booking).Error; err != nil {
		return nil, err
	}
	return &booking, nil
}

// FindByUser lists a renter's bookings joined with their cars, newest first.
func (r *bookingRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]model.Booking, error) {
	var bookings []model.Booking
	err := r.db.WithContext(ctx).
		Preload("Car").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

// FindByOwner lists bookings on an owner's cars joined with the cars, newest first.
func (r *bookingRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.Booking, error) {
	var bookings []model.Booking
	err := r.db.WithContext(ctx).
		Preload("Car").
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

// CountOverlapping counts blocking bookings for a car whose inclusive
// [pickup_date, return_date] range overlaps [pickup, ret]: A <= R and B >= P.
func (r *bookingRepository) CountOverlapping(ctx context.Context, carID uuid.UUID, pickup, ret time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Booking{}).
		Where("car_id = ?", carID).
		Where("status IN ?", blockingStatuses).
		Where("pickup_date <= ? AND return_date >= ?", ret, pickup).
		Count(&count).Error
	return count, err
}

// FindOverlappingCarIDs returns the distinct car IDs with at least one
// blocking booking overlapping [pickup, ret]. Used as the bulk form of the
// availability check by catalog search.
func (r *bookingRepository) FindOverlappingCarIDs(ctx context.Context, pickup, ret time.Time) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.WithContext(ctx).Model(&model.Booking{}).
		Distinct("car_id").
		Where("status IN ?", blockingStatuses).
		Where("pickup_date <= ? AND return_date >= ?", ret, pickup).
		Pluck("car_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}
