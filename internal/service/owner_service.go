package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"renthub/internal/errors"
	"renthub/internal/model"
	"renthub/internal/repository"
)

const recentBookingLimit = 5

// DashboardData is the owner dashboard aggregate. It is recomputed from
// scratch on every call; nothing here is persisted.
type DashboardData struct {
	TotalCars         int             `json:"totalCars"`
	TotalBookings     int             `json:"totalBookings"`
	PendingBookings   int             `json:"pendingBookings"`
	CompletedBookings int             `json:"completedBookings"`
	MonthlyRevenue    decimal.Decimal `json:"monthlyRevenue"`
	RecentBookings    []model.Booking `json:"recentBookings"`
}

// OwnerService handles owner onboarding and the dashboard aggregate.
type OwnerService interface {
	ChangeRole(ctx context.Context, userID uuid.UUID) error
	Dashboard(ctx context.Context, ownerID uuid.UUID, callerRole string) (*DashboardData, error)
}

type ownerService struct {
	users    repository.UserRepository
	cars     repository.CarRepository
	bookings repository.BookingRepository
}

// NewOwnerService creates a new owner service.
func NewOwnerService(users repository.UserRepository, cars repository.CarRepository, bookings repository.BookingRepository) OwnerService {
	return &ownerService{
		users:    users,
		cars:     cars,
		bookings: bookings,
	}
}

// ChangeRole promotes the caller to owner.
func (s *ownerService) ChangeRole(ctx context.Context, userID uuid.UUID) error {
	if err := s.users.UpdateRole(ctx, userID, model.RoleOwner); err != nil {
		return fmt.Errorf("update role: %w", err)
	}
	return nil
}

// Dashboard summarizes the owner's cars and bookings. Monthly revenue sums
// approved bookings created in the current calendar month and year by the
// server's local clock.
func (s *ownerService) Dashboard(ctx context.Context, ownerID uuid.UUID, callerRole string) (*DashboardData, error) {
	if callerRole != model.RoleOwner {
		return nil, errors.ErrDashboardForbidden
	}

	cars, err := s.cars.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list owner cars: %w", err)
	}

	bookings, err := s.bookings.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list owner bookings: %w", err)
	}

	now := time.Now()
	pending := 0
	approved := 0
	revenue := decimal.Zero
	for _, b := range bookings {
		switch b.Status {
		case model.BookingStatusPending:
			pending++
		case model.BookingStatusApproved:
			approved++
			if b.CreatedAt.Month() == now.Month() && b.CreatedAt.Year() == now.Year() {
				revenue = revenue.Add(b.TotalAmount)
			}
		}
	}

	recent := bookings
	if len(recent) > recentBookingLimit {
		recent = recent[:recentBookingLimit]
	}

	return &DashboardData{
		TotalCars:         len(cars),
		TotalBookings:     len(bookings),
		PendingBookings:   pending,
		CompletedBookings: approved,
		MonthlyRevenue:    revenue,
		RecentBookings:    recent,
	}, nil
}
