package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"renthub/internal/errors"
	"renthub/internal/model"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestBookingService_Create(t *testing.T) {
	carID := uuid.New()
	ownerID := uuid.New()
	renterID := uuid.New()

	car := &model.Car{
		ID:          carID,
		OwnerID:     ownerID,
		PricePerDay: decimal.NewFromInt(100),
		Location:    "New York",
	}

	tests := []struct {
		name          string
		input         BookingInput
		setupMock     func(*MockCarRepository, *MockBookingRepository)
		expectedError error
		expectedTotal string
	}{
		{
			name: "successful booking includes the pickup day",
			input: BookingInput{
				CarID:      carID,
				PickupDate: date(2024, time.January, 1),
				ReturnDate: date(2024, time.January, 3),
			},
			setupMock: func(cars *MockCarRepository, bookings *MockBookingRepository) {
				cars.On("FindByID", mock.Anything, carID).Return(car, nil)
				bookings.On("CreateIfAvailable", mock.Anything, mock.AnythingOfType("*model.Booking")).Return(nil)
			},
			expectedTotal: "300",
		},
		{
			name: "single day booking charges one day",
			input: BookingInput{
				CarID:      carID,
				PickupDate: date(2024, time.March, 10),
				ReturnDate: date(2024, time.March, 10),
			},
			setupMock: func(cars *MockCarRepository, bookings *MockBookingRepository) {
				cars.On("FindByID", mock.Anything, carID).Return(car, nil)
				bookings.On("CreateIfAvailable", mock.Anything, mock.AnythingOfType("*model.Booking")).Return(nil)
			},
			expectedTotal: "100",
		},
		{
			name: "car not found",
			input: BookingInput{
				CarID:      carID,
				PickupDate: date(2024, time.January, 1),
				ReturnDate: date(2024, time.January, 3),
			},
			setupMock: func(cars *MockCarRepository, bookings *MockBookingRepository) {
				cars.On("FindByID", mock.Anything, carID).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: errors.ErrCarNotFound,
		},
		{
			name: "overlapping booking rejected with conflict",
			input: BookingInput{
				CarID:      carID,
				PickupDate: date(2024, time.January, 1),
				ReturnDate: date(2024, time.January, 3),
			},
			setupMock: func(cars *MockCarRepository, bookings *MockBookingRepository) {
				cars.On("FindByID", mock.Anything, carID).Return(car, nil)
				bookings.On("CreateIfAvailable", mock.Anything, mock.AnythingOfType("*model.Booking")).Return(errors.ErrCarUnavailable)
			},
			expectedError: errors.ErrCarUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cars := new(MockCarRepository)
			bookings := new(MockBookingRepository)
			tt.setupMock(cars, bookings)

			svc := NewBookingService(cars, bookings)
			booking, err := svc.Create(context.Background(), renterID, tt.input)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError, err)
				assert.Nil(t, booking)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, booking)
				assert.True(t, booking.TotalAmount.Equal(decimal.RequireFromString(tt.expectedTotal)),
					"total amount %s, want %s", booking.TotalAmount, tt.expectedTotal)
				assert.Equal(t, model.BookingStatusPending, booking.Status)
				assert.Equal(t, renterID, booking.UserID)
				assert.Equal(t, ownerID, booking.OwnerID)
			}

			cars.AssertExpectations(t)
			bookings.AssertExpectations(t)
		})
	}
}

func TestBookingService_Create_DefaultsLocations(t *testing.T) {
	carID := uuid.New()
	car := &model.Car{
		ID:          carID,
		OwnerID:     uuid.New(),
		PricePerDay: decimal.NewFromInt(50),
		Location:    "Chicago",
	}

	cars := new(MockCarRepository)
	bookings := new(MockBookingRepository)
	cars.On("FindByID", mock.Anything, carID).Return(car, nil)
	bookings.On("CreateIfAvailable", mock.Anything, mock.AnythingOfType("*model.Booking")).Return(nil)

	svc := NewBookingService(cars, bookings)
	booking, err := svc.Create(context.Background(), uuid.New(), BookingInput{
		CarID:          carID,
		PickupDate:     date(2024, time.May, 1),
		ReturnDate:     date(2024, time.May, 2),
		PickupLocation: "Airport",
	})

	assert.NoError(t, err)
	assert.Equal(t, "Airport", booking.PickupLocation)
	assert.Equal(t, "Chicago", booking.DropoffLocation)
}

func TestBookingService_CheckAvailability(t *testing.T) {
	carID := uuid.New()
	car := &model.Car{ID: carID, PricePerDay: decimal.NewFromInt(10)}
	pickup := date(2024, time.June, 1)
	ret := date(2024, time.June, 5)

	tests := []struct {
		name      string
		setupMock func(*MockCarRepository, *MockBookingRepository)
		available bool
		wantErr   error
	}{
		{
			name: "available when no overlap",
			setupMock: func(cars *MockCarRepository, bookings *MockBookingRepository) {
				cars.On("FindByID", mock.Anything, carID).Return(car, nil)
				bookings.On("CountOverlapping", mock.Anything, carID, pickup, ret).Return(int64(0), nil)
			},
			available: true,
		},
		{
			name: "unavailable when any blocking booking overlaps",
			setupMock: func(cars *MockCarRepository, bookings *MockBookingRepository) {
				cars.On("FindByID", mock.Anything, carID).Return(car, nil)
				bookings.On("CountOverlapping", mock.Anything, carID, pickup, ret).Return(int64(2), nil)
			},
			available: false,
		},
		{
			name: "car missing",
			setupMock: func(cars *MockCarRepository, bookings *MockBookingRepository) {
				cars.On("FindByID", mock.Anything, carID).Return(nil, gorm.ErrRecordNotFound)
			},
			wantErr: errors.ErrCarNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cars := new(MockCarRepository)
			bookings := new(MockBookingRepository)
			tt.setupMock(cars, bookings)

			svc := NewBookingService(cars, bookings)
			available, err := svc.CheckAvailability(context.Background(), carID, pickup, ret)

			if tt.wantErr != nil {
				assert.Equal(t, tt.wantErr, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.available, available)
			}
			cars.AssertExpectations(t)
			bookings.AssertExpectations(t)
		})
	}
}

func TestBookingService_ListForOwner_RequiresOwnerRole(t *testing.T) {
	cars := new(MockCarRepository)
	bookings := new(MockBookingRepository)
	svc := NewBookingService(cars, bookings)

	_, err := svc.ListForOwner(context.Background(), uuid.New(), model.RoleUser)
	assert.Equal(t, errors.ErrOwnerBookingsForbidden, err)
	bookings.AssertNotCalled(t, "FindByOwner", mock.Anything, mock.Anything)
}

func TestBookingService_ChangeStatus(t *testing.T) {
	ownerID := uuid.New()
	bookingID := uuid.New()

	tests := []struct {
		name            string
		callerID        uuid.UUID
		status          model.BookingStatus
		setupMock       func(*MockBookingRepository)
		expectedError   error
		expectedMessage string
	}{
		{
			name:     "approve by owner",
			callerID: ownerID,
			status:   model.BookingStatusApproved,
			setupMock: func(bookings *MockBookingRepository) {
				bookings.On("FindByID", mock.Anything, bookingID).Return(&model.Booking{ID: bookingID, OwnerID: ownerID}, nil)
				bookings.On("Save", mock.Anything, mock.AnythingOfType("*model.Booking")).Return(nil)
			},
			expectedMessage: "Booking approved successfully! The customer will be notified.",
		},
		{
			name:     "reject by owner",
			callerID: ownerID,
			status:   model.BookingStatusRejected,
			setupMock: func(bookings *MockBookingRepository) {
				bookings.On("FindByID", mock.Anything, bookingID).Return(&model.Booking{ID: bookingID, OwnerID: ownerID}, nil)
				bookings.On("Save", mock.Anything, mock.AnythingOfType("*model.Booking")).Return(nil)
			},
			expectedMessage: "Booking rejected successfully. The customer will be notified.",
		},
		{
			name:     "non-owner caller is always forbidden",
			callerID: uuid.New(),
			status:   model.BookingStatusApproved,
			setupMock: func(bookings *MockBookingRepository) {
				bookings.On("FindByID", mock.Anything, bookingID).Return(&model.Booking{ID: bookingID, OwnerID: ownerID}, nil)
			},
			expectedError: errors.ErrNotBookingOwner,
		},
		{
			name:     "booking missing",
			callerID: ownerID,
			status:   model.BookingStatusApproved,
			setupMock: func(bookings *MockBookingRepository) {
				bookings.On("FindByID", mock.Anything, bookingID).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: errors.ErrBookingNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cars := new(MockCarRepository)
			bookings := new(MockBookingRepository)
			tt.setupMock(bookings)

			svc := NewBookingService(cars, bookings)
			message, err := svc.ChangeStatus(context.Background(), tt.callerID, bookingID, tt.status)

			if tt.expectedError != nil {
				assert.Equal(t, tt.expectedError, err)
				bookings.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedMessage, message)
			}
			bookings.AssertExpectations(t)
		})
	}
}

func TestRentalDays(t *testing.T) {
	tests := []struct {
		name   string
		pickup time.Time
		ret    time.Time
		want   int64
	}{
		{"two day gap", date(2024, time.January, 1), date(2024, time.January, 3), 3},
		{"same day", date(2024, time.January, 1), date(2024, time.January, 1), 1},
		{"reversed range uses absolute difference", date(2024, time.January, 3), date(2024, time.January, 1), 3},
		{"partial day rounds up", date(2024, time.January, 1), time.Date(2024, time.January, 2, 12, 0, 0, 0, time.UTC), 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, rentalDays(tt.pickup, tt.ret))
		})
	}
}
