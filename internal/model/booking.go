package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// BookingStatus represents the lifecycle state of a booking.
type BookingStatus string

const (
	BookingStatusPending  BookingStatus = "pending"
	BookingStatusApproved BookingStatus = "approved"
	BookingStatusRejected BookingStatus = "rejected"
)

// Booking is a reservation of a car for an inclusive [PickupDate, ReturnDate]
// range. OwnerID is denormalized from the car at creation time so that
// owner-side queries and authorization never need a join.
type Booking struct {
	ID              uuid.UUID       `json:"_id" gorm:"type:char(36);primaryKey"`
	UserID          uuid.UUID       `json:"user" gorm:"type:char(36);not null;index"`
	CarID           uuid.UUID       `json:"-" gorm:"type:char(36);not null;index"`
	OwnerID         uuid.UUID       `json:"owner" gorm:"type:char(36);not null;index"`
	PickupLocation  string          `json:"pickupLocation" gorm:"size:255;not null"`
	DropoffLocation string          `json:"dropoffLocation" gorm:"size:255;not null"`
	PickupDate      time.Time       `json:"pickupDate" gorm:"not null;index"`
	ReturnDate      time.Time       `json:"returnDate" gorm:"not null;index"`
	TotalAmount     decimal.Decimal `json:"totalAmount" gorm:"type:decimal(12,2);not null"`
	Status          BookingStatus   `json:"status" gorm:"type:varchar(20);not null;default:'pending';index"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`

	// Relations
	Car *Car `json:"car,omitempty" gorm:"foreignKey:CarID"`
}

// BeforeCreate sets UUID before creating the record.
func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// Blocking reports whether a booking in this status holds its date range
// against new bookings. Rejected bookings release the range.
func (s BookingStatus) Blocking() bool {
	return s == BookingStatusPending || s == BookingStatusApproved
}
