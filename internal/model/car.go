package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Car is a vehicle listed by an owner.
//
// IsAvailable is the owner-controlled listing flag; it is independent of any
// booking state. Date-range availability is decided by the booking overlap
// check, not by this flag.
type Car struct {
	ID              uuid.UUID       `json:"_id" gorm:"type:char(36);primaryKey"`
	OwnerID         uuid.UUID       `json:"owner" gorm:"type:char(36);not null;index"`
	Brand           string          `json:"brand" gorm:"size:100;not null"`
	Model           string          `json:"model" gorm:"size:100;not null"`
	Year            int             `json:"year"`
	Category        string          `json:"category" gorm:"size:50"`
	SeatingCapacity int             `json:"seating_capacity"`
	FuelType        string          `json:"fuel_type" gorm:"size:30"`
	Transmission    string          `json:"transmission" gorm:"size:30"`
	PricePerDay     decimal.Decimal `json:"pricePerDay" gorm:"type:decimal(10,2);not null"`
	Location        string          `json:"location" gorm:"size:255;index"`
	Description     string          `json:"description" gorm:"type:text"`
	Image           string          `json:"image" gorm:"size:512"`
	IsAvailable     bool            `json:"isAvailable" gorm:"default:true;index"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

// BeforeCreate sets UUID before creating the record.
func (c *Car) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
