package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"renthub/internal/auth"
	"renthub/internal/errors"
	"renthub/internal/model"
	"renthub/internal/service"
)

// BookingHandler handles availability checks and the booking lifecycle.
type BookingHandler struct {
	bookingService service.BookingService
}

// NewBookingHandler creates a new booking handler.
func NewBookingHandler(bookingService service.BookingService) *BookingHandler {
	return &BookingHandler{bookingService: bookingService}
}

// AvailabilityRequest represents an availability query.
type AvailabilityRequest struct {
	CarID      string `json:"carId" validate:"required"`
	PickupDate string `json:"pickupDate" validate:"required"`
	ReturnDate string `json:"returnDate" validate:"required"`
}

// CreateBookingRequest represents a booking creation request.
type CreateBookingRequest struct {
	CarID           string `json:"carId" validate:"required"`
	PickupDate      string `json:"pickupDate" validate:"required"`
	ReturnDate      string `json:"returnDate" validate:"required"`
	PickupLocation  string `json:"pickupLocation"`
	DropoffLocation string `json:"dropoffLocation"`
}

// ChangeStatusRequest represents a booking status transition.
type ChangeStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// CheckAvailability godoc
// @Summary Check whether a car is free for a date range
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body AvailabilityRequest true "Availability query"
// @Success 200 {object} map[string]interface{}
// @Router /bookings/check-availability [post]
func (h *BookingHandler) CheckAvailability(c echo.Context) error {
	var req AvailabilityRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusOK, errors.ErrMissingFields)
	}
	if err := c.Validate(&req); err != nil {
		return fail(c, http.StatusOK, errors.ErrMissingFields)
	}

	carID, err := uuid.Parse(req.CarID)
	if err != nil {
		return fail(c, http.StatusOK, errors.ErrCarNotFound)
	}
	pickup, err := parseDate(req.PickupDate)
	if err != nil {
		return fail(c, http.StatusOK, errors.ErrInvalidDate)
	}
	ret, err := parseDate(req.ReturnDate)
	if err != nil {
		return fail(c, http.StatusOK, errors.ErrInvalidDate)
	}

	available, err := h.bookingService.CheckAvailability(c.Request().Context(), carID, pickup, ret)
	if err != nil {
		return fail(c, http.StatusOK, err)
	}
	return ok(c, echo.Map{"isAvailable": available})
}

// CreateBooking godoc
// @Summary Book a car
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateBookingRequest true "Booking data"
// @Success 200 {object} map[string]interface{}
// @Router /bookings/create-booking [post]
func (h *BookingHandler) CreateBooking(c echo.Context) error {
	identity := auth.CurrentUser(c)

	var req CreateBookingRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusOK, errors.ErrMissingFields)
	}
	if err := c.Validate(&req); err != nil {
		return fail(c, http.StatusOK, errors.ErrMissingFields)
	}

	carID, err := uuid.Parse(req.CarID)
	if err != nil {
		return fail(c, http.StatusOK, errors.ErrCarNotFound)
	}
	pickup, err := parseDate(req.PickupDate)
	if err != nil {
		return fail(c, http.StatusOK, errors.ErrInvalidDate)
	}
	ret, err := parseDate(req.ReturnDate)
	if err != nil {
		return fail(c, http.StatusOK, errors.ErrInvalidDate)
	}

	booking, err := h.bookingService.Create(c.Request().Context(), identity.ID, service.BookingInput{
		CarID:           carID,
		PickupDate:      pickup,
		ReturnDate:      ret,
		PickupLocation:  req.PickupLocation,
		DropoffLocation: req.DropoffLocation,
	})
	if err != nil {
		return fail(c, http.StatusOK, err)
	}
	return ok(c, echo.Map{"booking": booking})
}

// UserBookings godoc
// @Summary List the caller's bookings
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Router /bookings/user-bookings [get]
func (h *BookingHandler) UserBookings(c echo.Context) error {
	identity := auth.CurrentUser(c)
	bookings, err := h.bookingService.ListForRenter(c.Request().Context(), identity.ID)
	if err != nil {
		return fail(c, http.StatusOK, err)
	}
	return ok(c, echo.Map{"bookings": bookings})
}

// OwnerBookings godoc
// @Summary List bookings on the caller's cars
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Router /bookings/owner-bookings [get]
func (h *BookingHandler) OwnerBookings(c echo.Context) error {
	identity := auth.CurrentUser(c)
	bookings, err := h.bookingService.ListForOwner(c.Request().Context(), identity.ID, identity.Role)
	if err != nil {
		return fail(c, http.StatusOK, err)
	}
	return ok(c, echo.Map{"bookings": bookings})
}

// ChangeStatus godoc
// @Summary Approve or reject a booking
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body ChangeStatusRequest true "New status"
// @Success 200 {object} map[string]interface{}
// @Router /bookings/change-status/{id} [put]
func (h *BookingHandler) ChangeStatus(c echo.Context) error {
	identity := auth.CurrentUser(c)

	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return fail(c, http.StatusOK, errors.ErrBookingNotFound)
	}

	var req ChangeStatusRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusOK, errors.ErrMissingFields)
	}
	if err := c.Validate(&req); err != nil {
		return fail(c, http.StatusOK, errors.ErrMissingFields)
	}

	message, err := h.bookingService.ChangeStatus(c.Request().Context(), identity.ID, bookingID, model.BookingStatus(req.Status))
	if err != nil {
		return fail(c, http.StatusOK, err)
	}
	return ok(c, echo.Map{"message": message})
}
