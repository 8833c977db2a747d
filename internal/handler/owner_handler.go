package handler

import (
	"net/http"
	"os"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"renthub/internal/auth"
	"renthub/internal/errors"
	"renthub/internal/service"
)

// OwnerHandler handles owner onboarding, car management and the dashboard.
type OwnerHandler struct {
	ownerService service.OwnerService
	carService   service.CarService
	userService  service.UserService
}

// NewOwnerHandler creates a new owner handler.
func NewOwnerHandler(ownerService service.OwnerService, carService service.CarService, userService service.UserService) *OwnerHandler {
	return &OwnerHandler{
		ownerService: ownerService,
		carService:   carService,
		userService:  userService,
	}
}

// ChangeRole godoc
// @Summary Promote the caller to owner
// @Tags owner
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Router /owner/change-role [post]
func (h *OwnerHandler) ChangeRole(c echo.Context) error {
	identity := auth.CurrentUser(c)
	if err := h.ownerService.ChangeRole(c.Request().Context(), identity.ID); err != nil {
		return fail(c, http.StatusOK, err)
	}
	return ok(c, echo.Map{"message": "Now you can list cars"})
}

// AddCar godoc
// @Summary List a new car with an image
// @Tags owner
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param image formData file true "Car image"
// @Success 200 {object} map[string]interface{}
// @Router /owner/add-car [post]
func (h *OwnerHandler) AddCar(c echo.Context) error {
	identity := auth.CurrentUser(c)

	input, err := carInputFromForm(c)
	if err != nil {
		return fail(c, http.StatusOK, err)
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return fail(c, http.StatusOK, errors.ErrNoImage)
	}

	path, cleanup, err := saveTemp(fileHeader)
	if err != nil {
		return fail(c, http.StatusOK, err)
	}
	defer cleanup()

	f, err := os.Open(path)
	if err != nil {
		return fail(c, http.StatusOK, err)
	}
	defer f.Close()

	car, err := h.carService.AddCar(c.Request().Context(), identity.ID, input, f, fileHeader.Filename)
	if err != nil {
		return fail(c, http.StatusOK, err)
	}

	return ok(c, echo.Map{
		"message": "Car added successfully",
		"car":     car,
	})
}

// GetOwnerCars godoc
// @Summary List the caller's cars
// @Tags owner
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Router /owner/get-owner-cars [get]
func (h *OwnerHandler) GetOwnerCars(c echo.Context) error {
	identity := auth.CurrentUser(c)
	cars, err := h.carService.ListOwnerCars(c.Request().Context(), identity.ID)
	if err != nil {
		return fail(c, http.StatusOK, err)
	}
	return ok(c, echo.Map{"cars": cars})
}

// ToggleCarStatus godoc
// @Summary Flip the availability flag of an owned car
// @Tags owner
// @Produce json
// @Security BearerAuth
// @Param id path string true "Car ID"
// @Success 200 {object} map[string]interface{}
// @Router /owner/toggle-car-status/{id} [put]
func (h *OwnerHandler) ToggleCarStatus(c echo.Context) error {
	identity := auth.CurrentUser(c)

	carID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return fail(c, http.StatusOK, errors.ErrCarNotFound)
	}

	if _, err := h.carService.ToggleAvailability(c.Request().Context(), identity.ID, carID); err != nil {
		return fail(c, http.StatusOK, err)
	}
	return ok(c, echo.Map{"message": "Car status toggled successfully"})
}

// DeleteCar godoc
// @Summary Delete an owned car
// @Tags owner
// @Produce json
// @Security BearerAuth
// @Param id path string true "Car ID"
// @Success 200 {object} map[string]interface{}
// @Router /owner/delete-car/{id} [delete]
func (h *OwnerHandler) DeleteCar(c echo.Context) error {
	identity := auth.CurrentUser(c)

	carID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return fail(c, http.StatusOK, errors.ErrCarNotFound)
	}

	if err := h.carService.DeleteCar(c.Request().Context(), identity.ID, carID); err != nil {
		return fail(c, http.StatusOK, err)
	}
	return ok(c, echo.Map{"message": "Car deleted successfully"})
}

// GetDashboardData godoc
// @Summary Owner dashboard aggregate
// @Tags owner
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Router /owner/get-dashboard-data [get]
func (h *OwnerHandler) GetDashboardData(c echo.Context) error {
	identity := auth.CurrentUser(c)

	data, err := h.ownerService.Dashboard(c.Request().Context(), identity.ID, identity.Role)
	if err != nil {
		return fail(c, http.StatusOK, err)
	}
	return ok(c, echo.Map{"dashboardData": data})
}

// UpdateImage handles the owner-side profile image alias route.
func (h *OwnerHandler) UpdateImage(c echo.Context) error {
	identity := auth.CurrentUser(c)

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return fail(c, http.StatusOK, errors.ErrNoImage)
	}

	path, cleanup, err := saveTemp(fileHeader)
	if err != nil {
		return fail(c, http.StatusOK, err)
	}
	defer cleanup()

	f, err := os.Open(path)
	if err != nil {
		return fail(c, http.StatusOK, err)
	}
	defer f.Close()

	if _, err := h.userService.UpdateImage(c.Request().Context(), identity.ID, f, fileHeader.Filename); err != nil {
		return fail(c, http.StatusOK, err)
	}
	return ok(c, echo.Map{"message": "User image updated successfully"})
}

// carInputFromForm reads the listing fields from the multipart form.
func carInputFromForm(c echo.Context) (service.CarInput, error) {
	price, err := decimal.NewFromString(c.FormValue("pricePerDay"))
	if err != nil {
		return service.CarInput{}, errors.DomainError("Invalid price per day")
	}

	year, _ := strconv.Atoi(c.FormValue("year"))
	seats, _ := strconv.Atoi(c.FormValue("seating_capacity"))

	return service.CarInput{
		Brand:           c.FormValue("brand"),
		Model:           c.FormValue("model"),
		Year:            year,
		Category:        c.FormValue("category"),
		SeatingCapacity: seats,
		FuelType:        c.FormValue("fuel_type"),
		Transmission:    c.FormValue("transmission"),
		PricePerDay:     price,
		Location:        c.FormValue("location"),
		Description:     c.FormValue("description"),
	}, nil
}
