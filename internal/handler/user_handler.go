package handler

import (
	"net/http"
	"os"

	"github.com/labstack/echo/v4"

	"renthub/internal/auth"
	"renthub/internal/errors"
	"renthub/internal/service"
)

// UserHandler handles registration, login, profile and the public catalog.
type UserHandler struct {
	authService service.AuthService
	userService service.UserService
	carService  service.CarService
}

// NewUserHandler creates a new user handler.
func NewUserHandler(authService service.AuthService, userService service.UserService, carService service.CarService) *UserHandler {
	return &UserHandler{
		authService: authService,
		userService: userService,
		carService:  carService,
	}
}

// RegisterRequest represents a registration request.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginRequest represents a login request.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Register godoc
// @Summary Register a new user
// @Tags user
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration data"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /user/register [post]
func (h *UserHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, errors.ErrMissingFields)
	}
	if err := c.Validate(&req); err != nil {
		return fail(c, http.StatusBadRequest, errors.ErrMissingFields)
	}

	user, token, err := h.authService.Register(c.Request().Context(), req.Name, req.Email, req.Password)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.IsDomain(err) {
			status = http.StatusBadRequest
		}
		return fail(c, status, err)
	}

	return okStatus(c, http.StatusCreated, echo.Map{
		"token": token,
		"user":  user,
	})
}

// Login godoc
// @Summary Login and receive a token
// @Tags user
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /user/login [post]
func (h *UserHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, errors.ErrMissingFields)
	}
	if err := c.Validate(&req); err != nil {
		return fail(c, http.StatusBadRequest, errors.ErrMissingFields)
	}

	user, token, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		status := http.StatusInternalServerError
		switch err {
		case errors.ErrUserNotFound:
			status = http.StatusNotFound
		case errors.ErrInvalidCredentials:
			status = http.StatusUnauthorized
		}
		return fail(c, status, err)
	}

	return ok(c, echo.Map{
		"token": token,
		"user":  user,
	})
}

// GetData godoc
// @Summary Return the authenticated caller
// @Tags user
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Router /user/data [get]
func (h *UserHandler) GetData(c echo.Context) error {
	return ok(c, echo.Map{"user": auth.CurrentUser(c)})
}

// ListCars godoc
// @Summary List available cars, optionally filtered by location and dates
// @Tags user
// @Produce json
// @Param pickupLocation query string false "Location substring"
// @Param pickupDate query string false "Pickup date (YYYY-MM-DD)"
// @Param returnDate query string false "Return date (YYYY-MM-DD)"
// @Success 200 {object} map[string]interface{}
// @Router /user/cars [get]
func (h *UserHandler) ListCars(c echo.Context) error {
	filter := service.CatalogFilter{
		Location: c.QueryParam("pickupLocation"),
	}

	pickup := c.QueryParam("pickupDate")
	ret := c.QueryParam("returnDate")
	if pickup != "" && ret != "" {
		p, err := parseDate(pickup)
		if err != nil {
			return fail(c, http.StatusOK, errors.ErrInvalidDate)
		}
		r, err := parseDate(ret)
		if err != nil {
			return fail(c, http.StatusOK, errors.ErrInvalidDate)
		}
		filter.PickupDate = &p
		filter.ReturnDate = &r
	}

	cars, err := h.carService.Search(c.Request().Context(), filter)
	if err != nil {
		return fail(c, http.StatusOK, err)
	}
	return ok(c, echo.Map{"cars": cars})
}

// UpdateImage godoc
// @Summary Update the caller's profile image
// @Tags user
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param image formData file true "Profile image"
// @Success 200 {object} map[string]interface{}
// @Router /user/update-image [post]
func (h *UserHandler) UpdateImage(c echo.Context) error {
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

	user, err := h.userService.UpdateImage(c.Request().Context(), identity.ID, f, fileHeader.Filename)
	if err != nil {
		return fail(c, http.StatusOK, err)
	}

	return ok(c, echo.Map{
		"message": "Profile image updated successfully",
		"user":    user,
	})
}
