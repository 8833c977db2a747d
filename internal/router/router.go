package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"renthub/internal/auth"
	"renthub/internal/config"
	"renthub/internal/handler"
	"renthub/internal/repository"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	jwtService *auth.JWTService,
	userRepo repository.UserRepository,
	userHandler *handler.UserHandler,
	ownerHandler *handler.OwnerHandler,
	bookingHandler *handler.BookingHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowCredentials: true,
	}))

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	protect := auth.Protect(jwtService, userRepo)

	api := e.Group("/api")

	// User routes
	user := api.Group("/user")
	user.POST("/register", userHandler.Register)
	user.POST("/login", userHandler.Login)
	user.GET("/cars", userHandler.ListCars)
	user.GET("/data", userHandler.GetData, protect...)
	user.POST("/update-image", userHandler.UpdateImage, protect...)
	user.POST("/reservation", bookingHandler.CreateBooking, protect...)

	// Owner routes
	owner := api.Group("/owner", protect...)
	owner.POST("/change-role", ownerHandler.ChangeRole)
	owner.POST("/add-car", ownerHandler.AddCar)
	owner.GET("/get-owner-cars", ownerHandler.GetOwnerCars)
	owner.PUT("/toggle-car-status/:id", ownerHandler.ToggleCarStatus)
	owner.DELETE("/delete-car/:id", ownerHandler.DeleteCar)
	owner.GET("/get-dashboard-data", ownerHandler.GetDashboardData)
	owner.GET("/dashboard-data", ownerHandler.GetDashboardData)
	owner.PUT("/update-image", ownerHandler.UpdateImage)

	// Booking routes
	bookings := api.Group("/bookings")
	bookings.POST("/check-availability", bookingHandler.CheckAvailability)
	bookings.POST("/create-booking", bookingHandler.CreateBooking, protect...)
	bookings.GET("/user-bookings", bookingHandler.UserBookings, protect...)
	bookings.GET("/owner-bookings", bookingHandler.OwnerBookings, protect...)
	bookings.PUT("/change-status/:id", bookingHandler.ChangeStatus, protect...)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
