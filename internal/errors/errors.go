package errors

import "errors"

// DomainError is an error whose message is safe to return to the client
// verbatim. Anything else is treated as internal and replaced with a generic
// message at the request boundary.
type DomainError string

func (e DomainError) Error() string { return string(e) }

var (
	// ErrUserNotFound is returned when a referenced user does not exist.
	ErrUserNotFound = DomainError("User not found")
	// ErrUserExists is returned when registering an email that is taken.
	ErrUserExists = DomainError("User already exists")
	// ErrInvalidCredentials is returned on a wrong password.
	ErrInvalidCredentials = DomainError("Invalid Credentials")
	// ErrInvalidEmail is returned when the email fails format validation.
	ErrInvalidEmail = DomainError("Invalid email format.")
	// ErrWeakPassword is returned when the password fails the strength rule.
	ErrWeakPassword = DomainError("Password must be at least 8 characters and include uppercase, lowercase, and a number.")
	// ErrMissingFields is returned when a required registration field is empty.
	ErrMissingFields = DomainError("All fields are required.")

	// ErrCarNotFound is returned when a referenced car does not exist.
	ErrCarNotFound = DomainError("Car not found")
	// ErrBookingNotFound is returned when a referenced booking does not exist.
	ErrBookingNotFound = DomainError("Booking not found")
	// ErrCarUnavailable is returned when the requested dates overlap an
	// existing pending or approved booking.
	ErrCarUnavailable = DomainError("Car is not available for the given date")

	// ErrNotBookingOwner is returned when a caller who is not the booking's
	// owner tries to change its status.
	ErrNotBookingOwner = DomainError("You are not authorized to update this booking")
	// ErrNotCarOwner is returned when a caller acts on a car they do not own.
	ErrNotCarOwner = DomainError("You are not authorized to manage this car")
	// ErrOwnerBookingsForbidden is returned when a non-owner lists owner bookings.
	ErrOwnerBookingsForbidden = DomainError("You are not authorized to get owner bookings")
	// ErrDashboardForbidden is returned when a non-owner requests the dashboard.
	ErrDashboardForbidden = DomainError("You are not authorized to get dashboard data")

	// ErrNoImage is returned when an upload endpoint receives no file.
	ErrNoImage = DomainError("No image file provided")
	// ErrInvalidDate is returned when a date field cannot be parsed.
	ErrInvalidDate = DomainError("Invalid date format")
)

// IsDomain reports whether err carries a client-safe message.
func IsDomain(err error) bool {
	var d DomainError
	return errors.As(err, &d)
}
