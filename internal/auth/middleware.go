package auth

import (
	"net/http"

	"github.com/google/uuid"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"renthub/internal/model"
	"renthub/internal/repository"
)

const identityKey = "identity"

// Protect returns the middleware chain for authenticated routes: token
// verification followed by identity resolution against the user store.
// Every verification failure maps to the same unauthorized envelope.
func Protect(jwtService *JWTService, users repository.UserRepository) []echo.MiddlewareFunc {
	verify := echojwt.WithConfig(echojwt.Config{
		ParseTokenFunc: func(c echo.Context, auth string) (interface{}, error) {
			return jwtService.ValidateToken(auth)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return c.JSON(http.StatusOK, echo.Map{
				"success": false,
				"message": "Not authorized, token failed",
			})
		},
	})

	return []echo.MiddlewareFunc{verify, loadIdentity(users)}
}

// loadIdentity resolves the token subject to a stored user and attaches it to
// the request context. The role is taken from this fresh record, never from
// the token claim.
func loadIdentity(users repository.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := c.Get("user").(*Claims)
			if !ok {
				return unauthorized(c, "Not authorized, invalid token")
			}

			userID, err := uuid.Parse(claims.UserID)
			if err != nil {
				return unauthorized(c, "Not authorized, invalid token")
			}

			user, err := users.FindByID(c.Request().Context(), userID)
			if err != nil {
				return unauthorized(c, "Not authorized, user not found")
			}

			c.Set(identityKey, user)
			return next(c)
		}
	}
}

func unauthorized(c echo.Context, message string) error {
	return c.JSON(http.StatusOK, echo.Map{
		"success": false,
		"message": message,
	})
}

// CurrentUser returns the authenticated caller attached by Protect, or nil on
// unprotected routes.
func CurrentUser(c echo.Context) *model.User {
	user, _ := c.Get(identityKey).(*model.User)
	return user
}

// HasRole reports whether the identity carries the given role.
func HasRole(u *model.User, role string) bool {
	return u != nil && u.Role == role
}
