package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"renthub/internal/errors"
)

// ok writes the success envelope with the given payload fields merged in.
func ok(c echo.Context, payload echo.Map) error {
	return okStatus(c, http.StatusOK, payload)
}

func okStatus(c echo.Context, status int, payload echo.Map) error {
	body := echo.Map{"success": true}
	for k, v := range payload {
		body[k] = v
	}
	return c.JSON(status, body)
}

// fail writes the failure envelope. Domain errors keep their message; anything
// else is logged and replaced with a generic message so internal detail never
// reaches the client.
func fail(c echo.Context, status int, err error) error {
	message := "Something went wrong"
	if errors.IsDomain(err) {
		message = err.Error()
	} else {
		c.Logger().Error(err)
	}
	return c.JSON(status, echo.Map{"success": false, "message": message})
}
