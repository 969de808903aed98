package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// callerID extracts the authenticated user id injected by the Auth
// middleware. Its presence proves the middleware ran; a handler reaching
// this without it is a wiring bug, reported as 401 rather than a panic.
func callerID(c echo.Context) (string, error) {
	id, _ := c.Get("user_id").(string)
	if id == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return id, nil
}
