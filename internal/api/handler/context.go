package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ctxUserID extracts the authenticated user id injected by the Auth
// middleware. An empty id means the middleware did not run on this route;
// fail closed with 401 rather than querying with an empty owner.
func ctxUserID(c echo.Context) (string, error) {
	id, _ := c.Get("userID").(string)
	if id == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return id, nil
}
