package controller

import (
	"errors"
	"net/http"

	"weather-pulse/internal/domain/usecase/favorites"
	"weather-pulse/internal/domain/usecase/session"
	"weather-pulse/pkg/msg"

	"github.com/labstack/echo/v4"
)

// errorResponse maps domain errors to status codes with an {"error": ...} body
func errorResponse(c echo.Context, err error) error {
	var httpErr *echo.HTTPError
	switch {
	case errors.Is(err, session.ErrSessionNotFound):
		return c.JSON(http.StatusNotFound, map[string]string{"error": msg.GetMessage("session.not-found")})
	case errors.Is(err, favorites.ErrEmptyLocation):
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	case errors.As(err, &httpErr):
		return c.JSON(httpErr.Code, map[string]string{"error": httpErrorMessage(httpErr)})
	default:
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
}

func httpErrorMessage(err *echo.HTTPError) string {
	if m, ok := err.Message.(string); ok {
		return m
	}
	return http.StatusText(err.Code)
}
