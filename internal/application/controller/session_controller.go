package controller

import (
	"net/http"
	"strings"

	"weather-pulse/internal/domain/entity"
	"weather-pulse/internal/domain/model"
	"weather-pulse/internal/domain/usecase/session"
	"weather-pulse/pkg/msg"

	"github.com/labstack/echo/v4"
)

type SessionController struct {
	api      *echo.Group
	registry *session.Registry
}

func NewSessionController(api *echo.Group, registry *session.Registry) *SessionController {
	return &SessionController{api: api, registry: registry}
}

// InitSessionRoutes initializes session routes
func (controller *SessionController) InitSessionRoutes() {
	controller.api.POST("/sessions", controller.CreateSession)
	controller.api.GET("/sessions/:id", controller.GetSession)
	controller.api.DELETE("/sessions/:id", controller.CloseSession)
	controller.api.PUT("/sessions/:id/search", controller.UpdateSearch)
	controller.api.POST("/sessions/:id/search/submit", controller.SubmitSearch)
	controller.api.POST("/sessions/:id/location", controller.SelectLocation)
	controller.api.POST("/sessions/:id/insight/refresh", controller.RefreshInsight)
	controller.api.PUT("/sessions/:id/tab", controller.SetTab)
	controller.api.PUT("/sessions/:id/settings", controller.UpdateSettings)
}

// CreateSession godoc
// @Summary Start a session
// @Description Creates a session showing the default location and requests its first insight
// @Tags session
// @Produce json
// @Success 201 {object} session.State
// @Router /sessions [post]
func (controller *SessionController) CreateSession(c echo.Context) error {
	s, err := controller.registry.Create(c.Request().Context())
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusCreated, s.State())
}

// GetSession godoc
// @Summary Current session state
// @Tags session
// @Produce json
// @Param id path string true "Session id"
// @Success 200 {object} session.State
// @Failure 404 {object} map[string]string "Session not found"
// @Router /sessions/{id} [get]
func (controller *SessionController) GetSession(c echo.Context) error {
	return controller.withSession(c, func(s *session.Session) error { return nil })
}

// CloseSession godoc
// @Summary End a session
// @Tags session
// @Param id path string true "Session id"
// @Success 204
// @Failure 404 {object} map[string]string "Session not found"
// @Router /sessions/{id} [delete]
func (controller *SessionController) CloseSession(c echo.Context) error {
	if err := controller.registry.Close(c.Request().Context(), c.Param("id")); err != nil {
		return errorResponse(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// UpdateSearch godoc
// @Summary Open, dismiss or type into the search box
// @Description open=false dismisses the box and discards in-flight results. A term is looked up after the debounce window.
// @Tags session
// @Accept json
// @Produce json
// @Param id path string true "Session id"
// @Param body body model.SearchRequest true "Search box changes"
// @Success 200 {object} session.State
// @Router /sessions/{id}/search [put]
func (controller *SessionController) UpdateSearch(c echo.Context) error {
	var request model.SearchRequest
	if err := bindAndValidate(c, &request); err != nil {
		return errorResponse(c, err)
	}

	return controller.withSession(c, func(s *session.Session) error {
		if request.Open != nil && !*request.Open {
			s.CloseSearch()
			return nil
		}
		if request.Open != nil {
			s.OpenSearch()
		}
		if request.Term != nil {
			s.TypeSearch(*request.Term)
		}
		return nil
	})
}

// SubmitSearch godoc
// @Summary Select the typed term as location
// @Tags session
// @Produce json
// @Param id path string true "Session id"
// @Success 200 {object} session.State
// @Router /sessions/{id}/search/submit [post]
func (controller *SessionController) SubmitSearch(c echo.Context) error {
	return controller.withSession(c, func(s *session.Session) error {
		s.SubmitSearch()
		return nil
	})
}

// SelectLocation godoc
// @Summary Show a location
// @Description Replaces the snapshot, clears the insight and requests a new one. fromSuggestion also resets the search box.
// @Tags session
// @Accept json
// @Produce json
// @Param id path string true "Session id"
// @Param body body model.LocationRequest true "Location"
// @Success 200 {object} session.State
// @Failure 400 {object} map[string]string "Blank location"
// @Router /sessions/{id}/location [post]
func (controller *SessionController) SelectLocation(c echo.Context) error {
	var request model.LocationRequest
	if err := bindAndValidate(c, &request); err != nil {
		return errorResponse(c, err)
	}
	location := request.Location
	if strings.TrimSpace(location) == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": msg.GetMessage("favorites.empty-location")})
	}

	return controller.withSession(c, func(s *session.Session) error {
		if request.FromSuggestion {
			s.SelectSuggestion(location)
		} else {
			s.SelectLocation(location)
		}
		return nil
	})
}

// RefreshInsight godoc
// @Summary Ask again for the current location's insight
// @Tags session
// @Produce json
// @Param id path string true "Session id"
// @Success 200 {object} session.State
// @Router /sessions/{id}/insight/refresh [post]
func (controller *SessionController) RefreshInsight(c echo.Context) error {
	return controller.withSession(c, func(s *session.Session) error {
		s.RefreshInsight()
		return nil
	})
}

// SetTab godoc
// @Summary Switch the active tab
// @Tags session
// @Accept json
// @Produce json
// @Param id path string true "Session id"
// @Param body body model.TabRequest true "Tab"
// @Success 200 {object} session.State
// @Failure 400 {object} map[string]string "Unknown tab"
// @Router /sessions/{id}/tab [put]
func (controller *SessionController) SetTab(c echo.Context) error {
	var request model.TabRequest
	if err := bindAndValidate(c, &request); err != nil {
		return errorResponse(c, err)
	}

	return controller.withSession(c, func(s *session.Session) error {
		s.SetTab(entity.NavTab(request.Tab))
		return nil
	})
}

// UpdateSettings godoc
// @Summary Change theme, unit or notifications
// @Tags session
// @Accept json
// @Produce json
// @Param id path string true "Session id"
// @Param body body model.SettingsRequest true "Settings to change"
// @Success 200 {object} session.State
// @Router /sessions/{id}/settings [put]
func (controller *SessionController) UpdateSettings(c echo.Context) error {
	var request model.SettingsRequest
	if err := bindAndValidate(c, &request); err != nil {
		return errorResponse(c, err)
	}

	return controller.withSession(c, func(s *session.Session) error {
		if request.DarkMode != nil {
			s.SetDarkMode(*request.DarkMode)
		}
		if request.Unit != nil {
			s.SetUnit(entity.TempUnit(*request.Unit))
		}
		if request.Notifications != nil {
			s.SetNotifications(*request.Notifications)
		}
		return nil
	})
}

// withSession resolves :id, runs fn and answers with the resulting state
func (controller *SessionController) withSession(c echo.Context, fn func(s *session.Session) error) error {
	s, err := controller.registry.Get(c.Param("id"))
	if err != nil {
		return errorResponse(c, err)
	}
	if err := fn(s); err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, s.State())
}
