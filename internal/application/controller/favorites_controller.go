package controller

import (
	"net/http"

	"weather-pulse/internal/domain/entity"
	"weather-pulse/internal/domain/model"
	"weather-pulse/internal/domain/usecase/favorites"
	"weather-pulse/internal/domain/usecase/session"

	"github.com/labstack/echo/v4"
)

type FavoritesController struct {
	api       *echo.Group
	registry  *session.Registry
	favorites favorites.UseCase
}

func NewFavoritesController(api *echo.Group, registry *session.Registry, favoritesUseCase favorites.UseCase) *FavoritesController {
	return &FavoritesController{api: api, registry: registry, favorites: favoritesUseCase}
}

// InitFavoritesRoutes initializes favorites routes
func (controller *FavoritesController) InitFavoritesRoutes() {
	controller.api.GET("/sessions/:id/favorites", controller.ListFavorites)
	controller.api.POST("/sessions/:id/favorites", controller.AddFavorite)
	controller.api.DELETE("/sessions/:id/favorites", controller.RemoveFavorite)
	controller.api.POST("/sessions/:id/favorites/select", controller.SelectFavorite)
}

// ListFavorites godoc
// @Summary Favorite cards of a session
// @Tags favorites
// @Produce json
// @Param id path string true "Session id"
// @Success 200 {object} model.FavoritesResponse
// @Failure 404 {object} map[string]string "Session not found"
// @Router /sessions/{id}/favorites [get]
func (controller *FavoritesController) ListFavorites(c echo.Context) error {
	s, err := controller.registry.Get(c.Param("id"))
	if err != nil {
		return errorResponse(c, err)
	}
	return controller.respondList(c, http.StatusOK, s)
}

// AddFavorite godoc
// @Summary Save a location
// @Tags favorites
// @Accept json
// @Produce json
// @Param id path string true "Session id"
// @Param body body model.FavoriteRequest true "Location"
// @Success 201 {object} model.FavoritesResponse
// @Failure 400 {object} map[string]string "Blank location"
// @Router /sessions/{id}/favorites [post]
func (controller *FavoritesController) AddFavorite(c echo.Context) error {
	var request model.FavoriteRequest
	if err := bindAndValidate(c, &request); err != nil {
		return errorResponse(c, err)
	}

	s, err := controller.registry.Get(c.Param("id"))
	if err != nil {
		return errorResponse(c, err)
	}
	if err := controller.favorites.Add(c.Request().Context(), s.ID(), request.Location); err != nil {
		return errorResponse(c, err)
	}
	return controller.respondList(c, http.StatusCreated, s)
}

// RemoveFavorite godoc
// @Summary Remove every entry equal to a location
// @Tags favorites
// @Produce json
// @Param id path string true "Session id"
// @Param location query string true "Location"
// @Success 200 {object} model.FavoritesResponse
// @Router /sessions/{id}/favorites [delete]
func (controller *FavoritesController) RemoveFavorite(c echo.Context) error {
	s, err := controller.registry.Get(c.Param("id"))
	if err != nil {
		return errorResponse(c, err)
	}
	if err := controller.favorites.Remove(c.Request().Context(), s.ID(), c.QueryParam("location")); err != nil {
		return errorResponse(c, err)
	}
	return controller.respondList(c, http.StatusOK, s)
}

// SelectFavorite godoc
// @Summary Show a favorite on the home tab
// @Tags favorites
// @Accept json
// @Produce json
// @Param id path string true "Session id"
// @Param body body model.FavoriteRequest true "Location"
// @Success 200 {object} session.State
// @Router /sessions/{id}/favorites/select [post]
func (controller *FavoritesController) SelectFavorite(c echo.Context) error {
	var request model.FavoriteRequest
	if err := bindAndValidate(c, &request); err != nil {
		return errorResponse(c, err)
	}

	s, err := controller.registry.Get(c.Param("id"))
	if err != nil {
		return errorResponse(c, err)
	}
	s.SelectFavorite(request.Location)
	return c.JSON(http.StatusOK, s.State())
}

func (controller *FavoritesController) respondList(c echo.Context, status int, s *session.Session) error {
	cards, err := controller.favorites.List(c.Request().Context(), s.ID())
	if err != nil {
		return errorResponse(c, err)
	}

	unit := s.State().Unit
	converted := make([]entity.Favorite, len(cards))
	for i, card := range cards {
		converted[i] = card.Convert(unit)
	}
	return c.JSON(status, model.FavoritesResponse{Unit: unit, Favorites: converted})
}
