package controller

import (
	"net/http"
	"strings"

	"weather-pulse/internal/domain/entity"
	"weather-pulse/internal/domain/model"
	"weather-pulse/internal/domain/usecase/forecast"
	"weather-pulse/internal/domain/usecase/insight"
	"weather-pulse/internal/domain/usecase/search"
	"weather-pulse/pkg/util/numberutils"

	"github.com/labstack/echo/v4"
)

// WeatherController serves the stateless endpoints: location search, snapshots and insights
type WeatherController struct {
	api      *echo.Group
	search   search.UseCase
	forecast forecast.UseCase
	insight  insight.UseCase
}

func NewWeatherController(api *echo.Group, searchUseCase search.UseCase, forecastUseCase forecast.UseCase, insightUseCase insight.UseCase) *WeatherController {
	return &WeatherController{api: api, search: searchUseCase, forecast: forecastUseCase, insight: insightUseCase}
}

// InitWeatherRoutes initializes weather routes
func (controller *WeatherController) InitWeatherRoutes() {
	controller.api.GET("/locations", controller.SearchLocations)
	controller.api.GET("/weather", controller.GetWeather)
	controller.api.POST("/insight", controller.GetInsight)
}

// SearchLocations godoc
// @Summary Search the city directory
// @Description Case-insensitive substring search, prefix matches first. Queries shorter than two characters return nothing.
// @Tags weather
// @Produce json
// @Param q query string true "Search term"
// @Param limit query int false "Maximum results, capped at the configured maximum"
// @Success 200 {object} model.LocationSearchResponse
// @Router /locations [get]
func (controller *WeatherController) SearchLocations(c echo.Context) error {
	query := c.QueryParam("q")
	maxResults := controller.search.MaxResults()
	limit := numberutils.ClampInt(numberutils.ToIntWithDefault(c.QueryParam("limit"), maxResults), 1, maxResults)

	results := controller.search.Search(c.Request().Context(), query)
	if len(results) > limit {
		results = results[:limit]
	}
	return c.JSON(http.StatusOK, model.LocationSearchResponse{Query: query, Results: results})
}

// GetWeather godoc
// @Summary Mock weather snapshot
// @Tags weather
// @Produce json
// @Param location query string true "Location display string"
// @Param unit query string false "C or F" default(C)
// @Success 200 {object} entity.WeatherSnapshot
// @Failure 400 {object} map[string]string "Missing location or invalid unit"
// @Router /weather [get]
func (controller *WeatherController) GetWeather(c echo.Context) error {
	var query model.WeatherQuery
	if err := bindAndValidate(c, &query); err != nil {
		return errorResponse(c, err)
	}

	snapshot := controller.forecast.Generate(query.Location)
	if query.Unit != "" {
		snapshot = snapshot.Convert(entity.TempUnit(query.Unit))
	}
	return c.JSON(http.StatusOK, snapshot)
}

// GetInsight godoc
// @Summary Style advice for a location
// @Description Generates the snapshot for the location and asks the text model for advice. Always answers 200; failures return a fixed fallback text.
// @Tags weather
// @Accept json
// @Produce json
// @Param body body model.InsightRequest true "Location"
// @Success 200 {object} model.InsightResponse
// @Failure 400 {object} map[string]string "Invalid request body"
// @Router /insight [post]
func (controller *WeatherController) GetInsight(c echo.Context) error {
	var request model.InsightRequest
	if err := bindAndValidate(c, &request); err != nil {
		return errorResponse(c, err)
	}

	location := strings.TrimSpace(request.Location)
	snapshot := controller.forecast.Generate(location)
	text := controller.insight.Advise(c.Request().Context(), snapshot)
	return c.JSON(http.StatusOK, model.InsightResponse{Location: location, Insight: text})
}
