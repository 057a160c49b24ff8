package controller

import (
	"fmt"
	"net/http"

	"weather-pulse/internal/domain/model"

	"github.com/labstack/echo/v4"
)

type AboutController struct {
	api     *echo.Group
	name    string
	version string
}

func NewAboutController(api *echo.Group, name string, version string) *AboutController {
	return &AboutController{api: api, name: name, version: version}
}

func (controller *AboutController) InitAboutRoutes() {
	controller.api.GET("/about", controller.About)
}

// About godoc
// @Summary Application name and version
// @Tags about
// @Produce json
// @Success 200 {object} model.AboutResponse
// @Router /about [get]
func (controller *AboutController) About(c echo.Context) error {
	return c.JSON(http.StatusOK, model.AboutResponse{
		Name:    controller.name,
		Version: controller.version,
		About:   fmt.Sprintf("%s v%s", controller.name, controller.version),
	})
}
