package echoapi

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/akiba-app/akiba/core/class"
)

type classApi struct {
	service *class.Service
}

func registerClassAPI(g *echo.Group, svc *class.Service) {
	api := classApi{service: svc}

	cg := g.Group("/classes")
	cg.GET("/:id/rates", api.rateHistory)
}

// Handlers

func (api *classApi) rateHistory(ctx echo.Context) error {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return errHttpNotFound
	}

	// 404 on unknown classes rather than an empty history
	if _, err = api.service.GetByID(ctx.Request().Context(), id); err != nil {
		return err
	}

	periods, err := api.service.RateHistory(ctx.Request().Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, periods)
}
