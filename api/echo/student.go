package echoapi

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/akiba-app/akiba/core/accrual"
)

type studentApi struct {
	service *accrual.Service
}

func registerStudentAPI(g *echo.Group, svc *accrual.Service) {
	api := studentApi{service: svc}

	sg := g.Group("/students")
	sg.GET("/:id/portfolio", api.portfolioRetrieve)
}

// Handlers

func (api *studentApi) portfolioRetrieve(ctx echo.Context) error {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return errHttpNotFound
	}

	q := new(AsOfDate)
	if err = q.Bind(ctx); err != nil {
		return err
	}
	if err = q.Validate(); err != nil {
		return err
	}

	var rep accrual.Report
	if at, ok := q.Date(); ok {
		rep, err = api.service.StudentPortfolioAt(ctx.Request().Context(), id, at)
	} else {
		rep, err = api.service.StudentPortfolio(ctx.Request().Context(), id)
	}
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, rep)
}
