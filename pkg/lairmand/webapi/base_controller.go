package webapi

import (
	"net/http"
	"strconv"

	"github.com/lairworks/lairman/pkg/lairdb/lairmodel"
	"github.com/lairworks/lairman/pkg/lairsvc"
	"github.com/labstack/echo/v4"
)

type BaseController struct {
	baseService *lairsvc.BaseService
}

func NewBaseController(baseService *lairsvc.BaseService) *BaseController {
	return &BaseController{baseService: baseService}
}

func (c *BaseController) GetAllBases(ctx echo.Context) error {
	bases, err := c.baseService.GetAllBases()
	if err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusOK, bases)
}

func (c *BaseController) GetBase(ctx echo.Context) error {
	baseID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid base id")
	}

	base, err := c.baseService.GetBaseByID(baseID)
	if err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusOK, base)
}

func (c *BaseController) CreateBase(ctx echo.Context) error {
	var base lairmodel.SecretBase
	if err := ctx.Bind(&base); err != nil {
		return err
	}

	created, err := c.baseService.CreateBase(&base)
	if err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, created)
}

func (c *BaseController) UpdateBase(ctx echo.Context) error {
	baseID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid base id")
	}

	base, err := c.baseService.GetBaseByID(baseID)
	if err != nil {
		return errorJSON(ctx, err)
	}

	if err := ctx.Bind(base); err != nil {
		return err
	}
	base.ID = baseID

	if err := c.baseService.UpdateBase(base); err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusOK, base)
}

func (c *BaseController) DeleteBase(ctx echo.Context) error {
	baseID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid base id")
	}

	if err := c.baseService.DeleteBase(baseID); err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetOccupancy reports the derived occupancy numbers for a base.
func (c *BaseController) GetOccupancy(ctx echo.Context) error {
	baseID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid base id")
	}

	base, err := c.baseService.GetBaseByID(baseID)
	if err != nil {
		return errorJSON(ctx, err)
	}

	occupancy, err := c.baseService.GetCurrentOccupancy(baseID)
	if err != nil {
		return errorJSON(ctx, err)
	}

	available, err := c.baseService.GetAvailableCapacity(base)
	if err != nil {
		return errorJSON(ctx, err)
	}

	canAccommodate, err := c.baseService.CanAccommodateMinion(base)
	if err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusOK, map[string]interface{}{
		"base_id":            baseID,
		"occupancy":          occupancy,
		"available_capacity": available,
		"can_accommodate":    canAccommodate,
	})
}
