package webapi

import (
	"net/http"
	"strconv"

	"github.com/lairworks/lairman/pkg/lairsvc"
	"github.com/labstack/echo/v4"
)

type MinionController struct {
	minionService *lairsvc.MinionService
}

func NewMinionController(minionService *lairsvc.MinionService) *MinionController {
	return &MinionController{minionService: minionService}
}

type minionRequest struct {
	Name       string  `json:"name"`
	Specialty  string  `json:"specialty"`
	SkillLevel int     `json:"skill_level"`
	Salary     float64 `json:"salary"`
	Loyalty    int     `json:"loyalty"`
	BaseID     *int    `json:"base_id"`
	SchemeID   *int    `json:"scheme_id"`
	Mood       string  `json:"mood"`
}

func (c *MinionController) GetAllMinions(ctx echo.Context) error {
	minions, err := c.minionService.GetAllMinions()
	if err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusOK, minions)
}

func (c *MinionController) GetMinion(ctx echo.Context) error {
	minionID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid minion id")
	}

	minion, err := c.minionService.GetMinionByID(minionID)
	if err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusOK, minion)
}

func (c *MinionController) CreateMinion(ctx echo.Context) error {
	var req minionRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	minion, err := c.minionService.CreateMinion(req.Name, req.Specialty, req.SkillLevel,
		req.Salary, req.Loyalty, req.BaseID, req.SchemeID, req.Mood)
	if err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, minion)
}

func (c *MinionController) UpdateMinion(ctx echo.Context) error {
	minionID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid minion id")
	}

	var req minionRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	minion, err := c.minionService.UpdateMinion(minionID, req.Name, req.Specialty,
		req.SkillLevel, req.Salary, req.Loyalty, req.BaseID, req.SchemeID, req.Mood)
	if err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusOK, minion)
}

func (c *MinionController) DeleteMinion(ctx echo.Context) error {
	minionID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid minion id")
	}

	if err := c.minionService.DeleteMinion(minionID); err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// PayMinion records a salary payment and applies the loyalty growth/decay
// rule, returning the minion with its refreshed loyalty and mood.
func (c *MinionController) PayMinion(ctx echo.Context) error {
	minionID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid minion id")
	}

	var req struct {
		AmountPaid float64 `json:"amount_paid"`
	}
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	minion, err := c.minionService.PayMinion(minionID, req.AmountPaid)
	if err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusOK, minion)
}
