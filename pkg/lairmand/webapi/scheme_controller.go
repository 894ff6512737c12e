package webapi

import (
	"net/http"
	"strconv"
	"time"

	"github.com/lairworks/lairman/pkg/lairdb/lairmodel"
	"github.com/lairworks/lairman/pkg/lairsvc"
	"github.com/labstack/echo/v4"
)

type SchemeController struct {
	schemeService *lairsvc.SchemeService
}

func NewSchemeController(schemeService *lairsvc.SchemeService) *SchemeController {
	return &SchemeController{schemeService: schemeService}
}

type schemeRequest struct {
	Name                 string     `json:"name"`
	Description          string     `json:"description"`
	Budget               float64    `json:"budget"`
	CurrentSpending      float64    `json:"current_spending"`
	RequiredSkillLevel   int        `json:"required_skill_level"`
	RequiredSpecialty    string     `json:"required_specialty"`
	Status               string     `json:"status"`
	StartDate            *time.Time `json:"start_date"`
	TargetCompletionDate time.Time  `json:"target_completion_date"`
	DiabolicalRating     int        `json:"diabolical_rating"`
}

func (r schemeRequest) toModel() *lairmodel.EvilScheme {
	return &lairmodel.EvilScheme{
		Name:                 r.Name,
		Description:          r.Description,
		Budget:               r.Budget,
		CurrentSpending:      r.CurrentSpending,
		RequiredSkillLevel:   r.RequiredSkillLevel,
		RequiredSpecialty:    r.RequiredSpecialty,
		Status:               r.Status,
		StartDate:            r.StartDate,
		TargetCompletionDate: r.TargetCompletionDate,
		DiabolicalRating:     r.DiabolicalRating,
	}
}

func (c *SchemeController) GetAllSchemes(ctx echo.Context) error {
	schemes, err := c.schemeService.GetAllSchemes()
	if err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusOK, schemes)
}

func (c *SchemeController) GetActiveSchemes(ctx echo.Context) error {
	schemes, err := c.schemeService.GetActiveSchemes()
	if err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusOK, schemes)
}

func (c *SchemeController) GetScheme(ctx echo.Context) error {
	schemeID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid scheme id")
	}

	scheme, err := c.schemeService.GetSchemeByID(schemeID)
	if err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusOK, scheme)
}

func (c *SchemeController) GetSchemeBySlug(ctx echo.Context) error {
	scheme, err := c.schemeService.GetSchemeBySlug(ctx.Param("slug"))
	if err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusOK, scheme)
}

func (c *SchemeController) CreateScheme(ctx echo.Context) error {
	var req schemeRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	scheme, err := c.schemeService.CreateScheme(req.toModel())
	if err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, scheme)
}

func (c *SchemeController) UpdateScheme(ctx echo.Context) error {
	schemeID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid scheme id")
	}

	scheme, err := c.schemeService.GetSchemeByID(schemeID)
	if err != nil {
		return errorJSON(ctx, err)
	}

	var req schemeRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	updated := req.toModel()
	updated.ID = scheme.ID
	updated.UUID = scheme.UUID
	updated.Slug = scheme.Slug
	updated.SuccessLikelihood = scheme.SuccessLikelihood

	if err := c.schemeService.UpdateScheme(updated); err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusOK, updated)
}

func (c *SchemeController) DeleteScheme(ctx echo.Context) error {
	schemeID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid scheme id")
	}

	if err := c.schemeService.DeleteScheme(schemeID); err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetSchemeResources reports how many minions and equipment items are
// assigned to a scheme.
func (c *SchemeController) GetSchemeResources(ctx echo.Context) error {
	schemeID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid scheme id")
	}

	if _, err := c.schemeService.GetSchemeByID(schemeID); err != nil {
		return errorJSON(ctx, err)
	}

	minionCount, err := c.schemeService.CountAssignedMinions(schemeID)
	if err != nil {
		return errorJSON(ctx, err)
	}

	equipmentCount, err := c.schemeService.CountAssignedEquipment(schemeID)
	if err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusOK, map[string]interface{}{
		"scheme_id":       schemeID,
		"minion_count":    minionCount,
		"equipment_count": equipmentCount,
	})
}

// RefreshSuccessLikelihood recomputes and persists the scheme's success
// likelihood, returning the scheme with the fresh value.
func (c *SchemeController) RefreshSuccessLikelihood(ctx echo.Context) error {
	schemeID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid scheme id")
	}

	scheme, err := c.schemeService.GetSchemeByID(schemeID)
	if err != nil {
		return errorJSON(ctx, err)
	}

	if err := c.schemeService.UpdateSuccessLikelihood(scheme); err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusOK, scheme)
}
