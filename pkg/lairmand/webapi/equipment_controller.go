package webapi

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/lairworks/lairman/pkg/lairsvc"
	"github.com/labstack/echo/v4"
)

type EquipmentController struct {
	equipmentService *lairsvc.EquipmentService
}

func NewEquipmentController(equipmentService *lairsvc.EquipmentService) *EquipmentController {
	return &EquipmentController{equipmentService: equipmentService}
}

func (c *EquipmentController) GetAllEquipment(ctx echo.Context) error {
	equipment, err := c.equipmentService.GetAllEquipment()
	if err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusOK, equipment)
}

func (c *EquipmentController) GetEquipment(ctx echo.Context) error {
	equipmentID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid equipment id")
	}

	equipment, err := c.equipmentService.GetEquipmentByID(equipmentID)
	if err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusOK, equipment)
}

func (c *EquipmentController) CreateEquipment(ctx echo.Context) error {
	var req struct {
		Name               string  `json:"name"`
		Category           string  `json:"category"`
		PurchasePrice      float64 `json:"purchase_price"`
		MaintenanceCost    float64 `json:"maintenance_cost"`
		RequiresSpecialist bool    `json:"requires_specialist"`
		StoredAtBaseID     *int    `json:"stored_at_base_id"`
	}
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	equipment, err := c.equipmentService.CreateEquipment(req.Name, req.Category,
		req.PurchasePrice, req.MaintenanceCost, req.RequiresSpecialist, req.StoredAtBaseID)
	if err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, equipment)
}

func (c *EquipmentController) UpdateEquipment(ctx echo.Context) error {
	equipmentID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid equipment id")
	}

	equipment, err := c.equipmentService.GetEquipmentByID(equipmentID)
	if err != nil {
		return errorJSON(ctx, err)
	}

	if err := ctx.Bind(equipment); err != nil {
		return err
	}
	equipment.ID = equipmentID

	if err := c.equipmentService.UpdateEquipment(equipment); err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusOK, equipment)
}

func (c *EquipmentController) DeleteEquipment(ctx echo.Context) error {
	equipmentID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid equipment id")
	}

	if err := c.equipmentService.DeleteEquipment(equipmentID); err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// PerformMaintenance restores the equipment and reports the maintenance
// cost charged.
func (c *EquipmentController) PerformMaintenance(ctx echo.Context) error {
	equipmentID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid equipment id")
	}

	equipment, err := c.equipmentService.GetEquipmentByID(equipmentID)
	if err != nil {
		return errorJSON(ctx, err)
	}

	cost, err := c.equipmentService.PerformMaintenance(equipment)
	if err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusOK, map[string]interface{}{
		"message":   fmt.Sprintf("Maintenance completed. Cost: $%.2f", cost),
		"cost":      cost,
		"equipment": equipment,
	})
}

// AssignToScheme points the equipment at an existing scheme.
func (c *EquipmentController) AssignToScheme(ctx echo.Context) error {
	equipmentID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid equipment id")
	}

	var req struct {
		SchemeID int `json:"scheme_id"`
	}
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	equipment, err := c.equipmentService.GetEquipmentByID(equipmentID)
	if err != nil {
		return errorJSON(ctx, err)
	}

	scheme, err := c.equipmentService.AssignToScheme(equipment, req.SchemeID)
	if err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusOK, map[string]interface{}{
		"message":   fmt.Sprintf("Equipment assigned to scheme '%s'", scheme.Name),
		"equipment": equipment,
	})
}
