package cmd

import (
	"github.com/labstack/echo/v4"
	"github.com/lairworks/lairman/pkg/lairmand/webapi"
	"github.com/lairworks/lairman/pkg/lairsvc"
)

type RouteOpts struct {
	minionService     *lairsvc.MinionService
	schemeService     *lairsvc.SchemeService
	equipmentService  *lairsvc.EquipmentService
	baseService       *lairsvc.BaseService
	statisticsService *lairsvc.StatisticsService
}

func setupRoutes(e *echo.Echo, opts RouteOpts) {
	g := e.Group("/api")

	minionController := webapi.NewMinionController(opts.minionService)
	g.GET("/minions", minionController.GetAllMinions)
	g.GET("/minions/:id", minionController.GetMinion)
	g.POST("/minions", minionController.CreateMinion)
	g.PUT("/minions/:id", minionController.UpdateMinion)
	g.DELETE("/minions/:id", minionController.DeleteMinion)
	g.POST("/minions/:id/pay", minionController.PayMinion)

	schemeController := webapi.NewSchemeController(opts.schemeService)
	g.GET("/schemes", schemeController.GetAllSchemes)
	g.GET("/schemes/active", schemeController.GetActiveSchemes)
	g.GET("/schemes/by-slug/:slug", schemeController.GetSchemeBySlug)
	g.GET("/schemes/:id", schemeController.GetScheme)
	g.POST("/schemes", schemeController.CreateScheme)
	g.PUT("/schemes/:id", schemeController.UpdateScheme)
	g.DELETE("/schemes/:id", schemeController.DeleteScheme)
	g.POST("/schemes/:id/refresh-success", schemeController.RefreshSuccessLikelihood)
	g.GET("/schemes/:id/resources", schemeController.GetSchemeResources)

	equipmentController := webapi.NewEquipmentController(opts.equipmentService)
	g.GET("/equipment", equipmentController.GetAllEquipment)
	g.GET("/equipment/:id", equipmentController.GetEquipment)
	g.POST("/equipment", equipmentController.CreateEquipment)
	g.PUT("/equipment/:id", equipmentController.UpdateEquipment)
	g.DELETE("/equipment/:id", equipmentController.DeleteEquipment)
	g.POST("/equipment/:id/maintenance", equipmentController.PerformMaintenance)
	g.POST("/equipment/:id/assign", equipmentController.AssignToScheme)

	baseController := webapi.NewBaseController(opts.baseService)
	g.GET("/bases", baseController.GetAllBases)
	g.GET("/bases/:id", baseController.GetBase)
	g.POST("/bases", baseController.CreateBase)
	g.PUT("/bases/:id", baseController.UpdateBase)
	g.DELETE("/bases/:id", baseController.DeleteBase)
	g.GET("/bases/:id/occupancy", baseController.GetOccupancy)

	dashboardController := webapi.NewDashboardController(opts.statisticsService)
	g.GET("/dashboard", dashboardController.GetDashboardStatistics)
	g.GET("/dashboard/alerts", dashboardController.GetAlerts)
}
