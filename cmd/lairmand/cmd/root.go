/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"os"
	"time"

	"github.com/apex/log"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/lairworks/lairman/pkg/config"
	"github.com/lairworks/lairman/pkg/lairdb"
	"github.com/lairworks/lairman/pkg/lairdb/stor"
	"github.com/lairworks/lairman/pkg/lairlog"
	"github.com/lairworks/lairman/pkg/lairsvc"
	"github.com/lairworks/lairman/pkg/settings"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "lairmand",
	Short: "Run the lair manager API server",
	Long: `The lair manager daemon tracks minions, evil schemes, secret bases and
equipment, applying the lair business rules (loyalty decay, mood
classification, scheme success scoring, equipment degradation) and serving
them over an HTTP API.`,
	Run: func(cmd *cobra.Command, args []string) {
		c := config.NewDotenvConfig(".env")
		if err := c.Load(); err != nil {
			log.Fatalf("Failed loading configuration: %s", err)
		}

		if err := lairlog.Setup(os.Stdout, c.GetKeyWithDefault(config.KeyLogLevel, "info")); err != nil {
			log.Fatalf("Failed setting up logging: %s", err)
		}

		settingsPath := c.GetKeyWithDefault(config.KeySettingsPath, "lairsettings.json")
		lairSettings, err := settings.Load(settingsPath)
		if err != nil {
			// Run with the hardcoded defaults rather than failing startup.
			log.Warnf("Failed to load settings from %s, using defaults: %s", settingsPath, err)
			lairSettings = settings.Default()
		}

		dbPath := c.GetKeyWithDefault(config.KeyDBPath, lairSettings.Database.Path)
		db := lairdb.MustConnectToDB(dbPath)

		if err := lairdb.Migrate(db); err != nil {
			log.Fatalf("Unable to migrate db: %s", err)
		}

		if err := lairdb.SeedIfEmpty(db); err != nil {
			log.Fatalf("Unable to seed db: %s", err)
		}

		stors := stor.NewGormStors(db)

		minionService := lairsvc.NewMinionService(lairSettings, stors.MinionStor)
		schemeService := lairsvc.NewSchemeService(lairSettings, stors.SchemeStor, stors.MinionStor, stors.EquipmentStor)
		equipmentService := lairsvc.NewEquipmentService(lairSettings, stors.EquipmentStor, stors.SchemeStor)
		baseService := lairsvc.NewBaseService(lairSettings, stors.BaseStor, stors.MinionStor)
		statisticsService := lairsvc.NewStatisticsService(lairSettings, minionService, schemeService, baseService, equipmentService)

		upkeepMinutes := c.GetIntKeyWithDefault(config.KeyUpkeepMinutes, 10)
		upkeepMonitor := lairsvc.NewUpkeepMonitor(
			lairsvc.WithSchemeService(schemeService),
			lairsvc.WithEquipmentService(equipmentService),
			lairsvc.WithInterval(time.Duration(upkeepMinutes)*time.Minute),
		)
		go upkeepMonitor.Run(context.Background())

		e := echo.New()
		e.HideBanner = true
		e.HidePort = true
		e.Use(middleware.Recover())

		setupRoutes(e, RouteOpts{
			minionService:     minionService,
			schemeService:     schemeService,
			equipmentService:  equipmentService,
			baseService:       baseService,
			statisticsService: statisticsService,
		})

		port := c.GetKeyWithDefault(config.KeyPort, "1441")
		log.Infof("Lair manager listening on :%s (db %s)", port, dbPath)
		if err := e.Start(":" + port); err != nil {
			log.Fatalf("Unable to start server: %v", err)
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
