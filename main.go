package main

import (
	"fmt"
	"log"
	"path/filepath"

	"owsb-app/config"
	"owsb-app/controllers/idgen"
	"owsb-app/database"
	"owsb-app/routes"
	"owsb-app/services"

	"github.com/gofiber/fiber/v2"
)

func main() {

	config.LoadConfig()

	app := fiber.New()

	store := database.NewStore(filepath.Join(config.DataDir, "data"))

	idgen.Init()
	database.RunSeeders(store)

	notifier := services.NewNotifier()
	procurement := services.NewProcurementService(store, notifier)
	reports := services.NewReportService(store, config.FinancialReportDir, config.StockReportDir)

	// Setup CORS middleware
	config.SetupCORS(app)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// Setup routes
	routes.SetupAuthRoutes(app, store)
	routes.SetupUserRoutes(app, store)
	routes.SetupItemRoutes(app, store)
	routes.SetupSupplierRoutes(app, store)
	routes.SetupRequisitionRoutes(app, store, procurement)
	routes.SetupPurchaseOrderRoutes(app, store, procurement)
	routes.SetupPaymentRoutes(app, store, procurement)
	routes.SetupSaleRoutes(app, store, procurement)
	routes.SetupReportRoutes(app, reports)
	routes.SetupDashboardRoutes(app, reports)
	routes.SetupHistoryRoutes(app, store)

	port := config.APP_PORT
	fmt.Println("Server listening on port " + port)

	if err := app.Listen(":" + port); err != nil {
		log.Fatal(err)
	}
}
