package routes

import (
	"owsb-app/config"
	"owsb-app/controllers"
	"owsb-app/middleware"
	"owsb-app/models"
	"owsb-app/services"

	"github.com/gofiber/fiber/v2"
)

func SetupReportRoutes(app *fiber.App, reports *services.ReportService) {
	controller := controllers.NewReportController(reports)

	api := app.Group(config.MAIN_ROUTES+"/reports", middleware.AuthMiddleware)
	api.Get("/summary", controller.GetSummary)
	api.Post("/financial/export", middleware.RequireRole(models.RoleFinanceManager), controller.ExportFinancialReport)
	api.Post("/stock/export", middleware.RequireRole(models.RoleInventoryManager), controller.ExportStockReport)
	api.Get("/stock/excel", middleware.RequireRole(models.RoleInventoryManager), controller.DownloadStockExcel)
}
