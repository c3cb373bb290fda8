package routes

import (
	"owsb-app/config"
	"owsb-app/controllers"
	"owsb-app/middleware"
	"owsb-app/services"

	"github.com/gofiber/fiber/v2"
)

func SetupDashboardRoutes(app *fiber.App, reports *services.ReportService) {
	dashboardController := controllers.NewDashboardController(reports)

	api := app.Group(config.MAIN_ROUTES+"/dashboard", middleware.AuthMiddleware)
	api.Get("/", dashboardController.GetDashboard)
}
