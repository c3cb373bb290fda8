package routes

import (
	"owsb-app/config"
	"owsb-app/controllers"
	"owsb-app/database"
	"owsb-app/middleware"
	"owsb-app/models"
	"owsb-app/repositories"
	"owsb-app/services"

	"github.com/gofiber/fiber/v2"
)

func SetupPaymentRoutes(app *fiber.App, store *database.Store, service *services.ProcurementService) {
	controller := controllers.NewPaymentController(service, repositories.NewPaymentRepository(store))

	api := app.Group(config.MAIN_ROUTES+"/payments", middleware.AuthMiddleware)
	api.Get("/", controller.GetAllPayments)
	api.Get("/:id", controller.GetPaymentByID)
	api.Post("/:id/pay", middleware.RequireRole(models.RoleFinanceManager), controller.MarkPaid)
}
