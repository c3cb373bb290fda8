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

func SetupPurchaseOrderRoutes(app *fiber.App, store *database.Store, service *services.ProcurementService) {
	controller := controllers.NewPurchaseOrderController(service, repositories.NewPurchaseOrderRepository(store))

	api := app.Group(config.MAIN_ROUTES+"/purchase-orders", middleware.AuthMiddleware)
	api.Get("/", controller.GetAllPurchaseOrders)
	api.Get("/:id", controller.GetPurchaseOrderByID)

	api.Post("/:id/decision", middleware.RequireRole(models.RoleFinanceManager), controller.DecidePurchaseOrder)
	api.Post("/:id/deliver", middleware.RequireRole(models.RoleInventoryManager), controller.MarkDelivered)
	api.Post("/:id/verify", middleware.RequireRole(models.RoleFinanceManager), controller.VerifyDelivery)
}
