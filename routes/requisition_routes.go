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

func SetupRequisitionRoutes(app *fiber.App, store *database.Store, service *services.ProcurementService) {
	controller := controllers.NewRequisitionController(service, repositories.NewRequisitionRepository(store))

	api := app.Group(config.MAIN_ROUTES+"/requisitions", middleware.AuthMiddleware)
	api.Get("/", controller.GetAllRequisitions)
	api.Get("/:id", controller.GetRequisitionByID)

	sales := middleware.RequireRole(models.RoleSalesManager)
	api.Post("/", sales, controller.CreateRequisition)
	api.Put("/:id", sales, controller.UpdateRequisition)
	api.Delete("/:id", sales, controller.DeleteRequisition)

	api.Post("/:id/decision", middleware.RequireRole(models.RolePurchaseManager), controller.DecideRequisition)
}
