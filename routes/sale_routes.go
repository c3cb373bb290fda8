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

func SetupSaleRoutes(app *fiber.App, store *database.Store, service *services.ProcurementService) {
	controller := controllers.NewSaleController(service, repositories.NewSaleRepository(store))

	api := app.Group(config.MAIN_ROUTES+"/sales", middleware.AuthMiddleware)
	api.Get("/", controller.GetAllSales)
	api.Get("/:id", controller.GetSaleByID)

	sales := middleware.RequireRole(models.RoleSalesManager)
	api.Post("/", sales, controller.CreateSale)
	api.Put("/:id", sales, controller.UpdateSale)
	api.Delete("/:id", sales, controller.DeleteSale)
}
