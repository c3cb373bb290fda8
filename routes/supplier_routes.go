package routes

import (
	"owsb-app/config"
	"owsb-app/controllers"
	"owsb-app/database"
	"owsb-app/middleware"
	"owsb-app/models"

	"github.com/gofiber/fiber/v2"
)

func SetupSupplierRoutes(app *fiber.App, store *database.Store) {
	supplierController := controllers.NewSupplierController(store)

	api := app.Group(config.MAIN_ROUTES+"/suppliers", middleware.AuthMiddleware)
	api.Get("/", supplierController.GetAllSuppliers)
	api.Get("/:id", supplierController.GetSupplierByID)

	write := middleware.RequireRole(models.RoleSalesManager)
	api.Post("/", write, supplierController.CreateSupplier)
	api.Put("/:id", write, supplierController.UpdateSupplier)
	api.Delete("/:id", write, supplierController.DeleteSupplier)
}
