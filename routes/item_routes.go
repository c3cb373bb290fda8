package routes

import (
	"owsb-app/config"
	"owsb-app/controllers"
	"owsb-app/database"
	"owsb-app/middleware"
	"owsb-app/models"

	"github.com/gofiber/fiber/v2"
)

func SetupItemRoutes(app *fiber.App, store *database.Store) {
	itemController := controllers.NewItemController(store)

	api := app.Group(config.MAIN_ROUTES+"/items", middleware.AuthMiddleware)
	api.Get("/", itemController.GetAllItems)
	api.Get("/low-stock", itemController.GetLowStockItems)
	api.Get("/:code", itemController.GetItemByCode)

	write := middleware.RequireRole(models.RoleSalesManager)
	api.Post("/", write, itemController.CreateItem)
	api.Post("/upload", write, itemController.CreateItemsFromExcel)
	api.Put("/:code", write, itemController.UpdateItem)
	api.Delete("/:code", write, itemController.DeleteItem)
}
