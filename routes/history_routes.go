package routes

import (
	"owsb-app/config"
	"owsb-app/controllers"
	"owsb-app/database"
	"owsb-app/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupHistoryRoutes(app *fiber.App, store *database.Store) {
	historyController := controllers.NewHistoryController(store)

	api := app.Group(config.MAIN_ROUTES+"/history", middleware.AuthMiddleware)
	api.Get("/", historyController.GetHistory)
}
