package routes

import (
	"owsb-app/config"
	"owsb-app/controllers"
	"owsb-app/database"
	"owsb-app/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App, store *database.Store) {
	authController := controllers.NewAuthController(store)

	api := app.Group(config.MAIN_ROUTES + "/auth")
	api.Post("/login", authController.Login)
	api.Get("/me", middleware.AuthMiddleware, authController.Me)
}
