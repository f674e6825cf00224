package routes

import (
	"github.com/suryansh14it/eco-sphere-sub000/src/controllers"

	"github.com/gofiber/fiber/v2"
)

// AuthRoutes wires the login endpoint.
func AuthRoutes(app *fiber.App) {
	authRoutes := app.Group("/auth")
	authRoutes.Post("/login", controllers.LoginUser)
}
