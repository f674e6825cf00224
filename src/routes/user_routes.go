package routes

import (
	"github.com/suryansh14it/eco-sphere-sub000/src/controllers"

	"github.com/gofiber/fiber/v2"
)

// UserRoutes wires the user profile API.
func UserRoutes(app *fiber.App) {
	userRoutes := app.Group("/users")
	userRoutes.Post("/", controllers.CreateUser)    // register
	userRoutes.Get("/:id", controllers.GetUserByID) // profile with participation
}
