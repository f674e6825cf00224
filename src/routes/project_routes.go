package routes

import (
	"github.com/suryansh14it/eco-sphere-sub000/src/controllers"
	"github.com/suryansh14it/eco-sphere-sub000/src/middleware"

	"github.com/gofiber/fiber/v2"
)

// ProjectRoutes wires the project catalog API.
func ProjectRoutes(app *fiber.App) {
	projectRoutes := app.Group("/projects")
	projectRoutes.Get("/", controllers.GetProjects)
	projectRoutes.Get("/:id", controllers.GetProjectByID)
	projectRoutes.Post("/", middleware.AuthJWT, controllers.CreateProject)
}
