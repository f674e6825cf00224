package routes

import (
	"github.com/suryansh14it/eco-sphere-sub000/src/controllers"
	"github.com/suryansh14it/eco-sphere-sub000/src/middleware"

	"github.com/gofiber/fiber/v2"
)

// StatsRoutes wires the dashboard summary API.
func StatsRoutes(app *fiber.App) {
	statsRoutes := app.Group("/stats")
	statsRoutes.Use(middleware.AuthJWT)
	statsRoutes.Get("/summary", controllers.GetStatsSummary)
}
