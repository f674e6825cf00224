package routes

import (
	"github.com/gofiber/fiber/v2"
)

func InitRoutes(app *fiber.App) {
	AuthRoutes(app)
	UserRoutes(app)
	AttendanceRoutes(app)
	ProjectRoutes(app)
	ProposalRoutes(app)
	StatsRoutes(app)

	// Health check
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("API is running...")
	})
}
