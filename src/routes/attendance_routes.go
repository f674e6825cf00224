package routes

import (
	"github.com/suryansh14it/eco-sphere-sub000/src/controllers"

	"github.com/gofiber/fiber/v2"
)

// AttendanceRoutes wires the attendance API. The routes trust the
// caller-supplied userId; authentication runs at the gateway.
func AttendanceRoutes(app *fiber.App) {
	attendanceRoutes := app.Group("/attendance")
	attendanceRoutes.Post("/", controllers.SubmitAttendance)    // check-in / check-out
	attendanceRoutes.Get("/", controllers.GetAttendanceHistory) // newest-first history
}
