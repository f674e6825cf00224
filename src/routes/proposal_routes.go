package routes

import (
	"github.com/suryansh14it/eco-sphere-sub000/src/controllers"
	"github.com/suryansh14it/eco-sphere-sub000/src/middleware"

	"github.com/gofiber/fiber/v2"
)

// ProposalRoutes wires the proposal submission and review API.
func ProposalRoutes(app *fiber.App) {
	proposalRoutes := app.Group("/proposals")
	proposalRoutes.Use(middleware.AuthJWT)
	proposalRoutes.Post("/", controllers.CreateProposal)
	proposalRoutes.Get("/", controllers.GetProposals)
	proposalRoutes.Put("/:id/status", controllers.UpdateProposalStatus)
}
