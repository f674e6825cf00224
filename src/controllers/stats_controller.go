package controllers

import (
	"github.com/suryansh14it/eco-sphere-sub000/src/services/stats"
	"github.com/suryansh14it/eco-sphere-sub000/src/utils"

	"github.com/gofiber/fiber/v2"
)

// GetStatsSummary godoc
// @Summary Dashboard summary
// @Description Platform totals for the role dashboards
// @Tags stats
// @Produce json
// @Success 200 {object} stats.Summary
// @Failure 500 {object} models.ErrorResponse
// @Router /stats/summary [get]
func GetStatsSummary(c *fiber.Ctx) error {
	summary, err := stats.GetSummary(c.Context())
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to compute summary")
	}

	return c.JSON(summary)
}
