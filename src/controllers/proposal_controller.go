package controllers

import (
	"strconv"

	"github.com/suryansh14it/eco-sphere-sub000/src/models"
	"github.com/suryansh14it/eco-sphere-sub000/src/services/proposals"
	"github.com/suryansh14it/eco-sphere-sub000/src/utils"

	"github.com/gofiber/fiber/v2"
)

// CreateProposal godoc
// @Summary Submit proposal
// @Description Submit a researcher proposal for government review
// @Tags proposals
// @Accept json
// @Produce json
// @Param proposal body models.CreateProposalRequest true "Proposal to submit"
// @Success 201 {object} models.Proposal
// @Failure 400 {object} models.ErrorResponse
// @Router /proposals [post]
func CreateProposal(c *fiber.Ctx) error {
	var req models.CreateProposalRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input format")
	}
	if fields := utils.ValidateStruct(req); len(fields) > 0 {
		return utils.HandleError(c, fiber.StatusBadRequest, "Missing required fields")
	}

	proposal, err := proposals.CreateProposal(req)
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to create proposal")
	}

	return c.Status(fiber.StatusCreated).JSON(proposal)
}

// GetProposals godoc
// @Summary List proposals
// @Description List a user's proposals, newest first
// @Tags proposals
// @Produce json
// @Param userId query string true "Submitter ID"
// @Param limit query int false "Maximum records (default 10)"
// @Success 200 {array} models.Proposal
// @Failure 400 {object} models.ErrorResponse
// @Router /proposals [get]
func GetProposals(c *fiber.Ctx) error {
	userId := c.Query("userId")
	if userId == "" {
		return utils.HandleError(c, fiber.StatusBadRequest, "userId is required")
	}

	limit := 10
	if v := c.Query("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			limit = parsed
		}
	}

	result, err := proposals.GetProposalsByUser(userId, limit)
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to fetch proposals")
	}

	return c.JSON(result)
}

// UpdateProposalStatus godoc
// @Summary Review proposal
// @Description Approve or reject a pending proposal
// @Tags proposals
// @Accept json
// @Produce json
// @Param id path string true "Proposal ID"
// @Param review body models.UpdateProposalStatusRequest true "Review decision"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} models.ErrorResponse
// @Router /proposals/{id}/status [put]
func UpdateProposalStatus(c *fiber.Ctx) error {
	var req models.UpdateProposalStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input format")
	}
	if fields := utils.ValidateStruct(req); len(fields) > 0 {
		return utils.HandleError(c, fiber.StatusBadRequest, "Missing required fields")
	}

	if err := proposals.UpdateProposalStatus(c.Params("id"), req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(fiber.Map{"message": "Proposal status updated"})
}
