package controllers

import (
	"github.com/suryansh14it/eco-sphere-sub000/src/models"
	"github.com/suryansh14it/eco-sphere-sub000/src/services/projects"
	"github.com/suryansh14it/eco-sphere-sub000/src/utils"

	"github.com/gofiber/fiber/v2"
)

// GetProjects godoc
// @Summary List projects
// @Description List catalog projects with paging and search
// @Tags projects
// @Accept json
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Param search query string false "Search keyword"
// @Success 200 {object} models.PaginatedResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /projects [get]
func GetProjects(c *fiber.Ctx) error {
	params := models.DefaultPagination()
	if err := c.QueryParser(&params); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid query parameters")
	}
	if params.SortBy == "" || params.SortBy == "_id" {
		params.SortBy = "createdAt"
	}

	result, total, err := projects.GetProjects(params)
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to fetch projects")
	}

	return c.JSON(models.NewPaginatedResponse(result, total, params))
}

// GetProjectByID godoc
// @Summary Get project
// @Tags projects
// @Produce json
// @Param id path string true "Project ID"
// @Success 200 {object} models.Project
// @Failure 404 {object} models.ErrorResponse
// @Router /projects/{id} [get]
func GetProjectByID(c *fiber.Ctx) error {
	project, err := projects.GetProjectByID(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusNotFound, "Project not found")
	}

	return c.JSON(project)
}

// CreateProject godoc
// @Summary Create project
// @Tags projects
// @Accept json
// @Produce json
// @Param project body models.CreateProjectRequest true "Project to create"
// @Success 201 {object} models.Project
// @Failure 400 {object} models.ErrorResponse
// @Router /projects [post]
func CreateProject(c *fiber.Ctx) error {
	var req models.CreateProjectRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input format")
	}
	if fields := utils.ValidateStruct(req); len(fields) > 0 {
		return utils.HandleError(c, fiber.StatusBadRequest, "Missing required fields")
	}

	project := models.Project{
		Title:        req.Title,
		Description:  req.Description,
		Organization: req.Organization,
		Location:     req.Location,
		Category:     req.Category,
		FundingGoal:  req.FundingGoal,
	}
	if err := projects.CreateProject(&project); err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to create project")
	}

	return c.Status(fiber.StatusCreated).JSON(project)
}
