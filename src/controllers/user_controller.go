package controllers

import (
	"github.com/suryansh14it/eco-sphere-sub000/src/models"
	"github.com/suryansh14it/eco-sphere-sub000/src/services/users"
	"github.com/suryansh14it/eco-sphere-sub000/src/utils"

	"github.com/gofiber/fiber/v2"
)

// CreateUser godoc
// @Summary Create user
// @Description Register a new platform account
// @Tags users
// @Accept json
// @Produce json
// @Param user body models.User true "User to create"
// @Success 201 {object} models.User
// @Failure 400 {object} models.ErrorResponse
// @Router /users [post]
func CreateUser(c *fiber.Ctx) error {
	var user models.User
	if err := c.BodyParser(&user); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input format")
	}

	if user.Email == "" || user.Password == "" || user.Name == "" {
		return utils.HandleError(c, fiber.StatusBadRequest, "name, email and password are required")
	}
	if user.Role == "" {
		user.Role = models.RoleUser
	}

	if err := users.CreateUser(&user); err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to create user")
	}

	return c.Status(fiber.StatusCreated).JSON(user)
}

// GetUserByID godoc
// @Summary Get user
// @Description Fetch a user profile, including project participation
// @Tags users
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} models.User
// @Failure 404 {object} models.ErrorResponse
// @Router /users/{id} [get]
func GetUserByID(c *fiber.Ctx) error {
	user, err := users.GetUserByID(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusNotFound, "User not found")
	}

	return c.JSON(user)
}
