package controllers

import (
	"log"
	"strconv"
	"strings"

	"github.com/suryansh14it/eco-sphere-sub000/src/models"
	"github.com/suryansh14it/eco-sphere-sub000/src/services/attendance"
	"github.com/suryansh14it/eco-sphere-sub000/src/utils"

	"github.com/gofiber/fiber/v2"
)

// SubmitAttendance godoc
// @Summary Record a check-in or check-out
// @Description Opens or closes today's attendance record for a (project, contributor) pair
// @Tags attendance
// @Accept json
// @Produce json
// @Param attendance body models.AttendanceRequest true "Attendance event"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /attendance [post]
func SubmitAttendance(c *fiber.Ctx) error {
	var req models.AttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request format",
		})
	}

	if fields := utils.ValidateStruct(req); len(fields) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Missing required fields: " + strings.Join(fields, ", "),
		})
	}

	switch req.Type {
	case "checkin":
		result, err := attendance.RecordCheckIn(c.Context(), req)
		if err != nil {
			return attendanceError(c, err)
		}
		return c.JSON(fiber.Map{
			"success":      true,
			"message":      "Checked in successfully",
			"attendanceId": result.AttendanceID,
			"checkInTime":  result.CheckInTime,
		})

	case "checkout":
		result, err := attendance.RecordCheckOut(c.Context(), req)
		if err != nil {
			return attendanceError(c, err)
		}
		return c.JSON(fiber.Map{
			"success":      true,
			"message":      "Checked out successfully",
			"attendanceId": result.AttendanceID,
			"checkOutTime": result.CheckOutTime,
			"workHours":    result.WorkHours,
			"xpEarned":     result.XPEarned,
		})

	default:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "type must be checkin or checkout",
		})
	}
}

func attendanceError(c *fiber.Ctx, err error) error {
	if attendance.IsStateConflict(err) || err == attendance.ErrInvalidID {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}

	log.Println("Attendance error:", err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"success": false,
		"message": "An error occurred while recording attendance",
	})
}

// GetAttendanceHistory godoc
// @Summary Get attendance history
// @Description Returns a contributor's attendance records, newest first
// @Tags attendance
// @Accept json
// @Produce json
// @Param userId query string true "Contributor ID"
// @Param projectId query string false "Project ID filter"
// @Param limit query int false "Maximum records (default 10)"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /attendance [get]
func GetAttendanceHistory(c *fiber.Ctx) error {
	userId := c.Query("userId")
	if userId == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "userId is required",
		})
	}

	limit := 10
	if v := c.Query("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			limit = parsed
		}
	}

	records, err := attendance.ListHistory(c.Context(), userId, c.Query("projectId"), limit)
	if err != nil {
		if err == attendance.ErrInvalidID {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"message": err.Error(),
			})
		}
		log.Println("Attendance history error:", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "An error occurred while fetching attendance",
		})
	}

	return c.JSON(fiber.Map{
		"success":    true,
		"attendance": records,
	})
}
