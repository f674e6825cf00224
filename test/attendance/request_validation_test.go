package attendance

import (
	"testing"

	"github.com/suryansh14it/eco-sphere-sub000/src/models"
	"github.com/suryansh14it/eco-sphere-sub000/src/utils"

	"github.com/stretchr/testify/assert"
)

func validRequest() models.AttendanceRequest {
	return models.AttendanceRequest{
		ProjectID: "64a7f0c2e13e4a53b8d90f11",
		UserID:    "64a7f0c2e13e4a53b8d90f12",
		UserName:  "Asha Verma",
		Type:      "checkin",
		Timestamp: "2025-03-10T09:00:00Z",
		Location:  &models.GPSLocation{Latitude: 12.97, Longitude: 77.59},
		PhotoData: "data:image/jpeg;base64,/9j/4AAQ",
	}
}

func TestAttendanceRequestValidation(t *testing.T) {
	t.Run("TestValidCheckinRequest", func(t *testing.T) {
		assert.Empty(t, utils.ValidateStruct(validRequest()))
	})

	t.Run("TestValidCheckoutRequest", func(t *testing.T) {
		req := validRequest()
		req.Type = "checkout"
		assert.Empty(t, utils.ValidateStruct(req))
	})

	t.Run("TestMissingProjectID", func(t *testing.T) {
		req := validRequest()
		req.ProjectID = ""
		// field names are reported by json tag
		assert.Contains(t, utils.ValidateStruct(req), "projectId")
	})

	t.Run("TestMissingUserID", func(t *testing.T) {
		req := validRequest()
		req.UserID = ""
		assert.Contains(t, utils.ValidateStruct(req), "userId")
	})

	t.Run("TestMissingLocation", func(t *testing.T) {
		req := validRequest()
		req.Location = nil
		assert.NotEmpty(t, utils.ValidateStruct(req))
	})

	t.Run("TestMissingPhoto", func(t *testing.T) {
		req := validRequest()
		req.PhotoData = ""
		assert.NotEmpty(t, utils.ValidateStruct(req))
	})

	t.Run("TestUnknownTypePassesStructValidation", func(t *testing.T) {
		// the type literal is the handler's concern, not the validator's
		req := validRequest()
		req.Type = "pause"
		assert.Empty(t, utils.ValidateStruct(req))
	})

	t.Run("TestMissingType", func(t *testing.T) {
		req := validRequest()
		req.Type = ""
		assert.Contains(t, utils.ValidateStruct(req), "type")
	})

	t.Run("TestOptionalFieldsMayBeEmpty", func(t *testing.T) {
		req := validRequest()
		req.UserName = ""
		req.Timestamp = ""
		req.Notes = ""
		assert.Empty(t, utils.ValidateStruct(req))
	})
}
