package user

import (
	"testing"
	"time"

	"github.com/suryansh14it/eco-sphere-sub000/src/models"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestActiveProjectEntry(t *testing.T) {
	projectID := primitive.NewObjectID()
	checkIn := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	entry := models.ActiveProject{
		ProjectID:    projectID,
		Title:        "River Cleanup Drive",
		Organization: "GreenFuture NGO",
		JoinedAt:     checkIn,
		LastActivity: checkIn,
		CheckedIn:    true,
		LastCheckIn:  &checkIn,
	}

	assert.Equal(t, projectID, entry.ProjectID)
	assert.True(t, entry.CheckedIn)
	assert.Nil(t, entry.LastCheckOut)
	assert.Equal(t, 0.0, entry.TotalHours)
}

func TestUserRoles(t *testing.T) {
	roles := []string{
		models.RoleGovernment,
		models.RoleNGO,
		models.RoleResearcher,
		models.RoleUser,
	}

	assert.Contains(t, roles, "government")
	assert.Contains(t, roles, "ngo")
	assert.Contains(t, roles, "researcher")
	assert.Contains(t, roles, "user")
	assert.Len(t, roles, 4)
}

func TestNewUserDefaults(t *testing.T) {
	user := models.User{
		Name:  "Asha Verma",
		Email: "asha@example.org",
		Role:  models.RoleUser,
	}

	assert.Equal(t, 0, user.XP)
	assert.Equal(t, 0.0, user.Stats.TotalHoursContributed)
	assert.Equal(t, 0, user.Stats.TotalProjectsCompleted)
	assert.Empty(t, user.ProjectParticipation.ActiveProjects)
}
