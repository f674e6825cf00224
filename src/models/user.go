package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ActiveProject is one element of projectParticipation.activeProjects,
// denormalized onto the user document. Keyed by ProjectID.
type ActiveProject struct {
	ProjectID    primitive.ObjectID `bson:"projectId" json:"projectId"`
	Title        string             `bson:"title" json:"title"`
	Organization string             `bson:"organization" json:"organization"`
	JoinedAt     time.Time          `bson:"joinedAt" json:"joinedAt"`
	LastActivity time.Time          `bson:"lastActivity" json:"lastActivity"`
	CheckedIn    bool               `bson:"checkedIn" json:"checkedIn"`
	LastCheckIn  *time.Time         `bson:"lastCheckIn,omitempty" json:"lastCheckIn,omitempty"`
	LastCheckOut *time.Time         `bson:"lastCheckOut,omitempty" json:"lastCheckOut,omitempty"`
	TotalHours   float64            `bson:"totalHours" json:"totalHours"`
}

// ProjectParticipation groups the denormalized per-project activity cache.
type ProjectParticipation struct {
	ActiveProjects []ActiveProject `bson:"activeProjects" json:"activeProjects"`
}

// UserStats holds lifetime contribution aggregates.
type UserStats struct {
	TotalHoursContributed  float64 `bson:"totalHoursContributed" json:"totalHoursContributed"`
	TotalProjectsCompleted int     `bson:"totalProjectsCompleted" json:"totalProjectsCompleted"`
}

// User is a platform account. Role is one of government, ngo, researcher, user.
type User struct {
	ID                   primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Name                 string               `bson:"name" json:"name"`
	Email                string               `bson:"email" json:"email"`
	Password             string               `bson:"password,omitempty" json:"-"`
	Role                 string               `bson:"role" json:"role"`
	XP                   int                  `bson:"xp" json:"xp"`
	Stats                UserStats            `bson:"stats" json:"stats"`
	ProjectParticipation ProjectParticipation `bson:"projectParticipation" json:"projectParticipation"`
	CreatedAt            time.Time            `bson:"createdAt" json:"createdAt"`
}

const (
	RoleGovernment = "government"
	RoleNGO        = "ngo"
	RoleResearcher = "researcher"
	RoleUser       = "user"
)
