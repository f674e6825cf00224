package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Project is an environmental project listed on the dashboards.
type Project struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title        string             `bson:"title" json:"title"`
	Description  string             `bson:"description,omitempty" json:"description,omitempty"`
	Organization string             `bson:"organization" json:"organization"`
	Location     string             `bson:"location,omitempty" json:"location,omitempty"`
	Category     string             `bson:"category,omitempty" json:"category,omitempty"`
	FundingGoal  float64            `bson:"fundingGoal,omitempty" json:"fundingGoal,omitempty"`
	Status       string             `bson:"status" json:"status"`
	CreatedBy    primitive.ObjectID `bson:"createdBy,omitempty" json:"createdBy,omitempty"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
}

const (
	ProjectStatusActive    = "active"
	ProjectStatusCompleted = "completed"
)

// CreateProjectRequest is the POST /projects body.
type CreateProjectRequest struct {
	Title        string  `json:"title" validate:"required"`
	Description  string  `json:"description"`
	Organization string  `json:"organization" validate:"required"`
	Location     string  `json:"location"`
	Category     string  `json:"category"`
	FundingGoal  float64 `json:"fundingGoal"`
}
