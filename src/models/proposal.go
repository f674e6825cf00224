package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Proposal is a researcher-submitted project proposal reviewed by a
// government account.
type Proposal struct {
	ID          primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	Title       string              `bson:"title" json:"title"`
	Summary     string              `bson:"summary" json:"summary"`
	Category    string              `bson:"category,omitempty" json:"category,omitempty"`
	Funding     float64             `bson:"funding,omitempty" json:"funding,omitempty"`
	SubmittedBy primitive.ObjectID  `bson:"submittedBy" json:"submittedBy"`
	Status      string              `bson:"status" json:"status"`
	ReviewedBy  *primitive.ObjectID `bson:"reviewedBy,omitempty" json:"reviewedBy,omitempty"`
	ReviewNote  string              `bson:"reviewNote,omitempty" json:"reviewNote,omitempty"`
	SubmittedAt time.Time           `bson:"submittedAt" json:"submittedAt"`
	ReviewedAt  *time.Time          `bson:"reviewedAt,omitempty" json:"reviewedAt,omitempty"`
}

const (
	ProposalStatusPending  = "pending"
	ProposalStatusApproved = "approved"
	ProposalStatusRejected = "rejected"
)

// CreateProposalRequest is the POST /proposals body.
type CreateProposalRequest struct {
	Title    string  `json:"title" validate:"required"`
	Summary  string  `json:"summary" validate:"required"`
	Category string  `json:"category"`
	Funding  float64 `json:"funding"`
	UserID   string  `json:"userId" validate:"required"`
}

// UpdateProposalStatusRequest is the PUT /proposals/:id/status body.
type UpdateProposalStatusRequest struct {
	Status     string `json:"status" validate:"required,oneof=approved rejected"`
	ReviewNote string `json:"reviewNote"`
	ReviewerID string `json:"reviewerId" validate:"required"`
}
