package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GPSLocation is a coordinate snapshot captured at check-in/check-out.
type GPSLocation struct {
	Latitude  float64 `bson:"latitude" json:"latitude"`
	Longitude float64 `bson:"longitude" json:"longitude"`
	Address   string  `bson:"address" json:"address"`
}

// AttendanceRecord is the daily work record for one (project, contributor) pair.
// At most one record exists per calendar day; it is created by check-in and
// mutated in place by the matching check-out.
type AttendanceRecord struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ProjectID        primitive.ObjectID `bson:"projectId" json:"projectId"`
	ContributorID    primitive.ObjectID `bson:"contributorId" json:"contributorId"`
	ContributorName  string             `bson:"contributorName" json:"contributorName"`
	Date             time.Time          `bson:"date" json:"date"` // normalized to midnight
	EntryTime        *time.Time         `bson:"entryTime,omitempty" json:"entryTime,omitempty"`
	ExitTime         *time.Time         `bson:"exitTime,omitempty" json:"exitTime,omitempty"`
	GPSLocationEntry *GPSLocation       `bson:"gpsLocationEntry,omitempty" json:"gpsLocationEntry,omitempty"`
	GPSLocationExit  *GPSLocation       `bson:"gpsLocationExit,omitempty" json:"gpsLocationExit,omitempty"`
	EntryPhotoURL    string             `bson:"entryPhotoUrl,omitempty" json:"entryPhotoUrl,omitempty"`
	ExitPhotoURL     string             `bson:"exitPhotoUrl,omitempty" json:"exitPhotoUrl,omitempty"`
	Status           string             `bson:"status" json:"status"`
	Notes            string             `bson:"notes" json:"notes"`
	WorkHours        *float64           `bson:"workHours,omitempty" json:"workHours,omitempty"`
	VerifiedBy       string             `bson:"verifiedBy" json:"verifiedBy"`
	AIVerification   interface{}        `bson:"aiVerification,omitempty" json:"aiVerification,omitempty"`
	CreatedAt        time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt        time.Time          `bson:"updatedAt" json:"updatedAt"`
}

const (
	AttendanceStatusPresent = "present"

	// VerifierAISystem marks records confirmed by the AI verification
	// subsystem; no human verification path exists in this flow.
	VerifierAISystem = "AI_SYSTEM"
)

// AttendanceRequest is the POST /attendance body for both check-in and check-out.
type AttendanceRequest struct {
	ProjectID      string       `json:"projectId" validate:"required"`
	UserID         string       `json:"userId" validate:"required"`
	UserName       string       `json:"userName"`
	Type           string       `json:"type" validate:"required"` // literal checked at the handler
	Timestamp      string       `json:"timestamp"`
	Location       *GPSLocation `json:"location" validate:"required"`
	PhotoData      string       `json:"photoData" validate:"required"`
	Notes          string       `json:"notes"`
	ProjectTitle   string       `json:"projectTitle"`
	Organization   string       `json:"organization"`
	AIVerification interface{}  `json:"aiVerification"`
}

// CheckInResult is returned by a successful check-in.
type CheckInResult struct {
	AttendanceID primitive.ObjectID
	CheckInTime  time.Time
}

// CheckOutResult is returned by a successful check-out.
type CheckOutResult struct {
	AttendanceID primitive.ObjectID
	CheckOutTime time.Time
	WorkHours    float64
	XPEarned     int
}
