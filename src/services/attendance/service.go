package attendance

import (
	"context"
	"errors"
	"time"

	"github.com/suryansh14it/eco-sphere-sub000/src/jobs"
	"github.com/suryansh14it/eco-sphere-sub000/src/models"
	"github.com/suryansh14it/eco-sphere-sub000/src/services/uploads"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// State-conflict failures. None of these mutate the record.
var (
	ErrDuplicateCheckIn  = errors.New("You have already checked in today. Please check out before checking in again.")
	ErrCheckInRequired   = errors.New("You must check in first before you can check out.")
	ErrDuplicateCheckOut = errors.New("You have already checked out today.")

	ErrInvalidID = errors.New("Invalid projectId or userId format.")
)

// Outbox hands the profile side effects to the jobs queue once the record
// write has gone through.
type Outbox interface {
	ProfileJoin(payload jobs.ProfileJoinPayload)
	ProfileCheckout(payload jobs.ProfileCheckoutPayload)
}

type queueOutbox struct{}

func (queueOutbox) ProfileJoin(p jobs.ProfileJoinPayload)         { jobs.EnqueueProfileJoin(p) }
func (queueOutbox) ProfileCheckout(p jobs.ProfileCheckoutPayload) { jobs.EnqueueProfileCheckout(p) }

// Package seams. Swappable so the lifecycle can be exercised without a
// live database or queue.
var (
	Records Store              = mongoStore{}
	Photos  uploads.PhotoStore = uploads.DefaultStore()
	Profile Outbox             = queueOutbox{}
)

// findTodayRecord looks up the record for (project, contributor) inside
// the [midnight, midnight+24h) window around at. Returns nil when none
// exists.
func findTodayRecord(ctx context.Context, projectID, contributorID primitive.ObjectID, at time.Time) (*models.AttendanceRecord, error) {
	start, end := DayWindow(at)
	return Records.FindInWindow(ctx, projectID, contributorID, start, end)
}

// RecordCheckIn opens today's attendance record for the contributor on the
// project. A record that already has an entry time rejects the request; a
// leftover record without one (a prior partial attempt) is reused.
func RecordCheckIn(ctx context.Context, req models.AttendanceRequest) (*models.CheckInResult, error) {
	projectID, err1 := primitive.ObjectIDFromHex(req.ProjectID)
	contributorID, err2 := primitive.ObjectIDFromHex(req.UserID)
	if err1 != nil || err2 != nil {
		return nil, ErrInvalidID
	}

	timestamp := ParseTimestamp(req.Timestamp)

	record, err := findTodayRecord(ctx, projectID, contributorID, timestamp)
	if err != nil {
		return nil, err
	}
	if record != nil && record.EntryTime != nil {
		return nil, ErrDuplicateCheckIn
	}

	photoRef, err := Photos.Save(ctx, req.PhotoData)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	startOfDay, _ := DayWindow(timestamp)
	doc := models.AttendanceRecord{
		ProjectID:        projectID,
		ContributorID:    contributorID,
		ContributorName:  req.UserName,
		Date:             startOfDay,
		EntryTime:        &timestamp,
		GPSLocationEntry: NormalizeLocation(req.Location),
		EntryPhotoURL:    photoRef,
		Status:           models.AttendanceStatusPresent,
		Notes:            req.Notes,
		VerifiedBy:       models.VerifierAISystem,
		AIVerification:   req.AIVerification,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	var recordID primitive.ObjectID
	if record != nil {
		doc.ID = record.ID
		doc.CreatedAt = record.CreatedAt
		err = Records.Replace(ctx, doc)
		recordID = record.ID
	} else {
		recordID, err = Records.Insert(ctx, doc)
	}
	if err != nil {
		return nil, err
	}

	Profile.ProfileJoin(jobs.ProfileJoinPayload{
		UserID:       req.UserID,
		ProjectID:    req.ProjectID,
		ProjectTitle: req.ProjectTitle,
		Organization: req.Organization,
		CheckInAt:    timestamp,
	})

	return &models.CheckInResult{AttendanceID: recordID, CheckInTime: timestamp}, nil
}

// RecordCheckOut closes today's attendance record, derives the hours worked
// and the XP award, and hands the profile side effects to the outbox.
func RecordCheckOut(ctx context.Context, req models.AttendanceRequest) (*models.CheckOutResult, error) {
	projectID, err1 := primitive.ObjectIDFromHex(req.ProjectID)
	contributorID, err2 := primitive.ObjectIDFromHex(req.UserID)
	if err1 != nil || err2 != nil {
		return nil, ErrInvalidID
	}

	timestamp := ParseTimestamp(req.Timestamp)

	record, err := findTodayRecord(ctx, projectID, contributorID, timestamp)
	if err != nil {
		return nil, err
	}
	if record == nil || record.EntryTime == nil {
		return nil, ErrCheckInRequired
	}
	if record.ExitTime != nil {
		return nil, ErrDuplicateCheckOut
	}

	photoRef, err := Photos.Save(ctx, req.PhotoData)
	if err != nil {
		return nil, err
	}

	workHours := WorkHours(*record.EntryTime, timestamp)
	xpEarned := XPForHours(workHours)

	checkout := CheckoutUpdate{
		ExitTime:        timestamp,
		GPSLocationExit: NormalizeLocation(req.Location),
		ExitPhotoURL:    photoRef,
		WorkHours:       workHours,
		Notes:           MergeNotes(record.Notes, req.Notes),
	}
	if err := Records.ApplyCheckout(ctx, record.ID, checkout); err != nil {
		return nil, err
	}

	Profile.ProfileCheckout(jobs.ProfileCheckoutPayload{
		UserID:     req.UserID,
		ProjectID:  req.ProjectID,
		WorkHours:  workHours,
		XPEarned:   xpEarned,
		CheckOutAt: timestamp,
	})

	return &models.CheckOutResult{
		AttendanceID: record.ID,
		CheckOutTime: timestamp,
		WorkHours:    workHours,
		XPEarned:     xpEarned,
	}, nil
}

// ListHistory returns the contributor's records newest-first by date,
// optionally filtered to one project, capped at limit.
func ListHistory(ctx context.Context, contributorID string, projectID string, limit int) ([]models.AttendanceRecord, error) {
	uID, err := primitive.ObjectIDFromHex(contributorID)
	if err != nil {
		return nil, ErrInvalidID
	}

	var pID *primitive.ObjectID
	if projectID != "" {
		parsed, err := primitive.ObjectIDFromHex(projectID)
		if err != nil {
			return nil, ErrInvalidID
		}
		pID = &parsed
	}

	if limit <= 0 {
		limit = 10
	}
	return Records.List(ctx, uID, pID, limit)
}

// IsStateConflict reports whether err is one of the check-in/check-out
// ordering failures, which map to a client error at the HTTP boundary.
func IsStateConflict(err error) bool {
	return errors.Is(err, ErrDuplicateCheckIn) ||
		errors.Is(err, ErrCheckInRequired) ||
		errors.Is(err, ErrDuplicateCheckOut)
}
