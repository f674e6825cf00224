package attendance

import (
	"context"
	"fmt"
	"sort"
	"testing"
	"time"

	"github.com/suryansh14it/eco-sphere-sub000/src/jobs"
	"github.com/suryansh14it/eco-sphere-sub000/src/models"
	"github.com/suryansh14it/eco-sphere-sub000/src/services/attendance"
	"github.com/suryansh14it/eco-sphere-sub000/test"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// memoryStore keeps attendance records in a map, standing in for the
// attendances collection.
type memoryStore struct {
	records map[primitive.ObjectID]models.AttendanceRecord
}

func newMemoryStore() *memoryStore {
	return &memoryStore{records: map[primitive.ObjectID]models.AttendanceRecord{}}
}

func (s *memoryStore) FindInWindow(_ context.Context, projectID, contributorID primitive.ObjectID, start, end time.Time) (*models.AttendanceRecord, error) {
	for _, rec := range s.records {
		if rec.ProjectID == projectID && rec.ContributorID == contributorID &&
			!rec.Date.Before(start) && rec.Date.Before(end) {
			found := rec
			return &found, nil
		}
	}
	return nil, nil
}

func (s *memoryStore) Insert(_ context.Context, record models.AttendanceRecord) (primitive.ObjectID, error) {
	record.ID = primitive.NewObjectID()
	s.records[record.ID] = record
	return record.ID, nil
}

func (s *memoryStore) Replace(_ context.Context, record models.AttendanceRecord) error {
	s.records[record.ID] = record
	return nil
}

func (s *memoryStore) ApplyCheckout(_ context.Context, id primitive.ObjectID, checkout attendance.CheckoutUpdate) error {
	rec := s.records[id]
	exit := checkout.ExitTime
	hours := checkout.WorkHours
	rec.ExitTime = &exit
	rec.GPSLocationExit = checkout.GPSLocationExit
	rec.ExitPhotoURL = checkout.ExitPhotoURL
	rec.WorkHours = &hours
	rec.Notes = checkout.Notes
	rec.UpdatedAt = time.Now()
	s.records[id] = rec
	return nil
}

func (s *memoryStore) List(_ context.Context, contributorID primitive.ObjectID, projectID *primitive.ObjectID, limit int) ([]models.AttendanceRecord, error) {
	out := []models.AttendanceRecord{}
	for _, rec := range s.records {
		if rec.ContributorID != contributorID {
			continue
		}
		if projectID != nil && rec.ProjectID != *projectID {
			continue
		}
		out = append(out, rec)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s *memoryStore) get(t *testing.T, id primitive.ObjectID) models.AttendanceRecord {
	t.Helper()
	rec, ok := s.records[id]
	require.True(t, ok, "record %s not stored", id.Hex())
	return rec
}

// recordingOutbox captures the profile side effects instead of enqueueing.
type recordingOutbox struct {
	joins     []jobs.ProfileJoinPayload
	checkouts []jobs.ProfileCheckoutPayload
}

func (o *recordingOutbox) ProfileJoin(p jobs.ProfileJoinPayload) { o.joins = append(o.joins, p) }
func (o *recordingOutbox) ProfileCheckout(p jobs.ProfileCheckoutPayload) {
	o.checkouts = append(o.checkouts, p)
}

func swapSeams(t *testing.T) (*memoryStore, *recordingOutbox) {
	t.Helper()
	store := newMemoryStore()
	outbox := &recordingOutbox{}
	prevRecords, prevProfile := attendance.Records, attendance.Profile
	attendance.Records = store
	attendance.Profile = outbox
	t.Cleanup(func() {
		attendance.Records = prevRecords
		attendance.Profile = prevProfile
	})
	return store, outbox
}

func lifecycleRequest(projectID, userID primitive.ObjectID, kind, timestamp string) models.AttendanceRequest {
	return models.AttendanceRequest{
		ProjectID: projectID.Hex(),
		UserID:    userID.Hex(),
		Type:      kind,
		Timestamp: timestamp,
		Location:  &models.GPSLocation{Latitude: 13.75, Longitude: 100.5, Address: "Mangrove site A"},
		PhotoData: "data:image/jpeg;base64,AAAA",
	}
}

func TestAttendanceLifecycle(t *testing.T) {
	suiteResult := test.NewTestSuiteResult("Attendance Lifecycle Tests")
	defer suiteResult.PrintSummary()

	projectID := primitive.NewObjectID()
	userID := primitive.NewObjectID()
	ctx := context.Background()

	t.Run("TestCheckInThenCheckOut", func(t *testing.T) {
		timer := test.NewTestTimer("Check-In Then Check-Out")
		defer func() {
			duration := timer.Stop()
			suiteResult.AddResult(test.TestResult{Name: "Check-In Then Check-Out", Duration: duration, Passed: true})
		}()

		store, outbox := swapSeams(t)

		in := lifecycleRequest(projectID, userID, "checkin", "2025-03-10T09:00:00Z")
		in.Notes = "planting"
		checkIn, err := attendance.RecordCheckIn(ctx, in)
		require.NoError(t, err)
		require.NotNil(t, checkIn)
		assert.Equal(t, time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC), checkIn.CheckInTime)

		rec := store.get(t, checkIn.AttendanceID)
		require.NotNil(t, rec.EntryTime)
		assert.Nil(t, rec.ExitTime)
		assert.Nil(t, rec.WorkHours)
		assert.Equal(t, models.AttendanceStatusPresent, rec.Status)
		assert.Equal(t, models.VerifierAISystem, rec.VerifiedBy)
		require.Len(t, outbox.joins, 1)
		assert.Equal(t, userID.Hex(), outbox.joins[0].UserID)

		out := lifecycleRequest(projectID, userID, "checkout", "2025-03-10T17:30:00Z")
		out.Notes = "done for the day"
		checkOut, err := attendance.RecordCheckOut(ctx, out)
		require.NoError(t, err)
		assert.Equal(t, checkIn.AttendanceID, checkOut.AttendanceID)
		assert.Equal(t, 8.5, checkOut.WorkHours)
		assert.Equal(t, 85, checkOut.XPEarned)

		rec = store.get(t, checkIn.AttendanceID)
		require.NotNil(t, rec.ExitTime)
		require.NotNil(t, rec.WorkHours)
		assert.Equal(t, 8.5, *rec.WorkHours)
		assert.Equal(t, "planting\n\nCheckout Notes: done for the day", rec.Notes)
		require.Len(t, outbox.checkouts, 1)
		assert.Equal(t, 8.5, outbox.checkouts[0].WorkHours)
		assert.Equal(t, 85, outbox.checkouts[0].XPEarned)
	})

	t.Run("TestSecondCheckInSameDayRejected", func(t *testing.T) {
		store, outbox := swapSeams(t)

		first, err := attendance.RecordCheckIn(ctx, lifecycleRequest(projectID, userID, "checkin", "2025-03-10T09:00:00Z"))
		require.NoError(t, err)

		_, err = attendance.RecordCheckIn(ctx, lifecycleRequest(projectID, userID, "checkin", "2025-03-10T11:00:00Z"))
		assert.ErrorIs(t, err, attendance.ErrDuplicateCheckIn)
		assert.True(t, attendance.IsStateConflict(err))

		// the original record is untouched and no second side effect fires
		rec := store.get(t, first.AttendanceID)
		assert.Equal(t, time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC), *rec.EntryTime)
		assert.Len(t, store.records, 1)
		assert.Len(t, outbox.joins, 1)
	})

	t.Run("TestCheckOutWithoutCheckIn", func(t *testing.T) {
		store, outbox := swapSeams(t)

		_, err := attendance.RecordCheckOut(ctx, lifecycleRequest(projectID, userID, "checkout", "2025-03-10T17:00:00Z"))
		assert.ErrorIs(t, err, attendance.ErrCheckInRequired)
		assert.Empty(t, store.records)
		assert.Empty(t, outbox.checkouts)
	})

	t.Run("TestSecondCheckOutSameDayRejected", func(t *testing.T) {
		store, outbox := swapSeams(t)

		checkIn, err := attendance.RecordCheckIn(ctx, lifecycleRequest(projectID, userID, "checkin", "2025-03-10T09:00:00Z"))
		require.NoError(t, err)
		_, err = attendance.RecordCheckOut(ctx, lifecycleRequest(projectID, userID, "checkout", "2025-03-10T12:00:00Z"))
		require.NoError(t, err)

		_, err = attendance.RecordCheckOut(ctx, lifecycleRequest(projectID, userID, "checkout", "2025-03-10T18:00:00Z"))
		assert.ErrorIs(t, err, attendance.ErrDuplicateCheckOut)

		rec := store.get(t, checkIn.AttendanceID)
		assert.Equal(t, time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC), *rec.ExitTime)
		assert.Equal(t, 3.0, *rec.WorkHours)
		assert.Len(t, outbox.checkouts, 1)
	})

	t.Run("TestNextDayCheckInAllowed", func(t *testing.T) {
		store, _ := swapSeams(t)

		_, err := attendance.RecordCheckIn(ctx, lifecycleRequest(projectID, userID, "checkin", "2025-03-10T09:00:00Z"))
		require.NoError(t, err)

		_, err = attendance.RecordCheckIn(ctx, lifecycleRequest(projectID, userID, "checkin", "2025-03-11T09:00:00Z"))
		require.NoError(t, err)
		assert.Len(t, store.records, 2)
	})

	t.Run("TestPartialRecordReused", func(t *testing.T) {
		store, _ := swapSeams(t)

		// a leftover record for today without an entry time
		partialID := primitive.NewObjectID()
		store.records[partialID] = models.AttendanceRecord{
			ID:            partialID,
			ProjectID:     projectID,
			ContributorID: userID,
			Date:          time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
			Status:        models.AttendanceStatusPresent,
		}

		checkIn, err := attendance.RecordCheckIn(ctx, lifecycleRequest(projectID, userID, "checkin", "2025-03-10T09:00:00Z"))
		require.NoError(t, err)
		assert.Equal(t, partialID, checkIn.AttendanceID)
		assert.Len(t, store.records, 1)
	})

	t.Run("TestInvalidIDRejected", func(t *testing.T) {
		swapSeams(t)

		req := lifecycleRequest(projectID, userID, "checkin", "2025-03-10T09:00:00Z")
		req.UserID = "not-a-hex-id"
		_, err := attendance.RecordCheckIn(ctx, req)
		assert.ErrorIs(t, err, attendance.ErrInvalidID)
	})
}

func TestHistoryOrderingAndLimit(t *testing.T) {
	store, _ := swapSeams(t)
	ctx := context.Background()

	userID := primitive.NewObjectID()
	projectA := primitive.NewObjectID()
	projectB := primitive.NewObjectID()

	// 15 days of alternating project records, oldest first
	for day := 1; day <= 15; day++ {
		project := projectA
		if day%2 == 0 {
			project = projectB
		}
		ts := fmt.Sprintf("2025-03-%02dT09:00:00Z", day)
		_, err := attendance.RecordCheckIn(ctx, lifecycleRequest(project, userID, "checkin", ts))
		require.NoError(t, err)
	}
	require.Len(t, store.records, 15)

	t.Run("TestNewestFirstDefaultLimit", func(t *testing.T) {
		records, err := attendance.ListHistory(ctx, userID.Hex(), "", 0)
		require.NoError(t, err)
		require.Len(t, records, 10)
		for i := 1; i < len(records); i++ {
			assert.True(t, records[i].Date.Before(records[i-1].Date),
				"records must be sorted newest-first")
		}
		assert.Equal(t, time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC), records[0].Date)
	})

	t.Run("TestExplicitLimit", func(t *testing.T) {
		records, err := attendance.ListHistory(ctx, userID.Hex(), "", 3)
		require.NoError(t, err)
		assert.Len(t, records, 3)
	})

	t.Run("TestProjectFilter", func(t *testing.T) {
		records, err := attendance.ListHistory(ctx, userID.Hex(), projectA.Hex(), 20)
		require.NoError(t, err)
		require.Len(t, records, 8)
		for _, rec := range records {
			assert.Equal(t, projectA, rec.ProjectID)
		}
	})

	t.Run("TestUnknownContributorEmpty", func(t *testing.T) {
		records, err := attendance.ListHistory(ctx, primitive.NewObjectID().Hex(), "", 0)
		require.NoError(t, err)
		assert.Empty(t, records)
	})

	t.Run("TestMalformedIDsRejected", func(t *testing.T) {
		_, err := attendance.ListHistory(ctx, "zzz", "", 0)
		assert.ErrorIs(t, err, attendance.ErrInvalidID)

		_, err = attendance.ListHistory(ctx, userID.Hex(), "zzz", 0)
		assert.ErrorIs(t, err, attendance.ErrInvalidID)
	})
}
