package attendance

import (
	"testing"
	"time"

	"github.com/suryansh14it/eco-sphere-sub000/src/models"
	"github.com/suryansh14it/eco-sphere-sub000/src/services/attendance"
	"github.com/suryansh14it/eco-sphere-sub000/test"

	"github.com/stretchr/testify/assert"
)

func TestWorkHoursDerivation(t *testing.T) {
	suiteResult := test.NewTestSuiteResult("Work Hours Derivation Tests")
	defer suiteResult.PrintSummary()

	t.Run("TestFullWorkDay", func(t *testing.T) {
		timer := test.NewTestTimer("Full Work Day")
		defer func() {
			duration := timer.Stop()
			suiteResult.AddResult(test.TestResult{Name: "Full Work Day", Duration: duration, Passed: true})
		}()

		entry := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
		exit := time.Date(2025, 3, 10, 17, 30, 0, 0, time.UTC)

		assert.Equal(t, 8.5, attendance.WorkHours(entry, exit))
	})

	t.Run("TestSameInstant", func(t *testing.T) {
		entry := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

		assert.Equal(t, 0.0, attendance.WorkHours(entry, entry))
	})

	t.Run("TestExitBeforeEntryClampsToZero", func(t *testing.T) {
		entry := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
		exit := entry.Add(-30 * time.Minute)

		assert.Equal(t, 0.0, attendance.WorkHours(entry, exit))
	})

	t.Run("TestRounding", func(t *testing.T) {
		entry := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

		// 1h20m = 1.3333... -> 1.33
		assert.Equal(t, 1.33, attendance.WorkHours(entry, entry.Add(80*time.Minute)))
		// 7.5m = 0.125h -> half-up -> 0.13
		assert.Equal(t, 0.13, attendance.WorkHours(entry, entry.Add(7*time.Minute+30*time.Second)))
		// 10m = 0.1666...h -> 0.17
		assert.Equal(t, 0.17, attendance.WorkHours(entry, entry.Add(10*time.Minute)))
	})
}

func TestXPForHours(t *testing.T) {
	// 10 XP per hour, floor of 5
	cases := []struct {
		hours float64
		xp    int
	}{
		{0, 5},
		{0.2, 5},
		{0.49, 5},
		{0.5, 5},
		{0.75, 7},
		{1, 10},
		{1.25, 12},
		{1.5, 15},
		{8.5, 85},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.xp, attendance.XPForHours(tc.hours), "workHours=%v", tc.hours)
	}
}

func TestMergeNotes(t *testing.T) {
	t.Run("TestAppendToExistingNotes", func(t *testing.T) {
		merged := attendance.MergeNotes("morning", "done")
		assert.Equal(t, "morning\n\nCheckout Notes: done", merged)
	})

	t.Run("TestNoExistingNotes", func(t *testing.T) {
		assert.Equal(t, "done", attendance.MergeNotes("", "done"))
	})

	t.Run("TestBothEmpty", func(t *testing.T) {
		assert.Equal(t, "", attendance.MergeNotes("", ""))
	})

	t.Run("TestEmptyCheckoutNotesStillAppended", func(t *testing.T) {
		assert.Equal(t, "morning\n\nCheckout Notes: ", attendance.MergeNotes("morning", ""))
	})
}

func TestDayWindow(t *testing.T) {
	at := time.Date(2025, 3, 10, 14, 23, 5, 0, time.UTC)
	start, end := attendance.DayWindow(at)

	assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, 24*time.Hour, end.Sub(start))
	assert.True(t, !at.Before(start) && at.Before(end))

	// A timestamp on the next day falls into a fresh window
	nextDay := at.Add(24 * time.Hour)
	nextStart, _ := attendance.DayWindow(nextDay)
	assert.Equal(t, start.Add(24*time.Hour), nextStart)
}

func TestNormalizeLocation(t *testing.T) {
	loc := &models.GPSLocation{Latitude: 12.97, Longitude: 77.59}
	normalized := attendance.NormalizeLocation(loc)

	assert.Equal(t, "Unknown location", normalized.Address)
	assert.Equal(t, 12.97, normalized.Latitude)
	assert.Equal(t, 77.59, normalized.Longitude)

	// Supplied address is kept
	withAddr := attendance.NormalizeLocation(&models.GPSLocation{Latitude: 1, Longitude: 2, Address: "Riverside Park"})
	assert.Equal(t, "Riverside Park", withAddr.Address)

	// Input is not mutated
	assert.Equal(t, "", loc.Address)

	assert.Nil(t, attendance.NormalizeLocation(nil))
}

func TestParseTimestamp(t *testing.T) {
	parsed := attendance.ParseTimestamp("2025-03-10T09:00:00Z")
	assert.Equal(t, time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC), parsed.UTC())

	before := time.Now()
	fallback := attendance.ParseTimestamp("")
	assert.WithinDuration(t, before, fallback, 2*time.Second)

	garbage := attendance.ParseTimestamp("yesterday at nine")
	assert.WithinDuration(t, time.Now(), garbage, 2*time.Second)
}
