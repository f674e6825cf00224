package attendance

import (
	"math"
	"time"

	"github.com/suryansh14it/eco-sphere-sub000/src/models"
)

// checkoutNotesSeparator joins check-in notes with the notes supplied at
// check-out.
const checkoutNotesSeparator = "\n\nCheckout Notes: "

// DayWindow returns the [midnight, midnight+24h) range containing t,
// in t's location.
func DayWindow(t time.Time) (time.Time, time.Time) {
	y, m, d := t.Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, t.Location())
	return start, start.Add(24 * time.Hour)
}

// WorkHours derives the hours worked between entry and exit, clamped at
// zero and rounded to 2 decimal places (half-up).
func WorkHours(entry, exit time.Time) float64 {
	hours := float64(exit.Sub(entry).Milliseconds()) / 3600000
	if hours < 0 {
		hours = 0
	}
	return math.Round(hours*100) / 100
}

// XPForHours awards 10 XP per hour worked with a floor of 5 XP, so even a
// very short session earns something.
func XPForHours(workHours float64) int {
	xp := int(math.Floor(workHours * 10))
	if xp < 5 {
		return 5
	}
	return xp
}

// MergeNotes appends checkout notes to the check-in notes with the literal
// separator; when there are no prior notes the checkout notes stand alone.
func MergeNotes(existing, checkout string) string {
	if existing == "" {
		return checkout
	}
	return existing + checkoutNotesSeparator + checkout
}

// NormalizeLocation fills in the default address when the client sent only
// coordinates.
func NormalizeLocation(loc *models.GPSLocation) *models.GPSLocation {
	if loc == nil {
		return nil
	}
	out := *loc
	if out.Address == "" {
		out.Address = "Unknown location"
	}
	return &out
}

// ParseTimestamp reads the client-supplied RFC3339 timestamp, falling back
// to the server clock when absent or unparsable.
func ParseTimestamp(s string) time.Time {
	if s == "" {
		return time.Now()
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Now()
	}
	return t
}
