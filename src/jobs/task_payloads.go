package jobs

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
)

const TypeProfileJoin = "profile:join"

// ProfileJoinPayload carries the check-in side effect: mark the user as
// checked into the project on the participation cache.
type ProfileJoinPayload struct {
	UserID       string    `json:"user_id"`
	ProjectID    string    `json:"project_id"`
	ProjectTitle string    `json:"project_title"`
	Organization string    `json:"organization"`
	CheckInAt    time.Time `json:"check_in_at"`
}

func NewProfileJoinTask(p ProfileJoinPayload) (*asynq.Task, error) {
	payload, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeProfileJoin, payload), nil
}

// jobs/task_payloads.go
const TypeProfileCheckout = "profile:checkout"

// ProfileCheckoutPayload carries the check-out side effects: close the
// participation entry and credit hours and XP.
type ProfileCheckoutPayload struct {
	UserID     string    `json:"user_id"`
	ProjectID  string    `json:"project_id"`
	WorkHours  float64   `json:"work_hours"`
	XPEarned   int       `json:"xp_earned"`
	CheckOutAt time.Time `json:"check_out_at"`
}

func NewProfileCheckoutTask(p ProfileCheckoutPayload) (*asynq.Task, error) {
	payload, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeProfileCheckout, payload), nil
}
