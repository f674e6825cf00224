package jobs

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/suryansh14it/eco-sphere-sub000/src/database"
	"github.com/suryansh14it/eco-sphere-sub000/src/models"
	"github.com/suryansh14it/eco-sphere-sub000/src/services/users"

	"github.com/hibiken/asynq"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func HandleProfileJoinTask(ctx context.Context, t *asynq.Task) error {
	var payload ProfileJoinPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		log.Println("Payload decode error:", err)
		return err
	}
	return applyProfileJoin(ctx, payload)
}

func HandleProfileCheckoutTask(ctx context.Context, t *asynq.Task) error {
	var payload ProfileCheckoutPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		log.Println("Payload decode error:", err)
		return err
	}
	return applyProfileCheckout(ctx, payload)
}

func applyProfileJoin(ctx context.Context, payload ProfileJoinPayload) error {
	userID, err := primitive.ObjectIDFromHex(payload.UserID)
	if err != nil {
		return err
	}
	projectID, err := primitive.ObjectIDFromHex(payload.ProjectID)
	if err != nil {
		return err
	}

	now := time.Now()
	checkInAt := payload.CheckInAt
	entry := models.ActiveProject{
		ProjectID:    projectID,
		Title:        payload.ProjectTitle,
		Organization: payload.Organization,
		JoinedAt:     now,
		LastActivity: now,
		CheckedIn:    true,
		LastCheckIn:  &checkInAt,
	}
	return users.JoinProject(ctx, userID, entry)
}

func applyProfileCheckout(ctx context.Context, payload ProfileCheckoutPayload) error {
	userID, err := primitive.ObjectIDFromHex(payload.UserID)
	if err != nil {
		return err
	}
	projectID, err := primitive.ObjectIDFromHex(payload.ProjectID)
	if err != nil {
		return err
	}
	return users.CompleteCheckout(ctx, userID, projectID, payload.WorkHours, payload.XPEarned, payload.CheckOutAt)
}

// RunWorker blocks serving profile-sync tasks. Call from a dedicated
// process when Redis is configured.
func RunWorker() error {
	if database.RedisURI == "" {
		log.Println("Redis not available. Worker will not start.")
		return nil
	}

	srv := asynq.NewServer(
		asynq.RedisClientOpt{Addr: database.RedisURI},
		asynq.Config{Concurrency: 5},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeProfileJoin, HandleProfileJoinTask)
	mux.HandleFunc(TypeProfileCheckout, HandleProfileCheckoutTask)

	return srv.Run(mux)
}
