package jobs

import (
	"context"
	"log"

	"github.com/suryansh14it/eco-sphere-sub000/src/database"
)

// EnqueueProfileJoin hands the check-in side effect to the outbox. When
// Asynq is not initialized the command runs inline so the profile cache
// still converges.
func EnqueueProfileJoin(payload ProfileJoinPayload) {
	if database.AsynqClient != nil {
		task, err := NewProfileJoinTask(payload)
		if err == nil {
			if _, err := database.AsynqClient.Enqueue(task); err == nil {
				return
			}
			log.Println("Failed to enqueue profile join, running inline:", err)
		}
	}

	if err := applyProfileJoin(context.Background(), payload); err != nil {
		log.Println("Profile join update failed:", err)
	}
}

// EnqueueProfileCheckout hands the check-out side effects to the outbox,
// falling back inline like EnqueueProfileJoin.
func EnqueueProfileCheckout(payload ProfileCheckoutPayload) {
	if database.AsynqClient != nil {
		task, err := NewProfileCheckoutTask(payload)
		if err == nil {
			if _, err := database.AsynqClient.Enqueue(task); err == nil {
				return
			}
			log.Println("Failed to enqueue profile checkout, running inline:", err)
		}
	}

	if err := applyProfileCheckout(context.Background(), payload); err != nil {
		log.Println("Profile checkout update failed:", err)
	}
}
