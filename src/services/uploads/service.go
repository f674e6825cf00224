package uploads

import (
	"context"
	"errors"
	"os"
	"time"

	DB "github.com/suryansh14it/eco-sphere-sub000/src/database"

	"github.com/google/uuid"
)

// PhotoStore persists an opaque photo payload and returns the reference
// string stored on the attendance record. The default store keeps the
// payload inline, matching the record shape the dashboards consume.
type PhotoStore interface {
	Save(ctx context.Context, data string) (string, error)
}

// InlineStore returns the payload unchanged; the record carries the
// (possibly large) encoded image directly.
type InlineStore struct{}

func (InlineStore) Save(_ context.Context, data string) (string, error) {
	return data, nil
}

// MongoStore writes the payload into the photos collection and returns a
// photo:// handle instead.
type MongoStore struct{}

type photoDoc struct {
	ID        string    `bson:"_id"`
	Data      string    `bson:"data"`
	CreatedAt time.Time `bson:"createdAt"`
}

func (MongoStore) Save(ctx context.Context, data string) (string, error) {
	if data == "" {
		return "", errors.New("empty photo payload")
	}

	doc := photoDoc{
		ID:        uuid.NewString(),
		Data:      data,
		CreatedAt: time.Now(),
	}
	if _, err := DB.PhotoCollection.InsertOne(ctx, doc); err != nil {
		return "", err
	}
	return "photo://" + doc.ID, nil
}

// DefaultStore picks the photo store from PHOTO_STORE ("mongo" or inline).
func DefaultStore() PhotoStore {
	if os.Getenv("PHOTO_STORE") == "mongo" {
		return MongoStore{}
	}
	return InlineStore{}
}
