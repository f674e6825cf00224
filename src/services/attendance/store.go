package attendance

import (
	"context"
	"time"

	DB "github.com/suryansh14it/eco-sphere-sub000/src/database"
	"github.com/suryansh14it/eco-sphere-sub000/src/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CheckoutUpdate carries the fields a checkout writes onto the record.
type CheckoutUpdate struct {
	ExitTime        time.Time
	GPSLocationExit *models.GPSLocation
	ExitPhotoURL    string
	WorkHours       float64
	Notes           string
}

// Store is the persistence boundary for attendance records.
type Store interface {
	// FindInWindow returns the record for (project, contributor) whose date
	// falls in [start, end), or nil when none exists.
	FindInWindow(ctx context.Context, projectID, contributorID primitive.ObjectID, start, end time.Time) (*models.AttendanceRecord, error)
	Insert(ctx context.Context, record models.AttendanceRecord) (primitive.ObjectID, error)
	Replace(ctx context.Context, record models.AttendanceRecord) error
	ApplyCheckout(ctx context.Context, id primitive.ObjectID, checkout CheckoutUpdate) error
	// List returns the contributor's records newest-first by date, capped at
	// limit, optionally filtered to one project.
	List(ctx context.Context, contributorID primitive.ObjectID, projectID *primitive.ObjectID, limit int) ([]models.AttendanceRecord, error)
}

// mongoStore is the production Store backed by the attendances collection.
type mongoStore struct{}

func (mongoStore) FindInWindow(ctx context.Context, projectID, contributorID primitive.ObjectID, start, end time.Time) (*models.AttendanceRecord, error) {
	filter := bson.M{
		"projectId":     projectID,
		"contributorId": contributorID,
		"date":          bson.M{"$gte": start, "$lt": end},
	}

	var record models.AttendanceRecord
	err := DB.AttendanceCollection.FindOne(ctx, filter).Decode(&record)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (mongoStore) Insert(ctx context.Context, record models.AttendanceRecord) (primitive.ObjectID, error) {
	res, err := DB.AttendanceCollection.InsertOne(ctx, record)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return res.InsertedID.(primitive.ObjectID), nil
}

func (mongoStore) Replace(ctx context.Context, record models.AttendanceRecord) error {
	_, err := DB.AttendanceCollection.ReplaceOne(ctx, bson.M{"_id": record.ID}, record)
	return err
}

func (mongoStore) ApplyCheckout(ctx context.Context, id primitive.ObjectID, checkout CheckoutUpdate) error {
	update := bson.M{"$set": bson.M{
		"exitTime":        checkout.ExitTime,
		"gpsLocationExit": checkout.GPSLocationExit,
		"exitPhotoUrl":    checkout.ExitPhotoURL,
		"workHours":       checkout.WorkHours,
		"notes":           checkout.Notes,
		"updatedAt":       time.Now(),
	}}
	_, err := DB.AttendanceCollection.UpdateOne(ctx, bson.M{"_id": id}, update)
	return err
}

func (mongoStore) List(ctx context.Context, contributorID primitive.ObjectID, projectID *primitive.ObjectID, limit int) ([]models.AttendanceRecord, error) {
	filter := bson.M{"contributorId": contributorID}
	if projectID != nil {
		filter["projectId"] = *projectID
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "date", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := DB.AttendanceCollection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	records := []models.AttendanceRecord{}
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}
