package proposals

import (
	"context"
	"errors"
	"time"

	DB "github.com/suryansh14it/eco-sphere-sub000/src/database"
	"github.com/suryansh14it/eco-sphere-sub000/src/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CreateProposal stores a researcher-submitted proposal as pending.
func CreateProposal(req models.CreateProposalRequest) (*models.Proposal, error) {
	userID, err := primitive.ObjectIDFromHex(req.UserID)
	if err != nil {
		return nil, errors.New("invalid user ID")
	}

	proposal := models.Proposal{
		ID:          primitive.NewObjectID(),
		Title:       req.Title,
		Summary:     req.Summary,
		Category:    req.Category,
		Funding:     req.Funding,
		SubmittedBy: userID,
		Status:      models.ProposalStatusPending,
		SubmittedAt: time.Now(),
	}

	if _, err := DB.ProposalCollection.InsertOne(context.Background(), proposal); err != nil {
		return nil, err
	}
	return &proposal, nil
}

// GetProposalsByUser returns a user's proposals, newest first.
func GetProposalsByUser(userId string, limit int) ([]models.Proposal, error) {
	userID, err := primitive.ObjectIDFromHex(userId)
	if err != nil {
		return nil, errors.New("invalid user ID")
	}

	if limit <= 0 {
		limit = 10
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "submittedAt", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := DB.ProposalCollection.Find(context.Background(), bson.M{"submittedBy": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(context.Background())

	proposals := []models.Proposal{}
	if err := cursor.All(context.Background(), &proposals); err != nil {
		return nil, err
	}
	return proposals, nil
}

// UpdateProposalStatus records a government review decision.
func UpdateProposalStatus(id string, req models.UpdateProposalStatusRequest) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errors.New("invalid proposal ID")
	}
	reviewerID, err := primitive.ObjectIDFromHex(req.ReviewerID)
	if err != nil {
		return errors.New("invalid reviewer ID")
	}

	now := time.Now()
	update := bson.M{"$set": bson.M{
		"status":     req.Status,
		"reviewNote": req.ReviewNote,
		"reviewedBy": reviewerID,
		"reviewedAt": now,
	}}

	res, err := DB.ProposalCollection.UpdateOne(context.Background(), bson.M{"_id": objID}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return errors.New("proposal not found")
	}
	return nil
}
