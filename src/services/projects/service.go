package projects

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

// CreateProject inserts a new project into the catalog.
func CreateProject(project *models.Project) error {
	project.ID = primitive.NewObjectID()
	if project.Status == "" {
		project.Status = models.ProjectStatusActive
	}
	project.CreatedAt = time.Now()

	_, err := DB.ProjectCollection.InsertOne(context.Background(), project)
	return err
}

// GetProjectByID fetches one project by its hex id.
func GetProjectByID(id string) (*models.Project, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, errors.New("invalid project ID")
	}

	var project models.Project
	err = DB.ProjectCollection.FindOne(context.Background(), bson.M{"_id": objID}).Decode(&project)
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// GetProjects returns a page of the catalog with optional title/organization
// search.
func GetProjects(params models.PaginationParams) ([]models.Project, int64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	filter := bson.M{}
	if params.Search != "" {
		regex := bson.M{"$regex": params.Search, "$options": "i"}
		filter["$or"] = bson.A{
			bson.M{"title": regex},
			bson.M{"organization": regex},
		}
	}

	total, err := DB.ProjectCollection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSort(params.GetSortOrder()).
		SetSkip(params.GetSkip()).
		SetLimit(int64(params.Limit))

	cursor, err := DB.ProjectCollection.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	projects := []models.Project{}
	if err := cursor.All(ctx, &projects); err != nil {
		return nil, 0, err
	}
	return projects, total, nil
}
