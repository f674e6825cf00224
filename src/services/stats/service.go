package stats

import (
	"context"
	"time"

	DB "github.com/suryansh14it/eco-sphere-sub000/src/database"

	"go.mongodb.org/mongo-driver/bson"
)

// Summary feeds the role dashboards: platform totals derived from the
// attendance and proposal collections.
type Summary struct {
	TotalRecords      int64            `json:"totalRecords"`
	TotalHours        float64          `json:"totalHours"`
	TotalContributors int              `json:"totalContributors"`
	ActiveProjects    int64            `json:"activeProjects"`
	ProposalsByStatus map[string]int64 `json:"proposalsByStatus"`
}

// GetSummary aggregates the dashboard numbers in one pass per collection.
func GetSummary(ctx context.Context) (*Summary, error) {
	ctx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	summary := &Summary{ProposalsByStatus: map[string]int64{}}

	total, err := DB.AttendanceCollection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	summary.TotalRecords = total

	pipeline := []bson.M{
		{"$match": bson.M{"workHours": bson.M{"$gt": 0}}},
		{"$group": bson.M{
			"_id":        nil,
			"totalHours": bson.M{"$sum": "$workHours"},
		}},
	}
	cursor, err := DB.AttendanceCollection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	var hourRows []struct {
		TotalHours float64 `bson:"totalHours"`
	}
	if err := cursor.All(ctx, &hourRows); err != nil {
		return nil, err
	}
	if len(hourRows) > 0 {
		summary.TotalHours = hourRows[0].TotalHours
	}

	contributors, err := DB.AttendanceCollection.Distinct(ctx, "contributorId", bson.M{})
	if err != nil {
		return nil, err
	}
	summary.TotalContributors = len(contributors)

	active, err := DB.ProjectCollection.CountDocuments(ctx, bson.M{"status": "active"})
	if err != nil {
		return nil, err
	}
	summary.ActiveProjects = active

	proposalPipeline := []bson.M{
		{"$group": bson.M{
			"_id":   "$status",
			"count": bson.M{"$sum": 1},
		}},
	}
	propCursor, err := DB.ProposalCollection.Aggregate(ctx, proposalPipeline)
	if err != nil {
		return nil, err
	}
	var statusRows []struct {
		Status string `bson:"_id"`
		Count  int64  `bson:"count"`
	}
	if err := propCursor.All(ctx, &statusRows); err != nil {
		return nil, err
	}
	for _, row := range statusRows {
		summary.ProposalsByStatus[row.Status] = row.Count
	}

	return summary, nil
}
