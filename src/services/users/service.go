package users

import (
	"context"
	"errors"
	"strings"
	"time"

	DB "github.com/suryansh14it/eco-sphere-sub000/src/database"
	"github.com/suryansh14it/eco-sphere-sub000/src/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

// CreateUser inserts a new user with a bcrypt-hashed password.
func CreateUser(user *models.User) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user.ID = primitive.NewObjectID()
	user.Email = strings.ToLower(user.Email)
	user.Password = string(hashed)
	user.CreatedAt = time.Now()
	if user.ProjectParticipation.ActiveProjects == nil {
		user.ProjectParticipation.ActiveProjects = []models.ActiveProject{}
	}

	_, err = DB.UserCollection.InsertOne(context.Background(), user)
	return err
}

// GetUserByID fetches a user document by its hex id.
func GetUserByID(id string) (*models.User, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, errors.New("invalid user ID")
	}

	var user models.User
	err = DB.UserCollection.FindOne(context.Background(), bson.M{"_id": objID}).Decode(&user)
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// AuthenticateUser checks credentials and returns the user without its
// password hash.
func AuthenticateUser(email, password string) (*models.User, error) {
	ctx := context.Background()

	var dbUser models.User
	err := DB.UserCollection.FindOne(ctx, bson.M{"email": strings.ToLower(email)}).Decode(&dbUser)
	if err != nil {
		return nil, errors.New("invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(dbUser.Password), []byte(password)); err != nil {
		return nil, errors.New("invalid email or password")
	}

	dbUser.Password = ""
	return &dbUser, nil
}

// JoinProject adds or refreshes the activeProjects entry for projectId on
// the user's participation cache. The entry is keyed by projectId: an
// existing element is updated in place, otherwise the full entry (carrying
// joinedAt) is pushed. Re-running is safe; joinedAt is only written on the
// first insertion.
func JoinProject(ctx context.Context, userID primitive.ObjectID, entry models.ActiveProject) error {
	filter := bson.M{
		"_id": userID,
		"projectParticipation.activeProjects.projectId": entry.ProjectID,
	}
	update := bson.M{"$set": bson.M{
		"projectParticipation.activeProjects.$.checkedIn":    true,
		"projectParticipation.activeProjects.$.lastCheckIn":  entry.LastCheckIn,
		"projectParticipation.activeProjects.$.lastActivity": entry.LastActivity,
	}}

	res, err := DB.UserCollection.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if res.MatchedCount > 0 {
		return nil
	}

	push := bson.M{"$push": bson.M{"projectParticipation.activeProjects": entry}}
	_, err = DB.UserCollection.UpdateOne(ctx, bson.M{"_id": userID}, push)
	return err
}

// CompleteCheckout applies the checkout side effects to the user document:
// the activeProjects element for projectId is marked checked out, and the
// aggregate XP and stats counters are incremented.
func CompleteCheckout(ctx context.Context, userID, projectID primitive.ObjectID, workHours float64, xpEarned int, checkOutAt time.Time) error {
	filter := bson.M{
		"_id": userID,
		"projectParticipation.activeProjects.projectId": projectID,
	}
	// totalHours mirrors the most recent session's hours.
	set := bson.M{"$set": bson.M{
		"projectParticipation.activeProjects.$.checkedIn":    false,
		"projectParticipation.activeProjects.$.lastActivity": time.Now(),
		"projectParticipation.activeProjects.$.lastCheckOut": checkOutAt,
		"projectParticipation.activeProjects.$.totalHours":   workHours,
	}}
	if _, err := DB.UserCollection.UpdateOne(ctx, filter, set); err != nil {
		return err
	}

	completed := 0
	if workHours >= 1 {
		completed = 1
	}
	inc := bson.M{"$inc": bson.M{
		"xp":                           xpEarned,
		"stats.totalHoursContributed":  workHours,
		"stats.totalProjectsCompleted": completed,
	}}
	_, err := DB.UserCollection.UpdateOne(ctx, bson.M{"_id": userID}, inc)
	return err
}
