package database

import (
	"context"
	"log"
	"os"
	"sync"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const DBName = "EcoSphereDB"

var (
	client     *mongo.Client
	once       sync.Once
	connectErr error

	AttendanceCollection *mongo.Collection
	UserCollection       *mongo.Collection
	ProjectCollection    *mongo.Collection
	ProposalCollection   *mongo.Collection
	PhotoCollection      *mongo.Collection
)

// ConnectMongoDB connects to MongoDB exactly once.
func ConnectMongoDB() error {

	// Load environment variables from .env if present
	err := godotenv.Load()
	if err != nil {
		log.Println("Warning: No .env file found")
	}

	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		log.Fatal("MONGO_URI environment variable not set. Please create a .env file and set it.")
	}

	once.Do(func() {
		clientOptions := options.Client().ApplyURI(mongoURI)

		client, connectErr = mongo.Connect(context.TODO(), clientOptions)
		if connectErr != nil {
			log.Fatal("Failed to connect to MongoDB:", connectErr)
			return
		}

		connectErr = client.Ping(context.TODO(), readpref.Primary())
		if connectErr != nil {
			log.Fatal("MongoDB ping failed:", connectErr)
			return
		}

		log.Println("MongoDB connected successfully")

		AttendanceCollection = client.Database(DBName).Collection("attendances")
		UserCollection = client.Database(DBName).Collection("users")
		ProjectCollection = client.Database(DBName).Collection("projects")
		ProposalCollection = client.Database(DBName).Collection("proposals")
		PhotoCollection = client.Database(DBName).Collection("photos")
	})

	return connectErr
}
