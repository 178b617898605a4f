package database

import (
	"context"
	"log"
	"os"
	"sync"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// DBName holds the student directory and the attendance ledger.
const DBName = "libraryDB"

var (
	client     *mongo.Client
	once       sync.Once // ConnectMongoDB must only run once
	connectErr error

	StudentCollection    *mongo.Collection
	AttendanceCollection *mongo.Collection
)

// ConnectMongoDB establishes the process-wide MongoDB connection. Safe to
// call from multiple init paths; only the first call connects.
func ConnectMongoDB() error {
	err := godotenv.Load()
	if err != nil {
		log.Println("⚠️ Warning: No .env file found")
	}

	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		log.Fatal("❌ MONGO_URI environment variable not set. Please create a .env file and set it.")
	}

	once.Do(func() {
		clientOptions := options.Client().ApplyURI(mongoURI)

		client, connectErr = mongo.Connect(context.TODO(), clientOptions)
		if connectErr != nil {
			log.Fatal("❌ Failed to connect to MongoDB:", connectErr)
			return
		}

		connectErr = client.Ping(context.TODO(), readpref.Primary())
		if connectErr != nil {
			log.Fatal("❌ MongoDB ping failed:", connectErr)
			return
		}

		log.Println("✅ MongoDB connected successfully")

		StudentCollection = client.Database(DBName).Collection("students")
		AttendanceCollection = client.Database(DBName).Collection("attendances")

		ensureStudentIndexes()
	})

	return connectErr
}

// ensureStudentIndexes backs the pre-insert duplicate check in the student
// service with unique indexes, so a concurrent double-registration loses at
// the database instead of slipping through.
func ensureStudentIndexes() {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "rollNumber", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "cardId", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}

	if _, err := StudentCollection.Indexes().CreateMany(context.TODO(), indexes); err != nil {
		log.Println("⚠️ Failed to create student indexes:", err)
	}
}

// GetCollection returns a collection handle from the shared client.
func GetCollection(dbName, collectionName string) *mongo.Collection {
	if client == nil {
		log.Fatal("❌ MongoDB client is nil")
	}
	return client.Database(dbName).Collection(collectionName)
}
