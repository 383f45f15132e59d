package database

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var Client *mongo.Client

func InitDB() {
	mongoURI := os.Getenv("MONGODB_URL")
	if mongoURI == "" {
		log.Fatal("❌ MONGODB_URL not found in environment variables")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	clientOptions := options.Client().
		ApplyURI(mongoURI).
		SetServerSelectionTimeout(60 * time.Second).
		SetConnectTimeout(60 * time.Second)

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		log.Fatalf("❌ [InitDB] Error connecting to MongoDB: %v", err)
	}

	err = client.Ping(ctx, nil)
	if err != nil {
		log.Fatalf("❌ [InitDB] MongoDB ping failed: %v", err)
	}

	fmt.Println("🚀 MongoDB connected successfully")
	Client = client
}

// General method where you specify DB name
func GetCollection(dbName string, collectionName string) *mongo.Collection {
	if Client == nil {
		log.Fatal("❌ [GetCollection] MongoDB Client is not initialized. Call InitDB() first.")
	}
	return Client.Database(dbName).Collection(collectionName)
}

// Shortcut always using the "mookala" DB
func OpenCollection(client *mongo.Client, collectionName string) *mongo.Collection {
	if client == nil {
		log.Fatal("❌ [OpenCollection] MongoDB Client is not initialized. Call InitDB() first.")
	}
	return client.Database("mookala").Collection(collectionName)
}
