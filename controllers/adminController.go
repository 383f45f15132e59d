package controllers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/TechnovaTech/mookala-main-sub001/database"
	"github.com/TechnovaTech/mookala-main-sub001/helpers"
	"github.com/TechnovaTech/mookala-main-sub001/models"
	"github.com/TechnovaTech/mookala-main-sub001/services"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	adminArtistCollection *mongo.Collection
	adminEventCollection  *mongo.Collection
	adminUserCollection   *mongo.Collection
)

func InitAdminController() {
	adminArtistCollection = database.OpenCollection(database.Client, "artists")
	adminEventCollection = database.OpenCollection(database.Client, "events")
	adminUserCollection = database.OpenCollection(database.Client, "users")
}

// GetPendingEvents lists the admin review queue, oldest submission first
func GetPendingEvents() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
		cursor, err := adminEventCollection.Find(ctx, bson.M{"status": models.EventStatusPending}, opts)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch pending events"})
			return
		}
		defer cursor.Close(ctx)

		var events []models.Event
		if err = cursor.All(ctx, &events); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode events"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"events": events})
	}
}

// ApproveEvent moves a pending event to approved
func ApproveEvent() gin.HandlerFunc {
	return reviewEvent(models.EventStatusApproved, "Event approved")
}

// RejectEvent moves a pending event to rejected
func RejectEvent() gin.HandlerFunc {
	return reviewEvent(models.EventStatusRejected, "Event rejected")
}

func reviewEvent(decision string, message string) gin.HandlerFunc {
	return func(c *gin.Context) {
		eventID := c.Param("event_id")

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		err := bookingService.ReviewEvent(ctx, eventID, decision)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrNotFound):
				c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Event not found"})
			case errors.Is(err, services.ErrInvalidArgument):
				c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Something went wrong"})
			}
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "message": message})
	}
}

// ImportArtists bulk-creates artists from a JSON array (Admin only)
func ImportArtists() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		var artists []models.Artist
		if err := c.ShouldBindJSON(&artists); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if len(artists) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No artists to import"})
			return
		}

		now := time.Now()
		docs := make([]interface{}, 0, len(artists))
		for i := range artists {
			if err := validate.Struct(artists[i]); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}

			artists[i].ID = primitive.NewObjectID()
			artists[i].Artist_id = artists[i].ID.Hex()
			artists[i].FollowerCount = 0
			artists[i].Created_at = &now
			artists[i].Updated_at = &now
			docs = append(docs, artists[i])
		}

		result, err := adminArtistCollection.InsertMany(ctx, docs)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to import artists"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"message":  "Artists imported successfully",
			"imported": len(result.InsertedIDs),
		})
	}
}

// UploadArtistImage uploads an artist photo to Cloudinary (Admin only)
func UploadArtistImage() gin.HandlerFunc {
	return uploadImage("artist_id", "artists", "image_url", "Artist")
}

// UploadEventBanner uploads an event banner to Cloudinary (Admin only)
func UploadEventBanner() gin.HandlerFunc {
	return uploadImage("event_id", "events", "banner_url", "Event")
}

func uploadImage(param string, collection string, field string, label string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param(param)

		file, fileHeader, err := c.Request.FormFile("image")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "image file is required"})
			return
		}
		defer file.Close()

		url, err := helpers.UploadImage(file, fileHeader, "mookala/"+collection)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload image"})
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		coll := database.OpenCollection(database.Client, collection)
		update := bson.M{"$set": bson.M{field: url, "updated_at": time.Now()}}

		result, err := coll.UpdateOne(ctx, bson.M{param: id}, update)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save image URL"})
			return
		}
		if result.MatchedCount == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": label + " not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": label + " image uploaded", "url": url})
	}
}

// GetPlatformStats returns collection counts for the admin dashboard
func GetPlatformStats() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		userCount, err := adminUserCollection.CountDocuments(ctx, bson.M{})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count users"})
			return
		}

		artistCount, err := adminArtistCollection.CountDocuments(ctx, bson.M{})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count artists"})
			return
		}

		eventCount, err := adminEventCollection.CountDocuments(ctx, bson.M{})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count events"})
			return
		}

		pendingCount, err := adminEventCollection.CountDocuments(ctx, bson.M{"status": models.EventStatusPending})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count pending events"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"users":          userCount,
			"artists":        artistCount,
			"events":         eventCount,
			"pending_events": pendingCount,
		})
	}
}
