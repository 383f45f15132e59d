package controllers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/TechnovaTech/mookala-main-sub001/database"
	"github.com/TechnovaTech/mookala-main-sub001/models"
	"github.com/TechnovaTech/mookala-main-sub001/repository"
	"github.com/TechnovaTech/mookala-main-sub001/services"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var (
	artistCollection *mongo.Collection
	followService    *services.FollowService
)

func InitArtistController() {
	artistCollection = database.GetCollection("mookala", "artists")
	followService = services.NewFollowService(repository.NewFollowRepository(database.Client))
}

// GetAllArtists retrieves all artists
func GetAllArtists() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		var artists []models.Artist
		cursor, err := artistCollection.Find(ctx, bson.M{})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch artists"})
			return
		}
		defer cursor.Close(ctx)

		if err = cursor.All(ctx, &artists); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode artists"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"artists": artists})
	}
}

// GetArtistByID retrieves a single artist by ID
func GetArtistByID() gin.HandlerFunc {
	return func(c *gin.Context) {
		artistID := c.Param("artist_id")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		var artist models.Artist
		err := artistCollection.FindOne(ctx, bson.M{"artist_id": artistID}).Decode(&artist)
		if err != nil {
			if err == mongo.ErrNoDocuments {
				c.JSON(http.StatusNotFound, gin.H{"error": "Artist not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch artist"})
			return
		}

		c.JSON(http.StatusOK, artist)
	}
}

type followRequest struct {
	ArtistID  string `json:"artistId"`
	UserPhone string `json:"userPhone"`
	Action    string `json:"action"`
}

// FollowArtist toggles a follow for the given phone number and returns the
// recomputed follower count. The phone is taken as-is from the request body.
func FollowArtist() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req followRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
			return
		}

		if req.ArtistID == "" || req.UserPhone == "" || req.Action == "" {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "artistId, userPhone and action are required"})
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		result, err := followService.SetFollowState(ctx, req.ArtistID, req.UserPhone, req.Action)
		if err != nil {
			respondFollowError(c, err)
			return
		}

		message := "Successfully followed artist"
		if req.Action == services.ActionUnfollow {
			message = "Successfully unfollowed artist"
		}

		c.JSON(http.StatusOK, gin.H{
			"success":       true,
			"followerCount": result.FollowerCount,
			"isFollowing":   result.IsFollowing,
			"message":       message,
		})
	}
}

// GetFollowerCount returns the follower count for an artist, recounted from
// the user documents on every call.
func GetFollowerCount() gin.HandlerFunc {
	return func(c *gin.Context) {
		artistID := c.Query("artistId")
		if artistID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "artistId is required"})
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		count, err := followService.GetFollowerCount(ctx, artistID)
		if err != nil {
			respondFollowError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "followerCount": count})
	}
}

// CheckFollowStatus reports whether the given phone follows the artist
func CheckFollowStatus() gin.HandlerFunc {
	return func(c *gin.Context) {
		artistID := c.Query("artistId")
		userPhone := c.Query("userPhone")
		if artistID == "" || userPhone == "" {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "artistId and userPhone are required"})
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		following, err := followService.IsFollowing(ctx, artistID, userPhone)
		if err != nil {
			respondFollowError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "isFollowing": following})
	}
}

func respondFollowError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Artist not found"})
	case errors.Is(err, services.ErrInvalidArgument):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Something went wrong"})
	}
}

// CreateArtist creates a new artist (Admin only)
func CreateArtist() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		var artist models.Artist

		if err := c.ShouldBindJSON(&artist); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		// validation
		if err := validate.Struct(artist); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		count, err := artistCollection.CountDocuments(ctx, bson.M{"phone": artist.Phone})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check phone"})
			return
		}
		if count > 0 {
			c.JSON(http.StatusConflict, gin.H{"error": "An artist with this phone already exists"})
			return
		}

		artist.ID = primitive.NewObjectID()
		artist.Artist_id = artist.ID.Hex()
		artist.FollowerCount = 0

		now := time.Now()
		artist.Created_at = &now
		artist.Updated_at = &now

		_, err = artistCollection.InsertOne(ctx, artist)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"message": "Artist created successfully",
			"artist":  artist,
		})
	}
}

// UpdateArtist updates artist information (Admin only)
func UpdateArtist() gin.HandlerFunc {
	return func(c *gin.Context) {
		artistID := c.Param("artist_id")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		// First, check if artist exists
		var existingArtist models.Artist
		err := artistCollection.FindOne(ctx, bson.M{"artist_id": artistID}).Decode(&existingArtist)
		if err != nil {
			if err == mongo.ErrNoDocuments {
				c.JSON(http.StatusNotFound, gin.H{"error": "Artist not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch artist"})
			return
		}

		var updateArtist models.Artist
		if err := c.BindJSON(&updateArtist); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		// Build update document with only provided fields
		updateData := bson.M{}

		if updateArtist.Name != nil {
			updateData["name"] = updateArtist.Name
		}

		if updateArtist.Bio != nil {
			updateData["bio"] = updateArtist.Bio
		}

		if updateArtist.Genre != nil && len(updateArtist.Genre) > 0 {
			updateData["genre"] = updateArtist.Genre
		}

		if updateArtist.ImageURL != nil {
			updateData["image_url"] = updateArtist.ImageURL
		}

		if updateArtist.SocialLinks != nil {
			updateData["social_links"] = updateArtist.SocialLinks
		}

		updateData["verified"] = updateArtist.Verified

		now := time.Now()
		updateData["updated_at"] = now

		update := bson.M{"$set": updateData}
		result, err := artistCollection.UpdateOne(ctx, bson.M{"artist_id": artistID}, update)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update artist"})
			return
		}

		if result.ModifiedCount == 0 {
			c.JSON(http.StatusOK, gin.H{"message": "No changes made to artist"})
			return
		}

		var updatedArtist models.Artist
		err = artistCollection.FindOne(ctx, bson.M{"artist_id": artistID}).Decode(&updatedArtist)
		if err != nil {
			c.JSON(http.StatusOK, gin.H{"message": "Artist updated successfully"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Artist updated successfully",
			"artist":  updatedArtist,
		})
	}
}

// DeleteArtist deletes an artist (Admin only)
func DeleteArtist() gin.HandlerFunc {
	return func(c *gin.Context) {
		artistID := c.Param("artist_id")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		result, err := artistCollection.DeleteOne(ctx, bson.M{"artist_id": artistID})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete artist"})
			return
		}

		if result.DeletedCount == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Artist not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Artist deleted successfully"})
	}
}
