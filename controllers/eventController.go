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
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	eventCollection *mongo.Collection
	bookingService  *services.BookingService
)

func InitEventController() {
	eventCollection = database.GetCollection("mookala", "events")
	bookingService = services.NewBookingService(repository.NewEventRepository(database.Client))
}

// CreateEvent lets an organizer submit a new event for admin review
func CreateEvent() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		var event models.Event
		if err := c.ShouldBindJSON(&event); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if err := validate.Struct(event); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		event.ID = primitive.NewObjectID()
		event.Event_id = event.ID.Hex()
		event.OrganizerID = c.GetString("user_id")
		event.OrganizerPhone = c.GetString("phone")

		// Every new submission starts in the admin review queue.
		event.Status = models.EventStatusPending
		event.ArtistResponse = ""
		event.ArtistRespondedAt = nil

		now := time.Now()
		event.Created_at = &now
		event.Updated_at = &now

		_, err := eventCollection.InsertOne(ctx, event)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create event"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"message": "Event submitted for review",
			"event":   event,
		})
	}
}

// GetAllEvents lists approved events for the public site, newest first
func GetAllEvents() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
		cursor, err := eventCollection.Find(ctx, bson.M{"status": models.EventStatusApproved}, opts)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch events"})
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

// GetEventByID retrieves a single event with its derived booking status
func GetEventByID() gin.HandlerFunc {
	return func(c *gin.Context) {
		eventID := c.Param("event_id")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		var event models.Event
		err := eventCollection.FindOne(ctx, bson.M{"event_id": eventID}).Decode(&event)
		if err != nil {
			if err == mongo.ErrNoDocuments {
				c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch event"})
			return
		}

		event.BookingStatus = services.DeriveBookingStatus(event)
		c.JSON(http.StatusOK, event)
	}
}

// GetEventsByUserPhone lists an organizer's own events with bookingStatus.
// The phone comes straight from the path; there is no session binding here.
func GetEventsByUserPhone() gin.HandlerFunc {
	return func(c *gin.Context) {
		phone := c.Param("phone")

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		events, err := bookingService.EventsForOrganizer(ctx, phone)
		if err != nil {
			if errors.Is(err, services.ErrInvalidArgument) {
				c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Something went wrong"})
			return
		}

		if events == nil {
			events = []models.Event{}
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "events": events})
	}
}

type bookingResponseRequest struct {
	EventID     string `json:"eventId"`
	ArtistPhone string `json:"artistPhone"`
	Response    string `json:"response"`
}

// ArtistBookingResponse records an artist's accept/reject answer for an
// approved event. The artistPhone field is required but, matching the
// current design, not verified against a session.
func ArtistBookingResponse() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req bookingResponseRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
			return
		}

		if req.EventID == "" || req.ArtistPhone == "" || req.Response == "" {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "eventId, artistPhone and response are required"})
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		err := bookingService.RecordArtistResponse(ctx, req.EventID, req.Response)
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

		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Response recorded"})
	}
}

// DeleteEvent lets an organizer withdraw their own event while it is still
// pending review
func DeleteEvent() gin.HandlerFunc {
	return func(c *gin.Context) {
		eventID := c.Param("event_id")
		organizerID := c.GetString("user_id")

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		filter := bson.M{
			"event_id":     eventID,
			"organizer_id": organizerID,
			"status":       models.EventStatusPending,
		}

		result, err := eventCollection.DeleteOne(ctx, filter)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete event"})
			return
		}

		if result.DeletedCount == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Event not found or no longer pending"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Event deleted successfully"})
	}
}
