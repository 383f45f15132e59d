package repository

import (
	"context"
	"time"

	"github.com/TechnovaTech/mookala-main-sub001/database"
	"github.com/TechnovaTech/mookala-main-sub001/models"
	"github.com/TechnovaTech/mookala-main-sub001/services"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EventRepository is the MongoDB implementation of services.EventStore.
type EventRepository struct {
	events *mongo.Collection
}

func NewEventRepository(client *mongo.Client) *EventRepository {
	return &EventRepository{
		events: database.OpenCollection(client, "events"),
	}
}

func (r *EventRepository) FindEventByID(ctx context.Context, eventID string) (*models.Event, error) {
	var event models.Event
	err := r.events.FindOne(ctx, bson.M{"event_id": eventID}).Decode(&event)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, services.ErrNotFound
		}
		return nil, err
	}
	return &event, nil
}

func (r *EventRepository) SetArtistResponse(ctx context.Context, eventID string, response string, respondedAt time.Time) error {
	update := bson.M{"$set": bson.M{
		"artist_response":     response,
		"artist_responded_at": respondedAt,
		"updated_at":          time.Now(),
	}}

	result, err := r.events.UpdateOne(ctx, bson.M{"event_id": eventID}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return services.ErrNotFound
	}
	return nil
}

// UpdateEventStatus matches on both the event id and the expected current
// status, so a concurrent review loses cleanly instead of overwriting.
func (r *EventRepository) UpdateEventStatus(ctx context.Context, eventID string, from string, to string) (bool, error) {
	filter := bson.M{"event_id": eventID, "status": from}
	update := bson.M{"$set": bson.M{
		"status":     to,
		"updated_at": time.Now(),
	}}

	result, err := r.events.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, err
	}
	if result.MatchedCount > 0 {
		return true, nil
	}

	// Distinguish "already reviewed" from "no such event".
	count, err := r.events.CountDocuments(ctx, bson.M{"event_id": eventID})
	if err != nil {
		return false, err
	}
	if count == 0 {
		return false, services.ErrNotFound
	}
	return false, nil
}

func (r *EventRepository) FindEventsByOrganizerPhone(ctx context.Context, phone string) ([]models.Event, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.events.Find(ctx, bson.M{"organizer_phone": phone}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var events []models.Event
	if err := cursor.All(ctx, &events); err != nil {
		return nil, err
	}
	return events, nil
}

var _ services.EventStore = (*EventRepository)(nil)
