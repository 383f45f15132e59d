package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Event review status set by the admin back office.
const (
	EventStatusPending  = "pending"
	EventStatusApproved = "approved"
	EventStatusRejected = "rejected"
)

// Response recorded by an assigned artist after admin approval.
// An empty string means the artist has not responded yet.
const (
	ArtistResponseAccepted = "accepted"
	ArtistResponseRejected = "rejected"
)

type Event struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Title             *string            `bson:"title" json:"title" validate:"required,min=2,max=200"`
	Description       *string            `bson:"description" json:"description"`
	Venue             *string            `bson:"venue" json:"venue" validate:"required,min=2,max=200"`
	City              *string            `bson:"city" json:"city"`
	Date              *time.Time         `bson:"date" json:"date" validate:"required"`
	TicketPrice       float64            `bson:"ticket_price" json:"ticket_price"`
	OrganizerID       string             `bson:"organizer_id" json:"organizer_id,omitempty"`
	OrganizerPhone    string             `bson:"organizer_phone" json:"organizer_phone,omitempty"`
	Artists           []string           `bson:"artists,omitempty" json:"artists,omitempty"`
	Status            string             `bson:"status" json:"status"`
	ArtistResponse    string             `bson:"artist_response,omitempty" json:"artist_response,omitempty"`
	ArtistRespondedAt *time.Time         `bson:"artist_responded_at,omitempty" json:"artist_responded_at,omitempty"`
	BannerURL         *string            `bson:"banner_url,omitempty" json:"banner_url,omitempty"`
	Created_at        *time.Time         `bson:"created_at" json:"created_at,omitempty"`
	Updated_at        *time.Time         `bson:"updated_at" json:"updated_at,omitempty"`
	Event_id          string             `bson:"event_id" json:"event_id,omitempty"`

	// Derived for the organizer's view, never stored.
	BookingStatus string `bson:"-" json:"bookingStatus,omitempty"`
}
