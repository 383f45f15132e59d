package services

import (
	"context"
	"time"

	"github.com/TechnovaTech/mookala-main-sub001/models"
)

// FollowStore defines the persistence operations the follow reconciliation
// workflow needs. Implementations return ErrNotFound for missing documents.
type FollowStore interface {
	// FindArtistByRef resolves an artist by artist_id or by phone.
	FindArtistByRef(ctx context.Context, ref string) (*models.Artist, error)

	// UserFollows reports whether a user with the given phone currently has
	// the artist in their followed_artists set.
	UserFollows(ctx context.Context, userPhone string, artistID string) (bool, error)

	// AddFollowedArtist adds the artist to the user's set, creating the user
	// document if it does not exist yet.
	AddFollowedArtist(ctx context.Context, userPhone string, artistID string) error

	// RemoveFollowedArtist removes the artist from the user's set.
	RemoveFollowedArtist(ctx context.Context, userPhone string, artistID string) error

	// CountFollowers counts user documents whose followed_artists set
	// contains the artist.
	CountFollowers(ctx context.Context, artistID string) (int64, error)

	// SetFollowerCount writes the denormalized count onto the artist document.
	SetFollowerCount(ctx context.Context, artistID string, count int64) error
}

// EventStore defines the persistence operations the booking lifecycle needs.
type EventStore interface {
	FindEventByID(ctx context.Context, eventID string) (*models.Event, error)

	// SetArtistResponse records the artist's accept/reject answer. It is a
	// plain overwrite; re-recording a response is permitted.
	SetArtistResponse(ctx context.Context, eventID string, response string, respondedAt time.Time) error

	// UpdateEventStatus moves an event from one review status to another.
	// It reports false when the event exists but is not in the expected
	// current status.
	UpdateEventStatus(ctx context.Context, eventID string, from string, to string) (bool, error)

	// FindEventsByOrganizerPhone returns the organizer's events, newest first.
	FindEventsByOrganizerPhone(ctx context.Context, phone string) ([]models.Event, error)
}
