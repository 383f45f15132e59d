package services

import (
	"context"
	"fmt"
	"time"

	"github.com/TechnovaTech/mookala-main-sub001/models"
)

// Booking status shown to an organizer for their own event. Derived on
// read from the event's review status and the assigned artist's response,
// never stored.
const (
	BookingPending        = "pending"
	BookingApproved       = "approved"
	BookingRejected       = "rejected"
	BookingArtistPending  = "artist_pending"
	BookingArtistDeclined = "artist_declined"
	BookingConfirmed      = "confirmed"
)

// DeriveBookingStatus maps an event to its displayable booking status.
// Cases are ordered; the confirmed/declined/artist_pending branches all
// require at least one assigned artist, so an approved event with an
// empty artist list reads as plain "approved" no matter what
// artist_response says.
func DeriveBookingStatus(event models.Event) string {
	hasArtists := len(event.Artists) > 0

	switch {
	case event.Status == models.EventStatusRejected:
		return BookingRejected
	case event.Status == models.EventStatusApproved && hasArtists && event.ArtistResponse == models.ArtistResponseAccepted:
		return BookingConfirmed
	case event.Status == models.EventStatusApproved && hasArtists && event.ArtistResponse == models.ArtistResponseRejected:
		return BookingArtistDeclined
	case event.Status == models.EventStatusApproved && hasArtists:
		return BookingArtistPending
	case event.Status == models.EventStatusApproved:
		return BookingApproved
	default:
		return BookingPending
	}
}

// BookingService tracks an event through admin review and the assigned
// artist's accept/reject answer.
type BookingService struct {
	store EventStore
}

func NewBookingService(store EventStore) *BookingService {
	return &BookingService{store: store}
}

// RecordArtistResponse stores the artist's answer on the event. The field
// is written unconditionally, so a second response overwrites the first.
func (s *BookingService) RecordArtistResponse(ctx context.Context, eventID string, response string) error {
	if eventID == "" {
		return fmt.Errorf("%w: eventId is required", ErrInvalidArgument)
	}
	if response != models.ArtistResponseAccepted && response != models.ArtistResponseRejected {
		return fmt.Errorf("%w: response must be 'accepted' or 'rejected'", ErrInvalidArgument)
	}

	if _, err := s.store.FindEventByID(ctx, eventID); err != nil {
		return err
	}

	return s.store.SetArtistResponse(ctx, eventID, response, time.Now())
}

// ReviewEvent applies the admin's approve/reject decision. Review moves
// forward only: an event that already left "pending" cannot be reviewed
// again.
func (s *BookingService) ReviewEvent(ctx context.Context, eventID string, decision string) error {
	if eventID == "" {
		return fmt.Errorf("%w: eventId is required", ErrInvalidArgument)
	}
	if decision != models.EventStatusApproved && decision != models.EventStatusRejected {
		return fmt.Errorf("%w: decision must be 'approved' or 'rejected'", ErrInvalidArgument)
	}

	moved, err := s.store.UpdateEventStatus(ctx, eventID, models.EventStatusPending, decision)
	if err != nil {
		return err
	}
	if !moved {
		return fmt.Errorf("%w: event has already been reviewed", ErrInvalidArgument)
	}
	return nil
}

// EventsForOrganizer returns the organizer's events, newest first, with
// the derived booking status attached to each.
func (s *BookingService) EventsForOrganizer(ctx context.Context, phone string) ([]models.Event, error) {
	if phone == "" {
		return nil, fmt.Errorf("%w: phone is required", ErrInvalidArgument)
	}

	events, err := s.store.FindEventsByOrganizerPhone(ctx, phone)
	if err != nil {
		return nil, err
	}

	for i := range events {
		events[i].BookingStatus = DeriveBookingStatus(events[i])
	}
	return events, nil
}

// StatusOf returns the derived booking status for a single event.
func (s *BookingService) StatusOf(ctx context.Context, eventID string) (string, error) {
	event, err := s.store.FindEventByID(ctx, eventID)
	if err != nil {
		return "", err
	}
	return DeriveBookingStatus(*event), nil
}
