package services

import (
	"context"
	"sort"
	"time"

	"github.com/TechnovaTech/mookala-main-sub001/models"
)

// memStore is an in-memory stand-in for the Mongo-backed repositories,
// implementing both FollowStore and EventStore. Mutation counters let
// tests assert that no-op calls really skip writes.
type memStore struct {
	artists map[string]*models.Artist          // keyed by artist_id
	users   map[string]map[string]bool         // phone -> followed artist ids
	events  map[string]*models.Event           // keyed by event_id

	setMutations int // AddFollowedArtist + RemoveFollowedArtist calls
	countWrites  int // SetFollowerCount calls
}

func newMemStore() *memStore {
	return &memStore{
		artists: make(map[string]*models.Artist),
		users:   make(map[string]map[string]bool),
		events:  make(map[string]*models.Event),
	}
}

func (m *memStore) addArtist(id string, phone string) *models.Artist {
	name := "Artist " + id
	artist := &models.Artist{Artist_id: id, Name: &name, Phone: &phone}
	m.artists[id] = artist
	return artist
}

func (m *memStore) addEvent(event models.Event) *models.Event {
	copied := event
	m.events[event.Event_id] = &copied
	return &copied
}

func (m *memStore) FindArtistByRef(ctx context.Context, ref string) (*models.Artist, error) {
	if artist, ok := m.artists[ref]; ok {
		return artist, nil
	}
	for _, artist := range m.artists {
		if artist.Phone != nil && *artist.Phone == ref {
			return artist, nil
		}
	}
	return nil, ErrNotFound
}

func (m *memStore) UserFollows(ctx context.Context, userPhone string, artistID string) (bool, error) {
	return m.users[userPhone][artistID], nil
}

func (m *memStore) AddFollowedArtist(ctx context.Context, userPhone string, artistID string) error {
	m.setMutations++
	if m.users[userPhone] == nil {
		m.users[userPhone] = make(map[string]bool)
	}
	m.users[userPhone][artistID] = true
	return nil
}

func (m *memStore) RemoveFollowedArtist(ctx context.Context, userPhone string, artistID string) error {
	m.setMutations++
	delete(m.users[userPhone], artistID)
	return nil
}

func (m *memStore) CountFollowers(ctx context.Context, artistID string) (int64, error) {
	var count int64
	for _, followed := range m.users {
		if followed[artistID] {
			count++
		}
	}
	return count, nil
}

func (m *memStore) SetFollowerCount(ctx context.Context, artistID string, count int64) error {
	m.countWrites++
	if artist, ok := m.artists[artistID]; ok {
		artist.FollowerCount = count
	}
	return nil
}

func (m *memStore) FindEventByID(ctx context.Context, eventID string) (*models.Event, error) {
	event, ok := m.events[eventID]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *event
	return &copied, nil
}

func (m *memStore) SetArtistResponse(ctx context.Context, eventID string, response string, respondedAt time.Time) error {
	event, ok := m.events[eventID]
	if !ok {
		return ErrNotFound
	}
	event.ArtistResponse = response
	event.ArtistRespondedAt = &respondedAt
	return nil
}

func (m *memStore) UpdateEventStatus(ctx context.Context, eventID string, from string, to string) (bool, error) {
	event, ok := m.events[eventID]
	if !ok {
		return false, ErrNotFound
	}
	if event.Status != from {
		return false, nil
	}
	event.Status = to
	return true, nil
}

func (m *memStore) FindEventsByOrganizerPhone(ctx context.Context, phone string) ([]models.Event, error) {
	var events []models.Event
	for _, event := range m.events {
		if event.OrganizerPhone == phone {
			events = append(events, *event)
		}
	}
	sort.Slice(events, func(i, j int) bool {
		return events[i].Event_id < events[j].Event_id
	})
	return events, nil
}

var (
	_ FollowStore = (*memStore)(nil)
	_ EventStore  = (*memStore)(nil)
)
