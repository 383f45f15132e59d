package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/TechnovaTech/mookala-main-sub001/models"
	"github.com/TechnovaTech/mookala-main-sub001/services"
)

// fakeStore backs the handlers in tests instead of MongoDB.
type fakeStore struct {
	artists map[string]*models.Artist
	users   map[string]map[string]bool
	events  map[string]*models.Event
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		artists: make(map[string]*models.Artist),
		users:   make(map[string]map[string]bool),
		events:  make(map[string]*models.Event),
	}
}

func (f *fakeStore) FindArtistByRef(ctx context.Context, ref string) (*models.Artist, error) {
	if artist, ok := f.artists[ref]; ok {
		return artist, nil
	}
	for _, artist := range f.artists {
		if artist.Phone != nil && *artist.Phone == ref {
			return artist, nil
		}
	}
	return nil, services.ErrNotFound
}

func (f *fakeStore) UserFollows(ctx context.Context, userPhone string, artistID string) (bool, error) {
	return f.users[userPhone][artistID], nil
}

func (f *fakeStore) AddFollowedArtist(ctx context.Context, userPhone string, artistID string) error {
	if f.users[userPhone] == nil {
		f.users[userPhone] = make(map[string]bool)
	}
	f.users[userPhone][artistID] = true
	return nil
}

func (f *fakeStore) RemoveFollowedArtist(ctx context.Context, userPhone string, artistID string) error {
	delete(f.users[userPhone], artistID)
	return nil
}

func (f *fakeStore) CountFollowers(ctx context.Context, artistID string) (int64, error) {
	var count int64
	for _, followed := range f.users {
		if followed[artistID] {
			count++
		}
	}
	return count, nil
}

func (f *fakeStore) SetFollowerCount(ctx context.Context, artistID string, count int64) error {
	if artist, ok := f.artists[artistID]; ok {
		artist.FollowerCount = count
	}
	return nil
}

func (f *fakeStore) FindEventByID(ctx context.Context, eventID string) (*models.Event, error) {
	event, ok := f.events[eventID]
	if !ok {
		return nil, services.ErrNotFound
	}
	copied := *event
	return &copied, nil
}

func (f *fakeStore) SetArtistResponse(ctx context.Context, eventID string, response string, respondedAt time.Time) error {
	event, ok := f.events[eventID]
	if !ok {
		return services.ErrNotFound
	}
	event.ArtistResponse = response
	event.ArtistRespondedAt = &respondedAt
	return nil
}

func (f *fakeStore) UpdateEventStatus(ctx context.Context, eventID string, from string, to string) (bool, error) {
	event, ok := f.events[eventID]
	if !ok {
		return false, services.ErrNotFound
	}
	if event.Status != from {
		return false, nil
	}
	event.Status = to
	return true, nil
}

func (f *fakeStore) FindEventsByOrganizerPhone(ctx context.Context, phone string) ([]models.Event, error) {
	var events []models.Event
	for _, event := range f.events {
		if event.OrganizerPhone == phone {
			events = append(events, *event)
		}
	}
	return events, nil
}

// setupFollowTest wires the follow routes to a fake-backed service.
func setupFollowTest(t *testing.T) (*gin.Engine, *fakeStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := newFakeStore()
	followService = services.NewFollowService(store)

	router := gin.New()
	router.POST("/artists/follow", FollowArtist())
	router.GET("/artists/follower-count", GetFollowerCount())
	router.GET("/user/follow-status", CheckFollowStatus())
	return router, store
}

func postJSON(router *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	payload, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func getJSON(router *gin.Engine, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestFollowArtistEndpoint(t *testing.T) {
	router, store := setupFollowTest(t)
	phone := "8000000001"
	name := "Test Artist"
	store.artists["a1"] = &models.Artist{Artist_id: "a1", Name: &name, Phone: &phone}

	w := postJSON(router, "/artists/follow", map[string]string{
		"artistId":  "a1",
		"userPhone": "9000000001",
		"action":    "follow",
	})

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Success       bool   `json:"success"`
		FollowerCount int64  `json:"followerCount"`
		IsFollowing   bool   `json:"isFollowing"`
		Message       string `json:"message"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if !resp.Success || resp.FollowerCount != 1 || !resp.IsFollowing {
		t.Errorf("got %+v, want success with count 1 and isFollowing", resp)
	}
}

func TestFollowArtistEndpointMissingFields(t *testing.T) {
	router, _ := setupFollowTest(t)

	w := postJSON(router, "/artists/follow", map[string]string{
		"artistId": "a1",
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestFollowArtistEndpointUnknownArtist(t *testing.T) {
	router, _ := setupFollowTest(t)

	w := postJSON(router, "/artists/follow", map[string]string{
		"artistId":  "nope",
		"userPhone": "9000000001",
		"action":    "follow",
	})
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

func TestFollowArtistEndpointBadAction(t *testing.T) {
	router, store := setupFollowTest(t)
	phone := "8000000001"
	store.artists["a1"] = &models.Artist{Artist_id: "a1", Phone: &phone}

	w := postJSON(router, "/artists/follow", map[string]string{
		"artistId":  "a1",
		"userPhone": "9000000001",
		"action":    "toggle",
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestFollowerCountEndpoint(t *testing.T) {
	router, store := setupFollowTest(t)
	phone := "8000000001"
	store.artists["a1"] = &models.Artist{Artist_id: "a1", Phone: &phone}
	store.AddFollowedArtist(context.Background(), "9000000001", "a1")
	store.AddFollowedArtist(context.Background(), "9000000002", "a1")

	w := getJSON(router, "/artists/follower-count?artistId=a1")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var resp struct {
		Success       bool  `json:"success"`
		FollowerCount int64 `json:"followerCount"`
	}
	json.Unmarshal(w.Body.Bytes(), &resp)
	if !resp.Success || resp.FollowerCount != 2 {
		t.Errorf("got %+v, want success with count 2", resp)
	}

	if w := getJSON(router, "/artists/follower-count"); w.Code != http.StatusBadRequest {
		t.Errorf("missing artistId: status = %d, want 400", w.Code)
	}
	if w := getJSON(router, "/artists/follower-count?artistId=nope"); w.Code != http.StatusNotFound {
		t.Errorf("unknown artist: status = %d, want 404", w.Code)
	}
}

func TestFollowStatusEndpoint(t *testing.T) {
	router, store := setupFollowTest(t)
	phone := "8000000001"
	store.artists["a1"] = &models.Artist{Artist_id: "a1", Phone: &phone}
	store.AddFollowedArtist(context.Background(), "9000000001", "a1")

	w := getJSON(router, "/user/follow-status?artistId=a1&userPhone=9000000001")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var resp struct {
		Success     bool `json:"success"`
		IsFollowing bool `json:"isFollowing"`
	}
	json.Unmarshal(w.Body.Bytes(), &resp)
	if !resp.Success || !resp.IsFollowing {
		t.Errorf("got %+v, want success with isFollowing", resp)
	}

	w = getJSON(router, "/user/follow-status?artistId=a1&userPhone=9000000099")
	json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.IsFollowing {
		t.Error("non-follower reported as following")
	}

	if w := getJSON(router, "/user/follow-status?artistId=a1"); w.Code != http.StatusBadRequest {
		t.Errorf("missing userPhone: status = %d, want 400", w.Code)
	}
}
