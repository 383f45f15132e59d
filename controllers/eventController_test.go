package controllers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/TechnovaTech/mookala-main-sub001/models"
	"github.com/TechnovaTech/mookala-main-sub001/services"
)

func setupBookingTest(t *testing.T) (*gin.Engine, *fakeStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := newFakeStore()
	bookingService = services.NewBookingService(store)

	router := gin.New()
	router.POST("/artist/booking-response", ArtistBookingResponse())
	router.GET("/events/user/:phone", GetEventsByUserPhone())
	return router, store
}

func TestBookingResponseEndpoint(t *testing.T) {
	router, store := setupBookingTest(t)
	store.events["e1"] = &models.Event{
		Event_id: "e1",
		Status:   models.EventStatusApproved,
		Artists:  []string{"a1"},
	}

	w := postJSON(router, "/artist/booking-response", map[string]string{
		"eventId":     "e1",
		"artistPhone": "8000000001",
		"response":    "accepted",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	json.Unmarshal(w.Body.Bytes(), &resp)
	if !resp.Success {
		t.Errorf("got %+v, want success", resp)
	}
	if store.events["e1"].ArtistResponse != models.ArtistResponseAccepted {
		t.Errorf("artist_response = %q, want accepted", store.events["e1"].ArtistResponse)
	}
}

func TestBookingResponseEndpointErrors(t *testing.T) {
	router, store := setupBookingTest(t)
	store.events["e1"] = &models.Event{Event_id: "e1", Status: models.EventStatusApproved}

	// Missing fields
	w := postJSON(router, "/artist/booking-response", map[string]string{"eventId": "e1"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("missing fields: status = %d, want 400", w.Code)
	}

	// Unknown event
	w = postJSON(router, "/artist/booking-response", map[string]string{
		"eventId":     "nonexistent-id",
		"artistPhone": "8000000001",
		"response":    "accepted",
	})
	if w.Code != http.StatusNotFound {
		t.Errorf("unknown event: status = %d, want 404", w.Code)
	}

	// Invalid response value
	w = postJSON(router, "/artist/booking-response", map[string]string{
		"eventId":     "e1",
		"artistPhone": "8000000001",
		"response":    "maybe",
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("invalid response: status = %d, want 400", w.Code)
	}
}

func TestEventsByUserPhoneEndpoint(t *testing.T) {
	router, store := setupBookingTest(t)
	store.events["e1"] = &models.Event{
		Event_id:       "e1",
		OrganizerPhone: "7000000001",
		Status:         models.EventStatusApproved,
		Artists:        []string{"a1"},
		ArtistResponse: models.ArtistResponseAccepted,
	}
	store.events["e2"] = &models.Event{
		Event_id:       "e2",
		OrganizerPhone: "7000000001",
		Status:         models.EventStatusPending,
	}

	w := getJSON(router, "/events/user/7000000001")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Success bool `json:"success"`
		Events  []struct {
			EventID       string `json:"event_id"`
			BookingStatus string `json:"bookingStatus"`
		} `json:"events"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if !resp.Success || len(resp.Events) != 2 {
		t.Fatalf("got %+v, want success with 2 events", resp)
	}

	want := map[string]string{
		"e1": services.BookingConfirmed,
		"e2": services.BookingPending,
	}
	for _, event := range resp.Events {
		if event.BookingStatus != want[event.EventID] {
			t.Errorf("event %s bookingStatus = %q, want %q", event.EventID, event.BookingStatus, want[event.EventID])
		}
	}
}

func TestEventsByUserPhoneEmpty(t *testing.T) {
	router, _ := setupBookingTest(t)

	w := getJSON(router, "/events/user/7000000009")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var resp struct {
		Success bool              `json:"success"`
		Events  []json.RawMessage `json:"events"`
	}
	json.Unmarshal(w.Body.Bytes(), &resp)
	if !resp.Success || resp.Events == nil || len(resp.Events) != 0 {
		t.Errorf("got %+v, want success with empty events array", resp)
	}
}
