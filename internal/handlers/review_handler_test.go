package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReviewCreate(t *testing.T) {
	r, _ := newTestRouter(t)
	clientID, barberID, serviceID := seedBooking(t, r)
	ap := createAppointment(t, r, clientID, barberID, serviceID, "2024-03-01", "10:00")

	w := doJSON(t, r, http.MethodPost, "/reviews", map[string]any{
		"client_id":      clientID,
		"barber_id":      barberID,
		"appointment_id": ap["id"],
		"rating":         5,
		"comment":        "Great cut",
	})

	if w.Code != http.StatusCreated {
		t.Fatalf("unexpected status %d: %s", w.Code, w.Body.String())
	}

	body := decodeMap(t, w)
	assert.EqualValues(t, 5, body["rating"])
	assert.Equal(t, "Great cut", body["comment"])
	assert.NotEmpty(t, body["date"])

	// Nested one level deep, with flat references only.
	client, ok := body["client"].(map[string]any)
	if !ok {
		t.Fatalf("expected nested client, got %v", body["client"])
	}
	assert.Equal(t, "client@example.com", client["email"])
	assert.NotContains(t, client, "reviews")
}

func TestReviewCreateMissingField(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/reviews", map[string]any{
		"client_id":      1,
		"barber_id":      1,
		"appointment_id": 1,
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Missing required field: rating", errorMessage(t, w))
}

func TestReviewCreateEmptyPayload(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/reviews", map[string]any{})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "No input provided", errorMessage(t, w))
}

func TestReviewList(t *testing.T) {
	r, _ := newTestRouter(t)
	clientID, barberID, serviceID := seedBooking(t, r)
	ap := createAppointment(t, r, clientID, barberID, serviceID, "2024-03-01", "10:00")

	create := doJSON(t, r, http.MethodPost, "/reviews", map[string]any{
		"client_id":      clientID,
		"barber_id":      barberID,
		"appointment_id": ap["id"],
		"rating":         4,
	})
	if create.Code != http.StatusCreated {
		t.Fatalf("create review: %s", create.Body.String())
	}

	w := doJSON(t, r, http.MethodGet, "/reviews", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	reviews := decodeList(t, w)
	if len(reviews) != 1 {
		t.Fatalf("expected 1 review, got %d", len(reviews))
	}
	assert.EqualValues(t, 4, reviews[0]["rating"])
}
