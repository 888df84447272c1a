package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppointmentCreate(t *testing.T) {
	r, _ := newTestRouter(t)
	clientID, barberID, serviceID := seedBooking(t, r)

	body := createAppointment(t, r, clientID, barberID, serviceID, "2024-03-01", "10:30")

	assert.NotZero(t, body["id"])
	assert.Equal(t, "Scheduled", body["status"])
	assert.Equal(t, "2024-03-01T10:30:00Z", body["date_time"])

	// Relations come back nested one level deep.
	client, ok := body["client"].(map[string]any)
	if !ok {
		t.Fatalf("expected nested client, got %v", body["client"])
	}
	assert.Equal(t, "client@example.com", client["email"])
	assert.NotContains(t, client, "appointments")

	service, ok := body["service"].(map[string]any)
	if !ok {
		t.Fatalf("expected nested service, got %v", body["service"])
	}
	assert.Equal(t, "Haircut", service["name"])
}

func TestAppointmentCreatePadsTime(t *testing.T) {
	r, _ := newTestRouter(t)
	clientID, barberID, serviceID := seedBooking(t, r)

	padded := createAppointment(t, r, clientID, barberID, serviceID, "2024-03-01", "9:00")
	explicit := createAppointment(t, r, clientID, barberID, serviceID, "2024-03-02", "09:00")

	assert.Equal(t, "2024-03-01T09:00:00Z", padded["date_time"])
	assert.Equal(t, "2024-03-02T09:00:00Z", explicit["date_time"])
}

func TestAppointmentCreateMissingFields(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/appointments", map[string]any{
		"clientId": 1,
		"date":     "2024-03-01",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Missing fields: barberId, serviceId, time", errorMessage(t, w))
}

func TestAppointmentCreateBadDate(t *testing.T) {
	r, _ := newTestRouter(t)
	clientID, barberID, serviceID := seedBooking(t, r)

	w := doJSON(t, r, http.MethodPost, "/appointments", map[string]any{
		"clientId":  clientID,
		"barberId":  barberID,
		"serviceId": serviceID,
		"date":      "01/03/2024",
		"time":      "10:00",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, errorMessage(t, w), "Date/time format error:")
}

func TestAppointmentListByClient(t *testing.T) {
	r, _ := newTestRouter(t)
	clientID, barberID, serviceID := seedBooking(t, r)
	other := createClient(t, r, "other@example.com", "2223334445")

	createAppointment(t, r, clientID, barberID, serviceID, "2024-03-02", "14:00")
	createAppointment(t, r, clientID, barberID, serviceID, "2024-03-01", "10:00")
	createAppointment(t, r, other["id"].(float64), barberID, serviceID, "2024-03-01", "11:00")

	w := doJSON(t, r, http.MethodGet, fmt.Sprintf("/appointments?clientId=%.0f", clientID), nil)

	assert.Equal(t, http.StatusOK, w.Code)
	appts := decodeList(t, w)
	if len(appts) != 2 {
		t.Fatalf("expected 2 appointments, got %d", len(appts))
	}
	// Ordered by date_time ascending.
	assert.Equal(t, "2024-03-01T10:00:00Z", appts[0]["date_time"])
	assert.Equal(t, "2024-03-02T14:00:00Z", appts[1]["date_time"])
}

func TestAppointmentListRequiresClientID(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/appointments", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "clientId query parameter is required", errorMessage(t, w))
}

func TestAppointmentListInvalidClientID(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/appointments?clientId=abc", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid clientId", errorMessage(t, w))
}

func TestAppointmentGet(t *testing.T) {
	r, _ := newTestRouter(t)
	clientID, barberID, serviceID := seedBooking(t, r)
	created := createAppointment(t, r, clientID, barberID, serviceID, "2024-03-01", "10:00")

	w := doJSON(t, r, http.MethodGet, fmt.Sprintf("/appointments/%.0f", created["id"].(float64)), nil)

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeMap(t, w)
	assert.Equal(t, created["id"], body["id"])
	assert.Equal(t, "Scheduled", body["status"])
}

func TestAppointmentGetNotFound(t *testing.T) {
	r, _ := newTestRouter(t)

	for _, path := range []string{"/appointments/9999", "/appointments/abc"} {
		w := doJSON(t, r, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Appointment not found", errorMessage(t, w))
	}
}

func TestAppointmentUpdateStatus(t *testing.T) {
	r, _ := newTestRouter(t)
	clientID, barberID, serviceID := seedBooking(t, r)
	created := createAppointment(t, r, clientID, barberID, serviceID, "2024-03-01", "10:00")
	id := created["id"].(float64)

	w := doJSON(t, r, http.MethodPatch, fmt.Sprintf("/appointments/%.0f", id), map[string]any{
		"status": "Completed",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeMap(t, w)
	assert.Equal(t, "Completed", body["status"])
	// Untouched fields keep their values.
	assert.Equal(t, created["client_id"], body["client_id"])
	assert.Equal(t, created["barber_id"], body["barber_id"])
	assert.Equal(t, created["service_id"], body["service_id"])
	assert.Equal(t, "2024-03-01T10:00:00Z", body["date_time"])
}

func TestAppointmentUpdateDateTime(t *testing.T) {
	r, _ := newTestRouter(t)
	clientID, barberID, serviceID := seedBooking(t, r)
	created := createAppointment(t, r, clientID, barberID, serviceID, "2024-03-01", "10:00")

	w := doJSON(t, r, http.MethodPatch, fmt.Sprintf("/appointments/%.0f", created["id"].(float64)), map[string]any{
		"date_time": "2024-05-02T10:15",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeMap(t, w)
	assert.Equal(t, "2024-05-02T10:15:00Z", body["date_time"])
	assert.Equal(t, "Scheduled", body["status"])
}

func TestAppointmentUpdateEmptyPayload(t *testing.T) {
	r, _ := newTestRouter(t)
	clientID, barberID, serviceID := seedBooking(t, r)
	created := createAppointment(t, r, clientID, barberID, serviceID, "2024-03-01", "10:00")

	w := doJSON(t, r, http.MethodPatch, fmt.Sprintf("/appointments/%.0f", created["id"].(float64)), map[string]any{})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid input", errorMessage(t, w))
}

func TestAppointmentUpdateNotFound(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPatch, "/appointments/9999", map[string]any{
		"status": "Completed",
	})

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Appointment not found", errorMessage(t, w))
}

func TestAppointmentDelete(t *testing.T) {
	r, _ := newTestRouter(t)
	clientID, barberID, serviceID := seedBooking(t, r)
	created := createAppointment(t, r, clientID, barberID, serviceID, "2024-03-01", "10:00")
	path := fmt.Sprintf("/appointments/%.0f", created["id"].(float64))

	w := doJSON(t, r, http.MethodDelete, path, nil)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "Appointment deleted", decodeMap(t, w)["message"])

	after := doJSON(t, r, http.MethodGet, path, nil)
	assert.Equal(t, http.StatusNotFound, after.Code)
	assert.Equal(t, "Appointment not found", errorMessage(t, after))
}

func TestAppointmentDeleteNotFound(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodDelete, "/appointments/9999", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Appointment not found", errorMessage(t, w))
}
