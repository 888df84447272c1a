package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barbershop-api/internal/config"
	dbpkg "github.com/BruksfildServices01/barbershop-api/internal/db"
	"github.com/BruksfildServices01/barbershop-api/internal/routes"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("get sql.DB: %v", err)
	}
	// A single connection keeps every query on the same in-memory database.
	sqlDB.SetMaxOpenConns(1)

	if err := dbpkg.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func newTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()

	gin.SetMode(gin.TestMode)
	db := newTestDB(t)

	r := gin.New()
	routes.RegisterRoutes(r, db, &config.Config{JWTSecret: "test-secret"})
	return r, db
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader = http.NoBody
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeMap(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body %q: %v", w.Body.String(), err)
	}
	return body
}

func decodeList(t *testing.T, w *httptest.ResponseRecorder) []map[string]any {
	t.Helper()

	var body []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body %q: %v", w.Body.String(), err)
	}
	return body
}

func errorMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()

	msg, _ := decodeMap(t, w)["error"].(string)
	return msg
}

// --------- Seed helpers (everything goes through the API) ---------

func createClient(t *testing.T, r *gin.Engine, email, phone string) map[string]any {
	t.Helper()

	w := doJSON(t, r, http.MethodPost, "/clients", map[string]any{
		"name":     "Test Client",
		"email":    email,
		"phone":    phone,
		"password": "secret1",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create client: status %d body %s", w.Code, w.Body.String())
	}
	return decodeMap(t, w)
}

func createBarber(t *testing.T, r *gin.Engine, email, phone string) map[string]any {
	t.Helper()

	w := doJSON(t, r, http.MethodPost, "/barbers", map[string]any{
		"name":      "Test Barber",
		"specialty": "fades",
		"email":     email,
		"phone":     phone,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create barber: status %d body %s", w.Code, w.Body.String())
	}
	return decodeMap(t, w)
}

func createService(t *testing.T, r *gin.Engine, name string) map[string]any {
	t.Helper()

	w := doJSON(t, r, http.MethodPost, "/services", map[string]any{
		"name":        name,
		"price":       30.0,
		"description": "test service",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create service: status %d body %s", w.Code, w.Body.String())
	}
	return decodeMap(t, w)
}

// seedBooking creates one client, barber and service and returns their ids.
func seedBooking(t *testing.T, r *gin.Engine) (clientID, barberID, serviceID float64) {
	t.Helper()

	client := createClient(t, r, "client@example.com", "1234567890")
	barber := createBarber(t, r, "barber@example.com", "0987654321")
	service := createService(t, r, "Haircut")

	return client["id"].(float64), barber["id"].(float64), service["id"].(float64)
}

func createAppointment(t *testing.T, r *gin.Engine, clientID, barberID, serviceID float64, date, clock string) map[string]any {
	t.Helper()

	w := doJSON(t, r, http.MethodPost, "/appointments", map[string]any{
		"clientId":  clientID,
		"barberId":  barberID,
		"serviceId": serviceID,
		"date":      date,
		"time":      clock,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create appointment: status %d body %s", w.Code, w.Body.String())
	}
	return decodeMap(t, w)
}
