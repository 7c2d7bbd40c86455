package controllers_test

import (
	"net/http"
	"testing"

	"aiva-backend/config"
	"aiva-backend/models"

	"github.com/gin-gonic/gin"
)

func createServiceHTTP(t *testing.T, r *gin.Engine, token string) string {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/services", token, gin.H{
		"name":  "Gel Manicure",
		"price": 50,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create service status %d: %s", w.Code, w.Body.String())
	}
	return decodeBody(t, w)["id"].(string)
}

func TestBookingFlow(t *testing.T) {
	r := setupRouter(t)
	token := signupAndLogin(t, r, "a@x.com")
	serviceID := createServiceHTTP(t, r, token)

	w := doJSON(t, r, http.MethodPost, "/check-availability", token, gin.H{
		"appointment_date": "2025-12-01",
		"appointment_time": "15:00",
	})
	if w.Code != http.StatusOK || decodeBody(t, w)["available"] != true {
		t.Fatalf("fresh slot must be available: %d %s", w.Code, w.Body.String())
	}

	book := gin.H{
		"service_id":       serviceID,
		"client_name":      "Grace",
		"client_email":     "grace@example.com",
		"appointment_date": "2025-12-01",
		"appointment_time": "15:00",
	}
	w = doJSON(t, r, http.MethodPost, "/book", token, book)
	if w.Code != http.StatusCreated {
		t.Fatalf("book status %d: %s", w.Code, w.Body.String())
	}
	body := decodeBody(t, w)
	if body["status"] != models.BookingStatusPendingPayment {
		t.Fatalf("expected PENDING_PAYMENT, got %v", body["status"])
	}
	bookingID := body["id"].(string)

	// Confirm it directly, then the same slot must 409.
	if err := config.DB.Model(&models.Booking{}).
		Where("id = ?", bookingID).
		Update("status", models.BookingStatusConfirmed).Error; err != nil {
		t.Fatalf("confirm: %v", err)
	}
	w = doJSON(t, r, http.MethodPost, "/book", token, book)
	if w.Code != http.StatusConflict {
		t.Fatalf("occupied slot expected 409, got %d: %s", w.Code, w.Body.String())
	}

	w = doJSON(t, r, http.MethodGet, "/bookings/me", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list status %d", w.Code)
	}

	w = doJSON(t, r, http.MethodPost, "/bookings/"+bookingID+"/cancel", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("cancel status %d: %s", w.Code, w.Body.String())
	}
	var booking models.Booking
	config.DB.First(&booking, "id = ?", bookingID)
	if booking.Status != models.BookingStatusCancelled {
		t.Fatalf("expected CANCELLED, got %s", booking.Status)
	}
}

func TestBookRejectsBadInput(t *testing.T) {
	r := setupRouter(t)
	token := signupAndLogin(t, r, "a@x.com")
	serviceID := createServiceHTTP(t, r, token)

	w := doJSON(t, r, http.MethodPost, "/book", token, gin.H{
		"service_id":       serviceID,
		"client_name":      "Grace",
		"client_email":     "grace@example.com",
		"appointment_date": "December 1st",
		"appointment_time": "15:00",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("bad date expected 400, got %d", w.Code)
	}

	w = doJSON(t, r, http.MethodPost, "/book", token, gin.H{
		"service_id":       "0b5e7c4e-9a39-4a7a-9b1a-1a2b3c4d5e6f",
		"client_name":      "Grace",
		"client_email":     "grace@example.com",
		"appointment_date": "2025-12-01",
		"appointment_time": "15:00",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("unknown service expected 400, got %d: %s", w.Code, w.Body.String())
	}
}

func TestChatEndpoint(t *testing.T) {
	r := setupRouter(t)
	token := signupAndLogin(t, r, "a@x.com")

	w := doJSON(t, r, http.MethodPost, "/chat", token, gin.H{
		"chat_id": "ig-123",
		"text":    "hello",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("chat status %d: %s", w.Code, w.Body.String())
	}
	if decodeBody(t, w)["action"] != "ASK_SERVICE" {
		t.Fatalf("first message expected ASK_SERVICE: %s", w.Body.String())
	}

	w = doJSON(t, r, http.MethodPost, "/chat", token, gin.H{
		"chat_id": "ig-123",
		"text":    "anything",
	})
	if w.Code != http.StatusOK || decodeBody(t, w)["action"] != "UNKNOWN" {
		t.Fatalf("second message expected UNKNOWN: %d %s", w.Code, w.Body.String())
	}
}
