package controllers_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"aiva-backend/config"
	"aiva-backend/models"

	"github.com/gin-gonic/gin"
)

func TestWebhookHandshake(t *testing.T) {
	r := setupRouter(t)

	get := func(mode, challenge, token string) *httptest.ResponseRecorder {
		q := url.Values{}
		q.Set("hub.mode", mode)
		q.Set("hub.challenge", challenge)
		q.Set("hub.verify_token", token)
		req := httptest.NewRequest(http.MethodGet, "/webhook?"+q.Encode(), nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	w := get("subscribe", "12345", "verify-token")
	if w.Code != http.StatusOK {
		t.Fatalf("handshake expected 200, got %d", w.Code)
	}
	if w.Body.String() != "12345" {
		t.Fatalf("challenge must be echoed verbatim, got %q", w.Body.String())
	}

	if w := get("subscribe", "12345", "wrong-token"); w.Code != http.StatusForbidden {
		t.Fatalf("bad token expected 403, got %d", w.Code)
	}
	if w := get("unsubscribe", "12345", "verify-token"); w.Code != http.StatusForbidden {
		t.Fatalf("bad mode expected 403, got %d", w.Code)
	}
}

func TestReceiveWebhookAlwaysAcknowledges(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/webhook", "", gin.H{
		"technician_email": "a@x.com",
		"client_name":      "Grace",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if decodeBody(t, w)["status"] != "success" {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}

	// Missing fields still acknowledge with a soft error.
	w = doJSON(t, r, http.MethodPost, "/webhook", "", gin.H{"unrelated": true})
	if w.Code != http.StatusOK {
		t.Fatalf("soft failure must still return 200, got %d", w.Code)
	}
	if decodeBody(t, w)["status"] != "error" {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestPaymentWebhookConfirmsBooking(t *testing.T) {
	r := setupRouter(t)
	token := signupAndLogin(t, r, "a@x.com")

	w := doJSON(t, r, http.MethodPost, "/services", token, gin.H{
		"name":  "Gel Manicure",
		"price": 50,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create service status %d: %s", w.Code, w.Body.String())
	}
	serviceID := decodeBody(t, w)["id"].(string)

	w = doJSON(t, r, http.MethodPost, "/book", token, gin.H{
		"service_id":       serviceID,
		"client_name":      "Grace",
		"client_email":     "grace@example.com",
		"appointment_date": "2025-12-01",
		"appointment_time": "15:00",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("book status %d: %s", w.Code, w.Body.String())
	}
	bookingID := decodeBody(t, w)["id"].(string)

	if err := config.DB.Model(&models.Booking{}).
		Where("id = ?", bookingID).
		Update("payment_reference", "ref-001").Error; err != nil {
		t.Fatalf("set reference: %v", err)
	}

	w = doJSON(t, r, http.MethodPost, "/payment-webhook", "", gin.H{"reference": "ref-001"})
	if w.Code != http.StatusOK {
		t.Fatalf("webhook status %d", w.Code)
	}
	if decodeBody(t, w)["status"] != "confirmed" {
		t.Fatalf("expected confirmed, got %s", w.Body.String())
	}

	var booking models.Booking
	if err := config.DB.First(&booking, "id = ?", bookingID).Error; err != nil {
		t.Fatalf("load booking: %v", err)
	}
	if booking.Status != models.BookingStatusConfirmed {
		t.Fatalf("expected CONFIRMED, got %s", booking.Status)
	}

	// Unknown reference and missing reference are soft outcomes, still 200.
	w = doJSON(t, r, http.MethodPost, "/payment-webhook", "", gin.H{"reference": "nope"})
	if w.Code != http.StatusOK || decodeBody(t, w)["status"] != "booking_not_found" {
		t.Fatalf("expected booking_not_found, got %d %s", w.Code, w.Body.String())
	}
	w = doJSON(t, r, http.MethodPost, "/payment-webhook", "", gin.H{})
	if w.Code != http.StatusOK || decodeBody(t, w)["status"] != "ignored" {
		t.Fatalf("expected ignored, got %d %s", w.Code, w.Body.String())
	}
}
