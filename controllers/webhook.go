// controllers/webhook.go
package controllers

import (
	"crypto/subtle"
	"net/http"

	"aiva-backend/config"
	"aiva-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type PaymentWebhookInput struct {
	Reference string `json:"reference"`
}

// PaymentWebhook confirms a booking by its payment reference. The endpoint
// always acknowledges with 200 and a soft status so the provider never
// enters a retry storm over internal soft failures.
func PaymentWebhook(c *gin.Context) {
	var input PaymentWebhookInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusOK, gin.H{"status": services.ConfirmIgnored})
		return
	}

	outcome, err := services.NewBookingService(config.DB).ConfirmByReference(input.Reference)
	if err != nil {
		log.Error().Err(err).Str("reference", input.Reference).Msg("payment confirmation failed")
		c.JSON(http.StatusOK, gin.H{"status": "error"})
		return
	}

	log.Info().Str("reference", input.Reference).Str("outcome", outcome).Msg("payment webhook")
	c.JSON(http.StatusOK, gin.H{"status": outcome})
}

// VerifyWebhook answers the platform's one-time subscription handshake.
// The challenge is echoed back as plain text; mode must be "subscribe" and
// the token must match the configured secret.
func VerifyWebhook(c *gin.Context) {
	mode := c.Query("hub.mode")
	challenge := c.Query("hub.challenge")
	token := c.Query("hub.verify_token")

	if mode == "subscribe" &&
		subtle.ConstantTimeCompare([]byte(token), []byte(config.C.WebhookVerifyToken)) == 1 {
		c.String(http.StatusOK, challenge)
		return
	}

	c.JSON(http.StatusForbidden, gin.H{"error": "Webhook verification failed"})
}

// ReceiveWebhook accepts asynchronous platform events. Payloads are logged
// and acknowledged; there is no schema validation beyond a soft field check.
func ReceiveWebhook(c *gin.Context) {
	var payload map[string]interface{}
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusOK, gin.H{"status": "error", "message": "Invalid payload"})
		return
	}

	log.Info().Interface("payload", payload).Msg("incoming platform webhook")

	technicianEmail, _ := payload["technician_email"].(string)
	clientName, _ := payload["client_name"].(string)
	if clientName == "" {
		clientName, _ = payload["name"].(string)
	}

	if technicianEmail == "" || clientName == "" {
		c.JSON(http.StatusOK, gin.H{
			"status":  "error",
			"message": "Missing required fields",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Webhook received successfully",
	})
}
