package config

import (
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config collects every environment input in one place. Secrets (JWT key,
// webhook verify token, Twilio credentials) are injected here and never
// appear as literals anywhere else.
type Config struct {
	Port  string
	DBURL string `validate:"required"`

	JWTSecret      string `validate:"required"`
	JWTExpiryHours int

	WebhookVerifyToken string `validate:"required"`

	TwilioAccountSID     string
	TwilioAuthToken      string
	TwilioPhoneNumber    string
	TwilioWhatsAppNumber string

	GoogleCredentialsFile string
	SheetID               string

	AllowedOrigin string
}

var C Config

// Load reads .env (if present), fills C from the environment and validates
// that the required secrets are set.
func Load() error {
	// A missing .env is fine in production; variables come from the host.
	_ = godotenv.Load()

	C = Config{
		Port:                  getEnv("PORT", "8080"),
		DBURL:                 os.Getenv("DB_URL"),
		JWTSecret:             os.Getenv("JWT_SECRET"),
		JWTExpiryHours:        getEnvInt("JWT_EXPIRY_HOURS", 24*7),
		WebhookVerifyToken:    os.Getenv("WEBHOOK_VERIFY_TOKEN"),
		TwilioAccountSID:      os.Getenv("TWILIO_ACCOUNT_SID"),
		TwilioAuthToken:       os.Getenv("TWILIO_AUTH_TOKEN"),
		TwilioPhoneNumber:     os.Getenv("TWILIO_PHONE_NUMBER"),
		TwilioWhatsAppNumber:  os.Getenv("TWILIO_WHATSAPP_NUMBER"),
		GoogleCredentialsFile: os.Getenv("GOOGLE_CREDENTIALS_FILE"),
		SheetID:               os.Getenv("SHEET_ID"),
		AllowedOrigin:         getEnv("ALLOWED_ORIGIN", "*"),
	}

	return validator.New().Struct(C)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
