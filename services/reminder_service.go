// services/reminder_service.go
package services

import (
	"fmt"
	"strings"
	"time"

	"aiva-backend/config"
	"aiva-backend/models"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"gorm.io/gorm"
)

// ReminderService sends each technician a daily digest of tomorrow's
// confirmed appointments over WhatsApp or SMS.
type ReminderService struct {
	db       *gorm.DB
	bookings *BookingService
	client   *twilio.RestClient
}

func NewReminderService(db *gorm.DB) *ReminderService {
	return &ReminderService{
		db:       db,
		bookings: NewBookingService(db),
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: config.C.TwilioAccountSID,
			Password: config.C.TwilioAuthToken,
		}),
	}
}

func (s *ReminderService) StartScheduler() {
	c := cron.New()

	// Every day at 6 PM, ahead of the next day's appointments.
	c.AddFunc("0 18 * * *", s.SendDailyDigests)

	c.Start()
	log.Info().Msg("reminder scheduler started")
}

func (s *ReminderService) SendDailyDigests() {
	log.Info().Msg("starting daily digest processing")

	var technicians []models.Technician
	if err := s.db.Find(&technicians, "is_active = ?", true).Error; err != nil {
		log.Error().Err(err).Msg("failed to fetch technicians")
		return
	}

	tomorrow := time.Now().AddDate(0, 0, 1).Format("2006-01-02")
	for _, tech := range technicians {
		s.sendDigest(&tech, tomorrow)
	}

	log.Info().Msg("daily digest processing completed")
}

func (s *ReminderService) sendDigest(tech *models.Technician, date string) {
	if tech.Phone == "" {
		return
	}

	bookings, err := s.bookings.ConfirmedForDate(tech.ID, date)
	if err != nil {
		log.Error().Err(err).Str("technician_id", tech.ID.String()).Msg("failed to fetch bookings for digest")
		return
	}
	if len(bookings) == 0 {
		return
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Hi %s, you have %d confirmed appointment(s) tomorrow (%s):\n",
		tech.FullName, len(bookings), date)
	for _, b := range bookings {
		fmt.Fprintf(&sb, "• %s — %s\n", b.AppointmentTime, b.ClientName)
	}

	// WhatsApp for E.164 numbers, plain SMS otherwise.
	channel := "sms"
	to := tech.Phone
	if strings.HasPrefix(tech.Phone, "+") {
		to = "whatsapp:" + tech.Phone
		channel = "whatsapp"
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetBody(sb.String())
	if channel == "whatsapp" {
		params.SetFrom("whatsapp:" + config.C.TwilioWhatsAppNumber)
	} else {
		params.SetFrom(config.C.TwilioPhoneNumber)
	}

	resp, err := s.client.Api.CreateMessage(params)
	if err != nil {
		log.Error().Err(err).Str("to", tech.Phone).Msg("failed to send digest")
		return
	}
	ev := log.Info().Str("to", tech.Phone).Str("channel", channel)
	if resp.Sid != nil {
		ev = ev.Str("sid", *resp.Sid)
	}
	ev.Msg("digest sent")
}
