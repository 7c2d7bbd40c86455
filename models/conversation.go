package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Conversation stages. Only the GREETING -> SERVICE_SELECTION transition is
// wired today; later stages are persisted enum values reserved for the full
// DM booking flow and every message past the first falls through to the
// static fallback reply.
const (
	StageGreeting          = "GREETING"
	StageServiceSelection  = "SERVICE_SELECTION"
	StageClientInfo        = "CLIENT_INFO"
	StageSlotInput         = "SLOT_INPUT"
	StageAvailabilityCheck = "AVAILABILITY_CHECK"
	StageConfirmBooking    = "CONFIRM_BOOKING"
	StagePaymentLink       = "PAYMENT_LINK"
	StageDone              = "DONE"
)

// ConversationState tracks where a single client chat stands in the scripted
// booking flow. State is scoped per technician so the same external chat id
// can talk to two different businesses independently.
type ConversationState struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	TechnicianID uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_tech_chat,priority:1;not null" json:"technician_id"`
	ChatID       string    `gorm:"uniqueIndex:idx_tech_chat,priority:2;not null" json:"chat_id"`

	Stage string `gorm:"default:'GREETING'" json:"stage"`

	ClientName  string `json:"client_name"`
	ClientEmail string `json:"client_email"`

	ServiceID       *uuid.UUID `gorm:"type:uuid" json:"service_id"`
	AppointmentDate string     `json:"appointment_date"`
	AppointmentTime string     `json:"appointment_time"`
}

func (c *ConversationState) BeforeCreate(tx *gorm.DB) (err error) {
	c.ID = uuid.New()
	return
}
