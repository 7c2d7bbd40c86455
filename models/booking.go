package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Booking statuses. A booking starts at PENDING_PAYMENT and is moved to
// CONFIRMED by the payment webhook once the deposit clears. CANCELLED is
// reached through the technician-facing cancel endpoint.
const (
	BookingStatusPendingPayment = "PENDING_PAYMENT"
	BookingStatusConfirmed      = "CONFIRMED"
	BookingStatusCancelled      = "CANCELLED"
)

type Booking struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	TechnicianID uuid.UUID `gorm:"type:uuid;index;not null" json:"technician_id"`
	ServiceID    uuid.UUID `gorm:"type:uuid;index;not null" json:"service_id"`

	ClientName  string `gorm:"not null" json:"client_name"`
	ClientEmail string `gorm:"not null" json:"client_email"`

	AppointmentDate string `gorm:"not null" json:"appointment_date"` // "2006-01-02"
	AppointmentTime string `gorm:"not null" json:"appointment_time"` // "15:04"

	Status string `gorm:"default:'PENDING_PAYMENT'" json:"status"`

	PaymentReference *string `gorm:"index" json:"payment_reference,omitempty"`
}

func (b *Booking) BeforeCreate(tx *gorm.DB) (err error) {
	b.ID = uuid.New()
	return
}
