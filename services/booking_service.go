// services/booking_service.go
package services

import (
	"errors"

	"aiva-backend/models"
	"aiva-backend/utils"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

var (
	ErrSlotTaken       = errors.New("time slot already booked")
	ErrInvalidSlot     = errors.New("invalid appointment date or time")
	ErrServiceNotFound = errors.New("service not found for technician")
	ErrBookingNotFound = errors.New("booking not found")
)

// Confirmation outcomes reported back to the payment provider. The webhook
// always acknowledges with 200; these are soft statuses in the body.
const (
	ConfirmIgnored   = "ignored"
	ConfirmNotFound  = "booking_not_found"
	ConfirmConfirmed = "confirmed"
	ConfirmSlotTaken = "slot_taken"
)

// BookingService owns the appointment lifecycle: slot checks, creation at
// PENDING_PAYMENT, confirmation via payment reference and cancellation.
type BookingService struct {
	db *gorm.DB
}

func NewBookingService(db *gorm.DB) *BookingService {
	return &BookingService{db: db}
}

type BookingInput struct {
	ServiceID       uuid.UUID
	ClientName      string
	ClientEmail     string
	AppointmentDate string
	AppointmentTime string
}

// SlotAvailable reports whether the slot is free. Only CONFIRMED bookings
// occupy a slot; pending ones do not block a second client from trying.
func (s *BookingService) SlotAvailable(technicianID uuid.UUID, date, timeOfDay string) (bool, error) {
	var count int64
	err := s.db.Model(&models.Booking{}).
		Where("technician_id = ? AND appointment_date = ? AND appointment_time = ? AND status = ?",
			technicianID, date, timeOfDay, models.BookingStatusConfirmed).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count == 0, nil
}

// Create inserts a new PENDING_PAYMENT booking after validating the slot
// format, the service reference and confirmed-slot exclusivity.
func (s *BookingService) Create(technicianID uuid.UUID, in BookingInput) (*models.Booking, error) {
	if !utils.ValidateDate(in.AppointmentDate) || !utils.ValidateTime(in.AppointmentTime) {
		return nil, ErrInvalidSlot
	}

	var svc models.Service
	err := s.db.Where("id = ? AND technician_id = ?", in.ServiceID, technicianID).First(&svc).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrServiceNotFound
	} else if err != nil {
		return nil, err
	}

	free, err := s.SlotAvailable(technicianID, in.AppointmentDate, in.AppointmentTime)
	if err != nil {
		return nil, err
	}
	if !free {
		return nil, ErrSlotTaken
	}

	booking := models.Booking{
		TechnicianID:    technicianID,
		ServiceID:       in.ServiceID,
		ClientName:      in.ClientName,
		ClientEmail:     in.ClientEmail,
		AppointmentDate: in.AppointmentDate,
		AppointmentTime: in.AppointmentTime,
		Status:          models.BookingStatusPendingPayment,
	}
	if err := s.db.Create(&booking).Error; err != nil {
		return nil, err
	}
	return &booking, nil
}

// ConfirmByReference flips the matching booking to CONFIRMED. Runs in a
// transaction and re-verifies slot exclusivity: if another booking reached
// CONFIRMED for the same slot while this one was pending, the booking stays
// PENDING_PAYMENT and the caller gets a soft slot_taken status. Calling it
// again for an already confirmed booking is a no-op that reports confirmed.
func (s *BookingService) ConfirmByReference(reference string) (string, error) {
	if reference == "" {
		return ConfirmIgnored, nil
	}

	outcome := ConfirmNotFound
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var booking models.Booking
		err := tx.Where("payment_reference = ?", reference).First(&booking).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		} else if err != nil {
			return err
		}

		if booking.Status == models.BookingStatusConfirmed {
			outcome = ConfirmConfirmed
			return nil
		}

		var occupied int64
		err = tx.Model(&models.Booking{}).
			Where("technician_id = ? AND appointment_date = ? AND appointment_time = ? AND status = ? AND id <> ?",
				booking.TechnicianID, booking.AppointmentDate, booking.AppointmentTime,
				models.BookingStatusConfirmed, booking.ID).
			Count(&occupied).Error
		if err != nil {
			return err
		}
		if occupied > 0 {
			log.Warn().
				Str("booking_id", booking.ID.String()).
				Str("reference", reference).
				Msg("payment received for an already taken slot")
			outcome = ConfirmSlotTaken
			return nil
		}

		if err := tx.Model(&booking).Update("status", models.BookingStatusConfirmed).Error; err != nil {
			return err
		}
		outcome = ConfirmConfirmed
		return nil
	})
	if err != nil {
		return "", err
	}
	return outcome, nil
}

// Cancel moves one of the technician's own bookings to CANCELLED.
func (s *BookingService) Cancel(technicianID, bookingID uuid.UUID) (*models.Booking, error) {
	var booking models.Booking
	err := s.db.Where("id = ? AND technician_id = ?", bookingID, technicianID).First(&booking).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrBookingNotFound
	} else if err != nil {
		return nil, err
	}

	if booking.Status != models.BookingStatusCancelled {
		if err := s.db.Model(&booking).Update("status", models.BookingStatusCancelled).Error; err != nil {
			return nil, err
		}
	}
	return &booking, nil
}

// ListByTechnician returns every booking owned by the technician.
func (s *BookingService) ListByTechnician(technicianID uuid.UUID) ([]models.Booking, error) {
	var bookings []models.Booking
	err := s.db.Where("technician_id = ?", technicianID).Find(&bookings).Error
	return bookings, err
}

// ConfirmedForDate returns the technician's confirmed bookings for the given
// date, used by the daily reminder digest.
func (s *BookingService) ConfirmedForDate(technicianID uuid.UUID, date string) ([]models.Booking, error) {
	var bookings []models.Booking
	err := s.db.Where("technician_id = ? AND appointment_date = ? AND status = ?",
		technicianID, date, models.BookingStatusConfirmed).
		Order("appointment_time").
		Find(&bookings).Error
	return bookings, err
}
