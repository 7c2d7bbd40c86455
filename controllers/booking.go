// controllers/booking.go
package controllers

import (
	"errors"
	"net/http"

	"aiva-backend/config"
	"aiva-backend/models"
	"aiva-backend/services"
	"aiva-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AvailabilityInput struct {
	AppointmentDate string `json:"appointment_date" binding:"required"`
	AppointmentTime string `json:"appointment_time" binding:"required"`
}

type BookingInput struct {
	ServiceID       uuid.UUID `json:"service_id" binding:"required"`
	ClientName      string    `json:"client_name" binding:"required"`
	ClientEmail     string    `json:"client_email" binding:"required,email"`
	AppointmentDate string    `json:"appointment_date" binding:"required"`
	AppointmentTime string    `json:"appointment_time" binding:"required"`
}

// CheckAvailability reports whether a slot is free of confirmed bookings.
func CheckAvailability(c *gin.Context) {
	tech, ok := currentTechnician(c)
	if !ok {
		return
	}

	var input AvailabilityInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if !utils.ValidateDate(input.AppointmentDate) || !utils.ValidateTime(input.AppointmentTime) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid appointment date or time")
		return
	}

	free, err := services.NewBookingService(config.DB).
		SlotAvailable(tech.ID, input.AppointmentDate, input.AppointmentTime)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	c.JSON(http.StatusOK, gin.H{"available": free})
}

// CreateBooking reserves a slot at PENDING_PAYMENT.
func CreateBooking(c *gin.Context) {
	tech, ok := currentTechnician(c)
	if !ok {
		return
	}

	var input BookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	booking, err := services.NewBookingService(config.DB).Create(tech.ID, services.BookingInput{
		ServiceID:       input.ServiceID,
		ClientName:      input.ClientName,
		ClientEmail:     input.ClientEmail,
		AppointmentDate: input.AppointmentDate,
		AppointmentTime: input.AppointmentTime,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrSlotTaken):
			utils.RespondWithError(c, http.StatusConflict, "Time slot already booked")
		case errors.Is(err, services.ErrInvalidSlot):
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid appointment date or time")
		case errors.Is(err, services.ErrServiceNotFound):
			utils.RespondWithError(c, http.StatusBadRequest, "Unknown service for this technician")
		default:
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create booking")
		}
		return
	}

	if services.Sheets != nil {
		var svc models.Service
		serviceName := ""
		if config.DB.First(&svc, "id = ?", booking.ServiceID).Error == nil {
			serviceName = svc.Name
		}
		go services.Sheets.AppendBooking(tech.Email, serviceName, booking)
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":               booking.ID,
		"technician_id":    booking.TechnicianID,
		"service_id":       booking.ServiceID,
		"client_name":      booking.ClientName,
		"client_email":     booking.ClientEmail,
		"appointment_date": booking.AppointmentDate,
		"appointment_time": booking.AppointmentTime,
		"status":           booking.Status,
		"payment_link":     tech.PaymentProvider,
	})
}

// GetMyBookings lists the calling technician's bookings.
func GetMyBookings(c *gin.Context) {
	tech, ok := currentTechnician(c)
	if !ok {
		return
	}

	bookings, err := services.NewBookingService(config.DB).ListByTechnician(tech.ID)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve bookings")
		return
	}

	c.JSON(http.StatusOK, bookings)
}

// CancelBooking moves an owned booking to CANCELLED.
func CancelBooking(c *gin.Context) {
	tech, ok := currentTechnician(c)
	if !ok {
		return
	}

	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid booking ID format")
		return
	}

	booking, err := services.NewBookingService(config.DB).Cancel(tech.ID, bookingID)
	if err != nil {
		if errors.Is(err, services.ErrBookingNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Booking not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to cancel booking")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":     booking.ID,
		"status": models.BookingStatusCancelled,
	})
}
