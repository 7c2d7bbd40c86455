// controllers/service.go
package controllers

import (
	"errors"
	"net/http"

	"aiva-backend/config"
	"aiva-backend/models"
	"aiva-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CreateServiceInput struct {
	Name            string   `json:"name" binding:"required"`
	Category        string   `json:"category"`
	Description     string   `json:"description"`
	Price           float64  `json:"price" binding:"required,min=0"`
	Currency        string   `json:"currency"`
	DurationMinutes int      `json:"duration_minutes" binding:"min=0"`
	DepositRequired bool     `json:"deposit_required"`
	DepositAmount   *float64 `json:"deposit_amount"`
}

type UpdateServiceInput struct {
	Name            string   `json:"name"`
	Category        *string  `json:"category"`
	Description     *string  `json:"description"`
	Price           *float64 `json:"price"`
	Currency        *string  `json:"currency"`
	DurationMinutes *int     `json:"duration_minutes"`
	Active          *bool    `json:"active"`
}

// CreateService adds a service to the calling technician's catalog.
func CreateService(c *gin.Context) {
	tech, ok := currentTechnician(c)
	if !ok {
		return
	}

	var input CreateServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	currency := input.Currency
	if currency == "" {
		currency = "NGN"
	}
	duration := input.DurationMinutes
	if duration == 0 {
		duration = 60
	}

	service := models.Service{
		TechnicianID:    tech.ID,
		Name:            input.Name,
		Category:        input.Category,
		Description:     input.Description,
		Price:           input.Price,
		Currency:        currency,
		DurationMinutes: duration,
		DepositRequired: input.DepositRequired,
		DepositAmount:   input.DepositAmount,
		Active:          true,
	}

	if err := config.DB.Create(&service).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create service")
		return
	}

	c.JSON(http.StatusCreated, service)
}

// GetMyServices lists the calling technician's catalog.
func GetMyServices(c *gin.Context) {
	tech, ok := currentTechnician(c)
	if !ok {
		return
	}

	var svcs []models.Service
	if err := config.DB.Where("technician_id = ?", tech.ID).Find(&svcs).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve services")
		return
	}

	c.JSON(http.StatusOK, svcs)
}

// UpdateService mutates an owned service in place.
func UpdateService(c *gin.Context) {
	tech, ok := currentTechnician(c)
	if !ok {
		return
	}

	serviceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid service ID format")
		return
	}

	var input UpdateServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var service models.Service
	if err := config.DB.Where("technician_id = ? AND id = ?", tech.ID, serviceID).
		First(&service).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Service not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Name != "" {
		service.Name = input.Name
	}
	if input.Category != nil {
		service.Category = *input.Category
	}
	if input.Description != nil {
		service.Description = *input.Description
	}
	if input.Price != nil {
		service.Price = *input.Price
	}
	if input.Currency != nil {
		service.Currency = *input.Currency
	}
	if input.DurationMinutes != nil {
		service.DurationMinutes = *input.DurationMinutes
	}
	if input.Active != nil {
		service.Active = *input.Active
	}

	if err := config.DB.Save(&service).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update service")
		return
	}

	c.JSON(http.StatusOK, service)
}

// DeleteService removes an owned service.
func DeleteService(c *gin.Context) {
	tech, ok := currentTechnician(c)
	if !ok {
		return
	}

	serviceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid service ID format")
		return
	}

	result := config.DB.Where("technician_id = ? AND id = ?", tech.ID, serviceID).
		Delete(&models.Service{})
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete service")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Service not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Service deleted successfully"})
}
