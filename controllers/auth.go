package controllers

import (
	"errors"
	"net/http"
	"time"

	"aiva-backend/config"
	"aiva-backend/models"
	"aiva-backend/services"
	"aiva-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type SignupInput struct {
	Email        string `json:"email" binding:"required,email"`
	Password     string `json:"password" binding:"required,min=8"`
	FullName     string `json:"full_name"`
	Phone        string `json:"phone"`
	BusinessName string `json:"business_name"`
	Country      string `json:"country"`
	City         string `json:"city"`
	Address      string `json:"address"`
	Website      string `json:"website"`

	AssistantName   string `json:"assistant_name"`
	Tone            string `json:"tone"`
	PaymentProvider string `json:"payment_provider"`
	PayoutEmail     string `json:"payout_email"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// SignupTechnician registers a new technician account.
func SignupTechnician(c *gin.Context) {
	var input SignupInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if input.Phone != "" && !utils.ValidatePhone(input.Phone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number")
		return
	}

	var existing models.Technician
	result := config.DB.Where("email = ?", input.Email).First(&existing)
	if result.Error == nil {
		utils.RespondWithError(c, http.StatusConflict, "Email already exists")
		return
	} else if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	fullName := input.FullName
	if fullName == "" {
		fullName = input.BusinessName
	}

	tech := models.Technician{
		Email:           input.Email,
		Password:        input.Password, // hashed in BeforeCreate hook
		FullName:        fullName,
		Phone:           input.Phone,
		BusinessName:    input.BusinessName,
		Country:         input.Country,
		City:            input.City,
		Address:         input.Address,
		Website:         input.Website,
		AssistantName:   input.AssistantName,
		Tone:            input.Tone,
		PaymentProvider: input.PaymentProvider,
		PayoutEmail:     input.PayoutEmail,
	}

	if err := config.DB.Create(&tech).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create account")
		return
	}

	if services.Sheets != nil {
		go services.Sheets.AppendTechnician(&tech)
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":        "success",
		"message":       "Account created successfully",
		"technician_id": tech.ID,
	})
}

// Login verifies credentials and issues a bearer token.
func Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input")
		return
	}

	var tech models.Technician
	result := config.DB.Where("email = ?", input.Email).First(&tech)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusUnauthorized, "Invalid email or password")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if !utils.CheckPasswordHash(input.Password, tech.Password) {
		utils.RespondWithError(c, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	token, err := utils.GenerateToken(tech.Email)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	now := time.Now()
	config.DB.Model(&tech).Update("last_login", &now)

	c.JSON(http.StatusOK, gin.H{
		"access_token": token,
		"token_type":   "bearer",
		"technician": gin.H{
			"id":               tech.ID,
			"full_name":        tech.FullName,
			"email":            tech.Email,
			"phone":            tech.Phone,
			"business_name":    tech.BusinessName,
			"country":          tech.Country,
			"payment_provider": tech.PaymentProvider,
			"deposit_required": tech.DepositRequired,
			"deposit_amount":   tech.DepositAmount,
		},
	})
}

// Me resolves the calling technician from the bearer token.
func Me(c *gin.Context) {
	tech, ok := currentTechnician(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, tech)
}

// currentTechnician composes the middleware-verified subject with a catalog
// lookup. A valid token whose subject no longer exists is still a 401.
func currentTechnician(c *gin.Context) (*models.Technician, bool) {
	email, exists := c.Get("email")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "Missing or invalid auth header")
		return nil, false
	}

	var tech models.Technician
	if err := config.DB.Where("email = ?", email).First(&tech).Error; err != nil {
		utils.RespondWithError(c, http.StatusUnauthorized, "Invalid token")
		return nil, false
	}
	return &tech, true
}
