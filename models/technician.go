package models

import (
	"time"

	"aiva-backend/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Technician struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	Password     string    `gorm:"column:password_hash;not null" json:"-"` // hashed in BeforeCreate hook
	FullName     string    `gorm:"not null" json:"full_name"`
	Phone        string    `json:"phone"`
	BusinessName string    `gorm:"not null" json:"business_name"`

	Country string `json:"country"`
	City    string `json:"city"`
	Address string `json:"address"`
	Website string `json:"website"`

	// Assistant persona used by the chat responder.
	AssistantName   string `json:"assistant_name"`
	Tone            string `json:"tone"`
	BrandVoiceStyle string `json:"brand_voice_style"`
	WelcomeMessage  string `gorm:"type:text" json:"welcome_message"`

	Policies           string `gorm:"type:text" json:"policies"`
	CancellationPolicy string `gorm:"type:text" json:"cancellation_policy"`
	LatenessPolicy     string `gorm:"type:text" json:"lateness_policy"`

	DepositRequired bool    `gorm:"default:false" json:"deposit_required"`
	DepositAmount   float64 `gorm:"type:decimal(10,2);default:0.0" json:"deposit_amount"`
	PaymentProvider string  `json:"payment_provider"`
	PayoutEmail     string  `json:"payout_email"`

	WorkSchedule string `gorm:"type:text" json:"work_schedule"`

	Services []Service `gorm:"foreignKey:TechnicianID" json:"-"`

	LastLogin *time.Time `json:"-"`
	IsActive  bool       `gorm:"default:true" json:"-"`

	gorm.Model `json:"-"`
}

// Initialize UUID and hash the raw password before creating
func (t *Technician) BeforeCreate(tx *gorm.DB) (err error) {
	t.ID = uuid.New()
	hashed, err := utils.HashPassword(t.Password)
	if err != nil {
		return err
	}
	t.Password = hashed
	return
}
