package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Service struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	TechnicianID uuid.UUID `gorm:"type:uuid;index;not null" json:"technician_id"`
	Name         string    `gorm:"not null" json:"name"`
	Category     string    `json:"category"`
	Description  string    `gorm:"type:text" json:"description"`

	Price           float64 `gorm:"type:decimal(10,2);not null" json:"price"`
	Currency        string  `gorm:"default:'NGN'" json:"currency"`
	DurationMinutes int     `gorm:"default:60" json:"duration_minutes"`

	// Per-service deposit override; falls back to the technician's settings.
	DepositRequired bool     `gorm:"default:false" json:"deposit_required"`
	DepositAmount   *float64 `gorm:"type:decimal(10,2)" json:"deposit_amount"`

	Active bool `gorm:"default:true" json:"active"`
}

func (s *Service) BeforeCreate(tx *gorm.DB) (err error) {
	s.ID = uuid.New()
	return
}
