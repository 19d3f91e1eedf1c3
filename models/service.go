package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Service is a category of bookable offering (e.g. "Fútbol 5", "Tenis").
type Service struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	ProviderID uuid.UUID `gorm:"type:uuid;index;not null" json:"provider_id"`

	Name        string `gorm:"not null" json:"name"`
	Description string `gorm:"type:text" json:"description,omitempty"`
	Category    string `gorm:"index;default:'General'" json:"category"`
	IsActive    bool   `gorm:"default:true" json:"is_active"`

	Resources []Resource `gorm:"foreignKey:ServiceID" json:"resources,omitempty"`

	gorm.Model `json:"-"`
}

func (s *Service) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return
}
