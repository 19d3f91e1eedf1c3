package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Provider is the publishing-side profile attached 1:1 to a User.
type Provider struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`

	FirstName string `gorm:"not null" json:"first_name"`
	LastName  string `gorm:"not null" json:"last_name"`
	Specialty string `gorm:"not null" json:"specialty"`
	Phone     string `json:"phone,omitempty"`
	Bio       string `gorm:"type:text" json:"bio,omitempty"`

	IsAvailable bool `gorm:"default:true" json:"is_available"`

	Services []Service `gorm:"foreignKey:ProviderID" json:"-"`

	gorm.Model `json:"-"`
}

func (p *Provider) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return
}
