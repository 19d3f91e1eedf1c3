package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Client is the booking-side profile attached 1:1 to a User.
type Client struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`

	FirstName  string     `gorm:"not null" json:"first_name"`
	LastName   string     `gorm:"not null" json:"last_name"`
	Phone      string     `json:"phone,omitempty"`
	DocumentID string     `gorm:"index" json:"document_id,omitempty"`
	BirthDate  *time.Time `json:"birth_date,omitempty"`
	Address    string     `json:"address,omitempty"`
	Notes      string     `gorm:"type:text" json:"notes,omitempty"`

	Reservations []Reservation `gorm:"foreignKey:ClientID" json:"-"`

	gorm.Model `json:"-"`
}

func (c *Client) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return
}
