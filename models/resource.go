package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Resource is a specific bookable unit within a service (e.g. "Cancha 1").
// Resources are soft-deleted via IsActive so historical reservations and
// price snapshots stay intact.
type Resource struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	ServiceID uuid.UUID `gorm:"type:uuid;index;not null" json:"service_id"`

	Name        string `gorm:"not null" json:"name"`
	Description string `gorm:"type:text" json:"description,omitempty"`
	Capacity    *int   `json:"capacity,omitempty"`
	ImageURL    string `json:"image_url,omitempty"`
	Features    string `gorm:"type:text" json:"features,omitempty"`
	SortOrder   int    `gorm:"default:0" json:"sort_order"`
	IsActive    bool   `gorm:"default:true" json:"is_active"`

	WeeklySlots  []WeeklySlot    `gorm:"foreignKey:ResourceID" json:"weekly_slots,omitempty"`
	Reservations []Reservation   `gorm:"foreignKey:ResourceID" json:"-"`
	Blocks       []ResourceBlock `gorm:"foreignKey:ResourceID" json:"-"`

	gorm.Model `json:"-"`
}

func (r *Resource) BeforeCreate(tx *gorm.DB) (err error) {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return
}
