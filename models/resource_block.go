package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	BlockMaintenance  = "mantenimiento"
	BlockPrivateEvent = "evento_privado"
	BlockClosure      = "clausura"
)

// ResourceBlock makes a resource unbookable for a time window
// (maintenance, private events, closures).
type ResourceBlock struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	ResourceID uuid.UUID `gorm:"type:uuid;index;not null" json:"resource_id"`

	StartTime time.Time `gorm:"not null" json:"start_time"`
	EndTime   time.Time `gorm:"not null" json:"end_time"`
	Reason    string    `gorm:"type:text" json:"reason,omitempty"`
	Type      string    `gorm:"type:varchar(50);default:'mantenimiento'" json:"type"`

	gorm.Model `json:"-"`
}

func (b *ResourceBlock) BeforeCreate(tx *gorm.DB) (err error) {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return
}
