package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WeeklySlot defines a recurring priced window for a resource.
// Example: Cancha 1, Monday 10:00-22:00, $5000 per 60 minutes.
// Days run 0=Monday .. 6=Sunday.
type WeeklySlot struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	ResourceID uuid.UUID `gorm:"type:uuid;index;not null" json:"resource_id"`

	DayOfWeek int       `gorm:"not null" json:"day_of_week"`
	StartTime TimeOfDay `gorm:"type:time;not null" json:"start_time"`
	EndTime   TimeOfDay `gorm:"type:time;not null" json:"end_time"`

	Price           float64 `gorm:"type:decimal(10,2);not null" json:"price"`
	DurationMinutes int     `gorm:"not null;default:60" json:"duration_minutes"`

	IsActive bool `gorm:"default:true" json:"is_active"`

	gorm.Model `json:"-"`
}

func (s *WeeklySlot) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return
}

// Validate enforces the slot invariants shared by single and bulk creation.
func (s *WeeklySlot) Validate() error {
	if s.DayOfWeek < 0 || s.DayOfWeek > 6 {
		return ErrInvalidRange
	}
	if s.StartTime >= s.EndTime {
		return ErrInvalidRange
	}
	return nil
}

// Covers reports whether the given clock time falls inside the slot's
// half-open [start, end) window.
func (s *WeeklySlot) Covers(t TimeOfDay) bool {
	return s.StartTime <= t && t < s.EndTime
}
