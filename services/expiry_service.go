// services/expiry_service.go
package services

import (
	"log"
	"time"

	"turnero-backend/models"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// CancelReasonExpired marks reservations released by the sweep, not by a user.
const CancelReasonExpired = "expirada"

// ExpiryService releases pending reservations whose start time passed without
// the provider ever confirming them, so the window becomes bookable again.
type ExpiryService struct {
	db *gorm.DB
}

func NewExpiryService(db *gorm.DB) *ExpiryService {
	return &ExpiryService{db: db}
}

func (s *ExpiryService) StartScheduler() {
	c := cron.New()

	// Run every hour on the hour
	c.AddFunc("0 * * * *", func() {
		if _, err := s.ExpireOverdue(time.Now().UTC()); err != nil {
			log.Printf("Expiry sweep failed: %v", err)
		}
	})

	c.Start()
	log.Println("Reservation expiry scheduler started")
}

// ExpireOverdue cancels every pending reservation that already started.
// Confirmed reservations are never touched; completing or no-showing those is
// the provider's call.
func (s *ExpiryService) ExpireOverdue(now time.Time) (int, error) {
	var stale []models.Reservation
	if err := s.db.
		Where("status = ? AND start_time < ?", models.StatusPending, now).
		Find(&stale).Error; err != nil {
		return 0, err
	}

	expired := 0
	for i := range stale {
		r := &stale[i]
		if err := r.Cancel(CancelReasonExpired); err != nil {
			continue
		}
		if err := s.db.Save(r).Error; err != nil {
			log.Printf("Failed to expire reservation %s: %v", r.ID, err)
			continue
		}
		expired++
	}
	if expired > 0 {
		log.Printf("Expired %d overdue pending reservations", expired)
	}
	return expired, nil
}
