// services/booking_service.go
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"turnero-backend/models"
	"turnero-backend/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BookingService owns the availability check and reservation creation. The
// overlap check and the insert run inside one transaction holding a FOR UPDATE
// lock on the resource row, so concurrent bookings of the same resource
// serialize at the database instead of racing past the application check.
type BookingService struct {
	db *gorm.DB
}

func NewBookingService(db *gorm.DB) *BookingService {
	return &BookingService{db: db}
}

type CreateReservationInput struct {
	ResourceID      uuid.UUID
	StartTime       time.Time
	DurationMinutes int
	ClientNotes     string
	Deposit         float64
	PaymentMethod   string
}

// CreateReservation produces a priced, non-conflicting pending reservation or
// a typed rejection.
func (s *BookingService) CreateReservation(clientID uuid.UUID, in CreateReservationInput) (*models.Reservation, error) {
	start := in.StartTime.UTC()
	now := time.Now().UTC()

	if !start.After(now) {
		return nil, models.ErrPastDate
	}
	if in.DurationMinutes <= 0 {
		return nil, fmt.Errorf("%w: duration must be positive", models.ErrInvalidRange)
	}
	end := start.Add(time.Duration(in.DurationMinutes) * time.Minute)

	var reservation *models.Reservation
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var resource models.Resource
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ? AND is_active = ?", in.ResourceID, true).
			First(&resource).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.ErrNotFound
			}
			return err
		}

		var overlapping int64
		if err := tx.Model(&models.Reservation{}).
			Where("resource_id = ? AND status IN ? AND start_time < ? AND end_time > ?",
				in.ResourceID, []string{models.StatusPending, models.StatusConfirmed}, end, start).
			Count(&overlapping).Error; err != nil {
			return err
		}
		if overlapping > 0 {
			return models.ErrSlotUnavailable
		}

		var blocked int64
		if err := tx.Model(&models.ResourceBlock{}).
			Where("resource_id = ? AND start_time < ? AND end_time > ?", in.ResourceID, end, start).
			Count(&blocked).Error; err != nil {
			return err
		}
		if blocked > 0 {
			return models.ErrSlotUnavailable
		}

		var slots []models.WeeklySlot
		if err := tx.
			Where("resource_id = ? AND day_of_week = ? AND is_active = ?",
				in.ResourceID, utils.DayOfWeek(start), true).
			Order("start_time").
			Find(&slots).Error; err != nil {
			return err
		}
		slot := ResolveSlot(slots, start)
		if slot == nil {
			return models.ErrNoPricingAvailable
		}

		if in.Deposit < 0 || in.Deposit > slot.Price {
			return models.ErrInvalidDeposit
		}
		balance := slot.Price - in.Deposit

		reservation = &models.Reservation{
			ClientID:        clientID,
			ResourceID:      in.ResourceID,
			StartTime:       start,
			EndTime:         end,
			DurationMinutes: in.DurationMinutes,
			Status:          models.StatusPending,
			TotalPrice:      slot.Price,
			AmountPaid:      in.Deposit,
			PendingBalance:  balance,
			PaymentMethod:   in.PaymentMethod,
			PaymentComplete: balance == 0,
			ClientNotes:     in.ClientNotes,
		}
		return tx.Create(reservation).Error
	})
	if err != nil {
		return nil, err
	}

	InvalidateAvailability(context.Background(), in.ResourceID, start, end)
	return reservation, nil
}

// ResolveSlot picks the active weekly slot covering the requested start time.
// Slot definitions may overlap; the slot with the earliest start wins, which
// keeps the original first-match behavior deterministic.
func ResolveSlot(slots []models.WeeklySlot, start time.Time) *models.WeeklySlot {
	tod := models.TimeOfDayOf(start)
	var match *models.WeeklySlot
	for i := range slots {
		s := &slots[i]
		if !s.IsActive || !s.Covers(tod) {
			continue
		}
		if match == nil || s.StartTime < match.StartTime {
			match = s
		}
	}
	return match
}

// CountOverlapping returns how many non-terminal reservations intersect the
// half-open window [start, end) on the resource.
func (s *BookingService) CountOverlapping(resourceID uuid.UUID, start, end time.Time) (int64, error) {
	var n int64
	err := s.db.Model(&models.Reservation{}).
		Where("resource_id = ? AND status IN ? AND start_time < ? AND end_time > ?",
			resourceID, []string{models.StatusPending, models.StatusConfirmed}, end, start).
		Count(&n).Error
	return n, err
}
