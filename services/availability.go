// services/availability.go
package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"turnero-backend/config"
	"turnero-backend/models"
	"turnero-backend/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	WindowFree     = "disponible"
	WindowReserved = "reservado"
	WindowBlocked  = "bloqueado"
)

const availabilityTTL = time.Minute

// TimeWindow is one bookable interval in a resource's day view.
type TimeWindow struct {
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	Status    string    `json:"status"`
}

func availabilityKey(resourceID uuid.UUID, date time.Time) string {
	return fmt.Sprintf("availability:%s:%s", resourceID, date.UTC().Format("2006-01-02"))
}

// DayAvailability builds the slot grid for a resource on the given date.
// Results are cached briefly in redis; booking mutations invalidate the key.
func (s *BookingService) DayAvailability(ctx context.Context, resourceID uuid.UUID, date time.Time) ([]TimeWindow, error) {
	rdb := config.GetRedisClient()
	key := availabilityKey(resourceID, date)
	if rdb != nil {
		if cached, err := rdb.Get(ctx, key).Result(); err == nil {
			var windows []TimeWindow
			if err := json.Unmarshal([]byte(cached), &windows); err == nil {
				return windows, nil
			}
		}
	}

	var resource models.Resource
	if err := s.db.Where("id = ? AND is_active = ?", resourceID, true).
		First(&resource).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}

	day := utils.BeginningOfDay(date.UTC())
	dayEnd := utils.EndOfDay(day)

	var slots []models.WeeklySlot
	if err := s.db.
		Where("resource_id = ? AND day_of_week = ? AND is_active = ?",
			resourceID, utils.DayOfWeek(day), true).
		Order("start_time").
		Find(&slots).Error; err != nil {
		return nil, err
	}

	var reservations []models.Reservation
	if err := s.db.
		Where("resource_id = ? AND status IN ? AND start_time < ? AND end_time > ?",
			resourceID, []string{models.StatusPending, models.StatusConfirmed}, dayEnd, day).
		Find(&reservations).Error; err != nil {
		return nil, err
	}

	var blocks []models.ResourceBlock
	if err := s.db.
		Where("resource_id = ? AND start_time < ? AND end_time > ?", resourceID, dayEnd, day).
		Find(&blocks).Error; err != nil {
		return nil, err
	}

	windows := BuildDayGrid(day, slots, reservations, blocks)

	if rdb != nil {
		if payload, err := json.Marshal(windows); err == nil {
			if err := rdb.Set(ctx, key, payload, availabilityTTL).Err(); err != nil {
				log.Printf("[cache] failed to store %s: %s\n", key, err.Error())
			}
		}
	}
	return windows, nil
}

// BuildDayGrid expands the weekly slots of one day into fixed-duration
// windows and marks each one free, reserved or blocked. Blocks win over
// reservations when both cover a window.
func BuildDayGrid(day time.Time, slots []models.WeeklySlot, reservations []models.Reservation, blocks []models.ResourceBlock) []TimeWindow {
	windows := []TimeWindow{}
	for _, slot := range slots {
		step := time.Duration(slot.DurationMinutes) * time.Minute
		if step <= 0 {
			continue
		}
		for t := slot.StartTime.At(day); !t.Add(step).After(slot.EndTime.At(day)); t = t.Add(step) {
			w := TimeWindow{StartTime: t, EndTime: t.Add(step), Status: WindowFree}
			for _, b := range blocks {
				if utils.Overlaps(b.StartTime, b.EndTime, w.StartTime, w.EndTime) {
					w.Status = WindowBlocked
					break
				}
			}
			if w.Status == WindowFree {
				for _, r := range reservations {
					if utils.Overlaps(r.StartTime, r.EndTime, w.StartTime, w.EndTime) {
						w.Status = WindowReserved
						break
					}
				}
			}
			windows = append(windows, w)
		}
	}
	return windows
}

// InvalidateAvailability drops the cached day views touched by a booking or
// block mutation. A window may span midnight, so every day it overlaps gets
// invalidated. A missing redis client means the cache is disabled.
func InvalidateAvailability(ctx context.Context, resourceID uuid.UUID, start, end time.Time) {
	rdb := config.GetRedisClient()
	if rdb == nil {
		return
	}
	for _, day := range daySpan(start, end) {
		if err := rdb.Del(ctx, availabilityKey(resourceID, day)).Err(); err != nil {
			log.Printf("[cache] failed to invalidate availability for %s: %s\n", resourceID, err.Error())
		}
	}
}

// daySpan lists the UTC days the half-open window [start, end) touches.
// An end on a midnight boundary does not pull in the following day.
func daySpan(start, end time.Time) []time.Time {
	days := []time.Time{utils.BeginningOfDay(start.UTC())}
	for d := days[0].Add(24 * time.Hour); d.Before(end.UTC()); d = d.Add(24 * time.Hour) {
		days = append(days, d)
	}
	return days
}
