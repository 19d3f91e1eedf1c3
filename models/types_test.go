package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseTimeOfDay(t *testing.T) {
	tod, err := ParseTimeOfDay("14:30")
	assert.NoError(t, err)
	assert.Equal(t, 14, tod.Hour())
	assert.Equal(t, 30, tod.Minute())

	tod, err = ParseTimeOfDay("09:15:00")
	assert.NoError(t, err)
	assert.Equal(t, NewTimeOfDay(9, 15), tod)

	_, err = ParseTimeOfDay("25:00")
	assert.Error(t, err)
	_, err = ParseTimeOfDay("no es hora")
	assert.Error(t, err)
}

func TestTimeOfDayString(t *testing.T) {
	assert.Equal(t, "00:00", NewTimeOfDay(0, 0).String())
	assert.Equal(t, "09:05", NewTimeOfDay(9, 5).String())
	assert.Equal(t, "23:59", NewTimeOfDay(23, 59).String())
}

func TestTimeOfDayAt(t *testing.T) {
	day := time.Date(2026, 7, 20, 0, 0, 0, 0, time.UTC)
	at := NewTimeOfDay(16, 45).At(day)
	assert.Equal(t, time.Date(2026, 7, 20, 16, 45, 0, 0, time.UTC), at)
}

func TestTimeOfDaySQLRoundtrip(t *testing.T) {
	v, err := NewTimeOfDay(8, 30).Value()
	assert.NoError(t, err)
	assert.Equal(t, "08:30:00", v)

	var scanned TimeOfDay
	assert.NoError(t, scanned.Scan("08:30:00"))
	assert.Equal(t, NewTimeOfDay(8, 30), scanned)

	assert.NoError(t, scanned.Scan([]byte("21:00:00")))
	assert.Equal(t, NewTimeOfDay(21, 0), scanned)

	assert.NoError(t, scanned.Scan(time.Date(2000, 1, 1, 12, 15, 0, 0, time.UTC)))
	assert.Equal(t, NewTimeOfDay(12, 15), scanned)

	assert.Error(t, scanned.Scan(42))
}

func TestTimeOfDayJSON(t *testing.T) {
	data, err := json.Marshal(NewTimeOfDay(10, 0))
	assert.NoError(t, err)
	assert.Equal(t, `"10:00"`, string(data))

	var tod TimeOfDay
	assert.NoError(t, json.Unmarshal([]byte(`"18:30"`), &tod))
	assert.Equal(t, NewTimeOfDay(18, 30), tod)

	assert.Error(t, json.Unmarshal([]byte(`"mediodia"`), &tod))
}

func TestWeeklySlotValidate(t *testing.T) {
	slot := WeeklySlot{DayOfWeek: 2, StartTime: NewTimeOfDay(9, 0), EndTime: NewTimeOfDay(13, 0)}
	assert.NoError(t, slot.Validate())

	slot.DayOfWeek = 7
	assert.ErrorIs(t, slot.Validate(), ErrInvalidRange)

	slot.DayOfWeek = 0
	slot.EndTime = slot.StartTime
	assert.ErrorIs(t, slot.Validate(), ErrInvalidRange)
}

func TestWeeklySlotCoversHalfOpen(t *testing.T) {
	slot := WeeklySlot{StartTime: NewTimeOfDay(9, 0), EndTime: NewTimeOfDay(12, 0)}

	assert.True(t, slot.Covers(NewTimeOfDay(9, 0)))
	assert.True(t, slot.Covers(NewTimeOfDay(11, 59)))
	assert.False(t, slot.Covers(NewTimeOfDay(12, 0)))
	assert.False(t, slot.Covers(NewTimeOfDay(8, 59)))
}
