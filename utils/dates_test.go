package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestOverlapsHalfOpen(t *testing.T) {
	base := time.Date(2026, 3, 9, 10, 0, 0, 0, time.UTC)
	hour := time.Hour

	// Identical intervals
	assert.True(t, Overlaps(base, base.Add(hour), base, base.Add(hour)))

	// Partial overlap on each side
	assert.True(t, Overlaps(base, base.Add(hour), base.Add(30*time.Minute), base.Add(2*hour)))
	assert.True(t, Overlaps(base.Add(30*time.Minute), base.Add(2*hour), base, base.Add(hour)))

	// Containment
	assert.True(t, Overlaps(base, base.Add(3*hour), base.Add(hour), base.Add(2*hour)))

	// Back to back intervals do not overlap
	assert.False(t, Overlaps(base, base.Add(hour), base.Add(hour), base.Add(2*hour)))
	assert.False(t, Overlaps(base.Add(hour), base.Add(2*hour), base, base.Add(hour)))

	// Disjoint
	assert.False(t, Overlaps(base, base.Add(hour), base.Add(5*hour), base.Add(6*hour)))
}

func TestOverlapsIsSymmetric(t *testing.T) {
	base := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 8; i++ {
		for j := i + 1; j < 9; j++ {
			aStart, aEnd := base.Add(time.Duration(i)*time.Hour), base.Add(time.Duration(j)*time.Hour)
			for k := 0; k < 8; k++ {
				for l := k + 1; l < 9; l++ {
					bStart, bEnd := base.Add(time.Duration(k)*time.Hour), base.Add(time.Duration(l)*time.Hour)
					assert.Equal(t,
						Overlaps(aStart, aEnd, bStart, bEnd),
						Overlaps(bStart, bEnd, aStart, aEnd),
						"a=[%d,%d) b=[%d,%d)", i, j, k, l)
				}
			}
		}
	}
}

func TestDayOfWeekMondayFirst(t *testing.T) {
	monday := time.Date(2026, 3, 9, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Monday, monday.Weekday())

	for offset, want := range []int{0, 1, 2, 3, 4, 5, 6} {
		assert.Equal(t, want, DayOfWeek(monday.AddDate(0, 0, offset)))
	}
}

func TestBeginningAndEndOfDay(t *testing.T) {
	at := time.Date(2026, 3, 9, 17, 42, 13, 500, time.UTC)

	start := BeginningOfDay(at)
	assert.Equal(t, time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC), start)

	end := EndOfDay(at)
	assert.Equal(t, time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), end)
}
