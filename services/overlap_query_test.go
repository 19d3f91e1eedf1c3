package services

import (
	"testing"
	"time"

	"turnero-backend/models"
	"turnero-backend/utils"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("An error '%s' was not expected when opening a stub database connection", err)
	}

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{})
	if err != nil {
		t.Fatalf("An error '%s' was not expected when opening gorm database", err)
	}

	return gormDB, mock
}

func TestCountOverlappingQueryShape(t *testing.T) {
	gormDB, mock := newMockDB(t)
	svc := NewBookingService(gormDB)

	resourceID := uuid.New()
	start := time.Date(2026, 3, 9, 10, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "reservations"`).
		WithArgs(resourceID, "pendiente", "confirmada", end, start).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	n, err := svc.CountOverlapping(resourceID, start, end)
	assert.NoError(t, err)
	assert.Equal(t, int64(2), n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateReservationRejectsExcessiveDeposit(t *testing.T) {
	gormDB, mock := newMockDB(t)
	svc := NewBookingService(gormDB)

	resourceID := uuid.New()
	now := time.Now().UTC()
	start := time.Date(now.Year(), now.Month(), now.Day(), 10, 0, 0, 0, time.UTC).AddDate(0, 0, 2)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "resources"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "is_active"}).
			AddRow(resourceID.String(), true))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "reservations"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "resource_blocks"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(`SELECT \* FROM "weekly_slots"`).
		WillReturnRows(sqlmock.NewRows(
			[]string{"id", "resource_id", "day_of_week", "start_time", "end_time", "price", "duration_minutes", "is_active"}).
			AddRow(uuid.NewString(), resourceID.String(), utils.DayOfWeek(start), "00:00:00", "23:59:00", 100.0, 60, true))
	mock.ExpectRollback()

	_, err := svc.CreateReservation(uuid.New(), CreateReservationInput{
		ResourceID:      resourceID,
		StartTime:       start,
		DurationMinutes: 60,
		Deposit:         150,
	})
	assert.ErrorIs(t, err, models.ErrInvalidDeposit)
	assert.NoError(t, mock.ExpectationsWereMet())
}
