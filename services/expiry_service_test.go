package services

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestExpireOverdueSelectsOnlyStalePending(t *testing.T) {
	gormDB, mock := newMockDB(t)
	svc := NewExpiryService(gormDB)

	now := time.Date(2026, 3, 9, 12, 0, 0, 0, time.UTC)

	// The sweep must filter on pending status and a passed start time;
	// confirmed or future reservations never match.
	mock.ExpectQuery(`SELECT \* FROM "reservations" WHERE status = \$1 AND start_time < \$2`).
		WithArgs("pendiente", now).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	expired, err := svc.ExpireOverdue(now)
	assert.NoError(t, err)
	assert.Zero(t, expired)
	assert.NoError(t, mock.ExpectationsWereMet())
}
