package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func confirmedReservation(start, end time.Time) Reservation {
	return Reservation{
		Status:         StatusConfirmed,
		StartTime:      start,
		EndTime:        end,
		TotalPrice:     100,
		PendingBalance: 100,
	}
}

func TestConfirmOnlyFromPending(t *testing.T) {
	r := Reservation{Status: StatusPending}
	assert.NoError(t, r.Confirm())
	assert.Equal(t, StatusConfirmed, r.Status)

	// A second confirm is rejected
	assert.ErrorIs(t, r.Confirm(), ErrInvalidTransition)

	for _, status := range []string{StatusCancelled, StatusCompleted, StatusNoShow} {
		r := Reservation{Status: status}
		assert.ErrorIs(t, r.Confirm(), ErrInvalidTransition)
	}
}

func TestCancelBlockedFromTerminalStates(t *testing.T) {
	for _, status := range []string{StatusCancelled, StatusCompleted, StatusNoShow} {
		r := Reservation{Status: status}
		assert.ErrorIs(t, r.Cancel("cambio de planes"), ErrInvalidTransition)
		assert.Equal(t, status, r.Status)
	}

	r := Reservation{Status: StatusPending}
	assert.NoError(t, r.Cancel("cambio de planes"))
	assert.Equal(t, StatusCancelled, r.Status)
	assert.Equal(t, "cambio de planes", r.CancelReason)
	assert.NotNil(t, r.CancelledAt)
}

func TestCompleteRequiresEndPassed(t *testing.T) {
	start := time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)

	r := confirmedReservation(start, end)
	assert.ErrorIs(t, r.Complete(end.Add(-time.Minute)), ErrTooEarly)
	assert.Equal(t, StatusConfirmed, r.Status)

	assert.NoError(t, r.Complete(end))
	assert.Equal(t, StatusCompleted, r.Status)

	pending := Reservation{Status: StatusPending, EndTime: end}
	assert.ErrorIs(t, pending.Complete(end.Add(time.Hour)), ErrInvalidTransition)
}

func TestMarkNoShowRequiresStartPassed(t *testing.T) {
	start := time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)

	r := confirmedReservation(start, end)
	assert.ErrorIs(t, r.MarkNoShow(start.Add(-time.Second), ""), ErrTooEarly)

	assert.NoError(t, r.MarkNoShow(start.Add(5*time.Minute), "no contesta el telefono"))
	assert.Equal(t, StatusNoShow, r.Status)
	assert.Equal(t, "no contesta el telefono", r.InternalNotes)
}

func TestMarkNoShowAppendsNotes(t *testing.T) {
	start := time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC)
	r := confirmedReservation(start, start.Add(time.Hour))
	r.InternalNotes = "cliente habitual"

	assert.NoError(t, r.MarkNoShow(start.Add(time.Minute), "no vino"))
	assert.Equal(t, "cliente habitual\nno vino", r.InternalNotes)
}

func TestRecordPaymentAccumulates(t *testing.T) {
	r := Reservation{Status: StatusPending, TotalPrice: 100, AmountPaid: 20, PendingBalance: 80}

	assert.NoError(t, r.RecordPayment(30, PaymentCash, false))
	assert.Equal(t, 50.0, r.AmountPaid)
	assert.Equal(t, 50.0, r.PendingBalance)
	assert.False(t, r.PaymentComplete)
	assert.Equal(t, PaymentCash, r.PaymentMethod)

	assert.NoError(t, r.RecordPayment(50, PaymentCard, false))
	assert.Equal(t, 100.0, r.AmountPaid)
	assert.Equal(t, 0.0, r.PendingBalance)
	assert.True(t, r.PaymentComplete)
}

func TestRecordPaymentOverpaymentLeavesEntityUnchanged(t *testing.T) {
	r := Reservation{Status: StatusConfirmed, TotalPrice: 100, AmountPaid: 80, PendingBalance: 20}

	assert.ErrorIs(t, r.RecordPayment(30, PaymentCash, false), ErrOverPayment)
	assert.Equal(t, 80.0, r.AmountPaid)
	assert.Equal(t, 20.0, r.PendingBalance)
	assert.False(t, r.PaymentComplete)
	assert.Empty(t, r.PaymentMethod)
}

func TestRecordPaymentFullSettlementOverwrites(t *testing.T) {
	r := Reservation{Status: StatusConfirmed, TotalPrice: 100, AmountPaid: 30, PendingBalance: 70}

	assert.NoError(t, r.RecordPayment(90, PaymentTransfer, true))
	assert.Equal(t, 90.0, r.AmountPaid)
	assert.Equal(t, 0.0, r.PendingBalance)
	assert.True(t, r.PaymentComplete)
}

func TestRecordPaymentRejectedOnCancelled(t *testing.T) {
	r := Reservation{Status: StatusCancelled, TotalPrice: 100}
	assert.ErrorIs(t, r.RecordPayment(10, PaymentCash, false), ErrInvalidTransition)
}

func TestRecordPaymentRejectsNegativeAmount(t *testing.T) {
	r := Reservation{Status: StatusPending, TotalPrice: 100}
	assert.ErrorIs(t, r.RecordPayment(-1, PaymentCash, false), ErrInvalidDeposit)
}

func TestConfirmPaymentReceivedIndependentOfLifecycle(t *testing.T) {
	r := Reservation{Status: StatusCompleted}
	r.ConfirmPaymentReceived(true, "recibido en efectivo")
	assert.True(t, r.PaymentConfirmed)
	assert.Equal(t, "recibido en efectivo", r.PaymentNotes)

	r.ConfirmPaymentReceived(false, "")
	assert.False(t, r.PaymentConfirmed)
	assert.Equal(t, "recibido en efectivo", r.PaymentNotes)
}

func TestPriceSnapshotStable(t *testing.T) {
	slot := WeeklySlot{
		DayOfWeek: 0,
		StartTime: NewTimeOfDay(9, 0),
		EndTime:   NewTimeOfDay(13, 0),
		Price:     100,
	}

	start := time.Date(2026, 3, 9, 10, 0, 0, 0, time.UTC)
	r := Reservation{
		Status:         StatusPending,
		StartTime:      start,
		EndTime:        start.Add(time.Hour),
		TotalPrice:     slot.Price,
		PendingBalance: slot.Price,
	}

	// Later schedule changes never reprice an existing reservation
	slot.Price = 250
	slot.IsActive = false
	assert.Equal(t, 100.0, r.TotalPrice)

	// No lifecycle or payment mutation touches the snapshot either
	assert.NoError(t, r.Confirm())
	assert.NoError(t, r.RecordPayment(40, PaymentCash, false))
	r.ConfirmPaymentReceived(true, "")
	assert.NoError(t, r.Complete(r.EndTime))
	assert.Equal(t, 100.0, r.TotalPrice)
	assert.Equal(t, 60.0, r.PendingBalance)
}

func TestFullLifecycle(t *testing.T) {
	start := time.Date(2026, 5, 4, 9, 0, 0, 0, time.UTC)
	r := Reservation{
		Status:         StatusPending,
		StartTime:      start,
		EndTime:        start.Add(90 * time.Minute),
		TotalPrice:     150,
		AmountPaid:     50,
		PendingBalance: 100,
	}

	assert.NoError(t, r.Confirm())
	assert.NoError(t, r.RecordPayment(100, PaymentCash, false))
	assert.True(t, r.PaymentComplete)
	assert.NoError(t, r.Complete(r.EndTime.Add(time.Minute)))
	assert.True(t, r.IsTerminal())

	// Nothing moves a completed reservation
	assert.ErrorIs(t, r.Cancel("tarde"), ErrInvalidTransition)
	assert.ErrorIs(t, r.MarkNoShow(r.EndTime, ""), ErrInvalidTransition)
}
