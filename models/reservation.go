package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StatusPending   = "pendiente"
	StatusConfirmed = "confirmada"
	StatusCancelled = "cancelada"
	StatusCompleted = "completada"
	StatusNoShow    = "no_asistio"
)

const (
	PaymentCash     = "efectivo"
	PaymentCard     = "tarjeta"
	PaymentTransfer = "transferencia"
)

// Reservation is a booked, time-boxed occupation of a resource by a client.
// TotalPrice is a snapshot of the matching weekly slot at creation time;
// later schedule changes never touch it. All mutations go through methods so
// the payment and lifecycle invariants hold on every write.
type Reservation struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	ClientID   uuid.UUID `gorm:"type:uuid;index;not null" json:"client_id"`
	ResourceID uuid.UUID `gorm:"type:uuid;index;not null" json:"resource_id"`

	StartTime       time.Time `gorm:"not null;index" json:"start_time"`
	EndTime         time.Time `gorm:"not null" json:"end_time"`
	DurationMinutes int       `gorm:"not null" json:"duration_minutes"`

	Status string `gorm:"type:varchar(50);not null;default:'pendiente';index" json:"status"`

	TotalPrice       float64 `gorm:"type:decimal(10,2);not null" json:"total_price"`
	AmountPaid       float64 `gorm:"type:decimal(10,2);default:0.0" json:"amount_paid"`
	PendingBalance   float64 `gorm:"type:decimal(10,2);default:0.0" json:"pending_balance"`
	PaymentMethod    string  `gorm:"type:varchar(50)" json:"payment_method,omitempty"`
	PaymentComplete  bool    `gorm:"default:false" json:"payment_complete"`
	PaymentConfirmed bool    `gorm:"default:false" json:"payment_confirmed"`
	PaymentNotes     string  `gorm:"type:text" json:"payment_notes,omitempty"`

	ClientNotes   string `gorm:"type:text" json:"client_notes,omitempty"`
	InternalNotes string `gorm:"type:text" json:"internal_notes,omitempty"`

	CancelReason string     `gorm:"type:varchar(500)" json:"cancel_reason,omitempty"`
	CancelledAt  *time.Time `json:"cancelled_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (r *Reservation) BeforeCreate(tx *gorm.DB) (err error) {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return
}

// IsTerminal reports whether no further lifecycle transition is allowed.
func (r *Reservation) IsTerminal() bool {
	switch r.Status {
	case StatusCancelled, StatusCompleted, StatusNoShow:
		return true
	}
	return false
}

func (r *Reservation) touch() {
	r.UpdatedAt = time.Now().UTC()
}

// Confirm moves a pending reservation to confirmed (provider action).
func (r *Reservation) Confirm() error {
	if r.Status != StatusPending {
		return ErrInvalidTransition
	}
	r.Status = StatusConfirmed
	r.touch()
	return nil
}

// Cancel records a cancellation with reason and timestamp. Terminal
// reservations stay as they are.
func (r *Reservation) Cancel(reason string) error {
	if r.IsTerminal() {
		return ErrInvalidTransition
	}
	now := time.Now().UTC()
	r.Status = StatusCancelled
	r.CancelReason = reason
	r.CancelledAt = &now
	r.touch()
	return nil
}

// Complete marks a confirmed reservation as completed once its end has passed.
func (r *Reservation) Complete(now time.Time) error {
	if r.Status != StatusConfirmed {
		return ErrInvalidTransition
	}
	if now.Before(r.EndTime) {
		return ErrTooEarly
	}
	r.Status = StatusCompleted
	r.touch()
	return nil
}

// MarkNoShow flags a confirmed reservation whose start already passed.
// Provider notes are appended to the internal notes, not overwritten.
func (r *Reservation) MarkNoShow(now time.Time, notes string) error {
	if r.Status != StatusConfirmed {
		return ErrInvalidTransition
	}
	if now.Before(r.StartTime) {
		return ErrTooEarly
	}
	r.Status = StatusNoShow
	if notes != "" {
		if r.InternalNotes != "" {
			r.InternalNotes = strings.TrimRight(r.InternalNotes, "\n") + "\n" + notes
		} else {
			r.InternalNotes = notes
		}
	}
	r.touch()
	return nil
}

// RecordPayment applies a payment against the reservation. A full settlement
// overwrites the paid amount and zeroes the balance; otherwise the amount
// accumulates and may never exceed the total price. On failure the entity is
// left unchanged.
func (r *Reservation) RecordPayment(amount float64, method string, fullSettlement bool) error {
	if r.Status == StatusCancelled {
		return ErrInvalidTransition
	}
	if amount < 0 {
		return ErrInvalidDeposit
	}
	if fullSettlement {
		r.AmountPaid = amount
		r.PendingBalance = 0
		r.PaymentComplete = true
	} else {
		newPaid := r.AmountPaid + amount
		if newPaid > r.TotalPrice {
			return ErrOverPayment
		}
		r.AmountPaid = newPaid
		r.PendingBalance = r.TotalPrice - newPaid
		r.PaymentComplete = r.PendingBalance == 0
	}
	if method != "" {
		r.PaymentMethod = method
	}
	r.touch()
	return nil
}

// ConfirmPaymentReceived is the provider's administrative acknowledgement.
// It is independent of the lifecycle state.
func (r *Reservation) ConfirmPaymentReceived(confirmed bool, notes string) {
	r.PaymentConfirmed = confirmed
	if notes != "" {
		r.PaymentNotes = notes
	}
	r.touch()
}
