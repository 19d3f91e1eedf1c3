// controllers/reservation.go
package controllers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"turnero-backend/config"
	"turnero-backend/models"
	"turnero-backend/services"
	"turnero-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CreateReservationInput struct {
	ResourceID      uuid.UUID `json:"resource_id" binding:"required"`
	StartTime       time.Time `json:"start_time" binding:"required,futuredate"`
	DurationMinutes int       `json:"duration_minutes" binding:"required,gt=0"`
	ClientNotes     string    `json:"client_notes"`
	Deposit         float64   `json:"deposit" binding:"min=0"`
	PaymentMethod   string    `json:"payment_method" binding:"omitempty,oneof=efectivo tarjeta transferencia"`
}

type CancelReservationInput struct {
	Reason string `json:"reason"`
}

type RecordPaymentInput struct {
	Amount         float64 `json:"amount" binding:"required,gt=0"`
	PaymentMethod  string  `json:"payment_method" binding:"required,oneof=efectivo tarjeta transferencia"`
	FullSettlement bool    `json:"full_settlement"`
}

type ConfirmPaymentInput struct {
	Confirmed *bool  `json:"confirmed" binding:"required"`
	Notes     string `json:"notes"`
}

type MarkNoShowInput struct {
	Notes string `json:"notes"`
}

// reservationDetail joins the names clients and providers want to see next
// to each reservation row.
type reservationDetail struct {
	models.Reservation
	ResourceName string `json:"resource_name"`
	ServiceName  string `json:"service_name"`
	ClientName   string `json:"client_name"`
}

// CreateReservation books a resource for the authenticated client
func CreateReservation(c *gin.Context) {
	client, ok := currentClient(c)
	if !ok {
		return
	}

	var input CreateReservationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	booking := services.NewBookingService(config.DB)
	reservation, err := booking.CreateReservation(client.ID, services.CreateReservationInput{
		ResourceID:      input.ResourceID,
		StartTime:       input.StartTime,
		DurationMinutes: input.DurationMinutes,
		ClientNotes:     input.ClientNotes,
		Deposit:         input.Deposit,
		PaymentMethod:   input.PaymentMethod,
	})
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, reservation)
}

// GetAvailability returns the day grid for a resource (public)
func GetAvailability(c *gin.Context) {
	resourceUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid resource ID format")
		return
	}

	dateParam := c.Query("date")
	if dateParam == "" {
		utils.RespondWithError(c, http.StatusBadRequest, "date query parameter is required (YYYY-MM-DD)")
		return
	}
	date, err := time.ParseInLocation("2006-01-02", dateParam, time.UTC)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid date format, expected YYYY-MM-DD")
		return
	}

	booking := services.NewBookingService(config.DB)
	windows, err := booking.DayAvailability(c.Request.Context(), resourceUUID, date)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"resource_id": resourceUUID,
		"date":        dateParam,
		"windows":     windows,
	})
}

// ListMyReservations lists the authenticated client's reservations,
// optionally filtered by status
func ListMyReservations(c *gin.Context) {
	client, ok := currentClient(c)
	if !ok {
		return
	}

	query := config.DB.Model(&models.Reservation{}).
		Select("reservations.*, resources.name AS resource_name, services.name AS service_name, clients.first_name || ' ' || clients.last_name AS client_name").
		Joins("JOIN resources ON resources.id = reservations.resource_id").
		Joins("JOIN services ON services.id = resources.service_id").
		Joins("JOIN clients ON clients.id = reservations.client_id").
		Where("reservations.client_id = ?", client.ID)

	if status := c.Query("status"); status != "" {
		query = query.Where("reservations.status = ?", status)
	}

	var reservations []reservationDetail
	if err := query.Order("reservations.start_time DESC").Scan(&reservations).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve reservations")
		return
	}

	c.JSON(http.StatusOK, reservations)
}

// GetReservation retrieves one reservation owned by the client
func GetReservation(c *gin.Context) {
	client, ok := currentClient(c)
	if !ok {
		return
	}

	reservationUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid reservation ID format")
		return
	}

	var detail reservationDetail
	err = config.DB.Model(&models.Reservation{}).
		Select("reservations.*, resources.name AS resource_name, services.name AS service_name, clients.first_name || ' ' || clients.last_name AS client_name").
		Joins("JOIN resources ON resources.id = reservations.resource_id").
		Joins("JOIN services ON services.id = resources.service_id").
		Joins("JOIN clients ON clients.id = reservations.client_id").
		Where("reservations.id = ? AND reservations.client_id = ?", reservationUUID, client.ID).
		Scan(&detail).Error
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}
	if detail.ID == uuid.Nil {
		utils.RespondWithError(c, http.StatusNotFound, "Reservation not found")
		return
	}

	c.JSON(http.StatusOK, detail)
}

// CancelMyReservation cancels a reservation owned by the client
func CancelMyReservation(c *gin.Context) {
	client, ok := currentClient(c)
	if !ok {
		return
	}

	reservationUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid reservation ID format")
		return
	}

	// An empty body is fine: the reason is optional
	var input CancelReservationInput
	_ = c.ShouldBindJSON(&input)

	var reservation models.Reservation
	if err := config.DB.Where("id = ? AND client_id = ?", reservationUUID, client.ID).
		First(&reservation).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Reservation not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if err := reservation.Cancel(input.Reason); err != nil {
		respondDomainError(c, err)
		return
	}
	if err := config.DB.Save(&reservation).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to cancel reservation")
		return
	}
	services.InvalidateAvailability(context.Background(), reservation.ResourceID, reservation.StartTime, reservation.EndTime)

	c.JSON(http.StatusOK, reservation)
}

// RecordPayment registers a deposit or additional payment on the client's
// reservation
func RecordPayment(c *gin.Context) {
	client, ok := currentClient(c)
	if !ok {
		return
	}

	reservationUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid reservation ID format")
		return
	}

	var input RecordPaymentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var reservation models.Reservation
	if err := config.DB.Where("id = ? AND client_id = ?", reservationUUID, client.ID).
		First(&reservation).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Reservation not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if err := reservation.RecordPayment(input.Amount, input.PaymentMethod, input.FullSettlement); err != nil {
		respondDomainError(c, err)
		return
	}
	if err := config.DB.Save(&reservation).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to record payment")
		return
	}

	c.JSON(http.StatusOK, reservation)
}

// ListProviderReservations lists reservations across all resources of the
// provider's services, optionally filtered by status and resource
func ListProviderReservations(c *gin.Context) {
	provider, ok := currentProvider(c)
	if !ok {
		return
	}

	query := config.DB.Model(&models.Reservation{}).
		Select("reservations.*, resources.name AS resource_name, services.name AS service_name, clients.first_name || ' ' || clients.last_name AS client_name").
		Joins("JOIN resources ON resources.id = reservations.resource_id").
		Joins("JOIN services ON services.id = resources.service_id").
		Joins("JOIN clients ON clients.id = reservations.client_id").
		Where("services.provider_id = ?", provider.ID)

	if status := c.Query("status"); status != "" {
		query = query.Where("reservations.status = ?", status)
	}
	if resourceParam := c.Query("resource_id"); resourceParam != "" {
		resourceUUID, err := uuid.Parse(resourceParam)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid resource ID format")
			return
		}
		query = query.Where("reservations.resource_id = ?", resourceUUID)
	}

	var reservations []reservationDetail
	if err := query.Order("reservations.start_time DESC").Scan(&reservations).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve reservations")
		return
	}

	c.JSON(http.StatusOK, reservations)
}

// ConfirmReservation moves a pending reservation to confirmed (provider)
func ConfirmReservation(c *gin.Context) {
	withProviderReservation(c, func(reservation *models.Reservation) error {
		return reservation.Confirm()
	})
}

// CompleteReservation marks a confirmed, finished reservation as completed
func CompleteReservation(c *gin.Context) {
	withProviderReservation(c, func(reservation *models.Reservation) error {
		return reservation.Complete(time.Now().UTC())
	})
}

// MarkNoShow flags a confirmed reservation whose start passed without the
// client turning up
func MarkNoShow(c *gin.Context) {
	var input MarkNoShowInput
	_ = c.ShouldBindJSON(&input)

	withProviderReservation(c, func(reservation *models.Reservation) error {
		return reservation.MarkNoShow(time.Now().UTC(), input.Notes)
	})
}

// CancelProviderReservation cancels a reservation on the provider's behalf
func CancelProviderReservation(c *gin.Context) {
	var input CancelReservationInput
	_ = c.ShouldBindJSON(&input)

	withProviderReservation(c, func(reservation *models.Reservation) error {
		return reservation.Cancel(input.Reason)
	})
}

// ConfirmPayment records the provider's acknowledgement that money changed
// hands; it never touches the lifecycle state
func ConfirmPayment(c *gin.Context) {
	var input ConfirmPaymentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	withProviderReservation(c, func(reservation *models.Reservation) error {
		reservation.ConfirmPaymentReceived(*input.Confirmed, input.Notes)
		return nil
	})
}

// withProviderReservation loads the ownership-checked reservation, applies
// the mutation and persists it.
func withProviderReservation(c *gin.Context, mutate func(*models.Reservation) error) {
	provider, ok := currentProvider(c)
	if !ok {
		return
	}

	reservationUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid reservation ID format")
		return
	}

	reservation, err := providerReservation(provider.ID, reservationUUID)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	wasTerminal := reservation.IsTerminal()
	if err := mutate(reservation); err != nil {
		respondDomainError(c, err)
		return
	}
	if err := config.DB.Save(reservation).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update reservation")
		return
	}
	if !wasTerminal && reservation.IsTerminal() {
		services.InvalidateAvailability(context.Background(), reservation.ResourceID, reservation.StartTime, reservation.EndTime)
	}

	c.JSON(http.StatusOK, reservation)
}
