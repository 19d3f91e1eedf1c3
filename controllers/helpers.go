package controllers

import (
	"errors"
	"net/http"

	"turnero-backend/config"
	"turnero-backend/models"
	"turnero-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// currentUserID pulls the authenticated user id set by the auth middleware.
func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, exists := c.Get("userId")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "User ID not found in context")
		return uuid.Nil, false
	}
	userUUID, err := uuid.Parse(userID.(string))
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Invalid user ID format")
		return uuid.Nil, false
	}
	return userUUID, true
}

// currentClient loads the client profile of the authenticated user.
func currentClient(c *gin.Context) (*models.Client, bool) {
	userUUID, ok := currentUserID(c)
	if !ok {
		return nil, false
	}
	var client models.Client
	if err := config.DB.Where("user_id = ?", userUUID).First(&client).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Client profile not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return nil, false
	}
	return &client, true
}

// currentProvider loads the provider profile of the authenticated user.
func currentProvider(c *gin.Context) (*models.Provider, bool) {
	userUUID, ok := currentUserID(c)
	if !ok {
		return nil, false
	}
	var provider models.Provider
	if err := config.DB.Where("user_id = ?", userUUID).First(&provider).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Provider profile not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return nil, false
	}
	return &provider, true
}

// providerResource loads a resource only if it belongs to one of the
// provider's services.
func providerResource(providerID, resourceID uuid.UUID) (*models.Resource, error) {
	var resource models.Resource
	err := config.DB.
		Joins("JOIN services ON services.id = resources.service_id").
		Where("resources.id = ? AND services.provider_id = ?", resourceID, providerID).
		First(&resource).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}
	return &resource, nil
}

// providerReservation loads a reservation only if it sits on a resource owned
// by the provider.
func providerReservation(providerID, reservationID uuid.UUID) (*models.Reservation, error) {
	var reservation models.Reservation
	err := config.DB.
		Joins("JOIN resources ON resources.id = reservations.resource_id").
		Joins("JOIN services ON services.id = resources.service_id").
		Where("reservations.id = ? AND services.provider_id = ?", reservationID, providerID).
		First(&reservation).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}
	return &reservation, nil
}

// respondDomainError translates domain failures to HTTP responses.
func respondDomainError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, models.ErrNotFound):
		utils.RespondWithError(c, http.StatusNotFound, "Not found")
	case errors.Is(err, models.ErrSlotUnavailable):
		utils.RespondWithError(c, http.StatusConflict, "The requested time window is already taken")
	case errors.Is(err, models.ErrNoPricingAvailable):
		utils.RespondWithError(c, http.StatusBadRequest, "No pricing available for the requested time")
	case errors.Is(err, models.ErrInvalidDeposit):
		utils.RespondWithError(c, http.StatusBadRequest, "Deposit must be between 0 and the total price")
	case errors.Is(err, models.ErrOverPayment):
		utils.RespondWithError(c, http.StatusBadRequest, "Payment exceeds the total price")
	case errors.Is(err, models.ErrInvalidTransition):
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid reservation state transition")
	case errors.Is(err, models.ErrTooEarly):
		utils.RespondWithError(c, http.StatusBadRequest, "The reservation time has not passed yet")
	case errors.Is(err, models.ErrInvalidRange):
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid time range")
	case errors.Is(err, models.ErrPastDate):
		utils.RespondWithError(c, http.StatusBadRequest, "Reservation start must be in the future")
	default:
		utils.RespondWithError(c, http.StatusInternalServerError, "Internal error")
	}
}
