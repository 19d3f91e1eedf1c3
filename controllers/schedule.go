// controllers/schedule.go
package controllers

import (
	"net/http"

	"turnero-backend/config"
	"turnero-backend/models"
	"turnero-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateSlotInput defines one weekly priced window.
// Days run 0=Monday .. 6=Sunday; times are "HH:MM".
type CreateSlotInput struct {
	ResourceID      uuid.UUID        `json:"resource_id" binding:"required"`
	DayOfWeek       *int             `json:"day_of_week" binding:"required,min=0,max=6"`
	StartTime       models.TimeOfDay `json:"start_time"`
	EndTime         models.TimeOfDay `json:"end_time" binding:"required"`
	Price           float64          `json:"price" binding:"required,gt=0"`
	DurationMinutes int              `json:"duration_minutes" binding:"required,gt=0"`
}

type BulkCreateSlotsInput struct {
	ResourceID      uuid.UUID        `json:"resource_id" binding:"required"`
	DaysOfWeek      []int            `json:"days_of_week" binding:"required,min=1"`
	StartTime       models.TimeOfDay `json:"start_time"`
	EndTime         models.TimeOfDay `json:"end_time" binding:"required"`
	Price           float64          `json:"price" binding:"required,gt=0"`
	DurationMinutes int              `json:"duration_minutes" binding:"required,gt=0"`
}

type UpdateSlotInput struct {
	DayOfWeek       *int              `json:"day_of_week" binding:"omitempty,min=0,max=6"`
	StartTime       *models.TimeOfDay `json:"start_time"`
	EndTime         *models.TimeOfDay `json:"end_time"`
	Price           *float64          `json:"price" binding:"omitempty,gt=0"`
	DurationMinutes *int              `json:"duration_minutes" binding:"omitempty,gt=0"`
	IsActive        *bool             `json:"is_active"`
}

// CreateSlot adds a weekly slot to a resource owned by the provider
func CreateSlot(c *gin.Context) {
	provider, ok := currentProvider(c)
	if !ok {
		return
	}

	var input CreateSlotInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if _, err := providerResource(provider.ID, input.ResourceID); err != nil {
		respondDomainError(c, err)
		return
	}

	slot := models.WeeklySlot{
		ResourceID:      input.ResourceID,
		DayOfWeek:       *input.DayOfWeek,
		StartTime:       input.StartTime,
		EndTime:         input.EndTime,
		Price:           input.Price,
		DurationMinutes: input.DurationMinutes,
		IsActive:        true,
	}
	if err := slot.Validate(); err != nil {
		respondDomainError(c, err)
		return
	}

	if err := config.DB.Create(&slot).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create slot")
		return
	}

	c.JSON(http.StatusCreated, slot)
}

// BulkCreateSlots applies one window definition to several days at once.
// Creation is atomic: one bad day rejects the whole batch.
func BulkCreateSlots(c *gin.Context) {
	provider, ok := currentProvider(c)
	if !ok {
		return
	}

	var input BulkCreateSlotsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if _, err := providerResource(provider.ID, input.ResourceID); err != nil {
		respondDomainError(c, err)
		return
	}

	slots := make([]models.WeeklySlot, 0, len(input.DaysOfWeek))
	for _, day := range input.DaysOfWeek {
		slot := models.WeeklySlot{
			ResourceID:      input.ResourceID,
			DayOfWeek:       day,
			StartTime:       input.StartTime,
			EndTime:         input.EndTime,
			Price:           input.Price,
			DurationMinutes: input.DurationMinutes,
			IsActive:        true,
		}
		if err := slot.Validate(); err != nil {
			respondDomainError(c, err)
			return
		}
		slots = append(slots, slot)
	}

	if err := config.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&slots).Error
	}); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create slots")
		return
	}

	c.JSON(http.StatusCreated, slots)
}

// ListSlotsForResource lists active slots ordered by day and start (public:
// clients need this to see what is bookable)
func ListSlotsForResource(c *gin.Context) {
	resourceUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid resource ID format")
		return
	}

	var slots []models.WeeklySlot
	if err := config.DB.
		Where("resource_id = ? AND is_active = ?", resourceUUID, true).
		Order("day_of_week, start_time").
		Find(&slots).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve slots")
		return
	}

	c.JSON(http.StatusOK, slots)
}

// UpdateSlot updates a slot on a resource owned by the provider.
// Already-created reservations keep their snapshot price. A weekly change
// touches every future date, so cached day views are not invalidated here;
// they refresh within the cache TTL.
func UpdateSlot(c *gin.Context) {
	provider, ok := currentProvider(c)
	if !ok {
		return
	}

	slotUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid slot ID format")
		return
	}

	slot, ok := ownedSlot(c, provider.ID, slotUUID)
	if !ok {
		return
	}

	var input UpdateSlotInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if input.DayOfWeek != nil {
		slot.DayOfWeek = *input.DayOfWeek
	}
	if input.StartTime != nil {
		slot.StartTime = *input.StartTime
	}
	if input.EndTime != nil {
		slot.EndTime = *input.EndTime
	}
	if input.Price != nil {
		slot.Price = *input.Price
	}
	if input.DurationMinutes != nil {
		slot.DurationMinutes = *input.DurationMinutes
	}
	if input.IsActive != nil {
		slot.IsActive = *input.IsActive
	}
	if err := slot.Validate(); err != nil {
		respondDomainError(c, err)
		return
	}

	if err := config.DB.Save(slot).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update slot")
		return
	}

	c.JSON(http.StatusOK, slot)
}

// DeactivateSlot soft deletes a slot; existing reservations are unaffected.
// Like UpdateSlot, cached day views refresh within the cache TTL.
func DeactivateSlot(c *gin.Context) {
	provider, ok := currentProvider(c)
	if !ok {
		return
	}

	slotUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid slot ID format")
		return
	}

	slot, ok := ownedSlot(c, provider.ID, slotUUID)
	if !ok {
		return
	}

	slot.IsActive = false
	if err := config.DB.Save(slot).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to deactivate slot")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Slot deactivated successfully"})
}

func ownedSlot(c *gin.Context, providerID, slotID uuid.UUID) (*models.WeeklySlot, bool) {
	var slot models.WeeklySlot
	err := config.DB.
		Joins("JOIN resources ON resources.id = weekly_slots.resource_id").
		Joins("JOIN services ON services.id = resources.service_id").
		Where("weekly_slots.id = ? AND services.provider_id = ?", slotID, providerID).
		First(&slot).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.RespondWithError(c, http.StatusNotFound, "Slot not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return nil, false
	}
	return &slot, true
}
