// controllers/resource.go
package controllers

import (
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

type CreateResourceInput struct {
	ServiceID   uuid.UUID `json:"service_id" binding:"required"`
	Name        string    `json:"name" binding:"required"`
	Description string    `json:"description"`
	Capacity    *int      `json:"capacity"`
	ImageURL    string    `json:"image_url"`
	Features    string    `json:"features"`
	SortOrder   int       `json:"sort_order"`
}

type UpdateResourceInput struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Capacity    *int    `json:"capacity"`
	ImageURL    *string `json:"image_url"`
	Features    *string `json:"features"`
	SortOrder   *int    `json:"sort_order"`
	IsActive    *bool   `json:"is_active"`
}

// CreateResource adds a bookable unit to one of the provider's services
func CreateResource(c *gin.Context) {
	provider, ok := currentProvider(c)
	if !ok {
		return
	}

	var input CreateResourceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	// The service must belong to this provider
	var service models.Service
	if err := config.DB.Where("id = ? AND provider_id = ?", input.ServiceID, provider.ID).
		First(&service).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Service not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	resource := models.Resource{
		ServiceID:   input.ServiceID,
		Name:        input.Name,
		Description: input.Description,
		Capacity:    input.Capacity,
		ImageURL:    input.ImageURL,
		Features:    input.Features,
		SortOrder:   input.SortOrder,
		IsActive:    true,
	}

	if err := config.DB.Create(&resource).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create resource")
		return
	}

	c.JSON(http.StatusCreated, resource)
}

// ListResourcesByService lists active resources of a service (public)
func ListResourcesByService(c *gin.Context) {
	serviceUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid service ID format")
		return
	}

	var resources []models.Resource
	if err := config.DB.
		Where("service_id = ? AND is_active = ?", serviceUUID, true).
		Order("sort_order").
		Find(&resources).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve resources")
		return
	}

	c.JSON(http.StatusOK, resources)
}

// GetResource retrieves a resource by ID (public)
func GetResource(c *gin.Context) {
	resourceUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid resource ID format")
		return
	}

	var resource models.Resource
	if err := config.DB.First(&resource, "id = ?", resourceUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Resource not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, resource)
}

// UpdateResource updates a resource owned by the provider
func UpdateResource(c *gin.Context) {
	provider, ok := currentProvider(c)
	if !ok {
		return
	}

	resourceUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid resource ID format")
		return
	}

	resource, err := providerResource(provider.ID, resourceUUID)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	var input UpdateResourceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if input.Name != nil {
		resource.Name = *input.Name
	}
	if input.Description != nil {
		resource.Description = *input.Description
	}
	if input.Capacity != nil {
		resource.Capacity = input.Capacity
	}
	if input.ImageURL != nil {
		resource.ImageURL = *input.ImageURL
	}
	if input.Features != nil {
		resource.Features = *input.Features
	}
	if input.SortOrder != nil {
		resource.SortOrder = *input.SortOrder
	}
	if input.IsActive != nil {
		resource.IsActive = *input.IsActive
	}

	if err := config.DB.Save(resource).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update resource")
		return
	}

	c.JSON(http.StatusOK, resource)
}

// DeactivateResource soft deletes a resource. Existing reservations keep
// their price snapshots and history.
func DeactivateResource(c *gin.Context) {
	provider, ok := currentProvider(c)
	if !ok {
		return
	}

	resourceUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid resource ID format")
		return
	}

	resource, err := providerResource(provider.ID, resourceUUID)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	resource.IsActive = false
	if err := config.DB.Save(resource).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to deactivate resource")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Resource deactivated successfully"})
}

type CreateBlockInput struct {
	StartTime time.Time `json:"start_time" binding:"required"`
	EndTime   time.Time `json:"end_time" binding:"required"`
	Reason    string    `json:"reason"`
	Type      string    `json:"type" binding:"omitempty,oneof=mantenimiento evento_privado clausura"`
}

// CreateBlock makes a resource unbookable for a window (maintenance etc.)
func CreateBlock(c *gin.Context) {
	provider, ok := currentProvider(c)
	if !ok {
		return
	}

	resourceUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid resource ID format")
		return
	}

	resource, err := providerResource(provider.ID, resourceUUID)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	var input CreateBlockInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	if !input.StartTime.Before(input.EndTime) {
		respondDomainError(c, models.ErrInvalidRange)
		return
	}

	block := models.ResourceBlock{
		ResourceID: resource.ID,
		StartTime:  input.StartTime.UTC(),
		EndTime:    input.EndTime.UTC(),
		Reason:     input.Reason,
		Type:       input.Type,
	}
	if block.Type == "" {
		block.Type = models.BlockMaintenance
	}

	if err := config.DB.Create(&block).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create block")
		return
	}
	services.InvalidateAvailability(c.Request.Context(), block.ResourceID, block.StartTime, block.EndTime)

	c.JSON(http.StatusCreated, block)
}

// ListBlocks lists the blocks of a resource owned by the provider
func ListBlocks(c *gin.Context) {
	provider, ok := currentProvider(c)
	if !ok {
		return
	}

	resourceUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid resource ID format")
		return
	}

	if _, err := providerResource(provider.ID, resourceUUID); err != nil {
		respondDomainError(c, err)
		return
	}

	var blocks []models.ResourceBlock
	if err := config.DB.Where("resource_id = ?", resourceUUID).
		Order("start_time").
		Find(&blocks).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve blocks")
		return
	}

	c.JSON(http.StatusOK, blocks)
}

// DeleteBlock removes a block from a resource owned by the provider
func DeleteBlock(c *gin.Context) {
	provider, ok := currentProvider(c)
	if !ok {
		return
	}

	blockUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid block ID format")
		return
	}

	var block models.ResourceBlock
	err = config.DB.
		Where(`id = ? AND resource_id IN (
			SELECT resources.id FROM resources
			JOIN services ON services.id = resources.service_id
			WHERE services.provider_id = ?)`, blockUUID, provider.ID).
		First(&block).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Block not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if err := config.DB.Delete(&block).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete block")
		return
	}
	services.InvalidateAvailability(c.Request.Context(), block.ResourceID, block.StartTime, block.EndTime)

	c.JSON(http.StatusOK, gin.H{"message": "Block deleted successfully"})
}
