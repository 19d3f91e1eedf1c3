// controllers/auth.go
package controllers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"turnero-backend/config"
	"turnero-backend/models"
	"turnero-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type RegisterClientInput struct {
	Email      string     `json:"email" binding:"required,email"`
	Password   string     `json:"password" binding:"required,min=8"`
	Username   string     `json:"username" binding:"required"`
	FirstName  string     `json:"first_name" binding:"required"`
	LastName   string     `json:"last_name" binding:"required"`
	Phone      string     `json:"phone"`
	DocumentID string     `json:"document_id"`
	BirthDate  *time.Time `json:"birth_date"`
	Address    string     `json:"address"`
}

type RegisterProviderInput struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8"`
	Username  string `json:"username" binding:"required"`
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Specialty string `json:"specialty" binding:"required"`
	Phone     string `json:"phone"`
	Bio       string `json:"bio"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RegisterClient creates a user with the cliente role plus its profile.
func RegisterClient(c *gin.Context) {
	var input RegisterClientInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if taken, err := emailTaken(input.Email); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	} else if taken {
		utils.RespondWithError(c, http.StatusConflict, "Email already registered")
		return
	}

	user := models.User{
		Email:    input.Email,
		Password: input.Password, // Hashed in BeforeCreate hook
		Username: input.Username,
		Role:     models.RoleClient,
		IsActive: true,
	}
	client := models.Client{
		FirstName:  input.FirstName,
		LastName:   input.LastName,
		Phone:      input.Phone,
		DocumentID: input.DocumentID,
		BirthDate:  input.BirthDate,
		Address:    input.Address,
	}

	if err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		client.UserID = user.ID
		return tx.Create(&client).Error
	}); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to register client")
		return
	}

	token, err := utils.GenerateToken(user.ID.String(), user.Role)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Registration successful",
		"token":   token,
		"user": gin.H{
			"id":        user.ID,
			"email":     user.Email,
			"username":  user.Username,
			"role":      user.Role,
			"client_id": client.ID,
		},
	})
}

// RegisterProvider creates a user with the proveedor role plus its profile.
func RegisterProvider(c *gin.Context) {
	var input RegisterProviderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if taken, err := emailTaken(input.Email); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	} else if taken {
		utils.RespondWithError(c, http.StatusConflict, "Email already registered")
		return
	}

	user := models.User{
		Email:    input.Email,
		Password: input.Password, // Hashed in BeforeCreate hook
		Username: input.Username,
		Role:     models.RoleProvider,
		IsActive: true,
	}
	provider := models.Provider{
		FirstName:   input.FirstName,
		LastName:    input.LastName,
		Specialty:   input.Specialty,
		Phone:       input.Phone,
		Bio:         input.Bio,
		IsAvailable: true,
	}

	if err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		provider.UserID = user.ID
		return tx.Create(&provider).Error
	}); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to register provider")
		return
	}

	token, err := utils.GenerateToken(user.ID.String(), user.Role)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Registration successful",
		"token":   token,
		"user": gin.H{
			"id":          user.ID,
			"email":       user.Email,
			"username":    user.Username,
			"role":        user.Role,
			"provider_id": provider.ID,
		},
	})
}

func Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input")
		return
	}

	email := strings.TrimSpace(strings.ToLower(input.Email))

	var user models.User
	if err := config.DB.Where("email = ? AND is_active = ?", email, true).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusUnauthorized, "Invalid credentials")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if !utils.CheckPasswordHash(input.Password, user.Password) {
		utils.RespondWithError(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := utils.GenerateToken(user.ID.String(), user.Role)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	// Update last login
	now := time.Now()
	config.DB.Model(&user).Update("last_login", &now)

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user": gin.H{
			"id":       user.ID,
			"email":    user.Email,
			"username": user.Username,
			"role":     user.Role,
		},
	})
}

func Me(c *gin.Context) {
	userUUID, ok := currentUserID(c)
	if !ok {
		return
	}

	var user models.User
	if err := config.DB.First(&user, "id = ?", userUUID).Error; err != nil {
		utils.RespondWithError(c, http.StatusUnauthorized, "User not found")
		return
	}

	response := gin.H{
		"id":       user.ID,
		"email":    user.Email,
		"username": user.Username,
		"role":     user.Role,
	}

	switch user.Role {
	case models.RoleClient:
		var client models.Client
		if err := config.DB.Where("user_id = ?", user.ID).First(&client).Error; err == nil {
			response["profile"] = client
		}
	case models.RoleProvider:
		var provider models.Provider
		if err := config.DB.Where("user_id = ?", user.ID).First(&provider).Error; err == nil {
			response["profile"] = provider
		}
	}

	c.JSON(http.StatusOK, gin.H{"user": response})
}

type UpdateClientProfileInput struct {
	FirstName  *string    `json:"first_name"`
	LastName   *string    `json:"last_name"`
	Phone      *string    `json:"phone"`
	DocumentID *string    `json:"document_id"`
	BirthDate  *time.Time `json:"birth_date"`
	Address    *string    `json:"address"`
}

func UpdateClientProfile(c *gin.Context) {
	client, ok := currentClient(c)
	if !ok {
		return
	}

	var input UpdateClientProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if input.FirstName != nil {
		client.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		client.LastName = *input.LastName
	}
	if input.Phone != nil {
		client.Phone = *input.Phone
	}
	if input.DocumentID != nil {
		client.DocumentID = *input.DocumentID
	}
	if input.BirthDate != nil {
		client.BirthDate = input.BirthDate
	}
	if input.Address != nil {
		client.Address = *input.Address
	}

	if err := config.DB.Save(client).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update profile")
		return
	}

	c.JSON(http.StatusOK, client)
}

type UpdateProviderProfileInput struct {
	FirstName   *string `json:"first_name"`
	LastName    *string `json:"last_name"`
	Specialty   *string `json:"specialty"`
	Phone       *string `json:"phone"`
	Bio         *string `json:"bio"`
	IsAvailable *bool   `json:"is_available"`
}

func UpdateProviderProfile(c *gin.Context) {
	provider, ok := currentProvider(c)
	if !ok {
		return
	}

	var input UpdateProviderProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if input.FirstName != nil {
		provider.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		provider.LastName = *input.LastName
	}
	if input.Specialty != nil {
		provider.Specialty = *input.Specialty
	}
	if input.Phone != nil {
		provider.Phone = *input.Phone
	}
	if input.Bio != nil {
		provider.Bio = *input.Bio
	}
	if input.IsAvailable != nil {
		provider.IsAvailable = *input.IsAvailable
	}

	if err := config.DB.Save(provider).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update profile")
		return
	}

	c.JSON(http.StatusOK, provider)
}

func emailTaken(email string) (bool, error) {
	var existing models.User
	err := config.DB.Where("email = ?", strings.TrimSpace(strings.ToLower(email))).First(&existing).Error
	if err == nil {
		return true, nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	return false, err
}
