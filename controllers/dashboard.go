// controllers/dashboard.go
package controllers

import (
	"net/http"
	"time"

	"turnero-backend/config"
	"turnero-backend/models"
	"turnero-backend/utils"

	"github.com/gin-gonic/gin"
)

type upcomingReservation struct {
	models.Reservation
	ResourceName string `json:"resource_name"`
	ClientName   string `json:"client_name"`
}

// GetDashboardOverview summarizes the provider's operation: today's agenda,
// collected revenue this month, distinct client count and pending approvals.
func GetDashboardOverview(c *gin.Context) {
	provider, ok := currentProvider(c)
	if !ok {
		return
	}

	now := time.Now().UTC()
	dayStart := utils.BeginningOfDay(now)
	dayEnd := utils.EndOfDay(now)
	firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	ownedResources := config.DB.Model(&models.Resource{}).
		Select("resources.id").
		Joins("JOIN services ON services.id = resources.service_id").
		Where("services.provider_id = ?", provider.ID)

	// Today's agenda (pending and confirmed, chronological)
	var todays []upcomingReservation
	config.DB.Model(&models.Reservation{}).
		Select("reservations.*, resources.name AS resource_name, clients.first_name || ' ' || clients.last_name AS client_name").
		Joins("JOIN resources ON resources.id = reservations.resource_id").
		Joins("JOIN clients ON clients.id = reservations.client_id").
		Where("reservations.resource_id IN (?)", ownedResources).
		Where("reservations.start_time BETWEEN ? AND ?", dayStart, dayEnd).
		Where("reservations.status IN ?", []string{models.StatusPending, models.StatusConfirmed}).
		Order("reservations.start_time").
		Scan(&todays)

	// This month's collected revenue (money actually paid, cancellations excluded)
	var monthlyRevenue float64
	config.DB.Model(&models.Reservation{}).
		Where("resource_id IN (?)", ownedResources).
		Where("start_time >= ? AND status <> ?", firstOfMonth, models.StatusCancelled).
		Select("COALESCE(SUM(amount_paid), 0)").
		Scan(&monthlyRevenue)

	// Distinct clients served
	var totalClients int64
	config.DB.Model(&models.Reservation{}).
		Where("resource_id IN (?)", ownedResources).
		Distinct("client_id").
		Count(&totalClients)

	// Reservations awaiting confirmation
	var pendingCount int64
	config.DB.Model(&models.Reservation{}).
		Where("resource_id IN (?) AND status = ?", ownedResources, models.StatusPending).
		Count(&pendingCount)

	// Month-to-date no-show rate over finished reservations
	var finished, noShows int64
	config.DB.Model(&models.Reservation{}).
		Where("resource_id IN (?) AND start_time >= ?", ownedResources, firstOfMonth).
		Where("status IN ?", []string{models.StatusCompleted, models.StatusNoShow}).
		Count(&finished)
	config.DB.Model(&models.Reservation{}).
		Where("resource_id IN (?) AND start_time >= ? AND status = ?", ownedResources, firstOfMonth, models.StatusNoShow).
		Count(&noShows)

	noShowRate := 0.0
	if finished > 0 {
		noShowRate = float64(noShows) / float64(finished)
	}

	c.JSON(http.StatusOK, gin.H{
		"todays_reservations": todays,
		"monthly_revenue":     monthlyRevenue,
		"total_clients":       totalClients,
		"pending_count":       pendingCount,
		"no_show_rate":        noShowRate,
	})
}
