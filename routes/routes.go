package routes

import (
	"os"
	"strings"

	"turnero-backend/config"
	"turnero-backend/controllers"
	"turnero-backend/models"
	"turnero-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	origins := []string{"http://localhost:3000", "http://localhost:5173"}
	if extra := os.Getenv("CORS_ORIGINS"); extra != "" {
		origins = append(origins, strings.Split(extra, ",")...)
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	auth := r.Group("/auth")
	{
		auth.POST("/register/client", controllers.RegisterClient)
		auth.POST("/register/provider", controllers.RegisterProvider)
		auth.POST("/login", controllers.Login)

		auth.Use(utils.AuthMiddleware())
		auth.GET("/me", controllers.Me)
		auth.PUT("/profile/client", utils.RequireRole(models.RoleClient), controllers.UpdateClientProfile)
		auth.PUT("/profile/provider", utils.RequireRole(models.RoleProvider), controllers.UpdateProviderProfile)
	}

	// Public catalog: anyone can browse services and check availability
	public := r.Group("/api/public")
	{
		public.GET("/services", controllers.SearchServices)
		public.GET("/services/:id/resources", controllers.ListResourcesByService)
		public.GET("/resources/:id", controllers.GetResource)
		public.GET("/resources/:id/slots", controllers.ListSlotsForResource)
		public.GET("/resources/:id/availability", controllers.GetAvailability)
	}

	api := r.Group("/api")
	api.Use(utils.AuthMiddleware())
	{
		// Client routes
		client := api.Group("", utils.RequireRole(models.RoleClient))
		{
			client.POST("/reservations", controllers.CreateReservation)
			client.GET("/reservations", controllers.ListMyReservations)
			client.GET("/reservations/:id", controllers.GetReservation)
			client.POST("/reservations/:id/cancel", controllers.CancelMyReservation)
			client.POST("/reservations/:id/payments", controllers.RecordPayment)
		}

		// Provider routes
		provider := api.Group("/provider", utils.RequireRole(models.RoleProvider))
		{
			services := provider.Group("/services")
			{
				services.POST("", controllers.CreateService)
				services.GET("", controllers.GetServices)
				services.GET("/:id", controllers.GetService)
				services.PUT("/:id", controllers.UpdateService)
				services.DELETE("/:id", controllers.DeleteService)
			}

			resources := provider.Group("/resources")
			{
				resources.POST("", controllers.CreateResource)
				resources.PUT("/:id", controllers.UpdateResource)
				resources.DELETE("/:id", controllers.DeactivateResource)
				resources.POST("/:id/blocks", controllers.CreateBlock)
				resources.GET("/:id/blocks", controllers.ListBlocks)
			}
			provider.DELETE("/blocks/:id", controllers.DeleteBlock)

			slots := provider.Group("/slots")
			{
				slots.POST("", controllers.CreateSlot)
				slots.POST("/bulk", controllers.BulkCreateSlots)
				slots.PUT("/:id", controllers.UpdateSlot)
				slots.DELETE("/:id", controllers.DeactivateSlot)
			}

			reservations := provider.Group("/reservations")
			{
				reservations.GET("", controllers.ListProviderReservations)
				reservations.POST("/:id/confirm", controllers.ConfirmReservation)
				reservations.POST("/:id/complete", controllers.CompleteReservation)
				reservations.POST("/:id/no-show", controllers.MarkNoShow)
				reservations.POST("/:id/cancel", controllers.CancelProviderReservation)
				reservations.POST("/:id/confirm-payment", controllers.ConfirmPayment)
			}

			provider.GET("/dashboard", controllers.GetDashboardOverview)
		}
	}

	return r
}
