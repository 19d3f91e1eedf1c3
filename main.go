package main

import (
	"fmt"
	"log"
	"os"

	"turnero-backend/config"
	"turnero-backend/models"
	"turnero-backend/routes"
	"turnero-backend/services"
	"turnero-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func init() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	config.ConnectDB()

	config.DB.AutoMigrate(
		&models.User{},
		&models.Client{},
		&models.Provider{},
		&models.Service{},
		&models.Resource{},
		&models.WeeklySlot{},
		&models.Reservation{},
		&models.ResourceBlock{},
	)

	utils.RegisterValidators()
}

func main() {
	// Hourly sweep for overdue pending reservations
	services.NewExpiryService(config.DB).StartScheduler()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r := routes.SetupRouter()
	printRoutes(r)
	r.Run(":" + port)
}

func printRoutes(r *gin.Engine) {
	routes := r.Routes()
	for _, route := range routes {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
