package main

import (
	"fmt"
	"log"
	"os"

	_ "library-attendance-backend/docs"
	"library-attendance-backend/src/database"
	"library-attendance-backend/src/jobs"
	"library-attendance-backend/src/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/swagger"
)

// @title Library Attendance API
// @version 1.0
// @description REST backend for RFID library attendance tracking
// @BasePath /api
func main() {

	err := database.ConnectMongoDB()
	if err != nil {
		log.Fatalf("Error connecting to the database: %v", err)
	}

	database.InitRedis()
	database.InitAsynq()
	jobs.StartWorker()

	app := fiber.New()

	// The scanner kiosks and the dashboard run on other origins
	app.Use(cors.New(cors.Config{
		AllowOrigins:     "*",
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: false,
	}))

	app.Get("/swagger/*", swagger.HandlerDefault)

	routes.InitRoutes(app)

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "5000"
	}

	log.Println("Server is running on port " + port)
	err = app.Listen(fmt.Sprintf(":%s", port))
	if err != nil {
		log.Fatal(err)
	}
}
