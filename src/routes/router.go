package routes

import (
	"github.com/gofiber/fiber/v2"
)

func InitRoutes(app *fiber.App) {
	api := app.Group("/api")

	studentRoutes(api)
	attendanceRoutes(api)

	// Health check for the deploy platform
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("📚 Library Attendance System Backend Running")
	})
}
