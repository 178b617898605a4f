package routes

import (
	"library-attendance-backend/src/controllers"

	"github.com/gofiber/fiber/v2"
)

// attendanceRoutes wires the ledger API. The scan toggle is what the RFID
// kiosks call; everything else is for the admin dashboard.
func attendanceRoutes(router fiber.Router) {
	attendanceGroup := router.Group("/attendance")
	attendanceGroup.Post("/scan", controllers.ScanCard)
	attendanceGroup.Post("/in", controllers.RecordIn)
	attendanceGroup.Get("/active", controllers.GetActiveRecords)
	// force-out must register before the parameterized PUT
	attendanceGroup.Put("/force-out", controllers.ForceOutAll)
	attendanceGroup.Put("/out/:id", controllers.ClockOut)
	attendanceGroup.Get("/date/:date", controllers.GetRecordsByDate)
	attendanceGroup.Get("/", controllers.GetAllRecords)
}
