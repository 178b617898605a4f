package routes

import (
	"library-attendance-backend/src/controllers"

	"github.com/gofiber/fiber/v2"
)

// studentRoutes wires the student directory API.
func studentRoutes(router fiber.Router) {
	studentGroup := router.Group("/students")
	studentGroup.Post("/add", controllers.AddStudent)
	studentGroup.Get("/", controllers.GetStudents)
	studentGroup.Get("/card/:cardId", controllers.GetStudentByCardID)
	studentGroup.Post("/addMany", controllers.AddStudents)
	studentGroup.Post("/seed", controllers.SeedStudents)
	// deleteAll must register before the :id routes
	studentGroup.Delete("/deleteAll", controllers.DeleteAllStudents)
	studentGroup.Put("/:id", controllers.UpdateStudent)
	studentGroup.Delete("/:id", controllers.DeleteStudent)
}
