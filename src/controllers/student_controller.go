package controllers

import (
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"library-attendance-backend/src/models"
	"library-attendance-backend/src/services"
	"library-attendance-backend/src/services/students"
	"library-attendance-backend/src/utils"
)

var validate = validator.New()

// AddStudent godoc
// @Summary Register a student
// @Description Register one student; rollNumber and cardId must be unique
// @Tags students
// @Accept json
// @Produce json
// @Param student body models.Student true "Student to register"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} models.ErrorResponse
// @Router /students/add [post]
func AddStudent(c *fiber.Ctx) error {
	var student models.Student
	if err := c.BodyParser(&student); err != nil {
		return utils.HandleError(c, http.StatusBadRequest, "Invalid input format")
	}

	if err := validate.Struct(&student); err != nil {
		return utils.HandleError(c, http.StatusBadRequest, "rollNumber, cardId, name and branch are required")
	}

	if err := students.CreateStudent(&student); err != nil {
		return utils.HandleError(c, utils.StatusFromError(err), err.Error())
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"message": "Student added successfully",
		"student": student,
	})
}

// GetStudents godoc
// @Summary List students
// @Description All students sorted by roll number
// @Tags students
// @Produce json
// @Success 200 {array} models.Student
// @Failure 500 {object} models.ErrorResponse
// @Router /students/ [get]
func GetStudents(c *fiber.Ctx) error {
	list, err := students.GetStudents()
	if err != nil {
		return utils.HandleError(c, utils.StatusFromError(err), err.Error())
	}
	return c.JSON(list)
}

// GetStudentByCardID godoc
// @Summary Get student by card
// @Tags students
// @Produce json
// @Param cardId path string true "RFID card id"
// @Success 200 {object} models.Student
// @Failure 404 {object} models.ErrorResponse
// @Router /students/card/{cardId} [get]
func GetStudentByCardID(c *fiber.Ctx) error {
	student, err := students.GetStudentByCardID(c.Params("cardId"))
	if err != nil {
		return utils.HandleError(c, utils.StatusFromError(err), err.Error())
	}
	return c.JSON(student)
}

// AddStudents godoc
// @Summary Bulk-register students
// @Description Unordered insert; missing mobiles are auto-filled, duplicates are skipped
// @Tags students
// @Accept json
// @Produce json
// @Param students body []models.Student true "Students to register"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} models.ErrorResponse
// @Router /students/addMany [post]
func AddStudents(c *fiber.Ctx) error {
	var list []models.Student
	if err := c.BodyParser(&list); err != nil {
		return utils.HandleError(c, http.StatusBadRequest, "Invalid input format")
	}

	count, err := students.CreateStudents(list)
	if err != nil {
		return utils.HandleError(c, utils.StatusFromError(err), err.Error())
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"message": "Multiple students added successfully",
		"count":   count,
	})
}

// DeleteAllStudents godoc
// @Summary Delete every student
// @Description Unguarded wipe, used when resetting the directory
// @Tags students
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} models.ErrorResponse
// @Router /students/deleteAll [delete]
func DeleteAllStudents(c *fiber.Ctx) error {
	deleted, err := students.DeleteAllStudents()
	if err != nil {
		return utils.HandleError(c, utils.StatusFromError(err), err.Error())
	}
	return c.JSON(fiber.Map{
		"message":      "All student records deleted successfully",
		"deletedCount": deleted,
	})
}

// UpdateStudent godoc
// @Summary Update a student by id
// @Tags students
// @Accept json
// @Produce json
// @Param id path string true "Student id"
// @Param student body models.Student true "New student data"
// @Success 200 {object} models.Student
// @Failure 404 {object} models.ErrorResponse
// @Router /students/{id} [put]
func UpdateStudent(c *fiber.Ctx) error {
	var student models.Student
	if err := c.BodyParser(&student); err != nil {
		return utils.HandleError(c, http.StatusBadRequest, "Invalid input format")
	}

	updated, err := students.UpdateStudent(c.Params("id"), &student)
	if err != nil {
		return utils.HandleError(c, utils.StatusFromError(err), err.Error())
	}
	return c.JSON(updated)
}

// DeleteStudent godoc
// @Summary Delete a student by id
// @Tags students
// @Produce json
// @Param id path string true "Student id"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} models.ErrorResponse
// @Router /students/{id} [delete]
func DeleteStudent(c *fiber.Ctx) error {
	if err := students.DeleteStudent(c.Params("id")); err != nil {
		return utils.HandleError(c, utils.StatusFromError(err), err.Error())
	}
	return c.JSON(fiber.Map{"message": "Student deleted successfully"})
}

// SeedStudents godoc
// @Summary Seed sample students
// @Description Dev helper: inserts n sample students with generated card ids
// @Tags students
// @Produce json
// @Param n query int false "How many to seed" default(10)
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} models.ErrorResponse
// @Router /students/seed [post]
func SeedStudents(c *fiber.Ctx) error {
	n, _ := strconv.Atoi(c.Query("n", "10"))

	count, err := services.SeedStudents(n)
	if err != nil {
		return utils.HandleError(c, utils.StatusFromError(err), err.Error())
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"message": "Sample students seeded",
		"count":   count,
	})
}
