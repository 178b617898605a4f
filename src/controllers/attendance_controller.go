package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/hibiken/asynq"

	"library-attendance-backend/src/database"
	"library-attendance-backend/src/jobs/tasks"
	"library-attendance-backend/src/services/attendance"
	"library-attendance-backend/src/utils"
)

// ScanCard godoc
// @Summary RFID scan toggle
// @Description First scan opens a visit, the next scan of the same card closes it. Responds plain text, the scanner firmware prints it as-is.
// @Tags attendance
// @Accept json
// @Produce plain
// @Param cardId query string false "RFID card id (query or body)"
// @Success 200 {string} string "OUT Scan recorded"
// @Success 201 {string} string "IN Scan recorded"
// @Failure 400 {string} string
// @Failure 404 {string} string
// @Router /attendance/scan [post]
func ScanCard(c *fiber.Ctx) error {
	cardID := c.Query("cardId")
	if cardID == "" {
		var body struct {
			CardID string `json:"cardId"`
		}
		if err := c.BodyParser(&body); err == nil {
			cardID = body.CardID
		}
	}
	if cardID == "" {
		return c.Status(http.StatusBadRequest).SendString("Card ID is required")
	}

	message, checkedIn, err := attendance.ScanCard(cardID)
	if err != nil {
		return c.Status(utils.StatusFromError(err)).SendString(err.Error())
	}

	status := http.StatusOK
	if checkedIn {
		status = http.StatusCreated
	}
	return c.Status(status).SendString(message)
}

// RecordIn godoc
// @Summary Record in-time by roll number
// @Tags attendance
// @Accept json
// @Produce json
// @Success 201 {object} map[string]interface{}
// @Failure 404 {object} models.ErrorResponse
// @Router /attendance/in [post]
func RecordIn(c *fiber.Ctx) error {
	var body struct {
		RollNumber string `json:"rollNumber"`
	}
	if err := c.BodyParser(&body); err != nil || body.RollNumber == "" {
		return utils.HandleError(c, http.StatusBadRequest, "Roll number is required")
	}

	record, err := attendance.RecordIn(body.RollNumber)
	if err != nil {
		return utils.HandleError(c, utils.StatusFromError(err), err.Error())
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"message": "In-time recorded",
		"record":  record,
	})
}

// ClockOut godoc
// @Summary Manually clock out a record
// @Description Closes one record by id; conflicts if already clocked out
// @Tags attendance
// @Produce json
// @Param id path string true "Attendance record id"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /attendance/out/{id} [put]
func ClockOut(c *fiber.Ctx) error {
	record, err := attendance.ClockOut(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, utils.StatusFromError(err), err.Error())
	}

	return c.JSON(fiber.Map{
		"message": "Out-time updated",
		"record":  record,
	})
}

// GetActiveRecords godoc
// @Summary Who is inside right now
// @Tags attendance
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} models.ErrorResponse
// @Router /attendance/active [get]
func GetActiveRecords(c *fiber.Ctx) error {
	records, err := attendance.GetActiveRecords()
	if err != nil {
		return utils.HandleError(c, utils.StatusFromError(err), err.Error())
	}

	if len(records) == 0 {
		return c.JSON(fiber.Map{
			"message":       "No active students in library",
			"count":         0,
			"activeRecords": records,
		})
	}

	return c.JSON(fiber.Map{
		"message":       "Students currently in library",
		"count":         len(records),
		"activeRecords": records,
	})
}

// ForceOutAll godoc
// @Summary Force OUT for all active records
// @Description Closes every open record with one shared timestamp. With async=true the close-out is enqueued on the background worker instead (requires Redis).
// @Tags attendance
// @Produce json
// @Param async query bool false "Enqueue as a background job"
// @Success 200 {object} map[string]interface{}
// @Success 202 {object} map[string]interface{}
// @Failure 500 {object} models.ErrorResponse
// @Failure 503 {object} models.ErrorResponse
// @Router /attendance/force-out [put]
func ForceOutAll(c *fiber.Ctx) error {
	if c.Query("async") == "true" {
		if database.AsynqClient == nil {
			return utils.HandleError(c, http.StatusServiceUnavailable, "Background queue not available")
		}

		info, err := database.AsynqClient.Enqueue(
			tasks.NewForceOutAllTask(),
			asynq.TaskID("force-out-"+time.Now().Format("20060102150405")),
		)
		if err != nil {
			return utils.HandleError(c, http.StatusInternalServerError, err.Error())
		}

		return c.Status(http.StatusAccepted).JSON(fiber.Map{
			"message": "Force-out job enqueued",
			"taskId":  info.ID,
		})
	}

	updated, err := attendance.ForceOutAll()
	if err != nil {
		return utils.HandleError(c, utils.StatusFromError(err), err.Error())
	}

	if len(updated) == 0 {
		return c.JSON(fiber.Map{"message": "No active students to update"})
	}

	return c.JSON(fiber.Map{
		"message":        fmt.Sprintf("%d students marked OUT successfully", len(updated)),
		"updatedRecords": updated,
	})
}

// GetRecordsByDate godoc
// @Summary Attendance for one calendar date
// @Description Records whose inTime falls inside the UTC day; empty day is []
// @Tags attendance
// @Produce json
// @Param date path string true "Date as YYYY-MM-DD"
// @Success 200 {array} models.AttendanceRecord
// @Failure 400 {object} models.ErrorResponse
// @Router /attendance/date/{date} [get]
func GetRecordsByDate(c *fiber.Ctx) error {
	records, err := attendance.GetRecordsByDate(c.Params("date"))
	if err != nil {
		return utils.HandleError(c, utils.StatusFromError(err), err.Error())
	}
	return c.JSON(records)
}

// GetAllRecords godoc
// @Summary All attendance records
// @Description Whole ledger, date descending
// @Tags attendance
// @Produce json
// @Success 200 {array} models.AttendanceRecord
// @Failure 500 {object} models.ErrorResponse
// @Router /attendance/ [get]
func GetAllRecords(c *fiber.Ctx) error {
	records, err := attendance.GetAllRecords()
	if err != nil {
		return utils.HandleError(c, utils.StatusFromError(err), err.Error())
	}
	return c.JSON(records)
}
