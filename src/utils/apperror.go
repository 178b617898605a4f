package utils

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"library-attendance-backend/src/models"
)

// Error kinds. Services wrap their failures in one of these so controllers
// can map them to a status without string matching.
var (
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("conflict")
)

// AppError carries a kind plus a caller-facing message.
type AppError struct {
	Kind    error
	Message string
}

func (e *AppError) Error() string { return e.Message }
func (e *AppError) Unwrap() error { return e.Kind }

func ValidationError(msg string) error { return &AppError{Kind: ErrValidation, Message: msg} }
func NotFoundError(msg string) error   { return &AppError{Kind: ErrNotFound, Message: msg} }
func ConflictError(msg string) error   { return &AppError{Kind: ErrConflict, Message: msg} }

// StatusFromError maps an error to its HTTP status. Anything untyped is a
// storage or driver failure and surfaces as 500.
func StatusFromError(err error) int {
	switch {
	case errors.Is(err, ErrValidation), errors.Is(err, ErrConflict):
		return fiber.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return fiber.StatusNotFound
	default:
		return fiber.StatusInternalServerError
	}
}

// HandleError writes the standard JSON error body. The scan endpoint is the
// one place that answers plain text instead.
func HandleError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(models.ErrorResponse{
		Error: message,
	})
}
