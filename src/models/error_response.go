package models

// ErrorResponse is the standard error body for the JSON endpoints.
type ErrorResponse struct {
	Error string `json:"error"`
}
