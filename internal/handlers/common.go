package handlers

import (
	"net/http"

	"trivia-api-backend/internal/models"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the envelope every failed request gets. The numeric code
// is duplicated in the body because the legacy frontend reads it from there
// rather than from the transport status.
type ErrorResponse struct {
	Success bool   `json:"success" example:"false"`
	Error   int    `json:"error" example:"404"`
	Message string `json:"message" example:"resource not found"`
}

var errorMessages = map[int]string{
	http.StatusBadRequest:          "Bad Request",
	http.StatusNotFound:            "resource not found",
	http.StatusMethodNotAllowed:    "Method Not Allowed",
	http.StatusUnprocessableEntity: "Unprocessable Entity",
}

func respondError(c *gin.Context, code int) {
	c.JSON(code, ErrorResponse{Success: false, Error: code, Message: errorMessages[code]})
}

// categoryMap flattens categories into the id->label map the frontend
// renders. Integer keys marshal as JSON strings.
func categoryMap(categories []models.Category) map[uint]string {
	m := make(map[uint]string, len(categories))
	for _, cat := range categories {
		m[cat.ID] = cat.Type
	}
	return m
}
