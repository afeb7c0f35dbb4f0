package utils

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func traceID(c *gin.Context) string {
	if v, ok := c.Get("trace_id"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: traceID(c),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: traceID(c),
	})
}

// HandleServiceError maps service sentinels onto user-facing responses.
// The underlying cause is logged here and nowhere else; callers above only
// ever see the opaque message.
func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		RespondError(c, http.StatusBadRequest, "Invalid request data")
	case errors.Is(err, ErrMissingParameter):
		RespondError(c, http.StatusBadRequest, "Missing required parameter")
	case errors.Is(err, ErrAgentUnavailable):
		log.Printf("Research stage error: %v", err)
		RespondError(c, http.StatusServiceUnavailable, "Failed to generate itinerary. The AI agent may be unavailable.")
	case errors.Is(err, ErrItineraryGeneration):
		log.Printf("Synthesis stage error: %v", err)
		RespondError(c, http.StatusServiceUnavailable, "Itinerary generation failed. Please try again.")
	case errors.Is(err, ErrPlacesNotConfigured):
		log.Printf("Places proxy error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Place search is not configured")
	case errors.Is(err, ErrPlacesUpstream):
		log.Printf("Places upstream error: %v", err)
		RespondError(c, http.StatusBadGateway, "Place search is temporarily unavailable")
	default:
		log.Printf("Unknown error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
