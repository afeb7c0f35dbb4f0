package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voygo/internal/services"
)

func newBookingRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	ctrl := NewBookingController(services.NewBookingService())
	r.POST("/api/bookings/links", ctrl.BookingLinksHandler)
	return r
}

func TestBookingLinksHandler(t *testing.T) {
	body := map[string]interface{}{
		"request": map[string]interface{}{
			"destination": "Paris",
			"dates": map[string]string{
				"from": "2099-06-01T00:00:00Z",
				"to":   "2099-06-05T00:00:00Z",
			},
			"budget":       2000,
			"interests":    []string{"history"},
			"travel_style": []string{"relaxing"},
		},
		"itinerary": map[string]interface{}{
			"timeline": []map[string]interface{}{
				{
					"title": "Day 1",
					"items": []map[string]interface{}{
						{"text": "Check in at Hotel Lumiere, central Paris", "type": "accommodation"},
					},
				},
			},
			"route_map": "metro",
			"summaries": map[string]string{
				"travel_options_summary":        "book with [Air France](https://airfrance.com)",
				"accommodation_options_summary": "",
				"attraction_options_summary":    "",
			},
		},
	}
	data, _ := json.Marshal(body)

	r := newBookingRouter()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings/links", bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	out := w.Body.String()
	assert.Contains(t, out, "Google Flights")
	assert.Contains(t, out, "Hotel+Lumiere%2C+Paris")
	assert.Contains(t, out, "Air France")
}

func TestBookingLinksHandlerRejectsInvalidBody(t *testing.T) {
	r := newBookingRouter()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings/links", bytes.NewReader([]byte(`{`)))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
