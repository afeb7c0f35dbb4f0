package request_models

import "voygo/internal/models/response_models"

// BookingLinksRequest replays a stored planning request and its generated
// itinerary so link extraction can run on demand; nothing is kept server-side
// between the planning call and the bookings view.
type BookingLinksRequest struct {
	Request   PlanRequest                     `json:"request" binding:"required"`
	Itinerary response_models.ItineraryResult `json:"itinerary" binding:"required"`
}
