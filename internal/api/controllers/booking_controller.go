package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"voygo/internal/models/request_models"
	"voygo/internal/models/response_models"
	"voygo/internal/services"
	"voygo/pkg/utils"
)

type BookingController struct {
	bookingService services.BookingServiceInterface
}

func NewBookingController(bookingService services.BookingServiceInterface) *BookingController {
	return &BookingController{
		bookingService: bookingService,
	}
}

// BookingLinksHandler recomputes booking links from a stored itinerary. The
// client holds the itinerary between navigations; nothing lives server-side.
func (b *BookingController) BookingLinksHandler(c *gin.Context) {
	var req request_models.BookingLinksRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	var resp response_models.BookingLinksResponse
	resp.Links = b.bookingService.ExtractBookingLinks(req.Request, req.Itinerary)
	resp.SummaryLinks.Travel = b.bookingService.ExtractSummaryLinks(req.Itinerary.Summaries.TravelOptionsSummary)
	resp.SummaryLinks.Accommodation = b.bookingService.ExtractSummaryLinks(req.Itinerary.Summaries.AccommodationOptionsSummary)
	resp.SummaryLinks.Attraction = b.bookingService.ExtractSummaryLinks(req.Itinerary.Summaries.AttractionOptionsSummary)

	utils.RespondSuccess(c, resp, "Booking links extracted")
}
