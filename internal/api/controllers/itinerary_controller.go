package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"voygo/internal/models/request_models"
	"voygo/internal/services"
	"voygo/pkg/utils"
)

type ItineraryController struct {
	plannerService services.PlannerServiceInterface
}

func NewItineraryController(plannerService services.PlannerServiceInterface) *ItineraryController {
	return &ItineraryController{
		plannerService: plannerService,
	}
}

func (i *ItineraryController) GenerateItineraryHandler(c *gin.Context) {
	var req request_models.PlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := req.Validate(time.Now()); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := i.plannerService.Plan(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Itinerary generated successfully")
}

func (i *ItineraryController) GenerateMarkdownItineraryHandler(c *gin.Context) {
	var req request_models.PlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := req.Validate(time.Now()); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	itinerary, err := i.plannerService.PlanMarkdown(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"itinerary": itinerary}, "Itinerary generated successfully")
}
