package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"voygo/internal/services"
	"voygo/pkg/utils"
)

type PlacesController struct {
	placesService services.PlacesServiceInterface
}

func NewPlacesController(placesService services.PlacesServiceInterface) *PlacesController {
	return &PlacesController{
		placesService: placesService,
	}
}

func (p *PlacesController) AutocompleteHandler(c *gin.Context) {
	input := c.Query("input")

	predictions, err := p.placesService.Autocomplete(c.Request.Context(), input)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"predictions": predictions}, "")
}

func (p *PlacesController) DetailsHandler(c *gin.Context) {
	placeID := c.Query("placeId")
	if placeID == "" {
		utils.RespondError(c, http.StatusBadRequest, "placeId is required")
		return
	}

	details, err := p.placesService.Details(c.Request.Context(), placeID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, details, "")
}
