package places_fx

import (
	"os"

	"go.uber.org/fx"

	"voygo/internal/api/controllers"
	"voygo/internal/services"
)

var Module = fx.Provide(
	providePlacesService, providePlacesController)

func providePlacesService() services.PlacesServiceInterface {
	return services.NewPlacesService(os.Getenv("GOOGLE_PLACES_API_KEY"))
}

func providePlacesController(placesService services.PlacesServiceInterface) *controllers.PlacesController {
	return controllers.NewPlacesController(placesService)
}
