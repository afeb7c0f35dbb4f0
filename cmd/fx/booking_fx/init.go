package booking_fx

import (
	"go.uber.org/fx"

	"voygo/internal/api/controllers"
	"voygo/internal/services"
)

var Module = fx.Provide(
	provideBookingService, provideBookingController)

func provideBookingService() services.BookingServiceInterface {
	return services.NewBookingService()
}

func provideBookingController(bookingService services.BookingServiceInterface) *controllers.BookingController {
	return controllers.NewBookingController(bookingService)
}
