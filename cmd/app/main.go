package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"voygo/cmd/fx/booking_fx"
	"voygo/cmd/fx/places_fx"
	"voygo/cmd/fx/planner_fx"
	"voygo/internal/api/controllers"
	"voygo/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	app := fx.New(
		planner_fx.Module,
		booking_fx.Module,
		places_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	itineraryController *controllers.ItineraryController,
	bookingController *controllers.BookingController,
	placesController *controllers.PlacesController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r, itineraryController, bookingController, placesController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	itineraryController *controllers.ItineraryController,
	bookingController *controllers.BookingController,
	placesController *controllers.PlacesController) {

	api := r.Group("/api")

	api.POST("/itinerary", itineraryController.GenerateItineraryHandler)
	api.POST("/itinerary/markdown", itineraryController.GenerateMarkdownItineraryHandler)

	api.POST("/bookings/links", bookingController.BookingLinksHandler)

	api.GET("/places", placesController.AutocompleteHandler)
	api.GET("/places/details", placesController.DetailsHandler)
}
