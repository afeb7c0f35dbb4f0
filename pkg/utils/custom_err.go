package utils

import "errors"

var (
	ErrInvalidInput        = errors.New("invalid input")
	ErrAgentUnavailable    = errors.New("ai agent unavailable")
	ErrItineraryGeneration = errors.New("itinerary generation failed")
	ErrMissingParameter    = errors.New("missing required parameter")
	ErrPlacesNotConfigured = errors.New("places api key not configured")
	ErrPlacesUpstream      = errors.New("places upstream error")
)
