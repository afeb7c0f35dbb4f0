package utils

import "context"

// TravelModelInterface is the boundary to the generative text collaborator.
// GenerateSummary returns free prose (markdown allowed); GenerateStructuredItinerary
// must return a JSON document matching the prompt's schema or an error.
type TravelModelInterface interface {
	GenerateSummary(ctx context.Context, prompt string) (string, error)
	GenerateStructuredItinerary(ctx context.Context, prompt string) (string, error)
}
