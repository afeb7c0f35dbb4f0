package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"voygo/internal/models/response_models"
	"voygo/pkg/utils"
)

type SynthesisServiceInterface interface {
	BuildTimeline(ctx context.Context, summaries response_models.CategorySummaries, preferences string) ([]response_models.DayEntry, string, error)
}

type SynthesisService struct {
	aiClient utils.TravelModelInterface
}

func NewSynthesisService(aiClient utils.TravelModelInterface) SynthesisServiceInterface {
	return &SynthesisService{aiClient: aiClient}
}

// timelinePayload is the wire shape the model must return.
type timelinePayload struct {
	Timeline []response_models.DayEntry `json:"timeline"`
	RouteMap string                     `json:"route_map"`
}

// BuildTimeline issues the single synthesis call and strictly decodes the
// reply. A structurally non-conforming response is a failure; no partial
// coercion is attempted.
func (s *SynthesisService) BuildTimeline(ctx context.Context, summaries response_models.CategorySummaries, preferences string) ([]response_models.DayEntry, string, error) {
	prompt := utils.RenderTimelinePrompt(
		preferences,
		summaries.TravelOptionsSummary,
		summaries.AccommodationOptionsSummary,
		summaries.AttractionOptionsSummary,
	)

	rawJSON, err := s.aiClient.GenerateStructuredItinerary(ctx, prompt)
	if err != nil {
		log.Printf("Synthesis stage: model call failed: %v", err)
		return nil, "", utils.ErrItineraryGeneration
	}

	var payload timelinePayload
	if err := json.Unmarshal([]byte(rawJSON), &payload); err != nil {
		log.Printf("Synthesis stage: invalid timeline JSON: %v", err)
		return nil, "", utils.ErrItineraryGeneration
	}

	if err := validateTimeline(payload.Timeline); err != nil {
		log.Printf("Synthesis stage: schema violation: %v", err)
		return nil, "", utils.ErrItineraryGeneration
	}

	return payload.Timeline, payload.RouteMap, nil
}

func validTypeTag(t string) bool {
	switch t {
	case response_models.ActivityTypeTravel,
		response_models.ActivityTypeAccommodation,
		response_models.ActivityTypeActivity:
		return true
	}
	return false
}

func validateTimeline(timeline []response_models.DayEntry) error {
	if len(timeline) == 0 {
		return fmt.Errorf("timeline is empty")
	}
	for i, day := range timeline {
		if strings.TrimSpace(day.Title) == "" {
			return fmt.Errorf("day %d has no title", i+1)
		}
		if len(day.Items) == 0 {
			return fmt.Errorf("day %d has no activities", i+1)
		}
		for j, item := range day.Items {
			if strings.TrimSpace(item.Text) == "" {
				return fmt.Errorf("day %d activity %d has no text", i+1, j+1)
			}
			if !validTypeTag(item.Type) {
				return fmt.Errorf("day %d activity %d has unknown type %q", i+1, j+1, item.Type)
			}
			if item.Budget != nil && *item.Budget < 0 {
				return fmt.Errorf("day %d activity %d has negative budget", i+1, j+1)
			}
		}
	}
	return nil
}
