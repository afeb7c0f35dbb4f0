package services

import (
	"context"
	"strings"

	"voygo/internal/models/request_models"
	"voygo/internal/models/response_models"
	"voygo/pkg/utils"
)

type PlannerServiceInterface interface {
	Plan(ctx context.Context, req request_models.PlanRequest) (*response_models.ItineraryResult, error)
	PlanMarkdown(ctx context.Context, req request_models.PlanRequest) (string, error)
}

// PlannerService orchestrates research then synthesis. The two stages keep
// distinct failure sentinels for diagnostics; both read as a single opaque
// failure to the end user.
type PlannerService struct {
	research  ResearchServiceInterface
	synthesis SynthesisServiceInterface
	aiClient  utils.TravelModelInterface
}

func NewPlannerService(
	research ResearchServiceInterface,
	synthesis SynthesisServiceInterface,
	aiClient utils.TravelModelInterface,
) PlannerServiceInterface {
	return &PlannerService{
		research:  research,
		synthesis: synthesis,
		aiClient:  aiClient,
	}
}

func (p *PlannerService) Plan(ctx context.Context, req request_models.PlanRequest) (*response_models.ItineraryResult, error) {
	summaries, err := p.research.Summarize(ctx, req)
	if err != nil {
		return nil, err
	}

	timeline, routeMap, err := p.synthesis.BuildTimeline(ctx, summaries, utils.BuildPreferencesBlock(req))
	if err != nil {
		return nil, err
	}

	// The raw summaries ride along so the bookings view can mine them later.
	return &response_models.ItineraryResult{
		Timeline:  timeline,
		RouteMap:  routeMap,
		Summaries: summaries,
	}, nil
}

// PlanMarkdown is the single-call flow that returns the whole itinerary as
// one markdown document instead of a structured timeline.
func (p *PlannerService) PlanMarkdown(ctx context.Context, req request_models.PlanRequest) (string, error) {
	out, err := p.aiClient.GenerateSummary(ctx, utils.RenderMarkdownItineraryPrompt(req))
	if err != nil {
		return "", utils.ErrItineraryGeneration
	}
	if strings.TrimSpace(out) == "" {
		return "", utils.ErrItineraryGeneration
	}
	return out, nil
}
