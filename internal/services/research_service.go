package services

import (
	"context"
	"log"

	"golang.org/x/sync/errgroup"

	"voygo/internal/models/request_models"
	"voygo/internal/models/response_models"
	"voygo/pkg/utils"
)

type ResearchServiceInterface interface {
	Summarize(ctx context.Context, req request_models.PlanRequest) (response_models.CategorySummaries, error)
}

type ResearchService struct {
	aiClient utils.TravelModelInterface
}

func NewResearchService(aiClient utils.TravelModelInterface) ResearchServiceInterface {
	return &ResearchService{aiClient: aiClient}
}

// Summarize fans out the three category prompts concurrently and joins on all
// of them. Partial results are useless downstream, so any failure cancels the
// remaining calls and fails the whole stage.
func (s *ResearchService) Summarize(ctx context.Context, req request_models.PlanRequest) (response_models.CategorySummaries, error) {
	var summaries response_models.CategorySummaries

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		out, err := s.aiClient.GenerateSummary(gctx, utils.RenderTravelOptionsPrompt(req, req.TravelOptionsPrompt))
		if err != nil {
			log.Printf("Research stage: travel options summary failed: %v", err)
			return err
		}
		summaries.TravelOptionsSummary = out
		return nil
	})

	g.Go(func() error {
		out, err := s.aiClient.GenerateSummary(gctx, utils.RenderAccommodationOptionsPrompt(req, req.AccommodationOptionsPrompt))
		if err != nil {
			log.Printf("Research stage: accommodation options summary failed: %v", err)
			return err
		}
		summaries.AccommodationOptionsSummary = out
		return nil
	})

	g.Go(func() error {
		out, err := s.aiClient.GenerateSummary(gctx, utils.RenderAttractionOptionsPrompt(req, req.AttractionOptionsPrompt))
		if err != nil {
			log.Printf("Research stage: attraction options summary failed: %v", err)
			return err
		}
		summaries.AttractionOptionsSummary = out
		return nil
	})

	if err := g.Wait(); err != nil {
		return response_models.CategorySummaries{}, utils.ErrAgentUnavailable
	}

	return summaries, nil
}
