package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voygo/pkg/utils"
)

func workingModel() *fakeTravelModel {
	return &fakeTravelModel{
		summaryFn: func(ctx context.Context, prompt string) (string, error) {
			switch {
			case strings.Contains(prompt, "travel options"):
				return "take the [train](https://sncf.com)", nil
			case strings.Contains(prompt, "accommodation options"):
				return "stay at Hotel Lumiere", nil
			default:
				return "see the Louvre", nil
			}
		},
		structuredFn: func(ctx context.Context, prompt string) (string, error) {
			return validTimelineJSON, nil
		},
	}
}

func newPlanner(model *fakeTravelModel) PlannerServiceInterface {
	return NewPlannerService(NewResearchService(model), NewSynthesisService(model), model)
}

func TestPlanCarriesRawSummariesThrough(t *testing.T) {
	svc := newPlanner(workingModel())

	result, err := svc.Plan(context.Background(), parisRequest())
	require.NoError(t, err)

	assert.NotEmpty(t, result.Timeline)
	assert.NotEmpty(t, result.RouteMap)
	assert.Equal(t, "take the [train](https://sncf.com)", result.Summaries.TravelOptionsSummary)
	assert.Equal(t, "stay at Hotel Lumiere", result.Summaries.AccommodationOptionsSummary)
	assert.Equal(t, "see the Louvre", result.Summaries.AttractionOptionsSummary)
}

func TestPlanAbortsOnResearchFailure(t *testing.T) {
	model := workingModel()
	model.summaryFn = func(ctx context.Context, prompt string) (string, error) {
		return "", errors.New("rate limited")
	}
	synthesisCalled := false
	model.structuredFn = func(ctx context.Context, prompt string) (string, error) {
		synthesisCalled = true
		return validTimelineJSON, nil
	}

	svc := newPlanner(model)

	result, err := svc.Plan(context.Background(), parisRequest())

	require.ErrorIs(t, err, utils.ErrAgentUnavailable)
	assert.Nil(t, result)
	assert.False(t, synthesisCalled, "synthesis must not start when research fails")
}

func TestPlanAbortsOnSynthesisFailure(t *testing.T) {
	model := workingModel()
	model.structuredFn = func(ctx context.Context, prompt string) (string, error) {
		return "", errors.New("bad output")
	}

	svc := newPlanner(model)

	result, err := svc.Plan(context.Background(), parisRequest())

	require.ErrorIs(t, err, utils.ErrItineraryGeneration)
	assert.Nil(t, result)
}

func TestPlanMarkdown(t *testing.T) {
	model := workingModel()
	model.summaryFn = func(ctx context.Context, prompt string) (string, error) {
		if !strings.Contains(prompt, "markdown string") {
			return "", errors.New("unexpected prompt")
		}
		return "# Day 1\nArrive in Paris", nil
	}

	svc := newPlanner(model)

	out, err := svc.PlanMarkdown(context.Background(), parisRequest())
	require.NoError(t, err)
	assert.Contains(t, out, "Day 1")
}

func TestPlanMarkdownFailure(t *testing.T) {
	model := workingModel()
	model.summaryFn = func(ctx context.Context, prompt string) (string, error) {
		return "", errors.New("unavailable")
	}

	svc := newPlanner(model)

	_, err := svc.PlanMarkdown(context.Background(), parisRequest())
	assert.ErrorIs(t, err, utils.ErrItineraryGeneration)
}
