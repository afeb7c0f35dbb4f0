package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"voygo/internal/models/request_models"
)

func promptRequest() request_models.PlanRequest {
	return request_models.PlanRequest{
		Destination: "Kyoto",
		Dates: request_models.DateRange{
			From: time.Date(2025, 10, 2, 0, 0, 0, 0, time.UTC),
			To:   time.Date(2025, 10, 9, 0, 0, 0, 0, time.UTC),
		},
		Budget:      3000,
		Interests:   []string{"history", "food"},
		TravelStyle: []string{"relaxing", "luxury"},
	}
}

func TestRenderTravelOptionsPrompt(t *testing.T) {
	out := RenderTravelOptionsPrompt(promptRequest(), "prefer rail passes")

	assert.Contains(t, out, "Kyoto")
	assert.Contains(t, out, "From 2025-10-02 to 2025-10-09")
	assert.Contains(t, out, "3000 USD")
	assert.Contains(t, out, "history, food")
	assert.Contains(t, out, "prefer rail passes")
}

func TestRenderPromptsOmitEmptyRefinement(t *testing.T) {
	out := RenderAccommodationOptionsPrompt(promptRequest(), "")
	assert.NotContains(t, out, "Refine the search with")

	out = RenderAccommodationOptionsPrompt(promptRequest(), "near the station")
	assert.Contains(t, out, "Refine the search with: near the station")
}

func TestRenderAttractionOptionsPromptSkipsBudget(t *testing.T) {
	out := RenderAttractionOptionsPrompt(promptRequest(), "")

	assert.Contains(t, out, "Kyoto")
	assert.Contains(t, out, "history, food")
	assert.NotContains(t, out, "3000 USD")
}

func TestRenderTimelinePromptEmbedsAllSections(t *testing.T) {
	out := RenderTimelinePrompt("my prefs", "trains", "hotels", "temples")

	assert.Contains(t, out, "my prefs")
	assert.Contains(t, out, "trains")
	assert.Contains(t, out, "hotels")
	assert.Contains(t, out, "temples")
	assert.Contains(t, out, `"route_map"`)
	assert.Contains(t, out, `"timeline"`)
}

func TestRenderMarkdownItineraryPrompt(t *testing.T) {
	out := RenderMarkdownItineraryPrompt(promptRequest())

	assert.Contains(t, out, "Kyoto")
	assert.Contains(t, out, "2025-10-02")
	assert.Contains(t, out, "2025-10-09")
	assert.Contains(t, out, "relaxing, luxury")
	assert.Contains(t, out, "markdown string")
}

func TestBuildPreferencesBlock(t *testing.T) {
	out := BuildPreferencesBlock(promptRequest())

	assert.Contains(t, out, "- Destination: Kyoto")
	assert.Contains(t, out, "- Budget: Approximately 3000 USD")
	assert.Contains(t, out, "- Travel Style: relaxing, luxury")
}

func TestCleanJSONResponseStripsFences(t *testing.T) {
	raw := "```json\n{\"timeline\":[]}\n```"
	assert.Equal(t, `{"timeline":[]}`, CleanJSONResponse(raw))

	assert.Equal(t, `{"a":1}`, CleanJSONResponse(` {"a":1} `))
}
