package utils

import (
	"fmt"
	"strings"

	"voygo/internal/models/request_models"
)

// Prompt templates are versioned constants kept apart from orchestration code
// so they can be rendered and tested without any network calls.

const travelOptionsTemplate = `You are an expert travel assistant. Your task is to find and summarize travel options based on the user's preferences. Provide real, verifiable examples.

Destination: %s
Dates: %s
Budget: %s
Interests: %s

Summarize available travel options (flights, trains, buses) to %s for the given dates and budget. Include relevant links and specific carrier names (e.g., specific airlines or train companies).
%s`

const accommodationOptionsTemplate = `You are an expert travel assistant. Your task is to find and summarize accommodation options based on the user's preferences. Use specific, real-world hotel names. Do not use generic phrases like "a luxury hotel".

Destination: %s
Dates: %s
Budget: %s
Interests: %s

Summarize available accommodation options (hotels, hostels, rentals) in %s for the given dates and budget. Recommend 2-3 specific, real-world hotels with names. Include relevant links and details.
%s`

const attractionOptionsTemplate = `You are an expert travel assistant. Your task is to find and summarize tourist attractions, points of interest and restaurants based on the user's preferences. Use specific, real-world names.

Destination: %s
Interests: %s

Identify and summarize tourist attractions, points of interest, and restaurants in %s based on the user's interests. Recommend specific, real-world places with names. Do not use generic phrases like "a local restaurant". Include relevant links and details.
%s`

const timelineTemplate = `You are a professional travel planner creating a detailed, realistic travel itinerary.

Based on the following user preferences: %s, arrange the following travel options: %s, accommodation options: %s, and tourist attractions: %s into a daily timeline and route map.

Use the specific names of hotels, restaurants, and attractions provided. Do not use generic phrases like "a luxury hotel" or "a local restaurant".

Create a timeline that incorporates travel, accommodation, and attractions in a sensible order, creating a comprehensive itinerary. Each day should be a list of activities.
For each activity, determine its type: 'travel' (for flights, trains, etc.), 'accommodation' (for hotel check-ins), or 'activity' (for sightseeing, meals, etc.).

For each activity, provide an estimated cost in USD in the 'budget' field. If an activity is free, set the budget to 0.

Create a description of a route map that shows how to get to each thing in the timeline, and incorporate methods of transit.

Return JSON only, matching this schema exactly (keys and nesting must match, no markdown, no comments):
{
  "timeline": [
    {
      "title": "Day 1: Arrival",
      "items": [
        {"text": "description of the activity", "type": "travel|accommodation|activity", "budget": 0}
      ]
    }
  ],
  "route_map": "A description of the route map for the itinerary."
}`

const markdownItineraryTemplate = `You are an expert travel planner. Generate a personalized travel itinerary based on the user's preferences.

Destination: %s
Start Date: %s
End Date: %s
Budget: %.0f USD
Interests: %s
Travel Style: %s

Create a detailed itinerary, including daily activities, accommodation suggestions, and travel tips. The itinerary should be formatted as a markdown string.`

func dateRangeText(req request_models.PlanRequest) string {
	return fmt.Sprintf("From %s to %s", FormatISODate(req.Dates.From), FormatISODate(req.Dates.To))
}

func refinementText(refine string) string {
	if strings.TrimSpace(refine) == "" {
		return ""
	}
	return "Refine the search with: " + refine
}

func RenderTravelOptionsPrompt(req request_models.PlanRequest, refine string) string {
	return fmt.Sprintf(travelOptionsTemplate,
		req.Destination,
		dateRangeText(req),
		fmt.Sprintf("%.0f USD", req.Budget),
		strings.Join(req.Interests, ", "),
		req.Destination,
		refinementText(refine),
	)
}

func RenderAccommodationOptionsPrompt(req request_models.PlanRequest, refine string) string {
	return fmt.Sprintf(accommodationOptionsTemplate,
		req.Destination,
		dateRangeText(req),
		fmt.Sprintf("%.0f USD", req.Budget),
		strings.Join(req.Interests, ", "),
		req.Destination,
		refinementText(refine),
	)
}

func RenderAttractionOptionsPrompt(req request_models.PlanRequest, refine string) string {
	return fmt.Sprintf(attractionOptionsTemplate,
		req.Destination,
		strings.Join(req.Interests, ", "),
		req.Destination,
		refinementText(refine),
	)
}

func RenderTimelinePrompt(preferences, travel, accommodation, attractions string) string {
	return fmt.Sprintf(timelineTemplate, preferences, travel, accommodation, attractions)
}

func RenderMarkdownItineraryPrompt(req request_models.PlanRequest) string {
	return fmt.Sprintf(markdownItineraryTemplate,
		req.Destination,
		FormatISODate(req.Dates.From),
		FormatISODate(req.Dates.To),
		req.Budget,
		strings.Join(req.Interests, ", "),
		strings.Join(req.TravelStyle, ", "),
	)
}

// BuildPreferencesBlock renders the free-text preference digest handed to the
// synthesis prompt.
func BuildPreferencesBlock(req request_models.PlanRequest) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("- Destination: %s\n", req.Destination))
	b.WriteString(fmt.Sprintf("- Dates: %s\n", dateRangeText(req)))
	b.WriteString(fmt.Sprintf("- Budget: Approximately %.0f USD\n", req.Budget))
	b.WriteString(fmt.Sprintf("- Interests: %s\n", strings.Join(req.Interests, ", ")))
	b.WriteString(fmt.Sprintf("- Travel Style: %s\n", strings.Join(req.TravelStyle, ", ")))
	return b.String()
}
