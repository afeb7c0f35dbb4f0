package request_models

import (
	"fmt"
	"time"
)

// Fixed tag vocabularies the planning form offers. Anything outside these
// sets is rejected before the pipeline runs.
var (
	AllowedInterests = []string{
		"history", "food", "hiking", "museums",
		"nightlife", "art", "shopping", "nature",
	}
	AllowedTravelStyles = []string{
		"adventurous", "relaxing", "luxury",
		"budget-friendly", "family-friendly", "fast-paced",
	}
)

type DateRange struct {
	From time.Time `json:"from" binding:"required"`
	To   time.Time `json:"to" binding:"required"`
}

// PlanRequest is one planning request. It is bound once from the submitted
// JSON, validated, and then passed by value through the pipeline unchanged.
type PlanRequest struct {
	Destination string    `json:"destination" binding:"required,min=2"`
	Dates       DateRange `json:"dates" binding:"required"`
	Budget      float64   `json:"budget" binding:"gte=0"`
	Interests   []string  `json:"interests" binding:"required,min=1"`
	TravelStyle []string  `json:"travel_style" binding:"required,min=1"`

	// Optional per-category refinement strings for the research prompts.
	TravelOptionsPrompt        string `json:"travel_options_prompt,omitempty"`
	AccommodationOptionsPrompt string `json:"accommodation_options_prompt,omitempty"`
	AttractionOptionsPrompt    string `json:"attraction_options_prompt,omitempty"`
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

// Validate enforces the range and vocabulary invariants the binding tags
// cannot express. now is injected so submission-time checks are testable.
func (r PlanRequest) Validate(now time.Time) error {
	if len(r.Destination) < 2 {
		return fmt.Errorf("destination must be at least 2 characters")
	}
	if r.Dates.From.IsZero() || r.Dates.To.IsZero() {
		return fmt.Errorf("both start and end dates are required")
	}
	if r.Dates.To.Before(r.Dates.From) {
		return fmt.Errorf("end date must not be before start date")
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if r.Dates.From.Before(today) {
		return fmt.Errorf("start date must not be in the past")
	}
	if r.Budget < 0 {
		return fmt.Errorf("budget must be a positive number")
	}
	if len(r.Interests) == 0 {
		return fmt.Errorf("at least one interest is required")
	}
	for _, tag := range r.Interests {
		if !contains(AllowedInterests, tag) {
			return fmt.Errorf("unknown interest: %s", tag)
		}
	}
	if len(r.TravelStyle) == 0 {
		return fmt.Errorf("at least one travel style is required")
	}
	for _, tag := range r.TravelStyle {
		if !contains(AllowedTravelStyles, tag) {
			return fmt.Errorf("unknown travel style: %s", tag)
		}
	}
	return nil
}
