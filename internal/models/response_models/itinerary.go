package response_models

// Activity types the synthesis model must choose from.
const (
	ActivityTypeTravel        = "travel"
	ActivityTypeAccommodation = "accommodation"
	ActivityTypeActivity      = "activity"
)

type Activity struct {
	Text string `json:"text"`
	Type string `json:"type"`
	// Estimated cost in USD; nil when the model gave no estimate, 0 for free.
	Budget *float64 `json:"budget,omitempty"`
}

type DayEntry struct {
	Title string     `json:"title"`
	Items []Activity `json:"items"`
}

// CategorySummaries holds the three raw research-stage summaries. They are
// markdown-flavored free text and may embed [label](url) links.
type CategorySummaries struct {
	TravelOptionsSummary        string `json:"travel_options_summary"`
	AccommodationOptionsSummary string `json:"accommodation_options_summary"`
	AttractionOptionsSummary    string `json:"attraction_options_summary"`
}

// ItineraryResult is the terminal artifact of the planning pipeline. The raw
// summaries ride along because the bookings view mines them for links the
// structured timeline does not preserve.
type ItineraryResult struct {
	Timeline  []DayEntry        `json:"timeline"`
	RouteMap  string            `json:"route_map"`
	Summaries CategorySummaries `json:"summaries"`
}
