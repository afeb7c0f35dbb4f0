package response_models

const (
	BookingCategoryTravel        = "travel"
	BookingCategoryAccommodation = "accommodation"
	BookingCategoryAttraction    = "attraction"
)

// BookingLink is a deep link into a third-party provider's search results.
// Derived on demand, never persisted.
type BookingLink struct {
	Name     string `json:"name"`
	URL      string `json:"url"`
	Category string `json:"category"`
}

// SummaryLink is a [label](url) link lifted verbatim from a raw category
// summary produced by the model.
type SummaryLink struct {
	Text string `json:"text"`
	URL  string `json:"url"`
}

type BookingLinkGroups struct {
	Travel        []BookingLink `json:"travel"`
	Accommodation []BookingLink `json:"accommodation"`
	Attraction    []BookingLink `json:"attraction"`
}

// BookingLinksResponse combines the heuristic deep links with whatever links
// the research summaries already carried.
type BookingLinksResponse struct {
	Links        BookingLinkGroups `json:"links"`
	SummaryLinks struct {
		Travel        []SummaryLink `json:"travel"`
		Accommodation []SummaryLink `json:"accommodation"`
		Attraction    []SummaryLink `json:"attraction"`
	} `json:"summary_links"`
}
