package services

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"voygo/internal/models/request_models"
	"voygo/internal/models/response_models"
	"voygo/pkg/utils"
)

type BookingServiceInterface interface {
	ExtractBookingLinks(req request_models.PlanRequest, result response_models.ItineraryResult) response_models.BookingLinkGroups
	ExtractSummaryLinks(text string) []response_models.SummaryLink
}

// BookingService derives third-party booking links from an itinerary. All of
// it is pure text mining: no network calls, no model calls, identical inputs
// always produce identical links.
type BookingService struct{}

func NewBookingService() BookingServiceInterface {
	return &BookingService{}
}

var (
	// "(stay at|at|in|near) <Capitalized Phrase>"; the phrase must start with
	// a capitalized word so prose like "check in at" skips to the entity.
	accommodationPhraseRe = regexp.MustCompile(`\b(?:[Ss]tay at|at|in|near)\s+((?:[A-Z][A-Za-z'&-]+)(?:\s+(?:[A-Z][A-Za-z'&-]+|\d+))*)`)

	// "visit/explore/see/discover/tour [the] <noun phrase>" capturing up to
	// three capitalized words.
	attractionVerbRe = regexp.MustCompile(`\b(?:[Vv]isit|[Ee]xplore|[Ss]ee|[Dd]iscover|[Tt]our)\s+(?:the\s+)?((?:[A-Z][A-Za-z'&-]+)(?:\s+[A-Z][A-Za-z'&-]+){0,2})`)

	// Fallback proper-noun detector: two or more consecutive capitalized words.
	properNounRe = regexp.MustCompile(`\b((?:[A-Z][A-Za-z'&-]+)(?:\s+[A-Z][A-Za-z'&-]+)+)`)

	markdownLinkRe = regexp.MustCompile(`\[([^\]]+)\]\(([^)]+)\)`)
)

// Generic nouns that are never useful search keywords.
var genericNouns = map[string]bool{
	"city": true,
	"area": true,
}

// Leading words that mark a capitalized sequence as prose rather than a
// place name.
var properNounStopWords = map[string]bool{
	"The": true, "A": true, "An": true,
	"Day": true, "Morning": true, "Afternoon": true, "Evening": true,
	"Check": true, "Arrive": true, "Depart": true, "Return": true,
	"Breakfast": true, "Lunch": true, "Dinner": true, "Free": true,
}

// ExtractBookingLinks builds deep links for the bookings view. An empty
// destination yields empty lists; absent keyword matches degrade to the
// generic provider links. Never fails.
func (b *BookingService) ExtractBookingLinks(req request_models.PlanRequest, result response_models.ItineraryResult) response_models.BookingLinkGroups {
	var groups response_models.BookingLinkGroups

	destination := strings.TrimSpace(req.Destination)
	if destination == "" {
		return groups
	}

	checkIn := utils.FormatISODate(req.Dates.From)
	checkOut := utils.FormatISODate(req.Dates.To)

	groups.Travel = travelLinks(destination, checkIn, checkOut)
	groups.Accommodation = accommodationLinks(destination, checkIn, checkOut, result.Timeline)
	groups.Attraction = attractionLinks(destination, result.Timeline)

	return groups
}

// ExtractSummaryLinks lifts [label](url) markdown links out of a raw
// category summary.
func (b *BookingService) ExtractSummaryLinks(text string) []response_models.SummaryLink {
	var links []response_models.SummaryLink
	for _, m := range markdownLinkRe.FindAllStringSubmatch(text, -1) {
		links = append(links, response_models.SummaryLink{Text: m[1], URL: m[2]})
	}
	return links
}

func travelLinks(destination, depart, ret string) []response_models.BookingLink {
	// Origin is a fixed placeholder; the planner never collects one.
	flightQuery := fmt.Sprintf("Flights from your location to %s on %s through %s", destination, depart, ret)
	return []response_models.BookingLink{
		{
			Name:     "Google Flights",
			URL:      "https://www.google.com/travel/flights?q=" + url.QueryEscape(flightQuery),
			Category: response_models.BookingCategoryTravel,
		},
		{
			Name:     "Kayak",
			URL:      fmt.Sprintf("https://www.kayak.com/flights/%s/%s/%s", url.PathEscape(destination), depart, ret),
			Category: response_models.BookingCategoryTravel,
		},
	}
}

func accommodationLinks(destination, checkIn, checkOut string, timeline []response_models.DayEntry) []response_models.BookingLink {
	query := destination
	if keyword := accommodationKeyword(timeline); keyword != "" {
		query = keyword + ", " + destination
	}

	bookingParams := url.Values{}
	bookingParams.Set("ss", query)
	bookingParams.Set("checkin", checkIn)
	bookingParams.Set("checkout", checkOut)
	bookingParams.Set("group_adults", "2")

	return []response_models.BookingLink{
		{
			Name:     "Booking.com",
			URL:      "https://www.booking.com/searchresults.html?" + bookingParams.Encode(),
			Category: response_models.BookingCategoryAccommodation,
		},
		{
			Name:     "Airbnb",
			URL:      fmt.Sprintf("https://www.airbnb.com/s/%s/homes?checkin=%s&checkout=%s&adults=2", url.PathEscape(destination), checkIn, checkOut),
			Category: response_models.BookingCategoryAccommodation,
		},
	}
}

func attractionLinks(destination string, timeline []response_models.DayEntry) []response_models.BookingLink {
	links := []response_models.BookingLink{
		{
			Name:     "GetYourGuide",
			URL:      "https://www.getyourguide.com/s/?q=" + url.QueryEscape(destination),
			Category: response_models.BookingCategoryAttraction,
		},
		{
			Name:     "Viator",
			URL:      "https://www.viator.com/searchResults/all?text=" + url.QueryEscape(destination),
			Category: response_models.BookingCategoryAttraction,
		},
	}

	// Generic links first, targeted link (if any) last.
	if keyword := attractionKeyword(timeline); keyword != "" {
		links = append(links, response_models.BookingLink{
			Name:     fmt.Sprintf("GetYourGuide: %s", keyword),
			URL:      "https://www.getyourguide.com/s/?q=" + url.QueryEscape(keyword+" "+destination),
			Category: response_models.BookingCategoryAttraction,
		})
	}

	return links
}

// accommodationKeyword scans the timeline for the first accommodation-typed
// activity naming a place after at/in/near/stay at.
func accommodationKeyword(timeline []response_models.DayEntry) string {
	for _, day := range timeline {
		for _, item := range day.Items {
			if item.Type != response_models.ActivityTypeAccommodation {
				continue
			}
			if m := accommodationPhraseRe.FindStringSubmatch(item.Text); m != nil {
				return strings.TrimSpace(m[1])
			}
		}
	}
	return ""
}

// attractionKeyword returns the first keyword found in activity-typed items,
// first-match-wins. The verb pattern takes precedence over the proper-noun
// fallback, so both passes run over the full timeline in scan order.
func attractionKeyword(timeline []response_models.DayEntry) string {
	for _, day := range timeline {
		for _, item := range day.Items {
			if item.Type != response_models.ActivityTypeActivity {
				continue
			}
			for _, m := range attractionVerbRe.FindAllStringSubmatch(item.Text, -1) {
				keyword := strings.TrimSpace(m[1])
				if keyword != "" && !genericNouns[strings.ToLower(keyword)] {
					return keyword
				}
			}
		}
	}

	for _, day := range timeline {
		for _, item := range day.Items {
			if item.Type != response_models.ActivityTypeActivity {
				continue
			}
			for _, m := range properNounRe.FindAllStringSubmatch(item.Text, -1) {
				keyword := strings.TrimSpace(m[1])
				firstWord := strings.Fields(keyword)[0]
				if !properNounStopWords[firstWord] && !genericNouns[strings.ToLower(keyword)] {
					return keyword
				}
			}
		}
	}

	return ""
}
