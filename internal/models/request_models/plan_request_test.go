package request_models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 5, 20, 15, 0, 0, 0, time.UTC)

func validRequest() PlanRequest {
	return PlanRequest{
		Destination: "Paris",
		Dates: DateRange{
			From: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
			To:   time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC),
		},
		Budget:      1500,
		Interests:   []string{"history", "food"},
		TravelStyle: []string{"relaxing"},
	}
}

func TestValidateAcceptsValidRequest(t *testing.T) {
	require.NoError(t, validRequest().Validate(now))
}

func TestValidateRejectsShortDestination(t *testing.T) {
	req := validRequest()
	req.Destination = "P"
	assert.Error(t, req.Validate(now))
}

func TestValidateRejectsReversedDates(t *testing.T) {
	req := validRequest()
	req.Dates.From, req.Dates.To = req.Dates.To, req.Dates.From
	assert.Error(t, req.Validate(now))
}

func TestValidateRejectsPastStartDate(t *testing.T) {
	req := validRequest()
	req.Dates.From = time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	assert.Error(t, req.Validate(now))
}

func TestValidateAcceptsSameDayTrip(t *testing.T) {
	req := validRequest()
	req.Dates.To = req.Dates.From
	assert.NoError(t, req.Validate(now))
}

func TestValidateAcceptsTripStartingToday(t *testing.T) {
	req := validRequest()
	req.Dates.From = time.Date(2025, 5, 20, 0, 0, 0, 0, time.UTC)
	assert.NoError(t, req.Validate(now))
}

func TestValidateRejectsMissingDates(t *testing.T) {
	req := validRequest()
	req.Dates.To = time.Time{}
	assert.Error(t, req.Validate(now))
}

func TestValidateRejectsNegativeBudget(t *testing.T) {
	req := validRequest()
	req.Budget = -1
	assert.Error(t, req.Validate(now))
}

func TestValidateRejectsEmptyTagSets(t *testing.T) {
	req := validRequest()
	req.Interests = nil
	assert.Error(t, req.Validate(now))

	req = validRequest()
	req.TravelStyle = []string{}
	assert.Error(t, req.Validate(now))
}

func TestValidateRejectsUnknownTags(t *testing.T) {
	req := validRequest()
	req.Interests = []string{"history", "spelunking"}
	assert.Error(t, req.Validate(now))

	req = validRequest()
	req.TravelStyle = []string{"chaotic"}
	assert.Error(t, req.Validate(now))
}
