package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"voygo/internal/models/response_models"
	"voygo/pkg/utils"
)

type PlacesServiceInterface interface {
	Autocomplete(ctx context.Context, input string) ([]response_models.PlacePrediction, error)
	Details(ctx context.Context, placeID string) (*response_models.PlaceDetails, error)
}

// PlacesService is a thin proxy over the Google Places web API. Cancellation
// of the caller's context aborts the in-flight lookup, which is what lets a
// newer autocomplete keystroke supersede a stale one.
type PlacesService struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

func NewPlacesService(apiKey string) PlacesServiceInterface {
	return &PlacesService{
		apiKey:  apiKey,
		baseURL: "https://maps.googleapis.com/maps/api/place",
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

func (s *PlacesService) Autocomplete(ctx context.Context, input string) ([]response_models.PlacePrediction, error) {
	if s.apiKey == "" {
		return nil, utils.ErrPlacesNotConfigured
	}
	if input == "" {
		return []response_models.PlacePrediction{}, nil
	}

	endpoint := fmt.Sprintf("%s/autocomplete/json?input=%s&key=%s&language=en",
		s.baseURL, url.QueryEscape(input), url.QueryEscape(s.apiKey))

	var payload struct {
		Predictions []response_models.PlacePrediction `json:"predictions"`
	}
	if err := s.getJSON(ctx, endpoint, &payload); err != nil {
		return nil, err
	}

	if payload.Predictions == nil {
		return []response_models.PlacePrediction{}, nil
	}
	return payload.Predictions, nil
}

func (s *PlacesService) Details(ctx context.Context, placeID string) (*response_models.PlaceDetails, error) {
	if s.apiKey == "" {
		return nil, utils.ErrPlacesNotConfigured
	}
	if placeID == "" {
		return nil, utils.ErrMissingParameter
	}

	endpoint := fmt.Sprintf("%s/details/json?place_id=%s&key=%s&fields=formatted_address,geometry",
		s.baseURL, url.QueryEscape(placeID), url.QueryEscape(s.apiKey))

	var payload struct {
		Result struct {
			FormattedAddress *string `json:"formatted_address"`
			Geometry         struct {
				Location *response_models.LatLng `json:"location"`
			} `json:"geometry"`
		} `json:"result"`
	}
	if err := s.getJSON(ctx, endpoint, &payload); err != nil {
		return nil, err
	}

	return &response_models.PlaceDetails{
		Location: payload.Result.Geometry.Location,
		Address:  payload.Result.FormattedAddress,
	}, nil
}

func (s *PlacesService) getJSON(ctx context.Context, endpoint string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", utils.ErrPlacesUpstream, err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", utils.ErrPlacesUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: status %d", utils.ErrPlacesUpstream, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %v", utils.ErrPlacesUpstream, err)
	}
	return nil
}
