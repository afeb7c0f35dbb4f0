package response_models

type PlacePrediction struct {
	Description string `json:"description"`
	PlaceID     string `json:"place_id"`
}

type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type PlaceDetails struct {
	Location *LatLng `json:"location"`
	Address  *string `json:"address"`
}
