package models

type AirportPresentation struct {
	Title           string `json:"title"`
	SuggestionTitle string `json:"suggestionTitle"`
	Subtitle        string `json:"subtitle"`
}

// RelevantFlightParams carries the identifiers needed to build a flight
// search request out of a selected suggestion.
type RelevantFlightParams struct {
	SkyID           string `json:"skyId"`
	EntityID        string `json:"entityId"`
	FlightPlaceType string `json:"flightPlaceType"`
	LocalizedName   string `json:"localizedName"`
}

// AirportNavigation identifies the suggested entity; EntityType is either
// "CITY" or "AIRPORT".
type AirportNavigation struct {
	EntityID             string               `json:"entityId"`
	EntityType           string               `json:"entityType"`
	LocalizedName        string               `json:"localizedName"`
	RelevantFlightParams RelevantFlightParams `json:"relevantFlightParams"`
}

// AirportEntry is one airport/city suggestion from the provider's
// airport-search endpoint.
type AirportEntry struct {
	Presentation AirportPresentation `json:"presentation"`
	Navigation   AirportNavigation   `json:"navigation"`
}

// AirportSearchResponse is the provider's airport-search envelope.
type AirportSearchResponse struct {
	Status    bool           `json:"status"`
	Timestamp int64          `json:"timestamp"`
	Data      []AirportEntry `json:"data"`
}
