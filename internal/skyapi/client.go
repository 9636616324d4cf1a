// Package skyapi is the boundary to the third-party flight-data API.
// It owns validation of provider responses; everything past this
// boundary assumes well-formed itineraries.
package skyapi

import (
	"context"
	"fmt"

	"skysearch/internal/models"
)

const (
	EndpointSearchFlights = "searchFlights"
	EndpointSearchAirport = "searchAirport"
)

type Client interface {
	SearchFlights(ctx context.Context, req models.FlightSearchRequest) (*models.FlightSearchResponse, error)
	SearchAirports(ctx context.Context, req models.AirportSearchRequest) (*models.AirportSearchResponse, error)
}

type APIError struct {
	Endpoint   string
	StatusCode int
	Err        error
}

func (e *APIError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: status %d: %v", e.Endpoint, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Endpoint, e.Err)
}

func (e *APIError) Unwrap() error {
	return e.Err
}

func NewAPIError(endpoint string, err error) *APIError {
	return &APIError{
		Endpoint: endpoint,
		Err:      err,
	}
}

// validItineraries drops itineraries the transformation pipeline cannot
// handle: no legs, or a leg with no segments. The transformer requires
// this precondition instead of defending against it.
func validItineraries(itineraries []models.Itinerary) []models.Itinerary {
	result := make([]models.Itinerary, 0, len(itineraries))

itineraries:
	for _, itinerary := range itineraries {
		if len(itinerary.Legs) == 0 {
			continue
		}
		for _, leg := range itinerary.Legs {
			if len(leg.Segments) == 0 {
				continue itineraries
			}
		}
		result = append(result, itinerary)
	}

	return result
}
