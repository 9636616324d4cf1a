package skyapi

import (
	"context"
	"encoding/json"

	"skysearch/internal/models"
	"skysearch/internal/skyapi/data"
)

// MockClient serves canned provider responses for development without an
// API key. Same boundary contract as the live client, including the
// zero-leg itinerary filter.
type MockClient struct {
	flights  models.FlightSearchResponse
	airports models.AirportSearchResponse
}

func NewMockClient() (*MockClient, error) {
	var flights models.FlightSearchResponse
	if err := json.Unmarshal(data.FlightsData, &flights); err != nil {
		return nil, err
	}

	var airports models.AirportSearchResponse
	if err := json.Unmarshal(data.AirportsData, &airports); err != nil {
		return nil, err
	}

	flights.Data.Itineraries = validItineraries(flights.Data.Itineraries)

	return &MockClient{
		flights:  flights,
		airports: airports,
	}, nil
}

func (c *MockClient) SearchFlights(ctx context.Context, req models.FlightSearchRequest) (*models.FlightSearchResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, NewAPIError(EndpointSearchFlights, err)
	}

	resp := c.flights
	return &resp, nil
}

func (c *MockClient) SearchAirports(ctx context.Context, req models.AirportSearchRequest) (*models.AirportSearchResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, NewAPIError(EndpointSearchAirport, err)
	}

	resp := c.airports
	return &resp, nil
}
