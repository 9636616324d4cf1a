package skyapi

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skysearch/internal/models"
)

func TestNewMockClient(t *testing.T) {
	client, err := NewMockClient()
	require.NoError(t, err)

	flights, err := client.SearchFlights(context.Background(), models.FlightSearchRequest{})
	require.NoError(t, err)
	require.Len(t, flights.Data.Itineraries, 2)

	for _, itinerary := range flights.Data.Itineraries {
		assert.NotEmpty(t, itinerary.ID)
		require.NotEmpty(t, itinerary.Legs)
		for _, leg := range itinerary.Legs {
			assert.NotEmpty(t, leg.Segments)
		}
	}

	first := flights.Data.Itineraries[0]
	assert.Equal(t, 419.18, first.Price.Raw)
	assert.Equal(t, "$420", first.Price.Formatted)
	assert.Equal(t, []string{"cheapest", "shortest"}, first.Tags)
	require.NotNil(t, first.Eco)

	airports, err := client.SearchAirports(context.Background(), models.AirportSearchRequest{Query: "new"})
	require.NoError(t, err)
	assert.Len(t, airports.Data, 5)
	assert.Equal(t, "JFK", airports.Data[2].Navigation.RelevantFlightParams.SkyID)
}

func TestMockClientCancelledContext(t *testing.T) {
	client, err := NewMockClient()
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = client.SearchFlights(ctx, models.FlightSearchRequest{})
	assert.Error(t, err)

	var apiErr *APIError
	assert.ErrorAs(t, err, &apiErr)
	assert.Equal(t, EndpointSearchFlights, apiErr.Endpoint)
}

func TestValidItinerariesFiltersMalformed(t *testing.T) {
	itineraries := []models.Itinerary{
		{ID: "ok", Legs: []models.Leg{{Segments: []models.Segment{{}}}}},
		{ID: "no-legs"},
		{ID: "empty-leg", Legs: []models.Leg{{Segments: []models.Segment{{}}}, {}}},
	}

	valid := validItineraries(itineraries)
	require.Len(t, valid, 1)
	assert.Equal(t, "ok", valid[0].ID)
}
