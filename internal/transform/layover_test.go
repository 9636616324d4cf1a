package transform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skysearch/internal/models"
)

func segment(origin, destination, destinationName, departure, arrival string) models.Segment {
	return models.Segment{
		Origin:      models.FlightPlace{DisplayCode: origin, Name: origin},
		Destination: models.FlightPlace{DisplayCode: destination, Name: destinationName},
		Departure:   departure,
		Arrival:     arrival,
	}
}

func TestGenerateLayoversSingleSegment(t *testing.T) {
	segments := []models.Segment{
		segment("LGW", "JFK", "New York John F. Kennedy", "2024-02-20T12:35:00", "2024-02-20T15:50:00"),
	}

	assert.Empty(t, GenerateLayovers(segments))
	assert.Empty(t, GenerateLayovers(nil))
}

func TestGenerateLayoversTwoSegments(t *testing.T) {
	segments := []models.Segment{
		segment("LHR", "DUB", "Dublin", "2024-02-20T07:50:00", "2024-02-20T09:10:00"),
		segment("DUB", "JFK", "New York John F. Kennedy", "2024-02-20T10:30:00", "2024-02-20T13:55:00"),
	}

	layovers := GenerateLayovers(segments)
	require.Len(t, layovers, 1)
	assert.Equal(t, "DUB", layovers[0].Airport)
	assert.Equal(t, "Dublin", layovers[0].City)
	assert.Equal(t, "1h 20m", layovers[0].Duration)
}

func TestGenerateLayoversChronologicalOrder(t *testing.T) {
	segments := []models.Segment{
		segment("LHR", "DUB", "Dublin", "2024-02-20T07:50:00", "2024-02-20T09:10:00"),
		segment("DUB", "KEF", "Reykjavik Keflavik", "2024-02-20T10:10:00", "2024-02-20T12:10:00"),
		segment("KEF", "JFK", "New York John F. Kennedy", "2024-02-20T12:55:00", "2024-02-20T18:30:00"),
	}

	layovers := GenerateLayovers(segments)
	require.Len(t, layovers, 2)
	assert.Equal(t, "DUB", layovers[0].Airport)
	assert.Equal(t, "1h 0m", layovers[0].Duration)
	assert.Equal(t, "KEF", layovers[1].Airport)
	assert.Equal(t, "Reykjavik Keflavik", layovers[1].City)
	assert.Equal(t, "0h 45m", layovers[1].Duration)
}

func TestGenerateLayoversNegativeGapNotClamped(t *testing.T) {
	// Out-of-order provider data: the next segment departs before the
	// previous one lands. The gap is passed through as-is.
	segments := []models.Segment{
		segment("LHR", "DUB", "Dublin", "2024-02-20T07:50:00", "2024-02-20T09:10:00"),
		segment("DUB", "JFK", "New York John F. Kennedy", "2024-02-20T08:30:00", "2024-02-20T13:55:00"),
	}

	layovers := GenerateLayovers(segments)
	require.Len(t, layovers, 1)
	assert.Equal(t, "0h -40m", layovers[0].Duration)
}
