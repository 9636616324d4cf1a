package suggest

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"skysearch/internal/models"
)

func entry(localizedName, skyID string) models.AirportEntry {
	return models.AirportEntry{
		Presentation: models.AirportPresentation{
			Title:           localizedName,
			SuggestionTitle: localizedName + " (" + skyID + ")",
			Subtitle:        "United States",
		},
		Navigation: models.AirportNavigation{
			EntityType:    "AIRPORT",
			LocalizedName: localizedName,
			RelevantFlightParams: models.RelevantFlightParams{
				SkyID:         skyID,
				LocalizedName: localizedName,
			},
		},
	}
}

var nycEntries = []models.AirportEntry{
	entry("New York", "NYCA"),
	entry("New York Newark", "EWR"),
	entry("New York John F. Kennedy", "JFK"),
	entry("New York LaGuardia", "LGA"),
}

func TestDisplayLabel(t *testing.T) {
	assert.Equal(t, "New York John F. Kennedy (JFK)", DisplayLabel(entry("New York John F. Kennedy", "JFK")))
}

func TestFilterSuppressesExactMatch(t *testing.T) {
	filtered := Filter("New York John F. Kennedy (JFK)", nycEntries)
	assert.Empty(t, filtered)
}

func TestFilterSurfacesNonMatches(t *testing.T) {
	queries := []string{
		"new york john f. kennedy (jfk)", // case differs
		"New York John F. Kennedy",       // missing code suffix
		"New York John F. Kennedy (JFK",  // partial
		"JFK",
		"new york",
	}

	for _, query := range queries {
		filtered := Filter(query, nycEntries)
		assert.Equal(t, nycEntries, filtered, "query %q must surface the full list", query)
	}
}

func TestFilterIdempotent(t *testing.T) {
	first := Filter("New York Newark (EWR)", nycEntries)
	second := Filter("New York Newark (EWR)", nycEntries)
	assert.Equal(t, first, second)

	first = Filter("newark", nycEntries)
	second = Filter("newark", nycEntries)
	assert.Equal(t, first, second)
}

func TestFilterEmptyCandidates(t *testing.T) {
	assert.Empty(t, Filter("anything", nil))
}
