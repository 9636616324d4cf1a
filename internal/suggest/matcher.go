// Package suggest handles airport typeahead: exact-label suppression of
// redundant suggestion lists and debouncing of keystroke bursts.
package suggest

import "skysearch/internal/models"

// DisplayLabel is the canonical text a selected suggestion fills the
// query field with: "{localizedName} ({skyId})".
func DisplayLabel(entry models.AirportEntry) string {
	return entry.Navigation.LocalizedName + " (" + entry.Navigation.RelevantFlightParams.SkyID + ")"
}

// HasExactMatch reports whether any entry's display label equals the
// query character-for-character. Case-differing or partial matches do
// not count.
func HasExactMatch(query string, entries []models.AirportEntry) bool {
	for _, entry := range entries {
		if DisplayLabel(entry) == query {
			return true
		}
	}
	return false
}

// Filter suppresses the suggestion list when the query already spells
// out one entry's exact label (the user picked it by typing), and
// otherwise surfaces the full candidate list unfiltered.
func Filter(query string, entries []models.AirportEntry) []models.AirportEntry {
	if HasExactMatch(query, entries) {
		return []models.AirportEntry{}
	}
	return entries
}
