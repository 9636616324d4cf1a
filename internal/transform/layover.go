package transform

import (
	"math"

	"skysearch/internal/models"
)

// GenerateLayovers computes the layover descriptors for one leg's ordered
// segment sequence: one per adjacent segment pair, in chronological order.
// The layover airport is where the earlier segment lands; the calculator
// does not verify that the next segment departs from the same place, and
// a negative gap from out-of-order data is passed through unclamped.
func GenerateLayovers(segments []models.Segment) []models.LayoverInfo {
	if len(segments) <= 1 {
		return nil
	}

	layovers := make([]models.LayoverInfo, 0, len(segments)-1)
	for i := 0; i < len(segments)-1; i++ {
		current := segments[i]
		next := segments[i+1]

		minutes := 0
		arrival, errA := parseLocal(current.Arrival)
		departure, errD := parseLocal(next.Departure)
		if errA == nil && errD == nil {
			minutes = int(math.Round(departure.Sub(arrival).Minutes()))
		}

		layovers = append(layovers, models.LayoverInfo{
			Airport:  current.Destination.DisplayCode,
			City:     current.Destination.Name,
			Duration: FormatDuration(minutes),
		})
	}

	return layovers
}
