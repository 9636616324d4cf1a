// Package transform converts provider itineraries into flat,
// display-ready flight records.
package transform

import (
	"fmt"
	"strings"

	"skysearch/internal/models"
	"skysearch/pkg/currency"
)

// ItinerariesToFlights builds the summary projection: exactly one flight
// per itinerary, derived from its first (outbound) leg. Every itinerary
// must have at least one leg; zero-leg input is a precondition violation
// and is deliberately not defended against here.
func ItinerariesToFlights(itineraries []models.Itinerary) []models.Flight {
	flights := make([]models.Flight, 0, len(itineraries))
	for _, itinerary := range itineraries {
		id := fmt.Sprintf("%s-summary", itinerary.ID)
		flights = append(flights, flightFromLeg(itinerary, itinerary.Legs[0], id))
	}
	return flights
}

// ItineraryToFlights builds the detailed projection: one flight per leg
// of a single itinerary, covering outbound and return legs separately.
func ItineraryToFlights(itinerary models.Itinerary) []models.Flight {
	flights := make([]models.Flight, 0, len(itinerary.Legs))
	for index, leg := range itinerary.Legs {
		id := fmt.Sprintf("%s-leg-%d", itinerary.ID, index)
		flights = append(flights, flightFromLeg(itinerary, leg, id))
	}
	return flights
}

// flightFromLeg flattens one leg with its parent itinerary's price, tags
// and fare policy. The displayed airline is whichever carrier markets the
// leg's first segment; connecting-flight carriers do not surface here.
func flightFromLeg(itinerary models.Itinerary, leg models.Leg, id string) models.Flight {
	first := leg.Segments[0]

	aircraft := strings.TrimSpace(first.MarketingCarrier.AlternateID + " " + first.FlightNumber)

	priceFormatted := itinerary.Price.Formatted
	if priceFormatted == "" {
		priceFormatted = currency.FormatUSD(itinerary.Price.Raw)
	}

	return models.Flight{
		ID:           id,
		Airline:      first.MarketingCarrier.Name,
		FlightNumber: first.FlightNumber,
		DepartTime:   FormatTime(leg.Departure),
		ArrivalTime:  FormatTime(leg.Arrival),
		From: models.FlightEndpoint{
			Code: leg.Origin.DisplayCode,
			City: leg.Origin.City,
		},
		To: models.FlightEndpoint{
			Code: leg.Destination.DisplayCode,
			City: leg.Destination.City,
		},
		Duration:        FormatDuration(leg.DurationInMinutes),
		Stops:           leg.StopCount,
		Price:           itinerary.Price.Raw,
		PriceFormatted:  priceFormatted,
		Aircraft:        aircraft,
		CarrierLogo:     first.MarketingCarrier.LogoURL,
		TimeDeltaInDays: leg.TimeDeltaInDays,
		Layovers:        GenerateLayovers(leg.Segments),
		FarePolicy: models.FlightFarePolicy{
			IsChangeable: itinerary.FarePolicy.IsChangeAllowed ||
				itinerary.FarePolicy.IsPartiallyChangeable,
			// Refundability maps only from partial refundability;
			// IsCancellationAllowed does not contribute. A fully
			// cancellable fare with no partial refund is reported as
			// non-refundable.
			IsRefundable:       itinerary.FarePolicy.IsPartiallyRefundable,
			HasFlexibleOptions: itinerary.HasFlexibleOptions,
		},
		Tags: itinerary.Tags,
		// The booking cabin class is a search input and is not echoed in
		// the provider's leg data.
		CabinClass: "Economy",
		Eco:        itinerary.Eco,
	}
}
