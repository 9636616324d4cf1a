package models

// LayoverInfo describes the gap between two consecutive segments of a
// leg, at the airport where the earlier segment lands.
type LayoverInfo struct {
	Airport  string `json:"airport"`
	City     string `json:"city"`
	Duration string `json:"duration"`
}

type FlightEndpoint struct {
	Code string `json:"code"`
	City string `json:"city"`
}

// FlightFarePolicy is the normalized fare policy on a display flight.
// IsChangeable folds full and partial changeability together;
// IsRefundable maps only from partial refundability.
type FlightFarePolicy struct {
	IsChangeable       bool `json:"isChangeable"`
	IsRefundable       bool `json:"isRefundable"`
	HasFlexibleOptions bool `json:"hasFlexibleOptions"`
}

// Flight is the flat, display-ready projection of one itinerary leg
// combined with the parent itinerary's price, tags and fare policy.
type Flight struct {
	ID              string           `json:"id"`
	Airline         string           `json:"airline"`
	FlightNumber    string           `json:"flightNumber"`
	DepartTime      string           `json:"departTime"`
	ArrivalTime     string           `json:"arrivalTime"`
	From            FlightEndpoint   `json:"from"`
	To              FlightEndpoint   `json:"to"`
	Duration        string           `json:"duration"`
	Stops           int              `json:"stops"`
	Price           float64          `json:"price"`
	PriceFormatted  string           `json:"priceFormatted"`
	Aircraft        string           `json:"aircraft"`
	CarrierLogo     string           `json:"carrierLogo,omitempty"`
	TimeDeltaInDays int              `json:"timeDeltaInDays"`
	Layovers        []LayoverInfo    `json:"layovers,omitempty"`
	FarePolicy      FlightFarePolicy `json:"farePolicy"`
	Tags            []string         `json:"tags,omitempty"`
	CabinClass      string           `json:"cabinClass"`
	Eco             *Eco             `json:"eco,omitempty"`
}
