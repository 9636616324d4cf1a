package models

// Carrier is an airline record as the flight-data provider reports it.
// AlternateID carries the IATA-style short code when the provider has one.
type Carrier struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	LogoURL     string `json:"logoUrl,omitempty"`
	AlternateID string `json:"alternateId,omitempty"`
	AllianceID  int    `json:"allianceId,omitempty"`
}

type PlaceParent struct {
	FlightPlaceID string `json:"flightPlaceId"`
	DisplayCode   string `json:"displayCode"`
	Name          string `json:"name"`
	Type          string `json:"type"`
}

// FlightPlace is a segment-level airport or city. Parent, when present,
// points at the airport's city.
type FlightPlace struct {
	FlightPlaceID string       `json:"flightPlaceId"`
	DisplayCode   string       `json:"displayCode"`
	Parent        *PlaceParent `json:"parent,omitempty"`
	Name          string       `json:"name"`
	Type          string       `json:"type"`
}

// Segment is one flight-numbered hop between two airports.
// Departure and Arrival are local wall-clock ISO-8601 strings with no
// timezone offset, exactly as the provider sends them.
type Segment struct {
	ID                string      `json:"id"`
	Origin            FlightPlace `json:"origin"`
	Destination       FlightPlace `json:"destination"`
	Departure         string      `json:"departure"`
	Arrival           string      `json:"arrival"`
	DurationInMinutes int         `json:"durationInMinutes"`
	FlightNumber      string      `json:"flightNumber"`
	MarketingCarrier  Carrier     `json:"marketingCarrier"`
	OperatingCarrier  Carrier     `json:"operatingCarrier"`
}

type LegPlace struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	DisplayCode   string `json:"displayCode"`
	City          string `json:"city"`
	IsHighlighted bool   `json:"isHighlighted"`
}

type LegCarriers struct {
	Marketing     []Carrier `json:"marketing"`
	OperationType string    `json:"operationType"`
}

// Leg is one directional trip (outbound or return) composed of one or
// more segments. TimeDeltaInDays is how many calendar days later the
// arrival falls relative to the departure.
type Leg struct {
	ID                string      `json:"id"`
	Origin            LegPlace    `json:"origin"`
	Destination       LegPlace    `json:"destination"`
	DurationInMinutes int         `json:"durationInMinutes"`
	StopCount         int         `json:"stopCount"`
	IsSmallestStops   bool        `json:"isSmallestStops"`
	Departure         string      `json:"departure"`
	Arrival           string      `json:"arrival"`
	TimeDeltaInDays   int         `json:"timeDeltaInDays"`
	Carriers          LegCarriers `json:"carriers"`
	Segments          []Segment   `json:"segments"`
}

type Price struct {
	Raw       float64 `json:"raw"`
	Formatted string  `json:"formatted"`
}

// FarePolicy holds the provider's four independent fare allowances.
type FarePolicy struct {
	IsChangeAllowed       bool `json:"isChangeAllowed"`
	IsPartiallyChangeable bool `json:"isPartiallyChangeable"`
	IsCancellationAllowed bool `json:"isCancellationAllowed"`
	IsPartiallyRefundable bool `json:"isPartiallyRefundable"`
}

type Eco struct {
	EcoContenderDelta float64 `json:"ecoContenderDelta"`
}

// Itinerary is one priced, bookable combination of legs returned by the
// search provider. Read-only after deserialization.
type Itinerary struct {
	ID                      string     `json:"id"`
	Price                   Price      `json:"price"`
	Legs                    []Leg      `json:"legs"`
	IsSelfTransfer          bool       `json:"isSelfTransfer"`
	IsProtectedSelfTransfer bool       `json:"isProtectedSelfTransfer"`
	FarePolicy              FarePolicy `json:"farePolicy"`
	Eco                     *Eco       `json:"eco,omitempty"`
	Tags                    []string   `json:"tags,omitempty"`
	IsMashUp                bool       `json:"isMashUp"`
	HasFlexibleOptions      bool       `json:"hasFlexibleOptions"`
	Score                   float64    `json:"score"`
}

type SearchContext struct {
	Status       string `json:"status"`
	TotalResults int    `json:"totalResults"`
}

type FlightSearchData struct {
	Context     SearchContext `json:"context"`
	Itineraries []Itinerary   `json:"itineraries"`
}

// FlightSearchResponse is the provider's flight-search envelope.
type FlightSearchResponse struct {
	Status    bool             `json:"status"`
	Timestamp int64            `json:"timestamp"`
	SessionID string           `json:"sessionId"`
	Data      FlightSearchData `json:"data"`
}
