package models

type FlightSearchRequest struct {
	OriginSkyID         string  `json:"originSkyId"`
	DestinationSkyID    string  `json:"destinationSkyId"`
	OriginEntityID      string  `json:"originEntityId"`
	DestinationEntityID string  `json:"destinationEntityId"`
	Date                string  `json:"date"`
	ReturnDate          *string `json:"returnDate,omitempty"`
	Adults              int     `json:"adults"`
	CabinClass          string  `json:"cabinClass"`
	Currency            string  `json:"currency,omitempty"`
	Market              string  `json:"market,omitempty"`
	CountryCode         string  `json:"countryCode,omitempty"`
	SortBy              string  `json:"sortBy,omitempty"`
}

func (r *FlightSearchRequest) Validate() error {
	if r.OriginSkyID == "" {
		return ErrMissingOrigin
	}
	if r.DestinationSkyID == "" {
		return ErrMissingDestination
	}
	if r.OriginEntityID == "" || r.DestinationEntityID == "" {
		return ErrMissingEntityID
	}
	if r.Date == "" {
		return ErrMissingDate
	}
	if r.Adults <= 0 {
		r.Adults = 1
	}
	if r.CabinClass == "" {
		r.CabinClass = "economy"
	}
	if r.SortBy == "" {
		r.SortBy = "best"
	}
	return nil
}

// ItineraryDetailRequest asks for the per-leg flights of one itinerary
// out of a search result set.
type ItineraryDetailRequest struct {
	Search      FlightSearchRequest `json:"search"`
	ItineraryID string              `json:"itineraryId"`
}

func (r *ItineraryDetailRequest) Validate() error {
	if r.ItineraryID == "" {
		return ErrMissingItineraryID
	}
	return r.Search.Validate()
}

type AirportSearchRequest struct {
	Query  string `json:"query"`
	Locale string `json:"locale"`
}

func (r *AirportSearchRequest) Validate() error {
	if r.Query == "" {
		return ErrMissingQuery
	}
	if r.Locale == "" {
		r.Locale = "en-US"
	}
	return nil
}

type ValidationError string

func (e ValidationError) Error() string {
	return string(e)
}

const (
	ErrMissingOrigin      ValidationError = "originSkyId is required"
	ErrMissingDestination ValidationError = "destinationSkyId is required"
	ErrMissingEntityID    ValidationError = "origin and destination entity ids are required"
	ErrMissingDate        ValidationError = "date is required"
	ErrMissingItineraryID ValidationError = "itineraryId is required"
	ErrMissingQuery       ValidationError = "query is required"
)
