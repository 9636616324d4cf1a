package models

type SearchMetadata struct {
	TotalResults int   `json:"total_results"`
	SearchTimeMs int64 `json:"search_time_ms"`
	CacheHit     bool  `json:"cache_hit"`
}

type FlightListResponse struct {
	SearchCriteria FlightSearchRequest `json:"search_criteria"`
	Metadata       SearchMetadata      `json:"metadata"`
	Flights        []Flight            `json:"flights"`
}

type SuggestionResponse struct {
	Query       string         `json:"query"`
	Suggestions []AirportEntry `json:"suggestions"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}
