package skyapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"skysearch/internal/models"
	"skysearch/internal/ratelimit"
)

const defaultBaseURL = "https://sky-scrapper.p.rapidapi.com/api/v1/flights"

type HTTPConfig struct {
	BaseURL string
	APIKey  string
	APIHost string
	Timeout time.Duration
	Limiter *ratelimit.EndpointLimiter
}

// HTTPClient talks to the live flight-data API. Requests carry the
// rapidapi auth headers and pass through the endpoint limiter first.
type HTTPClient struct {
	baseURL string
	apiKey  string
	apiHost string
	client  *http.Client
	limiter *ratelimit.EndpointLimiter
}

func NewHTTPClient(cfg HTTPConfig) *HTTPClient {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 15 * time.Second
	}

	return &HTTPClient{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		apiHost: cfg.APIHost,
		client:  &http.Client{Timeout: cfg.Timeout},
		limiter: cfg.Limiter,
	}
}

func (c *HTTPClient) SearchFlights(ctx context.Context, req models.FlightSearchRequest) (*models.FlightSearchResponse, error) {
	params := url.Values{}
	params.Set("originSkyId", req.OriginSkyID)
	params.Set("destinationSkyId", req.DestinationSkyID)
	params.Set("originEntityId", req.OriginEntityID)
	params.Set("destinationEntityId", req.DestinationEntityID)
	params.Set("date", req.Date)
	params.Set("adults", strconv.Itoa(req.Adults))
	params.Set("cabinClass", req.CabinClass)
	if req.ReturnDate != nil && *req.ReturnDate != "" {
		params.Set("returnDate", *req.ReturnDate)
	}
	if req.Currency != "" {
		params.Set("currency", req.Currency)
	}
	if req.Market != "" {
		params.Set("market", req.Market)
	}
	if req.CountryCode != "" {
		params.Set("countryCode", req.CountryCode)
	}
	if req.SortBy != "" {
		params.Set("sortBy", req.SortBy)
	}

	var resp models.FlightSearchResponse
	if err := c.get(ctx, EndpointSearchFlights, params, &resp); err != nil {
		return nil, err
	}

	resp.Data.Itineraries = validItineraries(resp.Data.Itineraries)
	return &resp, nil
}

func (c *HTTPClient) SearchAirports(ctx context.Context, req models.AirportSearchRequest) (*models.AirportSearchResponse, error) {
	params := url.Values{}
	params.Set("query", req.Query)
	params.Set("locale", req.Locale)

	var resp models.AirportSearchResponse
	if err := c.get(ctx, EndpointSearchAirport, params, &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}

func (c *HTTPClient) get(ctx context.Context, endpoint string, params url.Values, out any) error {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx, endpoint); err != nil {
			return NewAPIError(endpoint, err)
		}
	}

	reqURL := c.baseURL + "/" + endpoint + "?" + params.Encode()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return NewAPIError(endpoint, err)
	}
	httpReq.Header.Set("x-rapidapi-key", c.apiKey)
	httpReq.Header.Set("x-rapidapi-host", c.apiHost)

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return NewAPIError(endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &APIError{
			Endpoint:   endpoint,
			StatusCode: resp.StatusCode,
			Err:        errors.New("unexpected status from upstream"),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return NewAPIError(endpoint, err)
	}

	return nil
}
