package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"skysearch/internal/cache"
	"skysearch/internal/models"
	"skysearch/internal/skyapi"
	"skysearch/internal/transform"
)

type SearchHandler struct {
	client skyapi.Client
	cache  cache.Cache
}

func NewSearchHandler(client skyapi.Client, c cache.Cache) *SearchHandler {
	return &SearchHandler{
		client: client,
		cache:  c,
	}
}

// Search returns the summary flight list: one flight per itinerary,
// built from its outbound leg.
func (h *SearchHandler) Search(c echo.Context) error {
	startTime := time.Now()

	var req models.FlightSearchRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Failed to parse request body: " + err.Error(),
			Code:    http.StatusBadRequest,
		})
	}

	if err := req.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
			Code:    http.StatusBadRequest,
		})
	}

	itineraries, cacheHit, err := h.fetchItineraries(c.Request().Context(), req)
	if err != nil {
		return c.JSON(http.StatusBadGateway, models.ErrorResponse{
			Error:   "upstream_error",
			Message: "Failed to search flights: " + err.Error(),
			Code:    http.StatusBadGateway,
		})
	}

	flights := transform.ItinerariesToFlights(itineraries)

	return c.JSON(http.StatusOK, models.FlightListResponse{
		SearchCriteria: req,
		Metadata: models.SearchMetadata{
			TotalResults: len(flights),
			SearchTimeMs: time.Since(startTime).Milliseconds(),
			CacheHit:     cacheHit,
		},
		Flights: flights,
	})
}

// Detail returns the per-leg flights of one itinerary out of a search
// result set, covering outbound and return legs separately.
func (h *SearchHandler) Detail(c echo.Context) error {
	startTime := time.Now()

	var req models.ItineraryDetailRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Failed to parse request body: " + err.Error(),
			Code:    http.StatusBadRequest,
		})
	}

	if err := req.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
			Code:    http.StatusBadRequest,
		})
	}

	itineraries, cacheHit, err := h.fetchItineraries(c.Request().Context(), req.Search)
	if err != nil {
		return c.JSON(http.StatusBadGateway, models.ErrorResponse{
			Error:   "upstream_error",
			Message: "Failed to search flights: " + err.Error(),
			Code:    http.StatusBadGateway,
		})
	}

	for _, itinerary := range itineraries {
		if itinerary.ID != req.ItineraryID {
			continue
		}

		flights := transform.ItineraryToFlights(itinerary)
		return c.JSON(http.StatusOK, models.FlightListResponse{
			SearchCriteria: req.Search,
			Metadata: models.SearchMetadata{
				TotalResults: len(flights),
				SearchTimeMs: time.Since(startTime).Milliseconds(),
				CacheHit:     cacheHit,
			},
			Flights: flights,
		})
	}

	return c.JSON(http.StatusNotFound, models.ErrorResponse{
		Error:   "itinerary_not_found",
		Message: "Itinerary is not part of this search result",
		Code:    http.StatusNotFound,
	})
}

// fetchItineraries serves the cached result set for req, falling back to
// the upstream API and filling the cache on a miss.
func (h *SearchHandler) fetchItineraries(ctx context.Context, req models.FlightSearchRequest) ([]models.Itinerary, bool, error) {
	if itineraries, found := h.cache.Get(ctx, req); found {
		return itineraries, true, nil
	}

	resp, err := h.client.SearchFlights(ctx, req)
	if err != nil {
		return nil, false, err
	}

	itineraries := resp.Data.Itineraries
	_ = h.cache.Set(ctx, req, itineraries)

	return itineraries, false, nil
}

func HealthHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
	})
}
