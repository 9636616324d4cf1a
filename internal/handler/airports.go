package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"skysearch/internal/models"
	"skysearch/internal/skyapi"
	"skysearch/internal/suggest"
)

// Queries shorter than this never hit the upstream; the response is an
// empty suggestion list.
const minQueryLength = 2

type AirportHandler struct {
	client    skyapi.Client
	coalescer *suggest.Coalescer
}

func NewAirportHandler(client skyapi.Client, coalescer *suggest.Coalescer) *AirportHandler {
	return &AirportHandler{
		client:    client,
		coalescer: coalescer,
	}
}

// Search serves the airport typeahead. Keystroke bursts on one input
// field are debounced per client: a superseded request gets 204 and the
// caller should keep the newer result. The origin and destination fields
// debounce independently of each other.
func (h *AirportHandler) Search(c echo.Context) error {
	req := models.AirportSearchRequest{
		Query:  c.QueryParam("query"),
		Locale: c.QueryParam("locale"),
	}

	if err := req.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
			Code:    http.StatusBadRequest,
		})
	}

	if len(req.Query) < minQueryLength {
		return c.JSON(http.StatusOK, models.SuggestionResponse{
			Query:       req.Query,
			Suggestions: []models.AirportEntry{},
		})
	}

	field := c.QueryParam("field")
	if field == "" {
		field = "origin"
	}
	key := c.RealIP() + "|" + field

	if err := h.coalescer.Wait(c.Request().Context(), key); err != nil {
		if errors.Is(err, suggest.ErrSuperseded) {
			return c.NoContent(http.StatusNoContent)
		}
		return err
	}

	resp, err := h.client.SearchAirports(c.Request().Context(), req)
	if err != nil {
		return c.JSON(http.StatusBadGateway, models.ErrorResponse{
			Error:   "upstream_error",
			Message: "Failed to search airports: " + err.Error(),
			Code:    http.StatusBadGateway,
		})
	}

	return c.JSON(http.StatusOK, models.SuggestionResponse{
		Query:       req.Query,
		Suggestions: suggest.Filter(req.Query, resp.Data),
	})
}
