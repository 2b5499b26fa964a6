package handlers

import (
	"net/http"

	"booking-intake-service/domain"
	error2 "booking-intake-service/error"
	"booking-intake-service/services"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

type SearchHandler struct {
	searchService services.SearchService
	Tracer        trace.Tracer
	logger        *logrus.Logger
}

func NewSearchHandler(searchService services.SearchService, tracer trace.Tracer, logger *logrus.Logger) SearchHandler {
	return SearchHandler{searchService, tracer, logger}
}

// SearchLocations handles the city/airport autocomplete lookup.
func (s *SearchHandler) SearchLocations(c *gin.Context) {
	spanCtx, span := s.Tracer.Start(c.Request.Context(), "SearchHandler.SearchLocations")
	defer span.End()

	keyword := c.Query("keyword")
	subType := c.Query("subType")

	locations, err := s.searchService.SearchLocations(spanCtx, keyword, subType)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		writeError(c, s.logger, err)
		return
	}

	c.JSON(http.StatusOK, locations)
}

// SearchFlightOffers proxies a route query to the provider and returns
// the offer list unchanged.
func (s *SearchHandler) SearchFlightOffers(c *gin.Context) {
	spanCtx, span := s.Tracer.Start(c.Request.Context(), "SearchHandler.SearchFlightOffers")
	defer span.End()

	var query domain.FlightOffersQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		span.SetStatus(codes.Error, "Unable to bind query parameters")
		error2.ReturnJSONError(c.Writer, "Invalid query parameters", http.StatusBadRequest)
		return
	}

	offers, err := s.searchService.SearchFlightOffers(spanCtx, query)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		writeError(c, s.logger, err)
		return
	}

	c.Data(http.StatusOK, "application/json", offers)
}
