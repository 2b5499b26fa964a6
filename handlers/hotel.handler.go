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

type HotelHandler struct {
	hotelService services.HotelService
	Tracer       trace.Tracer
	logger       *logrus.Logger
}

func NewHotelHandler(hotelService services.HotelService, tracer trace.Tracer, logger *logrus.Logger) HotelHandler {
	return HotelHandler{hotelService, tracer, logger}
}

// SearchHotels accepts the search either as a query string (GET) or as a
// JSON body (POST) and responds with the provider offers wrapped in a
// data envelope.
func (s *HotelHandler) SearchHotels(c *gin.Context) {
	spanCtx, span := s.Tracer.Start(c.Request.Context(), "HotelHandler.SearchHotels")
	defer span.End()

	var request domain.HotelSearchRequest
	if c.Request.Method == http.MethodGet {
		if err := c.ShouldBindQuery(&request); err != nil {
			span.SetStatus(codes.Error, "Unable to bind query parameters")
			error2.ReturnJSONError(c.Writer, "Invalid query parameters", http.StatusBadRequest)
			return
		}
	} else {
		if err := c.ShouldBindJSON(&request); err != nil {
			span.SetStatus(codes.Error, "Unable to decode JSON")
			error2.ReturnJSONError(c.Writer, "Unable to decode JSON", http.StatusBadRequest)
			return
		}
	}

	offers, err := s.hotelService.SearchHotels(spanCtx, request)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		writeError(c, s.logger, err)
		return
	}

	c.JSON(http.StatusOK, domain.HotelOffersResponse{Data: offers})
}
