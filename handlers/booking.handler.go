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

type BookingHandler struct {
	bookingService services.BookingService
	Tracer         trace.Tracer
	logger         *logrus.Logger
}

func NewBookingHandler(bookingService services.BookingService, tracer trace.Tracer, logger *logrus.Logger) BookingHandler {
	return BookingHandler{bookingService, tracer, logger}
}

// BookFlight fabricates a booking confirmation. No reservation system is
// contacted and nothing is persisted.
func (s *BookingHandler) BookFlight(c *gin.Context) {
	_, span := s.Tracer.Start(c.Request.Context(), "BookingHandler.BookFlight")
	defer span.End()

	var request domain.FlightBookingRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		span.SetStatus(codes.Error, "Missing flight or passenger data")
		error2.ReturnJSONError(c.Writer, "Missing flight or passenger data", http.StatusBadRequest)
		return
	}

	confirmation, err := s.bookingService.BookFlight(request)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		writeError(c, s.logger, err)
		return
	}

	c.JSON(http.StatusOK, confirmation)
}
