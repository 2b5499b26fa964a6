package handlers

import (
	"errors"
	"net/http"

	"booking-intake-service/domain"
	error2 "booking-intake-service/error"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// writeError maps the error taxonomy onto HTTP statuses. Upstream
// failures keep the provider's message, delivery failures do not leak
// transport internals.
func writeError(c *gin.Context, logger *logrus.Logger, err error) {
	rw := c.Writer

	var badRequest *domain.BadRequestError
	var upstream *domain.UpstreamError
	var delivery *domain.DeliveryError

	switch {
	case errors.As(err, &badRequest):
		error2.ReturnJSONError(rw, badRequest.Message, http.StatusBadRequest)
	case errors.Is(err, domain.ErrNoHotelsFound()):
		error2.ReturnJSONError(rw, err.Error(), http.StatusNotFound)
	case errors.As(err, &upstream):
		logger.WithFields(logrus.Fields{"path": "handlers"}).Errorf("Upstream call failed: %v", err)
		error2.ReturnJSONError(rw, upstream.Message, http.StatusBadGateway)
	case errors.As(err, &delivery):
		logger.WithFields(logrus.Fields{"path": "handlers"}).Errorf("Delivery failed: %v", err)
		error2.ReturnJSONError(rw, "Failed to send booking emails", http.StatusInternalServerError)
	default:
		logger.WithFields(logrus.Fields{"path": "handlers"}).Errorf("Unexpected error: %v", err)
		error2.ReturnJSONError(rw, "Internal server error", http.StatusInternalServerError)
	}

	c.Abort()
}
