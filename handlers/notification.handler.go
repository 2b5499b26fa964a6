package handlers

import (
	"net/http"

	"booking-intake-service/domain"
	error2 "booking-intake-service/error"
	"booking-intake-service/services"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var validateBookingFields = validator.New()

type NotificationHandler struct {
	notificationService services.NotificationService
	Tracer              trace.Tracer
	logger              *logrus.Logger
}

func NewNotificationHandler(notificationService services.NotificationService, tracer trace.Tracer, logger *logrus.Logger) NotificationHandler {
	return NotificationHandler{notificationService, tracer, logger}
}

// SendBooking triggers the admin and customer emails for a completed
// booking form. The payload is bound by the deserialization middleware.
func (s *NotificationHandler) SendBooking(c *gin.Context) {
	spanCtx, span := s.Tracer.Start(c.Request.Context(), "NotificationHandler.SendBooking")
	defer span.End()

	booking, exists := c.Get("booking")
	if !exists {
		span.SetStatus(codes.Error, "Booking not found in context")
		error2.ReturnJSONError(c.Writer, "Booking not found in context", http.StatusBadRequest)
		return
	}

	notif, ok := booking.(domain.BookingNotification)
	if !ok {
		span.SetStatus(codes.Error, "Invalid type for booking")
		error2.ReturnJSONError(c.Writer, "Invalid type for booking", http.StatusBadRequest)
		return
	}

	if err := validateBookingFields.Struct(notif); err != nil {
		span.SetStatus(codes.Error, "Missing required booking fields")
		error2.ReturnJSONError(c.Writer, "Missing required booking fields: name, email, type and itemName are mandatory", http.StatusBadRequest)
		return
	}

	s.logger.WithFields(logrus.Fields{"path": "handlers/notification", "type": notif.Type, "item": notif.ItemName}).Info("New booking received")

	if err := s.notificationService.SendBookingEmails(spanCtx, &notif); err != nil {
		span.SetStatus(codes.Error, err.Error())
		s.logger.WithFields(logrus.Fields{"path": "handlers/notification"}).Errorf("Email sending error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to send booking emails"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Booking emails sent successfully!"})
}
