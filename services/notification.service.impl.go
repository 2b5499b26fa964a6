package services

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"strings"

	"booking-intake-service/config"
	"booking-intake-service/domain"
	"booking-intake-service/utils"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var adminEmailTemplate = template.Must(template.New("admin").Parse(`<h2>New Booking Details</h2>
<p><b>Name:</b> {{.Name}}</p>
<p><b>Email:</b> {{.Email}}</p>
<p><b>Type:</b> {{.Type}}</p>
<p><b>Item:</b> {{.ItemName}}</p>
{{if eq .Type "flight"}}<p><b>Passengers:</b> {{.Passengers}}</p>
<p><b>Class:</b> {{.TravelClass}}</p>
{{end}}{{if eq .Type "hotel"}}<p><b>Check-in:</b> {{.CheckIn}}</p>
<p><b>Check-out:</b> {{.CheckOut}}</p>
<p><b>Guests:</b> {{.Guests}}</p>
{{end}}{{if eq .Type "tour"}}<p><b>Travelers:</b> {{.Travelers}}</p>
<p><b>Special Requests:</b> {{.SpecialRequests}}</p>
{{end}}{{if eq .Type "visa"}}<p><b>Country:</b> {{.Country}}</p>
{{end}}<hr/>
<p style="color:gray;">Sent automatically from the booking intake service.</p>`))

var customerEmailTemplate = template.Must(template.New("customer").Parse(`<h2>Dear {{.Name}},</h2>
<p>Thank you for booking your {{.Type}} with us!</p>
<p>We have received your booking for <b>{{.ItemName}}</b>.</p>
<p>Our team will contact you shortly with more details.</p>
<br/>
<p><b>Booking Summary:</b></p>
<ul>
<li>Type: {{.Type}}</li>
<li>Item: {{.ItemName}}</li>
{{if eq .Type "flight"}}<li>Passengers: {{.Passengers}}</li>
<li>Class: {{.TravelClass}}</li>
{{end}}{{if eq .Type "hotel"}}<li>Check-in: {{.CheckIn}}</li>
<li>Check-out: {{.CheckOut}}</li>
<li>Guests: {{.Guests}}</li>
{{end}}{{if eq .Type "tour"}}<li>Travelers: {{.Travelers}}</li>
<li>Special Requests: {{.SpecialRequests}}</li>
{{end}}{{if eq .Type "visa"}}<li>Country: {{.Country}}</li>
{{end}}</ul>
<p>We appreciate your trust in us.</p>
<p>Warm regards,</p>
<p><b>The Travel Team</b></p>`))

type NotificationServiceImpl struct {
	sender  EmailSender
	adminTo string
	Tracer  trace.Tracer
	logger  *logrus.Logger
}

func NewNotificationServiceImpl(sender EmailSender, cfg *config.Config, tracer trace.Tracer, logger *logrus.Logger) NotificationService {
	adminTo := cfg.EmailReceiver
	if adminTo == "" {
		adminTo = cfg.EmailFrom
	}
	return &NotificationServiceImpl{sender, adminTo, tracer, logger}
}

// SendBookingEmails sends the admin notification first and the customer
// confirmation only after it succeeds. Any failure is a delivery error.
func (s *NotificationServiceImpl) SendBookingEmails(ctx context.Context, booking *domain.BookingNotification) error {
	_, span := s.Tracer.Start(ctx, "NotificationService.SendBookingEmails")
	defer span.End()

	if booking.Name == "" || booking.Email == "" || booking.Type == "" || booking.ItemName == "" {
		span.SetStatus(codes.Error, "Missing required booking fields")
		return &domain.BadRequestError{Message: "Missing required booking fields"}
	}

	adminHTML, err := renderEmail(adminEmailTemplate, booking)
	if err != nil {
		span.SetStatus(codes.Error, "Failed to render admin email")
		return &domain.DeliveryError{Err: err}
	}

	adminSubject := fmt.Sprintf("New %s Booking from %s", strings.ToUpper(booking.Type), booking.Name)
	if err := s.sender.Send(&utils.EmailData{To: s.adminTo, Subject: adminSubject, HTML: adminHTML}); err != nil {
		span.SetStatus(codes.Error, "Failed to send admin email")
		s.logger.WithFields(logrus.Fields{"path": "services/notification"}).Errorf("Error sending admin email: %v", err)
		return &domain.DeliveryError{Err: err}
	}

	customerHTML, err := renderEmail(customerEmailTemplate, booking)
	if err != nil {
		span.SetStatus(codes.Error, "Failed to render customer email")
		return &domain.DeliveryError{Err: err}
	}

	if err := s.sender.Send(&utils.EmailData{To: booking.Email, Subject: "Booking Confirmation", HTML: customerHTML}); err != nil {
		span.SetStatus(codes.Error, "Failed to send customer email")
		s.logger.WithFields(logrus.Fields{"path": "services/notification"}).Errorf("Error sending customer email: %v", err)
		return &domain.DeliveryError{Err: err}
	}

	s.logger.WithFields(logrus.Fields{"path": "services/notification", "type": booking.Type}).Info("Booking and confirmation emails sent")

	return nil
}

func renderEmail(tmpl *template.Template, booking *domain.BookingNotification) (string, error) {
	var body bytes.Buffer
	if err := tmpl.Execute(&body, booking); err != nil {
		return "", err
	}
	return body.String(), nil
}
