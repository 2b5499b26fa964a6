package services

import (
	"context"

	"booking-intake-service/domain"
	"booking-intake-service/utils"
)

// EmailSender delivers one rendered message; *utils.SMTPSender satisfies it.
type EmailSender interface {
	Send(data *utils.EmailData) error
}

type NotificationService interface {
	SendBookingEmails(ctx context.Context, booking *domain.BookingNotification) error
}
