package services

import "booking-intake-service/domain"

type BookingService interface {
	BookFlight(request domain.FlightBookingRequest) (*domain.BookingConfirmation, error)
}
