package services

import (
	"math/rand"
	"strconv"
	"sync"
	"time"

	"booking-intake-service/domain"

	"github.com/sirupsen/logrus"
)

const (
	bookingIDPrefix = "PNR"
	bookingIDBound  = 1000000
)

// BookingServiceImpl fabricates confirmations. Ids are not unique and
// nothing is persisted or sent to the provider.
type BookingServiceImpl struct {
	rng    *rand.Rand
	mu     sync.Mutex
	logger *logrus.Logger
}

func NewBookingServiceImpl(logger *logrus.Logger) BookingService {
	return &BookingServiceImpl{
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
		logger: logger,
	}
}

func (s *BookingServiceImpl) BookFlight(request domain.FlightBookingRequest) (*domain.BookingConfirmation, error) {
	if len(request.Flight) == 0 || len(request.Passenger) == 0 {
		return nil, &domain.BadRequestError{Message: "Missing flight or passenger data"}
	}

	s.mu.Lock()
	n := s.rng.Intn(bookingIDBound)
	s.mu.Unlock()

	bookingID := bookingIDPrefix + strconv.Itoa(n)
	s.logger.WithFields(logrus.Fields{"path": "services/booking", "bookingId": bookingID}).Info("Booking received")

	return &domain.BookingConfirmation{Success: true, BookingID: bookingID}, nil
}
