package services

import (
	"context"
	"encoding/json"

	"booking-intake-service/domain"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

type HotelServiceImpl struct {
	provider   TravelProvider
	offerLimit int
	Tracer     trace.Tracer
	logger     *logrus.Logger
}

func NewHotelServiceImpl(provider TravelProvider, offerLimit int, tracer trace.Tracer, logger *logrus.Logger) HotelService {
	if offerLimit <= 0 {
		offerLimit = 20
	}
	return &HotelServiceImpl{provider, offerLimit, tracer, logger}
}

// SearchHotels hides the provider's multi-step hotel lookup: resolve the
// city to hotel ids, truncate to the configured cap in provider order,
// then fetch offers for the remaining ids.
func (s *HotelServiceImpl) SearchHotels(ctx context.Context, request domain.HotelSearchRequest) (json.RawMessage, error) {
	spanCtx, span := s.Tracer.Start(ctx, "HotelService.SearchHotels")
	defer span.End()

	if request.CityCode == "" || request.CheckInDate == "" || request.CheckOutDate == "" {
		span.SetStatus(codes.Error, "Missing required parameters")
		return nil, &domain.BadRequestError{Message: "Missing required parameters"}
	}

	hotels, err := s.provider.HotelsByCity(spanCtx, request.CityCode)
	if err != nil {
		span.SetStatus(codes.Error, "Failed to list hotels for city")
		return nil, err
	}

	hotelIDs := make([]string, 0, s.offerLimit)
	for _, hotel := range hotels {
		if hotel.HotelID == "" {
			continue
		}
		hotelIDs = append(hotelIDs, hotel.HotelID)
		if len(hotelIDs) == s.offerLimit {
			break
		}
	}

	if len(hotelIDs) == 0 {
		span.SetStatus(codes.Error, "No hotels found for this city")
		return nil, domain.ErrNoHotelsFound()
	}

	offers, err := s.provider.HotelOffers(spanCtx, hotelIDs, request.CheckInDate, request.CheckOutDate, request.Adults)
	if err != nil {
		span.SetStatus(codes.Error, "Failed to fetch hotel offers")
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{"path": "services/hotel", "cityCode": request.CityCode, "hotels": len(hotelIDs)}).Info("Fetched hotel offers")

	return offers, nil
}
