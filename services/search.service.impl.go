package services

import (
	"context"
	"encoding/json"

	"booking-intake-service/domain"
)

type SearchServiceImpl struct {
	provider TravelProvider
}

func NewSearchServiceImpl(provider TravelProvider) SearchService {
	return &SearchServiceImpl{provider}
}

func (s *SearchServiceImpl) SearchLocations(ctx context.Context, keyword, subType string) ([]domain.Location, error) {
	if keyword == "" {
		return nil, &domain.BadRequestError{Message: "Missing keyword"}
	}
	return s.provider.SearchLocations(ctx, keyword, subType)
}

func (s *SearchServiceImpl) SearchFlightOffers(ctx context.Context, query domain.FlightOffersQuery) (json.RawMessage, error) {
	if query.Origin == "" || query.Destination == "" || query.DepartureDate == "" {
		return nil, &domain.BadRequestError{Message: "Missing origin, destination, or date"}
	}
	return s.provider.SearchFlightOffers(ctx, query)
}
