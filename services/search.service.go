package services

import (
	"context"
	"encoding/json"

	"booking-intake-service/domain"
)

type SearchService interface {
	SearchLocations(ctx context.Context, keyword, subType string) ([]domain.Location, error)
	SearchFlightOffers(ctx context.Context, query domain.FlightOffersQuery) (json.RawMessage, error)
}
