package services

import (
	"context"
	"encoding/json"

	"booking-intake-service/domain"
)

// TravelProvider is the slice of the external travel-data API the
// services consume. *amadeus.Client satisfies it; tests inject fakes.
type TravelProvider interface {
	SearchLocations(ctx context.Context, keyword, subType string) ([]domain.Location, error)
	SearchFlightOffers(ctx context.Context, query domain.FlightOffersQuery) (json.RawMessage, error)
	HotelsByCity(ctx context.Context, cityCode string) ([]domain.HotelReference, error)
	HotelOffers(ctx context.Context, hotelIDs []string, checkInDate, checkOutDate string, adults int) (json.RawMessage, error)
}
