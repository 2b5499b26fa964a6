package services

import (
	"context"
	"encoding/json"

	"booking-intake-service/domain"
)

type HotelService interface {
	SearchHotels(ctx context.Context, request domain.HotelSearchRequest) (json.RawMessage, error)
}
