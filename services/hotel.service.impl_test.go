package services

import (
	"context"
	"encoding/json"
	"io"
	"testing"

	"booking-intake-service/domain"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
)

type fakeProvider struct {
	locations      []domain.Location
	locationsErr   error
	offers         json.RawMessage
	offersErr      error
	hotels         []domain.HotelReference
	hotelsErr      error
	hotelOffers    json.RawMessage
	hotelOffersErr error

	locationCalls    int
	offerCalls       int
	hotelsByCityArgs []string
	hotelOffersIDs   [][]string
	lastOfferQuery   domain.FlightOffersQuery
}

func (f *fakeProvider) SearchLocations(ctx context.Context, keyword, subType string) ([]domain.Location, error) {
	f.locationCalls++
	return f.locations, f.locationsErr
}

func (f *fakeProvider) SearchFlightOffers(ctx context.Context, query domain.FlightOffersQuery) (json.RawMessage, error) {
	f.offerCalls++
	f.lastOfferQuery = query
	return f.offers, f.offersErr
}

func (f *fakeProvider) HotelsByCity(ctx context.Context, cityCode string) ([]domain.HotelReference, error) {
	f.hotelsByCityArgs = append(f.hotelsByCityArgs, cityCode)
	return f.hotels, f.hotelsErr
}

func (f *fakeProvider) HotelOffers(ctx context.Context, hotelIDs []string, checkInDate, checkOutDate string, adults int) (json.RawMessage, error) {
	f.hotelOffersIDs = append(f.hotelOffersIDs, hotelIDs)
	return f.hotelOffers, f.hotelOffersErr
}

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func newHotelService(provider TravelProvider, limit int) HotelService {
	return NewHotelServiceImpl(provider, limit, otel.Tracer("test"), quietLogger())
}

func validHotelRequest() domain.HotelSearchRequest {
	return domain.HotelSearchRequest{
		CityCode:     "DXB",
		CheckInDate:  "2025-07-01",
		CheckOutDate: "2025-07-05",
		Adults:       2,
	}
}

func TestSearchHotels_MissingFieldsSkipUpstream(t *testing.T) {
	tests := []struct {
		name    string
		request domain.HotelSearchRequest
	}{
		{"missing cityCode", domain.HotelSearchRequest{CheckInDate: "2025-07-01", CheckOutDate: "2025-07-05"}},
		{"missing checkInDate", domain.HotelSearchRequest{CityCode: "DXB", CheckOutDate: "2025-07-05"}},
		{"missing checkOutDate", domain.HotelSearchRequest{CityCode: "DXB", CheckInDate: "2025-07-01"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := &fakeProvider{}
			service := newHotelService(provider, 20)

			_, err := service.SearchHotels(context.Background(), tt.request)

			var badRequest *domain.BadRequestError
			require.ErrorAs(t, err, &badRequest)
			assert.Empty(t, provider.hotelsByCityArgs, "no upstream call may be attempted")
			assert.Empty(t, provider.hotelOffersIDs)
		})
	}
}

func TestSearchHotels_TruncatesIdsInOrder(t *testing.T) {
	provider := &fakeProvider{
		hotels: []domain.HotelReference{
			{HotelID: "H1"}, {HotelID: "H2"}, {HotelID: "H3"}, {HotelID: "H4"},
		},
		hotelOffers: json.RawMessage(`[{"hotel":{"hotelId":"H1"}}]`),
	}
	service := newHotelService(provider, 2)

	_, err := service.SearchHotels(context.Background(), validHotelRequest())
	require.NoError(t, err)

	require.Len(t, provider.hotelOffersIDs, 1)
	assert.Equal(t, []string{"H1", "H2"}, provider.hotelOffersIDs[0], "ids truncated to the cap, original order kept")
}

func TestSearchHotels_FiltersEmptyIds(t *testing.T) {
	provider := &fakeProvider{
		hotels: []domain.HotelReference{
			{HotelID: ""}, {HotelID: "H2"}, {Name: "no id"}, {HotelID: "H4"},
		},
		hotelOffers: json.RawMessage(`[]`),
	}
	service := newHotelService(provider, 20)

	_, err := service.SearchHotels(context.Background(), validHotelRequest())
	require.NoError(t, err)

	require.Len(t, provider.hotelOffersIDs, 1)
	assert.Equal(t, []string{"H2", "H4"}, provider.hotelOffersIDs[0])
}

func TestSearchHotels_NoHotelsIsNotFound(t *testing.T) {
	provider := &fakeProvider{hotels: nil}
	service := newHotelService(provider, 20)

	_, err := service.SearchHotels(context.Background(), validHotelRequest())

	assert.ErrorIs(t, err, domain.ErrNoHotelsFound())
	assert.Empty(t, provider.hotelOffersIDs, "offers must not be requested without ids")
}

func TestSearchHotels_UpstreamErrorsPropagate(t *testing.T) {
	provider := &fakeProvider{hotelsErr: &domain.UpstreamError{StatusCode: 500, Message: "boom"}}
	service := newHotelService(provider, 20)

	_, err := service.SearchHotels(context.Background(), validHotelRequest())

	var upstream *domain.UpstreamError
	require.ErrorAs(t, err, &upstream)
	assert.Equal(t, 500, upstream.StatusCode)
}

func TestSearchHotels_ReturnsOffersUnchanged(t *testing.T) {
	raw := json.RawMessage(`[{"hotel":{"hotelId":"H1"},"offers":[{"price":{"total":"120.00"}}]}]`)
	provider := &fakeProvider{
		hotels:      []domain.HotelReference{{HotelID: "H1"}},
		hotelOffers: raw,
	}
	service := newHotelService(provider, 20)

	offers, err := service.SearchHotels(context.Background(), validHotelRequest())
	require.NoError(t, err)
	assert.JSONEq(t, string(raw), string(offers))
}
