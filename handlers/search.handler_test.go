package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"booking-intake-service/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchLocations_MissingKeyword(t *testing.T) {
	provider := &fakeProvider{}
	router := newTestRouter(provider, &fakeSender{})

	rec := doRequest(router, http.MethodGet, "/api/search", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Missing keyword"}`, rec.Body.String())
	assert.Zero(t, provider.locationCalls)
}

func TestSearchLocations_ReturnsLocationList(t *testing.T) {
	provider := &fakeProvider{
		locations: []domain.Location{
			{Name: "DUBAI", IataCode: "DXB", SubType: "CITY"},
			{Name: "DUBAI INTL", IataCode: "DXB", SubType: "AIRPORT"},
		},
	}
	router := newTestRouter(provider, &fakeSender{})

	rec := doRequest(router, http.MethodGet, "/api/search?keyword=dub&subType=CITY,AIRPORT", nil)

	assert.Equal(t, http.StatusOK, rec.Code)

	var locations []domain.Location
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &locations))
	require.Len(t, locations, 2)
	assert.Equal(t, "DUBAI", locations[0].Name)
}

func TestSearchLocations_UpstreamFailure(t *testing.T) {
	provider := &fakeProvider{
		locationsErr: &domain.UpstreamError{StatusCode: 500, Message: "SYSTEM ERROR HAS OCCURRED"},
	}
	router := newTestRouter(provider, &fakeSender{})

	rec := doRequest(router, http.MethodGet, "/api/search?keyword=dub", nil)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.JSONEq(t, `{"error":"SYSTEM ERROR HAS OCCURRED"}`, rec.Body.String())
}

func TestSearchFlightOffers_MissingParams(t *testing.T) {
	tests := []struct {
		name   string
		target string
	}{
		{"no params", "/api/flight-offers"},
		{"missing date", "/api/flight-offers?origin=LOS&destination=DXB"},
		{"missing destination", "/api/flight-offers?origin=LOS&date=2025-06-01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := &fakeProvider{}
			router := newTestRouter(provider, &fakeSender{})

			rec := doRequest(router, http.MethodGet, tt.target, nil)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.JSONEq(t, `{"error":"Missing origin, destination, or date"}`, rec.Body.String())
			assert.Zero(t, provider.offerCalls)
		})
	}
}

func TestSearchFlightOffers_ReturnsRawOffers(t *testing.T) {
	raw := `[{"id":"1","price":{"total":"450.00"}}]`
	provider := &fakeProvider{offers: json.RawMessage(raw)}
	router := newTestRouter(provider, &fakeSender{})

	rec := doRequest(router, http.MethodGet, "/api/flight-offers?origin=LOS&destination=DXB&date=2025-06-01", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, raw, rec.Body.String())
	assert.Equal(t, 1, provider.offerCalls)
}
