package handlers_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const hotelBookingJSON = `{
	"name": "Ada Obi",
	"email": "ada@example.com",
	"type": "hotel",
	"itemName": "Palm Resort",
	"checkIn": "2025-07-01",
	"checkOut": "2025-07-05",
	"guests": 2
}`

func TestSendBooking_SendsBothEmails(t *testing.T) {
	sender := &fakeSender{}
	router := newTestRouter(&fakeProvider{}, sender)

	rec := doRequest(router, http.MethodPost, "/api/send-booking", strings.NewReader(hotelBookingJSON))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Booking emails sent successfully!"}`, rec.Body.String())

	require.Len(t, sender.sent, 2)
	assert.Equal(t, "admin@example.com", sender.sent[0].To)
	assert.Equal(t, "ada@example.com", sender.sent[1].To)
}

func TestSendBooking_RootAliasRoute(t *testing.T) {
	sender := &fakeSender{}
	router := newTestRouter(&fakeProvider{}, sender)

	rec := doRequest(router, http.MethodPost, "/send-booking", strings.NewReader(hotelBookingJSON))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, sender.sent, 2)
}

func TestSendBooking_MissingRequiredFields(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing type", `{"name":"Ada Obi","email":"ada@example.com","itemName":"Palm Resort"}`},
		{"missing name", `{"email":"ada@example.com","type":"hotel","itemName":"Palm Resort"}`},
		{"missing itemName", `{"name":"Ada Obi","email":"ada@example.com","type":"hotel"}`},
		{"invalid email", `{"name":"Ada Obi","email":"not-an-email","type":"hotel","itemName":"Palm Resort"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sender := &fakeSender{}
			router := newTestRouter(&fakeProvider{}, sender)

			rec := doRequest(router, http.MethodPost, "/api/send-booking", strings.NewReader(tt.body))

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Empty(t, sender.sent, "nothing may be sent for an invalid booking")
		})
	}
}

func TestSendBooking_DeliveryFailure(t *testing.T) {
	sender := &fakeSender{err: errors.New("smtp connection refused")}
	router := newTestRouter(&fakeProvider{}, sender)

	rec := doRequest(router, http.MethodPost, "/api/send-booking", strings.NewReader(hotelBookingJSON))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"message":"Failed to send booking emails"}`, rec.Body.String())
	assert.NotContains(t, rec.Body.String(), "smtp", "transport internals must not leak")
}

func TestSendBooking_MalformedJSON(t *testing.T) {
	router := newTestRouter(&fakeProvider{}, &fakeSender{})

	rec := doRequest(router, http.MethodPost, "/api/send-booking", strings.NewReader(`{"name":`))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Unable to decode JSON"}`, rec.Body.String())
}

func TestRequestIDHeader(t *testing.T) {
	router := newTestRouter(&fakeProvider{}, &fakeSender{})

	rec := doRequest(router, http.MethodGet, "/api/search?keyword=dub", nil)
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))

	req := httptest.NewRequest(http.MethodGet, "/api/search?keyword=dub", nil)
	req.Header.Set("X-Request-Id", "req-123")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, "req-123", rec.Header().Get("X-Request-Id"), "incoming ids are kept")
}
