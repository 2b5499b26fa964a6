package amadeus

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"booking-intake-service/config"
	"booking-intake-service/domain"

	"github.com/patrickmn/go-cache"
	"github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"
)

const (
	tokenCacheKey  = "access_token"
	tokenTTLMargin = 60 * time.Second

	maxFlightOffers = 10
)

// Client talks to the Amadeus self-service REST API. Every endpoint,
// including the token exchange, goes through the same circuit breaker.
type Client struct {
	baseURL        string
	clientID       string
	clientSecret   string
	httpClient     *http.Client
	circuitBreaker *gobreaker.CircuitBreaker
	tokens         *cache.Cache
	logger         *logrus.Logger
}

func NewClient(cfg *config.Config, logger *logrus.Logger) *Client {
	circuitBreaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name: "AmadeusHTTPRequest",
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			logger.WithFields(logrus.Fields{"path": "amadeus/client"}).Warnf("Circuit Breaker state changed from %s to %s", from, to)
		},
	})

	return &Client{
		baseURL:        strings.TrimRight(cfg.AmadeusBaseURL, "/"),
		clientID:       cfg.AmadeusClientID,
		clientSecret:   cfg.AmadeusClientSecret,
		httpClient:     &http.Client{Timeout: 15 * time.Second},
		circuitBreaker: circuitBreaker,
		tokens:         cache.New(cache.NoExpiration, 5*time.Minute),
		logger:         logger,
	}
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
}

// Token returns a cached client-credentials bearer token, exchanging a
// new one when the cache is empty or expired.
func (c *Client) Token(ctx context.Context) (string, error) {
	if token, found := c.tokens.Get(tokenCacheKey); found {
		return token.(string), nil
	}

	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	form.Set("client_id", c.clientID)
	form.Set("client_secret", c.clientSecret)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/security/oauth2/token", strings.NewReader(form.Encode()))
	if err != nil {
		return "", &domain.UpstreamError{Message: err.Error()}
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	body, err := c.do(req)
	if err != nil {
		return "", err
	}

	var tr tokenResponse
	if err := json.Unmarshal(body, &tr); err != nil {
		return "", &domain.UpstreamError{Message: "invalid token response: " + err.Error()}
	}
	if tr.AccessToken == "" {
		return "", &domain.UpstreamError{Message: "token response contained no access token"}
	}

	ttl := time.Duration(tr.ExpiresIn)*time.Second - tokenTTLMargin
	if ttl > 0 {
		c.tokens.Set(tokenCacheKey, tr.AccessToken, ttl)
	}

	return tr.AccessToken, nil
}

// SearchLocations queries the city/airport autocomplete endpoint.
// subType defaults to the combined CITY,AIRPORT search.
func (c *Client) SearchLocations(ctx context.Context, keyword, subType string) ([]domain.Location, error) {
	if subType == "" {
		subType = "CITY,AIRPORT"
	}

	params := url.Values{}
	params.Set("keyword", keyword)
	params.Set("subType", subType)

	body, err := c.authorizedGet(ctx, "/v1/reference-data/locations", params)
	if err != nil {
		return nil, err
	}

	var envelope struct {
		Data []domain.Location `json:"data"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, &domain.UpstreamError{Message: "invalid location response: " + err.Error()}
	}

	return envelope.Data, nil
}

// SearchFlightOffers queries flight offers for a route. The return date
// is only sent upstream for round trips.
func (c *Client) SearchFlightOffers(ctx context.Context, query domain.FlightOffersQuery) (json.RawMessage, error) {
	adults := query.Adults
	if adults <= 0 {
		adults = 1
	}
	travelClass := query.TravelClass
	if travelClass == "" {
		travelClass = domain.DefaultTravelClass
	}

	params := url.Values{}
	params.Set("originLocationCode", query.Origin)
	params.Set("destinationLocationCode", query.Destination)
	params.Set("departureDate", query.DepartureDate)
	params.Set("adults", strconv.Itoa(adults))
	params.Set("travelClass", strings.ToUpper(travelClass))
	params.Set("currencyCode", "USD")
	params.Set("max", strconv.Itoa(maxFlightOffers))
	if query.TripType == domain.TripTypeRoundTrip && query.ReturnDate != "" {
		params.Set("returnDate", query.ReturnDate)
	}

	body, err := c.authorizedGet(ctx, "/v2/shopping/flight-offers", params)
	if err != nil {
		return nil, err
	}

	return dataField(body)
}

// HotelsByCity lists the hotel references the provider knows for a city code.
func (c *Client) HotelsByCity(ctx context.Context, cityCode string) ([]domain.HotelReference, error) {
	params := url.Values{}
	params.Set("cityCode", strings.ToUpper(cityCode))

	body, err := c.authorizedGet(ctx, "/v1/reference-data/locations/hotels/by-city", params)
	if err != nil {
		return nil, err
	}

	var envelope struct {
		Data []domain.HotelReference `json:"data"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, &domain.UpstreamError{Message: "invalid hotel list response: " + err.Error()}
	}

	return envelope.Data, nil
}

// HotelOffers requests offers for the given hotel ids and stay dates.
func (c *Client) HotelOffers(ctx context.Context, hotelIDs []string, checkInDate, checkOutDate string, adults int) (json.RawMessage, error) {
	if adults <= 0 {
		adults = 1
	}

	params := url.Values{}
	params.Set("hotelIds", strings.Join(hotelIDs, ","))
	params.Set("checkInDate", normalizeDate(checkInDate))
	params.Set("checkOutDate", normalizeDate(checkOutDate))
	params.Set("adults", strconv.Itoa(adults))
	params.Set("currencyCode", "USD")

	body, err := c.authorizedGet(ctx, "/v3/shopping/hotel-offers", params)
	if err != nil {
		return nil, err
	}

	return dataField(body)
}

func (c *Client) authorizedGet(ctx context.Context, path string, params url.Values) ([]byte, error) {
	token, err := c.Token(ctx)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return nil, &domain.UpstreamError{Message: err.Error()}
	}
	req.Header.Set("Authorization", "Bearer "+token)

	return c.do(req)
}

func (c *Client) do(req *http.Request) ([]byte, error) {
	result, err := c.circuitBreaker.Execute(func() (interface{}, error) {
		resp, err := c.httpClient.Do(req)
		if err != nil {
			return nil, &domain.UpstreamError{Message: err.Error()}
		}
		defer resp.Body.Close()

		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, &domain.UpstreamError{Message: err.Error()}
		}

		if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
			return nil, &domain.UpstreamError{StatusCode: resp.StatusCode, Message: upstreamMessage(body)}
		}

		return body, nil
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			c.logger.WithFields(logrus.Fields{"path": "amadeus/client"}).Error("Circuit is open, provider unavailable")
			return nil, &domain.UpstreamError{Message: "provider temporarily unavailable"}
		}
		var upstream *domain.UpstreamError
		if errors.As(err, &upstream) {
			return nil, upstream
		}
		return nil, &domain.UpstreamError{Message: err.Error()}
	}

	return result.([]byte), nil
}

// dataField extracts the "data" member of a provider envelope, keeping
// the offers themselves opaque.
func dataField(body []byte) (json.RawMessage, error) {
	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, &domain.UpstreamError{Message: "invalid provider response: " + err.Error()}
	}
	if len(envelope.Data) == 0 {
		return json.RawMessage("[]"), nil
	}
	return envelope.Data, nil
}

// upstreamMessage digs the human-readable message out of the provider's
// error payloads, falling back to the raw body.
func upstreamMessage(body []byte) string {
	var apiErr struct {
		Errors []struct {
			Title  string `json:"title"`
			Detail string `json:"detail"`
		} `json:"errors"`
		ErrorDescription string `json:"error_description"`
	}
	if err := json.Unmarshal(body, &apiErr); err == nil {
		if len(apiErr.Errors) > 0 {
			if apiErr.Errors[0].Detail != "" {
				return apiErr.Errors[0].Detail
			}
			if apiErr.Errors[0].Title != "" {
				return apiErr.Errors[0].Title
			}
		}
		if apiErr.ErrorDescription != "" {
			return apiErr.ErrorDescription
		}
	}

	message := strings.TrimSpace(string(body))
	if len(message) > 256 {
		message = message[:256]
	}
	return message
}

// normalizeDate trims timestamps down to the YYYY-MM-DD the provider expects.
func normalizeDate(value string) string {
	for _, layout := range []string{"2006-01-02", time.RFC3339, "2006-01-02T15:04:05"} {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed.Format("2006-01-02")
		}
	}
	return value
}
