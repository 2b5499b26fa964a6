package domain

import "encoding/json"

type HotelSearchRequest struct {
	CityCode     string `form:"cityCode" json:"cityCode"`
	CheckInDate  string `form:"checkInDate" json:"checkInDate"`
	CheckOutDate string `form:"checkOutDate" json:"checkOutDate"`
	Adults       int    `form:"adults" json:"adults"`
}

// HotelReference is one entry of the provider's hotels-by-city listing.
// Only the id is needed downstream, the rest is kept for logging.
type HotelReference struct {
	HotelID  string `json:"hotelId"`
	Name     string `json:"name,omitempty"`
	CityCode string `json:"iataCode,omitempty"`
}

// HotelOffersResponse is the envelope returned to the client,
// wrapping the provider's offer list unchanged.
type HotelOffersResponse struct {
	Data json.RawMessage `json:"data"`
}
