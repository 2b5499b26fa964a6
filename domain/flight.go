package domain

import "encoding/json"

const (
	TripTypeOneWay    = "ONEWAY"
	TripTypeRoundTrip = "ROUNDTRIP"

	DefaultTravelClass = "ECONOMY"
)

// FlightOffersQuery is the route search as the client sends it.
// ReturnDate is only forwarded upstream for round trips.
type FlightOffersQuery struct {
	Origin        string `form:"origin" json:"origin"`
	Destination   string `form:"destination" json:"destination"`
	DepartureDate string `form:"date" json:"date"`
	ReturnDate    string `form:"returnDate" json:"returnDate"`
	Adults        int    `form:"adults" json:"adults"`
	TravelClass   string `form:"travelClass" json:"travelClass"`
	TripType      string `form:"tripType" json:"tripType"`
}

// FlightBookingRequest carries opaque booking descriptors. The service
// never validates them against the provider, it only checks presence.
type FlightBookingRequest struct {
	Flight    json.RawMessage `json:"flight" binding:"required"`
	Passenger json.RawMessage `json:"passenger" binding:"required"`
}

type BookingConfirmation struct {
	Success   bool   `json:"success"`
	BookingID string `json:"bookingId"`
}
