package domain

const (
	BookingTypeFlight = "flight"
	BookingTypeHotel  = "hotel"
	BookingTypeTour   = "tour"
	BookingTypeVisa   = "visa"
)

// BookingNotification is the payload of a completed booking form.
// The type-specific fields are only rendered for the matching type.
type BookingNotification struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Type     string `json:"type" validate:"required"`
	ItemName string `json:"itemName" validate:"required"`

	// flight
	Passengers  int    `json:"passengers,omitempty"`
	TravelClass string `json:"travelClass,omitempty"`

	// hotel
	CheckIn  string `json:"checkIn,omitempty"`
	CheckOut string `json:"checkOut,omitempty"`
	Guests   int    `json:"guests,omitempty"`

	// tour
	Travelers       int    `json:"travelers,omitempty"`
	SpecialRequests string `json:"specialRequests,omitempty"`

	// visa
	Country string `json:"country,omitempty"`
}
