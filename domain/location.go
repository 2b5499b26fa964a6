package domain

// Location is a city or airport record from the provider's
// reference-data autocomplete endpoint.
type Location struct {
	Type         string          `json:"type,omitempty"`
	SubType      string          `json:"subType,omitempty"`
	Name         string          `json:"name"`
	DetailedName string          `json:"detailedName,omitempty"`
	IataCode     string          `json:"iataCode"`
	Address      LocationAddress `json:"address,omitempty"`
}

type LocationAddress struct {
	CityName    string `json:"cityName,omitempty"`
	CityCode    string `json:"cityCode,omitempty"`
	CountryName string `json:"countryName,omitempty"`
	CountryCode string `json:"countryCode,omitempty"`
}
