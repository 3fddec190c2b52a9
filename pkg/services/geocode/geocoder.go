package geocode

import "context"

// Result contains the place details resolved for a coordinate pair.
type Result struct {
	District         string
	FormattedAddress string
	Confidence       float64 // 0.0–1.0 provider confidence score
}

// Geocoder resolves coordinates to a district and formatted address.
// An empty Result with a nil error means the provider found nothing there.
type Geocoder interface {
	ReverseGeocode(ctx context.Context, lat, lng float64) (Result, error)
}
