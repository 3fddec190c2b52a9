package domain

import "time"

const (
	// UnknownDistrict groups reports whose district could not be resolved
	// at all (missing or manually cleared).
	UnknownDistrict = "Unknown District"

	// UnknownLocation marks reports whose reverse-geocoding lookup failed
	// at submission time.
	UnknownLocation = "Unknown Location"
)

const (
	MinDangerLevel = 1
	MaxDangerLevel = 10
)

type Location struct {
	Lat              float64
	Lng              float64
	District         string
	FormattedAddress string
}

// Report is one pothole record. Reports are write-once: created by a single
// submission and never updated or deleted afterwards.
type Report struct {
	ID          string
	DangerLevel int
	Description string
	Location    Location
	ImageData   string
	CreatedAt   time.Time
}

// NewReport carries the caller-supplied fields of a submission. ID, district
// and creation time are assigned by the service.
type NewReport struct {
	DangerLevel int
	Description string
	Lat         float64
	Lng         float64
	ImageData   string
}

// DistrictSummary is one leaderboard row, recomputed on every aggregation
// and never persisted.
type DistrictSummary struct {
	District  string
	Count     int
	AvgDanger float64
}

type Summary struct {
	Leaderboard    []DistrictSummary
	TotalReports   int
	TotalDistricts int
	AvgDangerLevel float64
}
