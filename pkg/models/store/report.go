package store

import "time"

// ReportRecord is the persistence shape of a report. DangerLevel is kept as
// stored; out-of-domain values are normalized on the way into the domain
// layer, not here.
type ReportRecord struct {
	ID               string
	DangerLevel      int
	Description      string
	Lat              float64
	Lng              float64
	District         string
	FormattedAddress string
	ImageData        string
	CreatedAt        time.Time
}
