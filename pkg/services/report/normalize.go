package report

import (
	"github.com/NBR-24/PothuHole/pkg/adapters"
	"github.com/NBR-24/PothuHole/pkg/models/domain"
	"github.com/NBR-24/PothuHole/pkg/models/store"
)

// Normalize converts freshly fetched store records into strictly typed
// domain reports. It runs once per bulk read, so Summarize and Query never
// see a malformed record: an empty district becomes "Unknown District" and
// a danger level outside [1, 10] is zero-substituted, contributing nothing
// to danger sums while still being counted.
func Normalize(records []store.ReportRecord) []domain.Report {
	reports := make([]domain.Report, 0, len(records))
	for _, rec := range records {
		r := adapters.MapStoreRecordToDomainReport(rec)
		if r.Location.District == "" {
			r.Location.District = domain.UnknownDistrict
		}
		if r.DangerLevel < domain.MinDangerLevel || r.DangerLevel > domain.MaxDangerLevel {
			r.DangerLevel = 0
		}
		reports = append(reports, r)
	}
	return reports
}
