package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NBR-24/PothuHole/pkg/models/domain"
	"github.com/NBR-24/PothuHole/pkg/models/store"
)

func TestNormalize(t *testing.T) {
	createdAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	records := []store.ReportRecord{
		{
			ID:               "ok",
			DangerLevel:      7,
			Description:      "deep pothole",
			Lat:              9.9312,
			Lng:              76.2673,
			District:         "Kochi",
			FormattedAddress: "MG Road, Kochi",
			CreatedAt:        createdAt,
		},
		{ID: "no-district", DangerLevel: 4, CreatedAt: createdAt},
		{ID: "missing-danger", DangerLevel: 0, District: "Palakkad", CreatedAt: createdAt},
		{ID: "out-of-range", DangerLevel: 42, District: "Palakkad", CreatedAt: createdAt},
	}

	reports := Normalize(records)
	require.Len(t, reports, len(records))

	assert.Equal(t, domain.Report{
		ID:          "ok",
		DangerLevel: 7,
		Description: "deep pothole",
		Location: domain.Location{
			Lat:              9.9312,
			Lng:              76.2673,
			District:         "Kochi",
			FormattedAddress: "MG Road, Kochi",
		},
		CreatedAt: createdAt,
	}, reports[0])

	assert.Equal(t, domain.UnknownDistrict, reports[1].Location.District)
	assert.Equal(t, 0, reports[2].DangerLevel)
	assert.Equal(t, 0, reports[3].DangerLevel)
}

func TestNormalize_EmptyInput(t *testing.T) {
	assert.Empty(t, Normalize(nil))
}
