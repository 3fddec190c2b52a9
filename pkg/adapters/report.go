package adapters

import (
	"github.com/NBR-24/PothuHole/pkg/models/api"
	"github.com/NBR-24/PothuHole/pkg/models/domain"
	"github.com/NBR-24/PothuHole/pkg/models/store"
)

func MapDomainReportToStoreRecord(r domain.Report) store.ReportRecord {
	return store.ReportRecord{
		ID:               r.ID,
		DangerLevel:      r.DangerLevel,
		Description:      r.Description,
		Lat:              r.Location.Lat,
		Lng:              r.Location.Lng,
		District:         r.Location.District,
		FormattedAddress: r.Location.FormattedAddress,
		ImageData:        r.ImageData,
		CreatedAt:        r.CreatedAt,
	}
}

func MapStoreRecordToDomainReport(rec store.ReportRecord) domain.Report {
	return domain.Report{
		ID:          rec.ID,
		DangerLevel: rec.DangerLevel,
		Description: rec.Description,
		Location: domain.Location{
			Lat:              rec.Lat,
			Lng:              rec.Lng,
			District:         rec.District,
			FormattedAddress: rec.FormattedAddress,
		},
		ImageData: rec.ImageData,
		CreatedAt: rec.CreatedAt,
	}
}

func MapReportDomainToApi(r domain.Report) api.Report {
	return api.Report{
		ID:          r.ID,
		DangerLevel: r.DangerLevel,
		Description: r.Description,
		Location: api.Location{
			Lat:              r.Location.Lat,
			Lng:              r.Location.Lng,
			District:         r.Location.District,
			FormattedAddress: r.Location.FormattedAddress,
		},
		ImageData: r.ImageData,
		CreatedAt: r.CreatedAt,
	}
}

func MapReportPageDomainToApi(page domain.ReportPage) api.ReportPage {
	apiPage := api.ReportPage{
		Items:      []api.Report{},
		Page:       page.Page,
		PageSize:   page.PageSize,
		TotalPages: page.TotalPages,
		TotalItems: page.TotalItems,
	}
	for _, r := range page.Items {
		apiPage.Items = append(apiPage.Items, MapReportDomainToApi(r))
	}
	return apiPage
}

func MapSummaryDomainToApi(s domain.Summary) api.Summary {
	apiSummary := api.Summary{
		Leaderboard:    []api.DistrictSummary{},
		TotalReports:   s.TotalReports,
		TotalDistricts: s.TotalDistricts,
		AvgDangerLevel: s.AvgDangerLevel,
	}
	for _, d := range s.Leaderboard {
		apiSummary.Leaderboard = append(apiSummary.Leaderboard, api.DistrictSummary{
			District:  d.District,
			Count:     d.Count,
			AvgDanger: d.AvgDanger,
		})
	}
	return apiSummary
}
