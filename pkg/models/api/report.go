package api

import "time"

type Location struct {
	Lat              float64 `json:"lat"`
	Lng              float64 `json:"lng"`
	District         string  `json:"district"`
	FormattedAddress string  `json:"formatted_address"`
}

type Report struct {
	ID          string    `json:"id"`
	DangerLevel int       `json:"danger_level"`
	Description string    `json:"description,omitempty"`
	Location    Location  `json:"location"`
	ImageData   string    `json:"image_data,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type CreateReportRequest struct {
	DangerLevel int     `json:"danger_level"`
	Description string  `json:"description"`
	Lat         float64 `json:"lat"`
	Lng         float64 `json:"lng"`
	ImageData   string  `json:"image_data"`
}

type CreateReportResponse struct {
	ID string `json:"id"`
}

type ReportPage struct {
	Items      []Report `json:"items"`
	Page       int      `json:"page"`
	PageSize   int      `json:"page_size"`
	TotalPages int      `json:"total_pages"`
	TotalItems int      `json:"total_items"`
}

type DistrictSummary struct {
	District  string  `json:"district"`
	Count     int     `json:"count"`
	AvgDanger float64 `json:"avg_danger"`
}

type Summary struct {
	Leaderboard    []DistrictSummary `json:"leaderboard"`
	TotalReports   int               `json:"total_reports"`
	TotalDistricts int               `json:"total_districts"`
	AvgDangerLevel float64           `json:"avg_danger_level"`
}
