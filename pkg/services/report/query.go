package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/NBR-24/PothuHole/pkg/models/domain"
)

// Query orders, filters and paginates reports for the list view. The stages
// run in that order so a page always holds a contiguous slice of the fully
// ordered, filtered sequence. Page and PageSize below 1 are contract
// violations and rejected.
func Query(reports []domain.Report, c domain.QueryCriteria) (domain.ReportPage, error) {
	if c.Page < 1 {
		return domain.ReportPage{}, fmt.Errorf("page must be >= 1, got %d", c.Page)
	}
	if c.PageSize < 1 {
		return domain.ReportPage{}, fmt.Errorf("page size must be >= 1, got %d", c.PageSize)
	}

	ordered := make([]domain.Report, len(reports))
	copy(ordered, reports)
	sortReports(ordered, c.SortBy)

	filtered := ordered[:0:len(ordered)]
	for _, r := range ordered {
		if matches(r, c) {
			filtered = append(filtered, r)
		}
	}

	totalPages := (len(filtered) + c.PageSize - 1) / c.PageSize

	start := (c.Page - 1) * c.PageSize
	end := start + c.PageSize
	if start > len(filtered) {
		start = len(filtered)
	}
	if end > len(filtered) {
		end = len(filtered)
	}

	items := make([]domain.Report, end-start)
	copy(items, filtered[start:end])

	return domain.ReportPage{
		Items:      items,
		Page:       c.Page,
		PageSize:   c.PageSize,
		TotalPages: totalPages,
		TotalItems: len(filtered),
	}, nil
}

func sortReports(reports []domain.Report, order domain.SortOrder) {
	switch order {
	case domain.SortOldest:
		sort.SliceStable(reports, func(i, j int) bool {
			return reports[i].CreatedAt.Before(reports[j].CreatedAt)
		})
	case domain.SortMostDangerous:
		sort.SliceStable(reports, func(i, j int) bool {
			if reports[i].DangerLevel != reports[j].DangerLevel {
				return reports[i].DangerLevel > reports[j].DangerLevel
			}
			return reports[i].CreatedAt.After(reports[j].CreatedAt)
		})
	default: // SortNewest
		sort.SliceStable(reports, func(i, j int) bool {
			return reports[i].CreatedAt.After(reports[j].CreatedAt)
		})
	}
}

func matches(r domain.Report, c domain.QueryCriteria) bool {
	if c.DangerRange != nil {
		if r.DangerLevel < c.DangerRange.Min || r.DangerLevel > c.DangerRange.Max {
			return false
		}
	}
	if c.Search == "" {
		return true
	}
	needle := strings.ToLower(c.Search)
	return strings.Contains(strings.ToLower(r.Description), needle) ||
		strings.Contains(strings.ToLower(r.Location.District), needle) ||
		strings.Contains(strings.ToLower(r.Location.FormattedAddress), needle)
}
