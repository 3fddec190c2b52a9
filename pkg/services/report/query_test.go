package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NBR-24/PothuHole/pkg/models/domain"
)

func reportAt(id string, dangerLevel int, createdAt time.Time) domain.Report {
	return domain.Report{
		ID:          id,
		DangerLevel: dangerLevel,
		CreatedAt:   createdAt,
	}
}

func testReports() []domain.Report {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	return []domain.Report{
		reportAt("r1", 9, base.Add(1*time.Hour)),
		reportAt("r2", 3, base.Add(2*time.Hour)),
		reportAt("r3", 10, base.Add(3*time.Hour)),
		reportAt("r4", 7, base.Add(4*time.Hour)),
		reportAt("r5", 5, base.Add(5*time.Hour)),
	}
}

func ids(reports []domain.Report) []string {
	out := make([]string, 0, len(reports))
	for _, r := range reports {
		out = append(out, r.ID)
	}
	return out
}

func TestQuery_SortOrders(t *testing.T) {
	reports := testReports()

	tests := []struct {
		name     string
		sortBy   domain.SortOrder
		expected []string
	}{
		{"newest", domain.SortNewest, []string{"r5", "r4", "r3", "r2", "r1"}},
		{"oldest", domain.SortOldest, []string{"r1", "r2", "r3", "r4", "r5"}},
		{"most dangerous", domain.SortMostDangerous, []string{"r3", "r1", "r4", "r5", "r2"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, err := Query(reports, domain.QueryCriteria{
				SortBy:   tt.sortBy,
				Page:     1,
				PageSize: 10,
			})
			require.NoError(t, err)
			assert.Equal(t, tt.expected, ids(page.Items))
		})
	}
}

func TestQuery_MostDangerousTieBreaksOnNewest(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	reports := []domain.Report{
		reportAt("older", 8, base),
		reportAt("newer", 8, base.Add(time.Hour)),
	}

	page, err := Query(reports, domain.QueryCriteria{
		SortBy:   domain.SortMostDangerous,
		Page:     1,
		PageSize: 10,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"newer", "older"}, ids(page.Items))
}

func TestQuery_DangerRangeWithPagination(t *testing.T) {
	reports := testReports() // levels 9, 3, 10, 7, 5

	page, err := Query(reports, domain.QueryCriteria{
		SortBy:      domain.SortMostDangerous,
		DangerRange: &domain.DangerRange{Min: 7, Max: 10},
		Page:        1,
		PageSize:    2,
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"r3", "r1"}, ids(page.Items))
	assert.Equal(t, 2, page.TotalPages)
	assert.Equal(t, 3, page.TotalItems)
}

func TestQuery_SearchIsCaseInsensitiveAcrossFields(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	reports := []domain.Report{
		{ID: "desc", Description: "Huge pothole near the bridge", CreatedAt: base},
		{ID: "district", Location: domain.Location{District: "Kochi"}, CreatedAt: base.Add(time.Hour)},
		{ID: "address", Location: domain.Location{FormattedAddress: "MG Road, Kochi, Kerala"}, CreatedAt: base.Add(2 * time.Hour)},
		{ID: "miss", Description: "cracked pavement", CreatedAt: base.Add(3 * time.Hour)},
	}

	page, err := Query(reports, domain.QueryCriteria{
		Search:   "KOCHI",
		SortBy:   domain.SortOldest,
		Page:     1,
		PageSize: 10,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"district", "address"}, ids(page.Items))
}

func TestQuery_EmptyCriteriaReturnsFullOrderedSequence(t *testing.T) {
	reports := testReports()

	page, err := Query(reports, domain.QueryCriteria{
		SortBy:   domain.SortNewest,
		Page:     1,
		PageSize: len(reports),
	})
	require.NoError(t, err)

	assert.Equal(t, len(reports), page.TotalItems)
	assert.Equal(t, 1, page.TotalPages)
	assert.Equal(t, []string{"r5", "r4", "r3", "r2", "r1"}, ids(page.Items))
}

func TestQuery_PaginationCoversAllItemsExactlyOnce(t *testing.T) {
	reports := testReports()
	pageSize := 2

	first, err := Query(reports, domain.QueryCriteria{SortBy: domain.SortNewest, Page: 1, PageSize: pageSize})
	require.NoError(t, err)
	assert.Equal(t, 3, first.TotalPages)

	var seen []string
	for p := 1; p <= first.TotalPages; p++ {
		page, err := Query(reports, domain.QueryCriteria{SortBy: domain.SortNewest, Page: p, PageSize: pageSize})
		require.NoError(t, err)
		if p < page.TotalPages {
			assert.Len(t, page.Items, pageSize)
		}
		seen = append(seen, ids(page.Items)...)
	}
	assert.Len(t, seen, len(reports))
	assert.ElementsMatch(t, []string{"r1", "r2", "r3", "r4", "r5"}, seen)
}

func TestQuery_PageBeyondRangeIsEmptyNotError(t *testing.T) {
	page, err := Query(testReports(), domain.QueryCriteria{
		SortBy:   domain.SortNewest,
		Page:     99,
		PageSize: 2,
	})
	require.NoError(t, err)
	assert.Empty(t, page.Items)
	assert.Equal(t, 3, page.TotalPages)
}

func TestQuery_NoResultsMeansZeroPages(t *testing.T) {
	page, err := Query(testReports(), domain.QueryCriteria{
		Search:   "no such text",
		SortBy:   domain.SortNewest,
		Page:     1,
		PageSize: 10,
	})
	require.NoError(t, err)
	assert.Empty(t, page.Items)
	assert.Equal(t, 0, page.TotalPages)
	assert.Equal(t, 0, page.TotalItems)
}

func TestQuery_InvalidPaging(t *testing.T) {
	_, err := Query(testReports(), domain.QueryCriteria{SortBy: domain.SortNewest, Page: 0, PageSize: 10})
	assert.Error(t, err)

	_, err = Query(testReports(), domain.QueryCriteria{SortBy: domain.SortNewest, Page: 1, PageSize: 0})
	assert.Error(t, err)
}

func TestQuery_IsIdempotentAndLeavesInputUntouched(t *testing.T) {
	reports := testReports()
	original := ids(reports)

	criteria := domain.QueryCriteria{
		SortBy:      domain.SortMostDangerous,
		DangerRange: &domain.DangerRange{Min: 3, Max: 9},
		Page:        1,
		PageSize:    2,
	}

	first, err := Query(reports, criteria)
	require.NoError(t, err)
	second, err := Query(reports, criteria)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, original, ids(reports))
}
