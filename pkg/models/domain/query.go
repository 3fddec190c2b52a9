package domain

type SortOrder string

const (
	SortNewest        SortOrder = "newest"
	SortOldest        SortOrder = "oldest"
	SortMostDangerous SortOrder = "mostDangerous"
)

// DangerRange is an inclusive [Min, Max] filter on the danger level.
type DangerRange struct {
	Min int
	Max int
}

// QueryCriteria is an immutable description of one list-view request.
// A nil DangerRange keeps all reports; an empty Search keeps all reports.
type QueryCriteria struct {
	Search      string
	SortBy      SortOrder
	DangerRange *DangerRange
	Page        int
	PageSize    int
}

type ReportPage struct {
	Items      []Report
	Page       int
	PageSize   int
	TotalPages int
	TotalItems int
}
