package report

import (
	"math"
	"sort"

	"github.com/NBR-24/PothuHole/pkg/models/domain"
)

// Summarize groups reports by district and ranks the groups by report count,
// tie-broken by average danger. Equal groups keep first-appearance order.
// An empty input yields an empty leaderboard with zeroed totals.
func Summarize(reports []domain.Report) domain.Summary {
	if len(reports) == 0 {
		return domain.Summary{Leaderboard: []domain.DistrictSummary{}}
	}

	type group struct {
		count       int
		dangerTotal int
	}

	groups := make(map[string]*group)
	order := make([]string, 0)
	globalTotal := 0

	for _, r := range reports {
		district := r.Location.District
		if district == "" {
			district = domain.UnknownDistrict
		}
		g, ok := groups[district]
		if !ok {
			g = &group{}
			groups[district] = g
			order = append(order, district)
		}
		g.count++
		g.dangerTotal += r.DangerLevel
		globalTotal += r.DangerLevel
	}

	leaderboard := make([]domain.DistrictSummary, 0, len(order))
	for _, district := range order {
		g := groups[district]
		leaderboard = append(leaderboard, domain.DistrictSummary{
			District:  district,
			Count:     g.count,
			AvgDanger: float64(g.dangerTotal) / float64(g.count),
		})
	}

	sort.SliceStable(leaderboard, func(i, j int) bool {
		if leaderboard[i].Count != leaderboard[j].Count {
			return leaderboard[i].Count > leaderboard[j].Count
		}
		return leaderboard[i].AvgDanger > leaderboard[j].AvgDanger
	})

	return domain.Summary{
		Leaderboard:    leaderboard,
		TotalReports:   len(reports),
		TotalDistricts: len(groups),
		AvgDangerLevel: roundTo1(float64(globalTotal) / float64(len(reports))),
	}
}

func roundTo1(v float64) float64 {
	return math.Round(v*10) / 10
}
