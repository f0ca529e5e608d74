package ranking

import (
	"math"

	"github.com/okian/tierboard/internal/domain/model"
)

// ComputeStats aggregates a ranked slice. The first element is taken as the
// top player; an empty slice yields zero stats with an empty distribution.
// TotalPoints saturates at math.MaxInt64; the average is exact regardless.
func ComputeStats(players []model.Player) model.Stats {
	stats := model.Stats{Distribution: make(map[string]int)}
	if len(players) == 0 {
		return stats
	}

	for _, p := range players {
		stats.TotalPoints = saturatingAdd(stats.TotalPoints, p.Score)
		stats.Distribution[p.Seniority.Level]++
	}
	stats.TotalPlayers = len(players)
	stats.AveragePoints = roundedMean(players)

	top := players[0]
	stats.TopPlayer = &top
	return stats
}

func saturatingAdd(a, b int64) int64 {
	switch {
	case b > 0 && a > math.MaxInt64-b:
		return math.MaxInt64
	case b < 0 && a < math.MinInt64-b:
		return math.MinInt64
	}
	return a + b
}

// roundedMean rounds half up, matching the display of whole points. Scores
// are divided before summing so no intermediate value leaves int64.
func roundedMean(players []model.Player) int64 {
	n := int64(len(players))
	var quot, rem int64
	for _, p := range players {
		quot += p.Score / n
		rem += p.Score % n
		quot, rem = quot+rem/n, rem%n
	}
	if 2*rem >= n {
		quot++
	}
	return quot
}
