package ranking

import (
	"math"
	"sort"
	"sync"

	"github.com/AngelCh415/campaign-ranker/internal/models"
)

// FractionalRank returns the 1-based ascending rank of every value. Tied
// values share the mean of the positions they span; NaN values get a NaN
// rank and do not occupy a position.
func FractionalRank(values []float64) []float64 {
	ranks := make([]float64, len(values))
	idx := make([]int, 0, len(values))
	for i, v := range values {
		if math.IsNaN(v) {
			ranks[i] = math.NaN()
			continue
		}
		idx = append(idx, i)
	}
	sort.SliceStable(idx, func(a, b int) bool { return values[idx[a]] < values[idx[b]] })

	for start := 0; start < len(idx); {
		end := start + 1
		for end < len(idx) && values[idx[end]] == values[idx[start]] {
			end++
		}
		// posiciones start+1..end comparten la media
		avg := float64(start+1+end) / 2
		for _, i := range idx[start:end] {
			ranks[i] = avg
		}
		start = end
	}
	return ranks
}

// Rank attaches a rank column for every catalogue metric. Engagement metrics
// rank the lowest value first; cost metrics are ranked so the highest spend
// carries the highest rank number. Columns are ranked concurrently, each
// goroutine writing only its own slot.
func Rank(summaries []models.CampaignSummary) ([]models.RankedCampaign, error) {
	if len(summaries) == 0 {
		return nil, EmptyInputError{}
	}
	columns := make([][]float64, len(models.Catalog))
	var wg sync.WaitGroup
	for c, spec := range models.Catalog {
		wg.Add(1)
		go func(c int, m models.Metric) {
			defer wg.Done()
			values := make([]float64, len(summaries))
			for i, s := range summaries {
				values[i], _ = s.Get(m)
			}
			columns[c] = FractionalRank(values)
		}(c, spec.Metric)
	}
	wg.Wait()

	out := make([]models.RankedCampaign, len(summaries))
	for i, s := range summaries {
		ranks := make(models.Ranks, len(models.Catalog))
		for c, spec := range models.Catalog {
			ranks[spec.Metric] = columns[c][i]
		}
		out[i] = models.RankedCampaign{CampaignSummary: s, Ranks: ranks}
	}
	return out, nil
}
