package ranking

import (
	"math"

	"github.com/AngelCh415/campaign-ranker/internal/models"
)

var (
	engagementMetrics = models.MetricsIn(models.Engagement)
	costMetrics       = models.MetricsIn(models.Cost)
)

// Score sums rank columns into Low_Performance_Score (engagement ranks) and
// High_Cost_Score (cost ranks), adds them into Composite_Score and ranks the
// composite ascending. NaN ranks are skipped by the sums.
func Score(ranked []models.RankedCampaign) ([]models.ScoredCampaign, error) {
	out := make([]models.ScoredCampaign, len(ranked))
	composite := make([]float64, len(ranked))
	for i, rc := range ranked {
		low, err := sumRanks(rc, engagementMetrics)
		if err != nil {
			return nil, err
		}
		high, err := sumRanks(rc, costMetrics)
		if err != nil {
			return nil, err
		}
		out[i] = models.ScoredCampaign{
			RankedCampaign:      rc,
			LowPerformanceScore: low,
			HighCostScore:       high,
			CompositeScore:      low + high,
		}
		composite[i] = low + high
	}
	for i, r := range FractionalRank(composite) {
		out[i].CompositeRank = r
	}
	return out, nil
}

func sumRanks(rc models.RankedCampaign, metrics []models.Metric) (float64, error) {
	var total float64
	for _, m := range metrics {
		r, ok := rc.Ranks[m]
		if !ok {
			return 0, MissingMetricError{Campaign: rc.CampaignID, Metric: m}
		}
		if math.IsNaN(r) {
			continue
		}
		total += r
	}
	return total, nil
}
