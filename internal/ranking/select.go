package ranking

import (
	"sort"

	"github.com/AngelCh415/campaign-ranker/internal/models"
)

// DefaultN is the number of campaigns each selector returns unless told otherwise.
const DefaultN = 2

// LowestPerformers returns the n campaigns with the lowest Low_Performance_Score.
func LowestPerformers(c []models.ScoredCampaign, n int) ([]models.ScoredCampaign, error) {
	return take(sorted(c, func(a, b models.ScoredCampaign) bool {
		return a.LowPerformanceScore < b.LowPerformanceScore
	}), n)
}

// HighestCost returns the n campaigns with the highest High_Cost_Score.
func HighestCost(c []models.ScoredCampaign, n int) ([]models.ScoredCampaign, error) {
	return take(sorted(c, func(a, b models.ScoredCampaign) bool {
		return a.HighCostScore > b.HighCostScore
	}), n)
}

// LowestComposite returns the n discontinuation candidates: lowest Composite_Score first.
func LowestComposite(c []models.ScoredCampaign, n int) ([]models.ScoredCampaign, error) {
	return take(sorted(c, func(a, b models.ScoredCampaign) bool {
		return a.CompositeScore < b.CompositeScore
	}), n)
}

// ByComposite returns every campaign ordered by Composite_Rank ascending.
// Equal ranks keep their input order.
func ByComposite(c []models.ScoredCampaign) []models.ScoredCampaign {
	return sorted(c, func(a, b models.ScoredCampaign) bool {
		return a.CompositeRank < b.CompositeRank
	})
}

// Combined orders every campaign by Low_Performance_Score ascending, then
// High_Cost_Score descending.
func Combined(c []models.ScoredCampaign) []models.ScoredCampaign {
	return sorted(c, func(a, b models.ScoredCampaign) bool {
		if a.LowPerformanceScore != b.LowPerformanceScore {
			return a.LowPerformanceScore < b.LowPerformanceScore
		}
		return a.HighCostScore > b.HighCostScore
	})
}

// sorted returns a stably sorted copy; c is left untouched.
func sorted(c []models.ScoredCampaign, less func(a, b models.ScoredCampaign) bool) []models.ScoredCampaign {
	out := make([]models.ScoredCampaign, len(c))
	copy(out, c)
	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}

// take clamps n to len(c).
func take(c []models.ScoredCampaign, n int) ([]models.ScoredCampaign, error) {
	if n <= 0 {
		return nil, InvalidNError{N: n}
	}
	if n > len(c) {
		n = len(c)
	}
	return c[:n], nil
}
