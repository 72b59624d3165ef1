package ranking

import (
	"fmt"

	"github.com/AngelCh415/campaign-ranker/internal/models"
)

// Report holds every ordered result set of one run. Slices share their
// campaign values and must be treated as read-only.
type Report struct {
	N             int
	Campaigns     []models.ScoredCampaign // id order
	LowPerformers []models.ScoredCampaign
	HighCost      []models.ScoredCampaign
	Discontinue   []models.ScoredCampaign
	Combined      []models.ScoredCampaign
	ByComposite   []models.ScoredCampaign
}

// Run aggregates, ranks, scores and selects in one pass. Any failure aborts
// the run; no partial report is returned.
func Run(records []models.Record, n int) (*Report, error) {
	if n <= 0 {
		return nil, InvalidNError{N: n}
	}
	summaries, err := Aggregate(records)
	if err != nil {
		return nil, fmt.Errorf("aggregate: %w", err)
	}
	ranked, err := Rank(summaries)
	if err != nil {
		return nil, fmt.Errorf("rank: %w", err)
	}
	scored, err := Score(ranked)
	if err != nil {
		return nil, fmt.Errorf("score: %w", err)
	}

	rep := &Report{N: n, Campaigns: scored}
	if rep.LowPerformers, err = LowestPerformers(scored, n); err != nil {
		return nil, err
	}
	if rep.HighCost, err = HighestCost(scored, n); err != nil {
		return nil, err
	}
	if rep.Discontinue, err = LowestComposite(scored, n); err != nil {
		return nil, err
	}
	rep.Combined = Combined(scored)
	rep.ByComposite = ByComposite(scored)
	return rep, nil
}

// Select reruns one named selection against the report with a different n.
func (r *Report) Select(kind Selection, n int) ([]models.ScoredCampaign, error) {
	switch kind {
	case SelectLowPerformance:
		return LowestPerformers(r.Campaigns, n)
	case SelectHighCost:
		return HighestCost(r.Campaigns, n)
	case SelectDiscontinue:
		return LowestComposite(r.Campaigns, n)
	}
	return nil, fmt.Errorf("ranking: unknown selection %q", kind)
}

// Selection names a top/bottom-N view.
type Selection string

const (
	SelectLowPerformance Selection = "low-performance"
	SelectHighCost       Selection = "high-cost"
	SelectDiscontinue    Selection = "discontinue"
)
