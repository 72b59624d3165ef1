package ranking

import (
	"math"
	"sort"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/AngelCh415/campaign-ranker/internal/models"
)

// accumulator collects the present (non-NaN) values of one campaign.
type accumulator struct {
	records int
	values  map[models.Metric][]float64
}

// Aggregate collapses records into one summary per campaign id, sorted by id.
// Sum metrics skip NaN cells (an all-NaN column sums to 0); mean metrics
// skip them too and stay NaN when no value is present.
func Aggregate(records []models.Record) ([]models.CampaignSummary, error) {
	groups := make(map[string]*accumulator)
	for _, r := range records {
		id := strings.TrimSpace(r.CampaignID)
		if id == "" {
			continue
		}
		acc, ok := groups[id]
		if !ok {
			acc = &accumulator{values: make(map[models.Metric][]float64, len(models.Catalog))}
			groups[id] = acc
		}
		acc.records++
		for _, spec := range models.Catalog {
			v, _ := r.Get(spec.Metric)
			if math.IsNaN(v) {
				continue
			}
			acc.values[spec.Metric] = append(acc.values[spec.Metric], v)
		}
	}
	if len(groups) == 0 {
		return nil, EmptyInputError{}
	}

	ids := make([]string, 0, len(groups))
	for id := range groups {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	out := make([]models.CampaignSummary, 0, len(ids))
	for _, id := range ids {
		acc := groups[id]
		s := models.CampaignSummary{CampaignID: id, Records: acc.records}
		for _, spec := range models.Catalog {
			s.Set(spec.Metric, finalize(spec.Agg, acc.values[spec.Metric]))
		}
		out = append(out, s)
	}
	return out, nil
}

func finalize(agg models.Aggregation, xs []float64) float64 {
	if agg == models.Mean {
		if len(xs) == 0 {
			return math.NaN()
		}
		return stat.Mean(xs, nil)
	}
	return floats.Sum(xs)
}
