package report

import (
	"math"
	"strconv"

	"github.com/AngelCh415/campaign-ranker/internal/models"
)

// Num is a float that encodes NaN and ±Inf as JSON null.
type Num float64

func (n Num) MarshalJSON() ([]byte, error) {
	f := float64(n)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return []byte("null"), nil
	}
	return strconv.AppendFloat(nil, f, 'f', -1, 64), nil
}

type Row struct {
	CampaignID          string                `json:"campaign_id"`
	Records             int                   `json:"records"`
	Metrics             map[models.Metric]Num `json:"metrics"`
	Ranks               map[models.Metric]Num `json:"ranks"`
	LowPerformanceScore Num                   `json:"low_performance_score"`
	HighCostScore       Num                   `json:"high_cost_score"`
	CompositeScore      Num                   `json:"composite_score"`
	CompositeRank       Num                   `json:"composite_rank"`
}

func toRows(c []models.ScoredCampaign) []Row {
	rows := make([]Row, 0, len(c))
	for _, sc := range c {
		r := Row{
			CampaignID:          sc.CampaignID,
			Records:             sc.Records,
			Metrics:             make(map[models.Metric]Num, len(models.Catalog)),
			Ranks:               make(map[models.Metric]Num, len(sc.Ranks)),
			LowPerformanceScore: Num(sc.LowPerformanceScore),
			HighCostScore:       Num(sc.HighCostScore),
			CompositeScore:      Num(sc.CompositeScore),
			CompositeRank:       Num(sc.CompositeRank),
		}
		for _, spec := range models.Catalog {
			v, _ := sc.Get(spec.Metric)
			r.Metrics[spec.Metric] = Num(v)
		}
		for m, v := range sc.Ranks {
			r.Ranks[m] = Num(v)
		}
		rows = append(rows, r)
	}
	return rows
}
