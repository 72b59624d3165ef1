// Package render turns a ranking report into charts and tables.
package render

import (
	"github.com/AngelCh415/campaign-ranker/internal/models"
	"github.com/AngelCh415/campaign-ranker/internal/ranking"
)

const (
	colorBase     = "#add8e6" // lightblue
	colorLow      = "#ff0000"
	colorHighCost = "#ffa500"
)

// ScoreChart is one labelled bar chart: a bar per campaign in id order,
// with the selected campaigns drawn in Highlight.
type ScoreChart struct {
	Title     string
	YLabel    string
	Labels    []string
	Values    []float64
	Marked    []bool
	Highlight string
}

// LowPerformanceChart plots Low_Performance_Score and marks the report's low performers.
func LowPerformanceChart(r *ranking.Report) ScoreChart {
	return scoreChart(r.Campaigns, r.LowPerformers,
		"Overall Performance Score by Campaign (Highlighted Low Performers)", "Low Performance Score", colorLow,
		func(c models.ScoredCampaign) float64 { return c.LowPerformanceScore })
}

// HighCostChart plots High_Cost_Score and marks the report's most expensive campaigns.
func HighCostChart(r *ranking.Report) ScoreChart {
	return scoreChart(r.Campaigns, r.HighCost,
		"Overall Cost Performance Score by Campaign (Highlighted High Cost)", "High Cost Score", colorHighCost,
		func(c models.ScoredCampaign) float64 { return c.HighCostScore })
}

func scoreChart(all, marked []models.ScoredCampaign, title, ylabel, hl string, value func(models.ScoredCampaign) float64) ScoreChart {
	in := make(map[string]bool, len(marked))
	for _, c := range marked {
		in[c.CampaignID] = true
	}
	ch := ScoreChart{Title: title, YLabel: ylabel, Highlight: hl}
	for _, c := range all {
		ch.Labels = append(ch.Labels, c.CampaignID)
		ch.Values = append(ch.Values, value(c))
		ch.Marked = append(ch.Marked, in[c.CampaignID])
	}
	return ch
}
