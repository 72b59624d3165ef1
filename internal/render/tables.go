package render

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/AngelCh415/campaign-ranker/internal/models"
	"github.com/AngelCh415/campaign-ranker/internal/ranking"
)

type column struct {
	name  string
	value func(models.ScoredCampaign) float64
}

var (
	colLow       = column{"Low_Performance_Score", func(c models.ScoredCampaign) float64 { return c.LowPerformanceScore }}
	colHigh      = column{"High_Cost_Score", func(c models.ScoredCampaign) float64 { return c.HighCostScore }}
	colComposite = column{"Composite_Score", func(c models.ScoredCampaign) float64 { return c.CompositeScore }}
	colRank      = column{"Composite_Rank", func(c models.ScoredCampaign) float64 { return c.CompositeRank }}
)

// Tables prints the combined ranking, the composite ranking and the
// discontinuation candidates, in that order.
func Tables(w io.Writer, r *ranking.Report) error {
	sections := []struct {
		title string
		rows  []models.ScoredCampaign
		cols  []column
	}{
		{"Overall Campaign Ranking:", r.Combined, []column{colLow, colHigh}},
		{"Campaigns Ranked by Combined Low Performance and High Cost Scores:", r.ByComposite, []column{colComposite, colRank}},
		{fmt.Sprintf("Top %d Low-Performing and High-Cost Campaigns:", r.N), r.Discontinue, []column{colComposite}},
	}
	for i, s := range sections {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w, s.title); err != nil {
			return err
		}
		if err := table(w, s.rows, s.cols); err != nil {
			return err
		}
	}
	return nil
}

func table(w io.Writer, rows []models.ScoredCampaign, cols []column) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprint(tw, models.CampaignIDColumn)
	for _, c := range cols {
		fmt.Fprintf(tw, "\t%s", c.name)
	}
	fmt.Fprintln(tw)
	for _, row := range rows {
		fmt.Fprint(tw, row.CampaignID)
		for _, c := range cols {
			fmt.Fprintf(tw, "\t%s", strconv.FormatFloat(c.value(row), 'f', 1, 64))
		}
		fmt.Fprintln(tw)
	}
	return tw.Flush()
}
