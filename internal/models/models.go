package models

import "math"

// Metric names one numeric column of the campaign data set.
type Metric string

const (
	Reach            Metric = "reach"
	Impressions      Metric = "impressions"
	Frequency        Metric = "frequency"
	Clicks           Metric = "clicks"
	UniqueClicks     Metric = "unique_clicks"
	UniqueLinkClicks Metric = "unique_link_clicks"
	CTR              Metric = "ctr"
	UniqueCTR        Metric = "unique_ctr"
	CPC              Metric = "cpc"
	CPR              Metric = "cpr"
	AmountSpent      Metric = "amount_spent"
)

// CampaignIDColumn is the header of the identifier column.
const CampaignIDColumn = "campaign ID"

// Aggregation is how per-record values collapse into a campaign value.
type Aggregation int

const (
	Sum Aggregation = iota
	Mean
)

// Group is the composite score a metric's rank feeds.
type Group int

const (
	Engagement Group = iota
	Cost
)

type MetricSpec struct {
	Metric Metric
	Column string // cabecera en el archivo fuente
	Agg    Aggregation
	Group  Group
}

// Catalog lists every metric in source column order.
var Catalog = []MetricSpec{
	{Reach, "Reach", Sum, Engagement},
	{Impressions, "Impressions", Sum, Engagement},
	{Frequency, "Frequency", Mean, Engagement},
	{Clicks, "Clicks", Sum, Engagement},
	{UniqueClicks, "Unique Clicks", Sum, Engagement},
	{UniqueLinkClicks, "Unique Link Clicks (ULC)", Sum, Engagement},
	{CTR, "Click-Through Rate (CTR)", Mean, Engagement},
	{UniqueCTR, "Unique Click-Through Rate (Unique CTR)", Mean, Engagement},
	{CPC, "Cost Per Click (CPC)", Mean, Cost},
	{CPR, "Cost per Result (CPR)", Mean, Cost},
	{AmountSpent, "Amount Spent in INR", Sum, Cost},
}

// MetricsIn returns the catalogue metrics belonging to g, in catalogue order.
func MetricsIn(g Group) []Metric {
	var out []Metric
	for _, s := range Catalog {
		if s.Group == g {
			out = append(out, s.Metric)
		}
	}
	return out
}

// Measures holds one value per metric. NaN marks an absent value.
type Measures struct {
	Reach            float64 `json:"reach"`
	Impressions      float64 `json:"impressions"`
	Frequency        float64 `json:"frequency"`
	Clicks           float64 `json:"clicks"`
	UniqueClicks     float64 `json:"unique_clicks"`
	UniqueLinkClicks float64 `json:"unique_link_clicks"`
	CTR              float64 `json:"ctr"`
	UniqueCTR        float64 `json:"unique_ctr"`
	CPC              float64 `json:"cpc"`
	CPR              float64 `json:"cpr"`
	AmountSpent      float64 `json:"amount_spent"`
}

// Get returns the value of m. ok is false for a metric outside the catalogue.
func (ms Measures) Get(m Metric) (v float64, ok bool) {
	p := ms.field(m)
	if p == nil {
		return math.NaN(), false
	}
	return *p, true
}

// Set stores v under m and reports whether m is known.
func (ms *Measures) Set(m Metric, v float64) bool {
	p := ms.field(m)
	if p == nil {
		return false
	}
	*p = v
	return true
}

func (ms *Measures) field(m Metric) *float64 {
	switch m {
	case Reach:
		return &ms.Reach
	case Impressions:
		return &ms.Impressions
	case Frequency:
		return &ms.Frequency
	case Clicks:
		return &ms.Clicks
	case UniqueClicks:
		return &ms.UniqueClicks
	case UniqueLinkClicks:
		return &ms.UniqueLinkClicks
	case CTR:
		return &ms.CTR
	case UniqueCTR:
		return &ms.UniqueCTR
	case CPC:
		return &ms.CPC
	case CPR:
		return &ms.CPR
	case AmountSpent:
		return &ms.AmountSpent
	}
	return nil
}

// Record is one raw observation row.
type Record struct {
	CampaignID string `json:"campaign_id"`
	Measures
}

// CampaignSummary is the per-campaign aggregate of all Records sharing an id.
type CampaignSummary struct {
	CampaignID string `json:"campaign_id"`
	Records    int    `json:"records"`
	Measures
}

// Ranks maps each scored metric to its fractional rank.
type Ranks map[Metric]float64

type RankedCampaign struct {
	CampaignSummary
	Ranks Ranks `json:"ranks"`
}

type ScoredCampaign struct {
	RankedCampaign
	LowPerformanceScore float64 `json:"low_performance_score"`
	HighCostScore       float64 `json:"high_cost_score"`
	CompositeScore      float64 `json:"composite_score"`
	CompositeRank       float64 `json:"composite_rank"`
}
