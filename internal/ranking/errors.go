package ranking

import (
	"fmt"

	"github.com/AngelCh415/campaign-ranker/internal/models"
)

// EmptyInputError is returned when there are no records to aggregate.
type EmptyInputError struct{}

func (EmptyInputError) Error() string { return "ranking: no records to aggregate" }

// MissingMetricError reports a required metric absent from the input.
// Campaign is empty when the whole column is missing.
type MissingMetricError struct {
	Campaign string
	Metric   models.Metric
}

func (e MissingMetricError) Error() string {
	if e.Campaign == "" {
		return fmt.Sprintf("ranking: missing metric %q", e.Metric)
	}
	return fmt.Sprintf("ranking: campaign %q has no %q rank", e.Campaign, e.Metric)
}

// InvalidNError is returned for a selection count below 1.
type InvalidNError struct{ N int }

func (e InvalidNError) Error() string {
	return fmt.Sprintf("ranking: selection count must be positive, got %d", e.N)
}
