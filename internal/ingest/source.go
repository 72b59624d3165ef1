package ingest

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/spf13/cast"

	"github.com/AngelCh415/campaign-ranker/internal/models"
)

// Source yields the raw record set of one run.
type Source interface {
	Load(ctx context.Context) ([]models.Record, error)
}

// InputNotFoundError means the source could not be read at all.
type InputNotFoundError struct {
	Source string
	Err    error
}

func (e *InputNotFoundError) Error() string {
	return fmt.Sprintf("input not found: %s: %v", e.Source, e.Err)
}

func (e *InputNotFoundError) Unwrap() error { return e.Err }

func norm(s string) string { return strings.ToLower(strings.TrimSpace(s)) }

// headerAliases maps every accepted header spelling to its metric: the
// data set column title and the snake_case metric name.
var headerAliases = func() map[string]models.Metric {
	out := make(map[string]models.Metric, 2*len(models.Catalog))
	for _, s := range models.Catalog {
		out[norm(s.Column)] = s.Metric
		out[norm(string(s.Metric))] = s.Metric
	}
	return out
}()

func isIDHeader(h string) bool {
	h = norm(h)
	return h == norm(models.CampaignIDColumn) || h == "campaign_id"
}

// parseCell turns a raw cell into a float; blanks and nulls become NaN.
func parseCell(v any) (float64, error) {
	if v == nil {
		return math.NaN(), nil
	}
	if s, ok := v.(string); ok {
		s = strings.TrimSpace(s)
		if s == "" {
			return math.NaN(), nil
		}
		v = s
	}
	return cast.ToFloat64E(v)
}
