package ingest

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/spf13/cast"

	"github.com/AngelCh415/campaign-ranker/internal/models"
	"github.com/AngelCh415/campaign-ranker/internal/ranking"
	"github.com/AngelCh415/campaign-ranker/internal/utils"
)

// HTTPSource fetches a JSON array of record objects. Keys follow the CSV
// headers (or the snake_case metric names); 5xx and transport errors are
// retried with exponential backoff, a 404 is reported as InputNotFoundError.
type HTTPSource struct {
	c       HTTPClient
	url     string
	backoff utils.Backoff
}

func NewHTTPSource(c HTTPClient, url string) *HTTPSource {
	return &HTTPSource{c: c, url: url, backoff: utils.NewBackoff(100*time.Millisecond, 2)}
}

func (s *HTTPSource) Load(ctx context.Context) ([]models.Record, error) {
	var rows []map[string]any
	err := s.backoff.Do(ctx, func(int) error {
		rows = nil
		err := getJSON(ctx, s.c, s.url, &rows)
		var se *statusError
		if errors.As(err, &se) && se.Code < 500 {
			return utils.Permanent(err)
		}
		return err
	})
	if err != nil {
		var se *statusError
		if errors.As(err, &se) && se.Code == http.StatusNotFound {
			return nil, &InputNotFoundError{Source: s.url, Err: err}
		}
		return nil, fmt.Errorf("fetch records: %w", err)
	}
	return decodeRows(rows)
}

func decodeRows(rows []map[string]any) ([]models.Record, error) {
	out := make([]models.Record, 0, len(rows))
	for i, row := range rows {
		var rec models.Record
		seen := make(map[models.Metric]bool, len(models.Catalog))
		for k, v := range row {
			if isIDHeader(k) {
				id, err := cast.ToStringE(v)
				if err != nil {
					return nil, fmt.Errorf("row %d campaign id: %w", i, err)
				}
				rec.CampaignID = strings.TrimSpace(id)
				continue
			}
			m, ok := headerAliases[norm(k)]
			if !ok {
				continue
			}
			f, err := parseCell(v)
			if err != nil {
				return nil, fmt.Errorf("row %d field %q: %w", i, k, err)
			}
			rec.Set(m, f)
			seen[m] = true
		}
		for _, spec := range models.Catalog {
			if !seen[spec.Metric] {
				return nil, ranking.MissingMetricError{Campaign: rec.CampaignID, Metric: spec.Metric}
			}
		}
		out = append(out, rec)
	}
	return out, nil
}
