package ingest

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/AngelCh415/campaign-ranker/internal/models"
	"github.com/AngelCh415/campaign-ranker/internal/ranking"
)

// CSVSource reads records from a CSV file whose header carries the
// campaign id column and every catalogue metric column.
type CSVSource struct {
	Path string
}

func NewCSVSource(path string) *CSVSource { return &CSVSource{Path: path} }

func (s *CSVSource) Load(ctx context.Context) ([]models.Record, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, &InputNotFoundError{Source: s.Path, Err: err}
	}
	defer f.Close()
	return ReadCSV(ctx, f)
}

// ReadCSV parses a header row followed by one record per line.
func ReadCSV(ctx context.Context, r io.Reader) ([]models.Record, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ranking.EmptyInputError{}
		}
		return nil, fmt.Errorf("read header: %w", err)
	}

	idCol := -1
	cols := make(map[models.Metric]int, len(models.Catalog))
	for i, h := range header {
		if isIDHeader(h) {
			idCol = i
			continue
		}
		if m, ok := headerAliases[norm(h)]; ok {
			cols[m] = i
		}
	}
	if idCol < 0 {
		return nil, fmt.Errorf("column %q not found", models.CampaignIDColumn)
	}
	for _, spec := range models.Catalog {
		if _, ok := cols[spec.Metric]; !ok {
			return nil, ranking.MissingMetricError{Metric: spec.Metric}
		}
	}

	var out []models.Record
	for line := 2; ; line++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		rec := models.Record{CampaignID: row[idCol]}
		for m, i := range cols {
			v, err := parseCell(row[i])
			if err != nil {
				return nil, fmt.Errorf("line %d column %q: %w", line, header[i], err)
			}
			rec.Set(m, v)
		}
		out = append(out, rec)
	}
	return out, nil
}
