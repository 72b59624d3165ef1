package report

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/AngelCh415/campaign-ranker/internal/ingest"
	"github.com/AngelCh415/campaign-ranker/internal/metrics"
	"github.com/AngelCh415/campaign-ranker/internal/ranking"
	"github.com/AngelCh415/campaign-ranker/internal/store"
)

// Runner loads the record set, computes a report and publishes it.
type Runner struct {
	src ingest.Source
	st  *store.ReportStore
	rec *metrics.Recorder
	log *slog.Logger
	n   int
}

func NewRunner(src ingest.Source, st *store.ReportStore, rec *metrics.Recorder, log *slog.Logger, n int) *Runner {
	if n <= 0 {
		n = ranking.DefaultN
	}
	return &Runner{src: src, st: st, rec: rec, log: log, n: n}
}

// Run replaces the stored report only when every step succeeds.
func (r *Runner) Run(ctx context.Context) (*ranking.Report, error) {
	start := time.Now()
	records, err := r.src.Load(ctx)
	if err != nil {
		return nil, r.fail(start, fmt.Errorf("load records: %w", err))
	}
	rep, err := ranking.Run(records, r.n)
	if err != nil {
		return nil, r.fail(start, err)
	}
	r.st.Set(rep)
	if r.rec != nil {
		r.rec.Success(start, len(records), len(rep.Campaigns))
	}
	r.log.Info("ranking complete",
		slog.Int("records", len(records)),
		slog.Int("campaigns", len(rep.Campaigns)),
		slog.Duration("took", time.Since(start)))
	return rep, nil
}

func (r *Runner) fail(start time.Time, err error) error {
	if r.rec != nil {
		r.rec.Failure(start)
	}
	r.log.Error("ranking failed", slog.String("err", err.Error()))
	return err
}
