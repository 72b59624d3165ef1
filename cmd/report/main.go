// Command report ranks the campaigns of a CSV export once, prints the
// ranking tables and writes both score charts as PNG files.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/AngelCh415/campaign-ranker/internal/config"
	"github.com/AngelCh415/campaign-ranker/internal/ingest"
	"github.com/AngelCh415/campaign-ranker/internal/ranking"
	"github.com/AngelCh415/campaign-ranker/internal/render"
)

func main() {
	cfg := config.FromEnv()
	in := flag.String("in", cfg.RecordsCSV, "CSV file with one row per campaign record")
	out := flag.String("out", "", "directory for PNG charts (skipped when empty)")
	n := flag.Int("n", cfg.SelectN, "campaigns to highlight and recommend")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))
	if err := run(context.Background(), *in, *out, *n); err != nil {
		logger.Error("report failed", slog.String("err", err.Error()))
		os.Exit(1)
	}
}

func run(ctx context.Context, in, out string, n int) error {
	if in == "" {
		return fmt.Errorf("no input file: pass -in or set RECORDS_CSV")
	}
	records, err := ingest.NewCSVSource(in).Load(ctx)
	if err != nil {
		return err
	}
	rep, err := ranking.Run(records, n)
	if err != nil {
		return err
	}
	if err := render.Tables(os.Stdout, rep); err != nil {
		return err
	}
	if out == "" {
		return nil
	}
	if err := os.MkdirAll(out, 0o755); err != nil {
		return err
	}
	for name, ch := range map[string]render.ScoreChart{
		"low_performance_score.png": render.LowPerformanceChart(rep),
		"high_cost_score.png":       render.HighCostChart(rep),
	} {
		if err := writePNG(filepath.Join(out, name), ch); err != nil {
			return err
		}
	}
	return nil
}

func writePNG(path string, ch render.ScoreChart) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := render.PNG(f, ch); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
