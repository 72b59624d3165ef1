package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/AngelCh415/campaign-ranker/internal/config"
	"github.com/AngelCh415/campaign-ranker/internal/httpx"
	"github.com/AngelCh415/campaign-ranker/internal/ingest"
	"github.com/AngelCh415/campaign-ranker/internal/metrics"
	"github.com/AngelCh415/campaign-ranker/internal/report"
	"github.com/AngelCh415/campaign-ranker/internal/store"
)

func main() {
	cfg := config.FromEnv()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	var src ingest.Source
	switch {
	case cfg.RecordsURL != "":
		src = ingest.NewHTTPSource(ingest.NewHTTPClient(cfg.HTTPTimeout), cfg.RecordsURL)
	case cfg.RecordsCSV != "":
		src = ingest.NewCSVSource(cfg.RecordsCSV)
	default:
		logger.Error("no record source configured", slog.String("hint", "set RECORDS_CSV or RECORDS_URL"))
		os.Exit(1)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	st := store.NewReportStore()
	run := report.NewRunner(src, st, metrics.NewRecorder(reg), logger, cfg.SelectN)
	svc := report.NewService(st, cfg.SelectN)

	// primer cálculo al arrancar; si falla, queda disponible POST /rank/run
	ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTPTimeout)
	if _, err := run.Run(ctx); err != nil {
		logger.Warn("initial ranking failed", slog.String("err", err.Error()))
	}
	cancel()

	r := httpx.NewRouter(logger, run, svc, httpx.Options{ChartAssetsHost: cfg.ChartAssetsHost, Gatherer: reg})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Info("starting server", slog.String("port", cfg.Port))
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server error", slog.String("err", err.Error()))
		os.Exit(1)
	}
}
