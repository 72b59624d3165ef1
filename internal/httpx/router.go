package httpx

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/AngelCh415/campaign-ranker/internal/ranking"
	"github.com/AngelCh415/campaign-ranker/internal/render"
	"github.com/AngelCh415/campaign-ranker/internal/report"
	"github.com/AngelCh415/campaign-ranker/internal/utils"
)

type Options struct {
	ChartAssetsHost string
	Gatherer        prometheus.Gatherer
}

func NewRouter(log *slog.Logger, run *report.Runner, svc *report.Service, o Options) http.Handler {
	mux := chi.NewRouter()
	mux.Use(utils.RequestID)
	mux.Use(utils.Logger(log))

	mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); w.Write([]byte("ok")) })
	mux.Get("/readyz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); w.Write([]byte("ready")) })

	if o.Gatherer != nil {
		mux.Handle("/metrics", promhttp.HandlerFor(o.Gatherer, promhttp.HandlerOpts{}))
	}

	mux.Post("/rank/run", func(w http.ResponseWriter, r *http.Request) {
		rep, err := run.Run(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, map[string]any{"campaigns": len(rep.Campaigns), "n": rep.N})
	})

	list := func(q func(*report.Service, url.Values) ([]report.Row, error)) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			rows, err := q(svc, r.URL.Query())
			if err != nil {
				writeError(w, err)
				return
			}
			writeJSON(w, rows)
		}
	}
	mux.Get("/campaigns", list((*report.Service).Campaigns))
	mux.Get("/rankings/combined", list((*report.Service).Combined))
	mux.Get("/rankings/composite", list((*report.Service).Composite))

	mux.Get("/rankings/{selection}", func(w http.ResponseWriter, r *http.Request) {
		kind := ranking.Selection(chi.URLParam(r, "selection"))
		switch kind {
		case ranking.SelectLowPerformance, ranking.SelectHighCost, ranking.SelectDiscontinue:
		default:
			http.NotFound(w, r)
			return
		}
		rows, err := svc.Select(kind, r.URL.Query())
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, rows)
	})

	chart := func(build func(*ranking.Report) render.ScoreChart) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			rep, err := svc.Report()
			if err != nil {
				writeError(w, err)
				return
			}
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			if err := render.HTML(w, build(rep), o.ChartAssetsHost); err != nil {
				log.Error("chart render", slog.String("err", err.Error()))
			}
		}
	}
	mux.Get("/charts/low-performance", chart(render.LowPerformanceChart))
	mux.Get("/charts/high-cost", chart(render.HighCostChart))

	return mux
}

// writeError maps pipeline error kinds to status codes; source failures are 502.
func writeError(w http.ResponseWriter, err error) {
	var (
		invalid ranking.InvalidNError
		missing ranking.MissingMetricError
		empty   ranking.EmptyInputError
	)
	code := http.StatusBadGateway
	switch {
	case errors.Is(err, report.ErrNoReport):
		code = http.StatusNotFound
	case errors.Is(err, report.ErrBadN), errors.As(err, &invalid):
		code = http.StatusBadRequest
	case errors.As(err, &missing), errors.As(err, &empty):
		code = http.StatusUnprocessableEntity
	}
	http.Error(w, err.Error(), code)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	enc := json.NewEncoder(w)
	enc.SetIndent("", " ")
	enc.Encode(v)
}
