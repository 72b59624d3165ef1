package httpx

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AngelCh415/campaign-ranker/internal/ingest"
	"github.com/AngelCh415/campaign-ranker/internal/metrics"
	"github.com/AngelCh415/campaign-ranker/internal/report"
	"github.com/AngelCh415/campaign-ranker/internal/store"
)

const csvData = "campaign ID,Reach,Impressions,Frequency,Clicks,Unique Clicks,Unique Link Clicks (ULC)," +
	"Click-Through Rate (CTR),Unique Click-Through Rate (Unique CTR),Cost Per Click (CPC)," +
	"Cost per Result (CPR),Amount Spent in INR\n" +
	"C-1,900,9000,1.1,90,80,70,1.0,0.9,1.0,2.0,100\n" +
	"C-2,100,1000,1.0,10,9,8,0.2,0.1,9.0,8.0,900\n" +
	"C-3,500,5000,1.3,50,45,40,0.6,0.5,4.0,5.0,400\n" +
	"C-2,150,1500,1.2,12,11,10,0.3,0.2,7.0,6.0,700\n"

func newServer(t *testing.T, path string) *httptest.Server {
	t.Helper()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	reg := prometheus.NewRegistry()
	st := store.NewReportStore()
	run := report.NewRunner(ingest.NewCSVSource(path), st, metrics.NewRecorder(reg), log, 2)
	srv := httptest.NewServer(NewRouter(log, run, report.NewService(st, 2), Options{Gatherer: reg}))
	t.Cleanup(srv.Close)
	return srv
}

func writeCSV(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "records.csv")
	require.NoError(t, os.WriteFile(path, []byte(csvData), 0o644))
	return path
}

func get(t *testing.T, url string) (int, string) {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(b)
}

func TestRouterFlow(t *testing.T) {
	srv := newServer(t, writeCSV(t))

	code, _ := get(t, srv.URL+"/healthz")
	assert.Equal(t, http.StatusOK, code)

	code, _ = get(t, srv.URL+"/campaigns")
	assert.Equal(t, http.StatusNotFound, code, "no report before the first run")

	resp, err := http.Post(srv.URL+"/rank/run", "", nil)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	code, body := get(t, srv.URL+"/rankings/discontinue?n=1")
	require.Equal(t, http.StatusOK, code)
	var rows []map[string]any
	require.NoError(t, json.Unmarshal([]byte(body), &rows))
	require.Len(t, rows, 1)
	assert.Equal(t, "C-2", rows[0]["campaign_id"])
	assert.Equal(t, 2.0, rows[0]["records"])

	code, body = get(t, srv.URL+"/rankings/combined")
	require.Equal(t, http.StatusOK, code)
	require.NoError(t, json.Unmarshal([]byte(body), &rows))
	assert.Len(t, rows, 3)

	code, _ = get(t, srv.URL+"/rankings/high-cost?n=0")
	assert.Equal(t, http.StatusBadRequest, code)

	code, _ = get(t, srv.URL+"/rankings/nope")
	assert.Equal(t, http.StatusNotFound, code)

	code, body = get(t, srv.URL+"/charts/low-performance")
	assert.Equal(t, http.StatusOK, code)
	assert.Contains(t, body, "C-3")

	code, body = get(t, srv.URL+"/metrics")
	assert.Equal(t, http.StatusOK, code)
	assert.True(t, strings.Contains(body, `campaign_ranker_runs_total{outcome="ok"} 1`), body)
}

func TestRouterRunMissingInput(t *testing.T) {
	srv := newServer(t, filepath.Join(t.TempDir(), "missing.csv"))

	resp, err := http.Post(srv.URL+"/rank/run", "", nil)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
}
