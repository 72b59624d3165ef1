package main

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AngelCh415/campaign-ranker/internal/ingest"
)

const csvData = "campaign ID,Reach,Impressions,Frequency,Clicks,Unique Clicks,Unique Link Clicks (ULC)," +
	"Click-Through Rate (CTR),Unique Click-Through Rate (Unique CTR),Cost Per Click (CPC)," +
	"Cost per Result (CPR),Amount Spent in INR\n" +
	"A,900,9000,1.1,90,80,70,1.0,0.9,1.0,2.0,100\n" +
	"B,100,1000,1.0,10,9,8,0.2,0.1,9.0,8.0,900\n" +
	"C,500,5000,1.3,50,45,40,0.6,0.5,4.0,5.0,400\n"

func TestRunWritesCharts(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "records.csv")
	require.NoError(t, os.WriteFile(in, []byte(csvData), 0o644))
	out := filepath.Join(dir, "charts")

	require.NoError(t, run(context.Background(), in, out, 2))
	for _, name := range []string{"low_performance_score.png", "high_cost_score.png"} {
		st, err := os.Stat(filepath.Join(out, name))
		require.NoError(t, err)
		assert.Positive(t, st.Size())
	}
}

func TestRunMissingInput(t *testing.T) {
	err := run(context.Background(), filepath.Join(t.TempDir(), "nope.csv"), "", 2)
	var nf *ingest.InputNotFoundError
	assert.True(t, errors.As(err, &nf), "got %v", err)

	assert.Error(t, run(context.Background(), "", "", 2))
}
