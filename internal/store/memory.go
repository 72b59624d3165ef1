package store

import (
	"sync"
	"time"

	"github.com/AngelCh415/campaign-ranker/internal/ranking"
)

// ReportStore keeps the latest computed report in memory. Reports are never
// mutated after Set; readers get the same pointer until the next run.
type ReportStore struct {
	mu      sync.RWMutex
	latest  *ranking.Report
	updated time.Time
	runs    int
}

func NewReportStore() *ReportStore { return &ReportStore{} }

func (s *ReportStore) Set(r *ranking.Report) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.latest = r
	s.updated = time.Now().UTC()
	s.runs++
}

// Latest returns the current report, or nil before the first run.
func (s *ReportStore) Latest() (*ranking.Report, time.Time) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.latest, s.updated
}

func (s *ReportStore) Runs() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.runs
}
