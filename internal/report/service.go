package report

import (
	"errors"
	"net/url"
	"strconv"
	"strings"

	"github.com/AngelCh415/campaign-ranker/internal/ranking"
	"github.com/AngelCh415/campaign-ranker/internal/store"
)

// ErrNoReport is returned by every query before the first successful run.
var ErrNoReport = errors.New("no report computed yet")

// ErrBadN reports an unparsable n query parameter.
var ErrBadN = errors.New("n must be an integer")

type Service struct {
	st       *store.ReportStore
	defaultN int
}

func NewService(st *store.ReportStore, defaultN int) *Service {
	if defaultN <= 0 {
		defaultN = ranking.DefaultN
	}
	return &Service{st: st, defaultN: defaultN}
}

func (s *Service) latest() (*ranking.Report, error) {
	r, _ := s.st.Latest()
	if r == nil {
		return nil, ErrNoReport
	}
	return r, nil
}

// Report returns the latest report for renderers.
func (s *Service) Report() (*ranking.Report, error) { return s.latest() }

// Campaigns lists every campaign in id order.
func (s *Service) Campaigns(v url.Values) ([]Row, error) {
	r, err := s.latest()
	if err != nil {
		return nil, err
	}
	return page(toRows(r.Campaigns), v), nil
}

// Combined lists campaigns by Low_Performance_Score asc, High_Cost_Score desc.
func (s *Service) Combined(v url.Values) ([]Row, error) {
	r, err := s.latest()
	if err != nil {
		return nil, err
	}
	return page(toRows(r.Combined), v), nil
}

// Composite lists campaigns by Composite_Rank asc.
func (s *Service) Composite(v url.Values) ([]Row, error) {
	r, err := s.latest()
	if err != nil {
		return nil, err
	}
	return page(toRows(r.ByComposite), v), nil
}

// Select runs a top/bottom-N selection; n defaults to the configured count.
func (s *Service) Select(kind ranking.Selection, v url.Values) ([]Row, error) {
	r, err := s.latest()
	if err != nil {
		return nil, err
	}
	n := s.defaultN
	if q := strings.TrimSpace(v.Get("n")); q != "" {
		if n, err = strconv.Atoi(q); err != nil {
			return nil, ErrBadN
		}
	}
	c, err := r.Select(kind, n)
	if err != nil {
		return nil, err
	}
	return toRows(c), nil
}

func page(rows []Row, v url.Values) []Row {
	limit := atoiDef(v.Get("limit"), 100)
	offset := atoiDef(v.Get("offset"), 0)
	limit, offset = clampLimitOffset(limit, offset, len(rows))
	return paginate(rows, limit, offset)
}

func paginate[T any](rows []T, limit, offset int) []T {
	if offset >= len(rows) {
		return []T{}
	}
	end := offset + limit
	if end > len(rows) {
		end = len(rows)
	}
	return rows[offset:end]
}

func atoiDef(s string, d int) int {
	v, err := strconv.Atoi(s)
	if err != nil {
		return d
	}
	return v
}

func clampLimitOffset(limit, offset, n int) (int, int) {
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 {
		limit = n
	}
	if limit > 1000 {
		limit = 1000
	} // tope sano
	if offset > n {
		offset = n
	}
	return limit, offset
}
