package store

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/AngelCh415/campaign-ranker/internal/ranking"
)

func TestReportStoreSwap(t *testing.T) {
	st := NewReportStore()
	r, at := st.Latest()
	assert.Nil(t, r)
	assert.True(t, at.IsZero())

	first := &ranking.Report{N: 1}
	second := &ranking.Report{N: 2}
	st.Set(first)
	st.Set(second)

	got, at := st.Latest()
	assert.Same(t, second, got)
	assert.False(t, at.IsZero())
	assert.Equal(t, 2, st.Runs())
}

func TestReportStoreConcurrentReaders(t *testing.T) {
	st := NewReportStore()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func(n int) { defer wg.Done(); st.Set(&ranking.Report{N: n}) }(i + 1)
		go func() { defer wg.Done(); st.Latest() }()
	}
	wg.Wait()
	assert.Equal(t, 8, st.Runs())
}
