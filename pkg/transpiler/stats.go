package transpiler

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/HdrHistogram/hdrhistogram-go"
	log "github.com/sirupsen/logrus"
)

const (
	bucketNum    = 10
	minTokenSize = 1
	maxTokenSize = 1 << 20
)

// Stats aggregates the token size distribution of a run.
type Stats struct {
	mux       sync.RWMutex
	histogram *hdrhistogram.WindowedHistogram
	tokens    uint64
}

func NewStats() *Stats {
	return &Stats{
		histogram: hdrhistogram.NewWindowed(bucketNum, minTokenSize, maxTokenSize, 2),
	}
}

func (s *Stats) Record(tok Token) {
	atomic.AddUint64(&s.tokens, 1)

	s.mux.RLock()
	err := s.histogram.Current.RecordValue(int64(len(tok.Text)))
	s.mux.RUnlock()
	if err != nil {
		log.Errorf("stat token size fail, err:%s", err.Error())
	}
}

func (s *Stats) Tokens() uint64 {
	return atomic.LoadUint64(&s.tokens)
}

func (s *Stats) Report(elapsed time.Duration) {
	s.mux.RLock()
	results := s.histogram.Merge().ValueAtPercentiles([]float64{90, 95, 99})
	s.mux.RUnlock()

	s.mux.Lock()
	s.histogram.Rotate()
	s.mux.Unlock()

	log.Infof("[Stats]tokens:%d,elapsed:%s", atomic.LoadUint64(&s.tokens), elapsed)
	for p, r := range results {
		log.Infof("token.size %.2f%%:%d", p, r)
	}
}
