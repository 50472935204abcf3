// Package measure collects sign-loop telemetry — per-call latency, retry
// counts and the norm quantities the bounds check evaluated — and renders
// the series as an HTML chart page. Everything here observes published
// signature data only; nothing secret crosses into a record.
package measure

import (
	"sync"
)

// Record captures one signing call.
type Record struct {
	SignMS         float64 // wall time of the whole envelope sign
	CoreAttempts   int     // commitment-loop iterations of the accepted try
	EncodeAttempts int     // envelope encode attempts, 1 when the first encoding fits
	HInf           int64   // accepted hint infinity norm
	ZInf           int64   // accepted response infinity norm
	L2Scaled       int64   // accepted joint L2 quantity, 2^-64 units
	SigBytes       int     // encoded signature length before padding
}

// Collector accumulates records. Safe for concurrent use.
type Collector struct {
	mu   sync.Mutex
	recs []Record
}

// Global is the process-wide collector the demo binaries feed.
var Global Collector

// Add appends one record.
func (c *Collector) Add(r Record) {
	c.mu.Lock()
	c.recs = append(c.recs, r)
	c.mu.Unlock()
}

// Snapshot returns a copy of the collected records.
func (c *Collector) Snapshot() []Record {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Record, len(c.recs))
	copy(out, c.recs)
	return out
}

// SnapshotAndReset returns the collected records and clears the collector.
func (c *Collector) SnapshotAndReset() []Record {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := c.recs
	c.recs = nil
	return out
}

// Summary aggregates a record slice.
type Summary struct {
	Calls        int
	MeanMS       float64
	MaxMS        float64
	MeanAttempts float64
	MaxAttempts  int
	MaxHInf      int64
	MaxZInf      int64
}

// Summarize folds records into a Summary.
func Summarize(recs []Record) Summary {
	s := Summary{Calls: len(recs)}
	if len(recs) == 0 {
		return s
	}
	totalMS, totalAtt := 0.0, 0
	for _, r := range recs {
		totalMS += r.SignMS
		att := r.CoreAttempts * r.EncodeAttempts
		totalAtt += att
		if r.SignMS > s.MaxMS {
			s.MaxMS = r.SignMS
		}
		if att > s.MaxAttempts {
			s.MaxAttempts = att
		}
		if r.HInf > s.MaxHInf {
			s.MaxHInf = r.HInf
		}
		if r.ZInf > s.MaxZInf {
			s.MaxZInf = r.ZInf
		}
	}
	s.MeanMS = totalMS / float64(len(recs))
	s.MeanAttempts = float64(totalAtt) / float64(len(recs))
	return s
}
