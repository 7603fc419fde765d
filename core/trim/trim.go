// core/trim/trim.go

// Package trim locates an amplification primer near the start of each
// read and strips it, together with everything before it.
package trim

import (
	"readprep-core/fastq"
	"readprep-core/match"
)

// Config for one Trimmer.
type Config struct {
	Primer        string
	MaxMismatches int
	// Window bounds the search to the leading region of the read.
	// Zero selects len(Primer)+MaxMismatches+1.
	Window int
	// KeepUnmatched re-emits reads whose best hit exceeds
	// MaxMismatches unmodified instead of dropping them. Either way
	// the failure counter advances.
	KeepUnmatched bool
}

// Stats are the cumulative counters of a single Trimmer.
type Stats struct {
	Successes int
	Failures  int
}

// Trimmer is a lazy transformer over a FASTQ record stream. It is
// single-owner: the counters belong to this instance alone.
type Trimmer struct {
	src    *fastq.Reader
	cfg    Config
	window int
	stats  Stats
}

func New(src *fastq.Reader, cfg Config) *Trimmer {
	w := cfg.Window
	if w <= 0 {
		w = len(cfg.Primer) + cfg.MaxMismatches + 1
	}
	return &Trimmer{src: src, cfg: cfg, window: w}
}

// Next pulls source records until one yields an emittable read.
// Format errors from the source abort immediately; a read without an
// acceptable primer hit is counted and (by default) dropped.
func (t *Trimmer) Next() (fastq.Record, error) {
	for {
		rec, err := t.src.Next()
		if err != nil {
			return fastq.Record{}, err
		}
		off, mm := match.Mismatches(rec.Seq, t.cfg.Primer, t.window)
		if mm > t.cfg.MaxMismatches {
			t.stats.Failures++
			if t.cfg.KeepUnmatched {
				return rec, nil
			}
			continue
		}
		cut := off + len(t.cfg.Primer)
		if cut > len(rec.Seq) {
			cut = len(rec.Seq)
		}
		rec.Seq = rec.Seq[cut:]
		if cut > len(rec.Qual) {
			rec.Qual = ""
		} else {
			rec.Qual = rec.Qual[cut:]
		}
		t.stats.Successes++
		return rec, nil
	}
}

// Stats reports the counters accumulated so far; call after the stream
// is exhausted for final numbers.
func (t *Trimmer) Stats() Stats { return t.stats }
