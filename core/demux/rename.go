// core/demux/rename.go
package demux

import (
	"regexp"

	"readprep-core/fastq"
	"readprep-core/match"
)

// BestMatch scans candidates in order and returns the fewest-mismatch
// barcode together with its count. Comparison uses the same
// prefix-overlap rule as primer matching; on a tie the first candidate
// encountered wins.
func BestMatch(barcodes []string, target string) (mismatches int, best string) {
	mismatches = len(target) + 1
	for _, bc := range barcodes {
		if d := match.MatchPrefix(target, bc); d < mismatches {
			mismatches, best = d, bc
		}
	}
	return mismatches, best
}

// Identifier grammar: @<prefix>#<BARCODE>/<READNUM>
var barcodeID = regexp.MustCompile(`^@(.+)#([^#/]+)/(.+)$`)

// Stats are the cumulative counters of a single Renamer.
type Stats struct {
	Successes int
	Failures  int
}

// Renamer is a lazy transformer assigning each read to a sample.
// Reads whose barcode is within MaxMismatches of a table entry are
// re-emitted under "@sample=<name>;<readnum>"; the rest are counted
// and dropped. Identifiers that do not follow the barcode grammar are
// a fatal format error.
type Renamer struct {
	src      *fastq.Reader
	table    *Table
	maxMM    int
	barcodes []string
	stats    Stats
}

func NewRenamer(src *fastq.Reader, table *Table, maxMismatches int) *Renamer {
	return &Renamer{src: src, table: table, maxMM: maxMismatches, barcodes: table.Barcodes()}
}

func (d *Renamer) Next() (fastq.Record, error) {
	for {
		rec, err := d.src.Next()
		if err != nil {
			return fastq.Record{}, err
		}
		m := barcodeID.FindStringSubmatch(rec.ID)
		if m == nil {
			return fastq.Record{}, &fastq.FormatError{ID: rec.ID, Msg: "identifier does not contain a barcode"}
		}
		mm, best := BestMatch(d.barcodes, m[2])
		if mm > d.maxMM {
			d.stats.Failures++
			continue
		}
		sample, _ := d.table.Sample(best)
		rec.ID = "@sample=" + sample + ";" + m[3]
		d.stats.Successes++
		return rec, nil
	}
}

// Stats reports the counters accumulated so far.
func (d *Renamer) Stats() Stats { return d.stats }
