// core/match/match.go

// Package match implements the fixed-window Hamming-style search shared
// by primer trimming and barcode assignment. Both consumers rely on the
// exact same tie-break and prefix semantics, so neither reimplements
// it.
package match

// MatchPrefix counts position-wise mismatches between pattern and the
// leading bases of seq, compared over the shorter of the two. A pattern
// reaching past the end of seq costs nothing for the overhang.
func MatchPrefix(seq, pattern string) int {
	n := len(pattern)
	if len(seq) < n {
		n = len(seq)
	}
	mm := 0
	for i := 0; i < n; i++ {
		if seq[i] != pattern[i] {
			mm++
		}
	}
	return mm
}

// Mismatches slides pattern over the first window offsets of seq and
// returns the offset with the fewest mismatches together with that
// count. Scanning keeps an offset only on a strictly smaller count, so
// the smallest offset wins every tie. Offsets at or past the end of
// seq compare against an empty suffix.
func Mismatches(seq, pattern string, window int) (offset, mismatches int) {
	offset, mismatches = 0, len(seq)
	for i := 0; i < window; i++ {
		tail := ""
		if i < len(seq) {
			tail = seq[i:]
		}
		if d := MatchPrefix(tail, pattern); d < mismatches {
			offset, mismatches = i, d
		}
	}
	return offset, mismatches
}
