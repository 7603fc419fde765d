// core/qual/classify.go
package qual

import "fmt"

// Encoding classifies a quality string.
type Encoding int

const (
	// Ambiguous means every symbol is legal under both alphabets.
	Ambiguous Encoding = iota
	Illumina13
	Illumina18
)

func (e Encoding) String() string {
	switch e {
	case Illumina13:
		return "illumina13"
	case Illumina18:
		return "illumina18"
	default:
		return "ambiguous"
	}
}

// InvalidSymbolError reports a character outside both quality
// alphabets.
type InvalidSymbolError struct {
	Symbol byte
}

func (e *InvalidSymbolError) Error() string {
	return fmt.Sprintf("qual: symbol %q is not a legal quality code", e.Symbol)
}

// MixedEncodingError reports a quality string holding both a
// legacy-only and a modern-only symbol.
type MixedEncodingError struct {
	Quality string
}

func (e *MixedEncodingError) Error() string {
	return fmt.Sprintf("qual: quality line %q mixes Illumina 1.3 and 1.8 codes", e.Quality)
}

// The symbol universe partitions into modern-only ('"'..'@'),
// shared ('A'..'J') and legacy-only ('K'..'h') ranges.
func legacyOnly(c byte) bool { return c > 'J' && c <= 'h' }
func modernOnly(c byte) bool { return c >= '"' && c < 'A' }
func shared(c byte) bool     { return c >= 'A' && c <= 'J' }

// Classify decides which alphabet a quality string was written in.
func Classify(quality string) (Encoding, error) {
	var hasLegacy, hasModern bool
	for i := 0; i < len(quality); i++ {
		c := quality[i]
		switch {
		case shared(c):
		case legacyOnly(c):
			hasLegacy = true
		case modernOnly(c):
			hasModern = true
		default:
			return Ambiguous, &InvalidSymbolError{Symbol: c}
		}
	}
	switch {
	case hasLegacy && hasModern:
		return Ambiguous, &MixedEncodingError{Quality: quality}
	case hasLegacy:
		return Illumina13, nil
	case hasModern:
		return Illumina18, nil
	default:
		return Ambiguous, nil
	}
}

// Combine folds two per-record classifications into one verdict for a
// whole stream. Definitive classifications win over Ambiguous;
// conflicting definitive classifications are a MixedEncodingError.
func Combine(a, b Encoding) (Encoding, error) {
	switch {
	case a == b, b == Ambiguous:
		return a, nil
	case a == Ambiguous:
		return b, nil
	default:
		return Ambiguous, &MixedEncodingError{}
	}
}
