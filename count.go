package lmfcs

import (
	"bytes"
	"fmt"
	"strings"
)

// CountMode selects how candidate frequencies are computed.
type CountMode int

const (
	// DirectScan counts occurrences with a byte scan over each sequence.
	DirectScan CountMode = iota
	// SuffixIndex counts occurrences from the suffix array interval of the
	// candidate, using range-minimum queries over the LCP array.
	SuffixIndex
)

func (m CountMode) String() string {
	switch m {
	case DirectScan:
		return "scan"
	case SuffixIndex:
		return "index"
	default:
		return fmt.Sprintf("CountMode(%d)", int(m))
	}
}

// ParseCountMode accepts "scan" or "index".
func ParseCountMode(s string) (CountMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "scan":
		return DirectScan, nil
	case "index":
		return SuffixIndex, nil
	}
	return 0, fmt.Errorf("%w: count mode %q", ErrUnknownPolicy, s)
}

// CountOverlapping returns the number of occurrences of sub in s, counting
// overlapping ones: "AAA" occurs twice in "AAAA".
func CountOverlapping(s, sub []byte) int {
	if len(sub) == 0 {
		return 0
	}
	n := 0
	for i := 0; i+len(sub) <= len(s); {
		j := bytes.Index(s[i:], sub)
		if j < 0 {
			break
		}
		n++
		i += j + 1
	}
	return n
}
