package lmfcs

import (
	"fmt"
	"strings"
)

// LengthMode selects how the length threshold filters shared substrings.
type LengthMode int

const (
	// AtLeast keeps every maximal shared prefix of length >= n.
	AtLeast LengthMode = iota
	// Exactly keeps every distinct shared substring of length n.
	Exactly
)

func (m LengthMode) String() string {
	switch m {
	case AtLeast:
		return "at-least"
	case Exactly:
		return "exactly"
	default:
		return fmt.Sprintf("LengthMode(%d)", int(m))
	}
}

// ParseLengthMode accepts "at-least" or "exactly".
func ParseLengthMode(s string) (LengthMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "at-least", "atleast", "min":
		return AtLeast, nil
	case "exactly", "exact":
		return Exactly, nil
	}
	return 0, fmt.Errorf("%w: length mode %q", ErrUnknownPolicy, s)
}

// Candidate is a substring shared by both sequences together with its
// overlapping occurrence counts in each of them.
type Candidate struct {
	Text  string
	Freq1 int
	Freq2 int
}

// Total is Freq1 + Freq2.
func (c Candidate) Total() int { return c.Freq1 + c.Freq2 }

func validateLength(length int, mode LengthMode) error {
	if length <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidLength, length)
	}
	if mode != AtLeast && mode != Exactly {
		return fmt.Errorf("%w: unknown length mode %d", ErrInvalidLength, int(mode))
	}
	return nil
}

// FindCommonSubstrings returns the substrings shared by seq1 and seq2 that
// pass the length filter, ranked best first with LengthFrequency.
// An empty sequence yields no candidates.
func FindCommonSubstrings(seq1, seq2 []byte, length int, mode LengthMode) ([]Candidate, error) {
	res, err := NewFinder(seq1, seq2).Length(length, mode).Find()
	if err != nil {
		return nil, err
	}
	return res.Candidates, nil
}

// CommonSubstrings walks adjacent suffix array entries that start in
// different sequences and reports each distinct shared substring once, in
// suffix array order. Counts come from counting.
func (x *Index) CommonSubstrings(length int, mode LengthMode, counting CountMode) ([]Candidate, error) {
	if err := validateLength(length, mode); err != nil {
		return nil, err
	}
	if counting != DirectScan && counting != SuffixIndex {
		return nil, fmt.Errorf("%w: count mode %d", ErrUnknownPolicy, int(counting))
	}

	var cands []Candidate
	seen := make(map[string]struct{})
	for i := 1; i < len(x.sa); i++ {
		a, b := x.sa[i-1], x.sa[i]
		oa, endA := x.origin(a)
		ob, endB := x.origin(b)
		if oa == OriginNone || ob == OriginNone || oa == ob {
			continue
		}
		// Sentinels are unique so the LCP never reaches them, but clip to
		// the source ranges anyway.
		l := min(x.lcp[i], endA-a, endB-b)
		if l < length {
			continue
		}
		// Truncating longer prefixes also reports n-mers that only occur
		// inside longer shared runs.
		if mode == Exactly {
			l = length
		}

		text := string(x.text[b : b+l])
		if _, ok := seen[text]; ok {
			continue
		}
		seen[text] = struct{}{}

		c := Candidate{Text: text}
		switch counting {
		case SuffixIndex:
			c.Freq1, c.Freq2 = x.countAt(i, l)
		default:
			c.Freq1 = CountOverlapping(x.Seq1(), x.text[b:b+l])
			c.Freq2 = CountOverlapping(x.Seq2(), x.text[b:b+l])
		}
		cands = append(cands, c)
	}
	return cands, nil
}
