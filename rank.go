package lmfcs

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
)

// RankPolicy orders candidates from best to worst. Every policy ends with
// the substring text, so distinct candidates never tie.
type RankPolicy int

const (
	// LengthFrequency prefers longer substrings, then higher Freq1+Freq2,
	// then balanced ones.
	LengthFrequency RankPolicy = iota
	// TotalFrequency prefers higher Freq1+Freq2, then longer substrings.
	TotalFrequency
	// Balanced prefers substrings that occur equally often in both
	// sequences, then the higher of the two minimums, then longer ones.
	Balanced
)

var rankPolicyNames = map[RankPolicy]string{
	LengthFrequency: "length",
	TotalFrequency:  "frequency",
	Balanced:        "balanced",
}

func (p RankPolicy) String() string {
	if s, ok := rankPolicyNames[p]; ok {
		return s
	}
	return fmt.Sprintf("RankPolicy(%d)", int(p))
}

// ParseRankPolicy accepts "length", "frequency" or "balanced".
func ParseRankPolicy(s string) (RankPolicy, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for p, name := range rankPolicyNames {
		if name == s {
			return p, nil
		}
	}
	return 0, fmt.Errorf("%w: rank policy %q", ErrUnknownPolicy, s)
}

func (p RankPolicy) valid() bool {
	_, ok := rankPolicyNames[p]
	return ok
}

// Compare returns a negative number when a ranks before b.
func (p RankPolicy) Compare(a, b Candidate) int {
	switch p {
	case LengthFrequency:
		return cmp.Or(
			cmp.Compare(len(b.Text), len(a.Text)),
			cmp.Compare(b.Total(), a.Total()),
			compareBalance(a, b),
			strings.Compare(a.Text, b.Text),
		)
	case TotalFrequency:
		return cmp.Or(
			cmp.Compare(b.Total(), a.Total()),
			cmp.Compare(len(b.Text), len(a.Text)),
			strings.Compare(a.Text, b.Text),
		)
	case Balanced:
		return cmp.Or(
			compareBalance(a, b),
			cmp.Compare(len(b.Text), len(a.Text)),
			strings.Compare(a.Text, b.Text),
		)
	}
	panic("lmfcs: unknown rank policy " + p.String())
}

// compareBalance puts equal frequencies first, then the larger minimum
// frequency, then the smaller difference.
func compareBalance(a, b Candidate) int {
	unequal := func(c Candidate) int {
		if c.Freq1 == c.Freq2 {
			return 0
		}
		return 1
	}
	diff := func(c Candidate) int {
		if c.Freq1 > c.Freq2 {
			return c.Freq1 - c.Freq2
		}
		return c.Freq2 - c.Freq1
	}
	return cmp.Or(
		cmp.Compare(unequal(a), unequal(b)),
		cmp.Compare(min(b.Freq1, b.Freq2), min(a.Freq1, a.Freq2)),
		cmp.Compare(diff(a), diff(b)),
	)
}

// RankCandidates returns a copy of cands ordered best first.
//
// policy must be one of the declared policies; use ParseRankPolicy for user
// input. An unknown policy panics, as Compare does.
func RankCandidates(cands []Candidate, policy RankPolicy) []Candidate {
	if !policy.valid() {
		panic("lmfcs: unknown rank policy " + policy.String())
	}
	ranked := slices.Clone(cands)
	slices.SortFunc(ranked, policy.Compare)
	return ranked
}
