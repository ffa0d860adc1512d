package lmfcs

import (
	"bytes"
	"fmt"
	"strings"
)

// InclusionPolicy decides which fragment a matched substring belongs to.
// Every policy keeps the matched bytes, so fragments always concatenate back
// to the original sequence.
type InclusionPolicy int

const (
	// GlueFollowing starts a new fragment at every occurrence.
	GlueFollowing InclusionPolicy = iota
	// Standalone emits every occurrence as its own fragment.
	Standalone
	// GluePreceding ends a fragment after every occurrence.
	GluePreceding
)

var inclusionPolicyNames = map[InclusionPolicy]string{
	GlueFollowing: "following",
	Standalone:    "standalone",
	GluePreceding: "preceding",
}

func (p InclusionPolicy) String() string {
	if s, ok := inclusionPolicyNames[p]; ok {
		return s
	}
	return fmt.Sprintf("InclusionPolicy(%d)", int(p))
}

// ParseInclusionPolicy accepts "following", "standalone" or "preceding".
func ParseInclusionPolicy(s string) (InclusionPolicy, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for p, name := range inclusionPolicyNames {
		if name == s {
			return p, nil
		}
	}
	return 0, fmt.Errorf("%w: inclusion policy %q", ErrUnknownPolicy, s)
}

func (p InclusionPolicy) valid() bool {
	_, ok := inclusionPolicyNames[p]
	return ok
}

// Fragment is one piece of a split sequence. Seq aliases the input sequence.
type Fragment struct {
	ID   string
	Part int
	Seq  []byte
}

// Name is the FASTA header of the fragment: the parent ID with a 1-based
// part suffix.
func (f Fragment) Name() string {
	return fmt.Sprintf("%s_part%d", f.ID, f.Part)
}

// SplitSequence cuts seq at the occurrences of substring. With an empty
// substring the whole sequence comes back as a single fragment; an empty
// sequence gives no fragments. An unknown policy panics.
func SplitSequence(seq []byte, id, substring string, policy InclusionPolicy) []Fragment {
	if substring == "" {
		return SplitSequenceAny(seq, id, nil, policy)
	}
	return SplitSequenceAny(seq, id, []string{substring}, policy)
}

// SplitSequenceAny is SplitSequence for several split patterns. At each step
// the leftmost occurrence of any pattern wins, the longest one on ties, and
// the search resumes after it.
//
// policy must be one of the declared policies; use ParseInclusionPolicy for
// user input. An unknown policy panics.
func SplitSequenceAny(seq []byte, id string, patterns []string, policy InclusionPolicy) []Fragment {
	if !policy.valid() {
		panic("lmfcs: unknown inclusion policy " + policy.String())
	}
	if len(seq) == 0 {
		return nil
	}

	var cuts []int
	for _, m := range findMatches(seq, patterns) {
		switch policy {
		case Standalone:
			cuts = appendCut(cuts, m.start, len(seq))
			cuts = appendCut(cuts, m.end, len(seq))
		case GluePreceding:
			cuts = appendCut(cuts, m.end, len(seq))
		default:
			cuts = appendCut(cuts, m.start, len(seq))
		}
	}

	frags := make([]Fragment, 0, len(cuts)+1)
	prev := 0
	for _, c := range append(cuts, len(seq)) {
		frags = append(frags, Fragment{ID: id, Part: len(frags) + 1, Seq: seq[prev:c:c]})
		prev = c
	}
	return frags
}

// appendCut adds an interior cut point, skipping duplicates and the ends.
func appendCut(cuts []int, c, n int) []int {
	if c <= 0 || c >= n || (len(cuts) > 0 && cuts[len(cuts)-1] == c) {
		return cuts
	}
	return append(cuts, c)
}

type span struct{ start, end int }

// cursor tracks the next occurrence of one pattern at or after the current
// search position; next is -1 once the pattern no longer occurs.
type cursor struct {
	pat  []byte
	next int
}

func indexFrom(seq, pat []byte, from int) int {
	j := bytes.Index(seq[from:], pat)
	if j < 0 {
		return -1
	}
	return from + j
}

// findMatches scans seq once per pattern: a pattern is searched again only
// after the search position has moved past its cached occurrence.
func findMatches(seq []byte, patterns []string) []span {
	curs := make([]cursor, 0, len(patterns))
	for _, p := range patterns {
		if p != "" {
			pat := []byte(p)
			curs = append(curs, cursor{pat: pat, next: indexFrom(seq, pat, 0)})
		}
	}

	var matches []span
	for pos := 0; pos < len(seq); {
		best := -1
		for i := range curs {
			c := &curs[i]
			if c.next >= 0 && c.next < pos {
				c.next = indexFrom(seq, c.pat, pos)
			}
			if c.next < 0 {
				continue
			}
			if best < 0 || c.next < curs[best].next ||
				(c.next == curs[best].next && len(c.pat) > len(curs[best].pat)) {
				best = i
			}
		}
		if best < 0 {
			break
		}
		m := span{curs[best].next, curs[best].next + len(curs[best].pat)}
		matches = append(matches, m)
		pos = m.end
	}
	return matches
}
