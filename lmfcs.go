// Package lmfcs finds the substrings two sequences share, ranks them, and
// splits each sequence around the best one.
package lmfcs

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidLength  = errors.New("lmfcs: length threshold must be positive")
	ErrInvalidResidue = errors.New("lmfcs: sequence contains a non-residue byte")
	ErrInputTooLarge  = errors.New("lmfcs: combined input exceeds the configured maximum")
	ErrUnknownPolicy  = errors.New("lmfcs: unknown policy")
)

const defaultMinLength = 4

type Finder struct {
	seq1, seq2  []byte
	length      int
	mode        LengthMode
	policy      RankPolicy
	counting    CountMode
	maxCombined int
	normalize   bool
}

// NewFinder returns a finder for substrings of at least 4 residues, ranked by
// LengthFrequency and counted by direct scan.
func NewFinder(seq1, seq2 []byte) *Finder {
	return &Finder{
		seq1:     seq1,
		seq2:     seq2,
		length:   defaultMinLength,
		mode:     AtLeast,
		policy:   LengthFrequency,
		counting: DirectScan,
	}
}

// Keeps shared substrings of length >= n.
func (f *Finder) AtLeast(n int) *Finder {
	return f.Length(n, AtLeast)
}

// Keeps every distinct shared substring of length n.
func (f *Finder) Exactly(n int) *Finder {
	return f.Length(n, Exactly)
}

func (f *Finder) Length(n int, mode LengthMode) *Finder {
	f.length = n
	f.mode = mode
	return f
}

func (f *Finder) Rank(policy RankPolicy) *Finder {
	f.policy = policy
	return f
}

// Counting switches how frequencies are computed. SuffixIndex builds a
// range-minimum structure over the LCP array: O(n) extra memory, but each
// count is O(log n) instead of a scan over both sequences.
func (f *Finder) Counting(mode CountMode) *Finder {
	f.counting = mode
	return f
}

// Rejects inputs whose combined text (both sequences plus two sentinels) is
// longer than n. Zero disables the check.
func (f *Finder) MaxCombinedLength(n int) *Finder {
	f.maxCombined = n
	return f
}

// Normalizes both sequences with NormalizeResidues before indexing.
func (f *Finder) Normalize() *Finder {
	f.normalize = true
	return f
}

func (f *Finder) Find() (*Result, error) {
	if err := validateLength(f.length, f.mode); err != nil {
		return nil, err
	}
	if !f.policy.valid() {
		return nil, fmt.Errorf("%w: rank policy %d", ErrUnknownPolicy, int(f.policy))
	}
	if f.counting != DirectScan && f.counting != SuffixIndex {
		return nil, fmt.Errorf("%w: count mode %d", ErrUnknownPolicy, int(f.counting))
	}

	seq1, seq2 := f.seq1, f.seq2
	if f.normalize {
		var err error
		if seq1, err = NormalizeResidues(seq1); err != nil {
			return nil, fmt.Errorf("seq1: %w", err)
		}
		if seq2, err = NormalizeResidues(seq2); err != nil {
			return nil, fmt.Errorf("seq2: %w", err)
		}
	}
	if combined := len(seq1) + len(seq2) + 2; f.maxCombined > 0 && combined > f.maxCombined {
		return nil, fmt.Errorf("%w: %d > %d", ErrInputTooLarge, combined, f.maxCombined)
	}

	res := &Result{Seq1: seq1, Seq2: seq2, Policy: f.policy}
	if len(seq1) == 0 || len(seq2) == 0 {
		return res, nil
	}

	idx, err := NewIndex(seq1, seq2)
	if err != nil {
		return nil, err
	}
	cands, err := idx.CommonSubstrings(f.length, f.mode, f.counting)
	if err != nil {
		return nil, err
	}
	res.Candidates = RankCandidates(cands, f.policy)
	return res, nil
}

// Result holds the ranked candidates of one query and the sequences they
// were computed on.
type Result struct {
	Seq1, Seq2 []byte
	Policy     RankPolicy
	Candidates []Candidate
}

// Best returns the top ranked candidate, or false when the sequences share
// nothing that passed the length filter.
func (r *Result) Best() (Candidate, bool) {
	if len(r.Candidates) == 0 {
		return Candidate{}, false
	}
	return r.Candidates[0], true
}

// Split cuts seq at the best candidate. Without a candidate it returns seq
// as one fragment.
func (r *Result) Split(seq []byte, id string, policy InclusionPolicy) []Fragment {
	best, _ := r.Best()
	return SplitSequence(seq, id, best.Text, policy)
}
