package lmfcs

import (
	"bytes"
	"sort"

	"github.com/viniciusth/rmq"
)

const (
	// Both sentinels sort below every residue byte. The last byte of the
	// combined text is the smallest one, so the final suffix is always sa[0].
	sentinelFirst  = 0x01
	sentinelSecond = 0x00
)

// Origin tells which input sequence a suffix starts in.
type Origin int8

const (
	// OriginNone marks suffixes that start on a sentinel.
	OriginNone Origin = iota
	OriginFirst
	OriginSecond
)

// Index is a generalized suffix array over two sequences, laid out as
// seq1 + S1 + seq2 + S2.
type Index struct {
	text []byte
	len1 int
	sa   []int
	lcp  []int

	// firstBefore[i] and secondBefore[i] count the suffixes of seq1 and seq2
	// among sa[:i].
	firstBefore  []int
	secondBefore []int

	lcpRMQ *rmq.RMQHybridNaive[int]
}

// NewIndex builds the combined text, its suffix array and its LCP array.
// Both sequences must consist of printable, non-space ASCII residues.
func NewIndex(seq1, seq2 []byte) (*Index, error) {
	if err := validateResidues(seq1); err != nil {
		return nil, err
	}
	if err := validateResidues(seq2); err != nil {
		return nil, err
	}

	text := make([]byte, 0, len(seq1)+len(seq2)+2)
	text = append(text, seq1...)
	text = append(text, sentinelFirst)
	text = append(text, seq2...)
	text = append(text, sentinelSecond)

	sa := BuildSuffixArray(text)
	x := &Index{
		text: text,
		len1: len(seq1),
		sa:   sa,
		lcp:  BuildLCPArray(sa, text),
	}
	x.buildOriginCounts()
	return x, nil
}

func (x *Index) buildOriginCounts() {
	n := len(x.sa)
	x.firstBefore = make([]int, n+1)
	x.secondBefore = make([]int, n+1)
	for i, off := range x.sa {
		x.firstBefore[i+1] = x.firstBefore[i]
		x.secondBefore[i+1] = x.secondBefore[i]
		switch o, _ := x.origin(off); o {
		case OriginFirst:
			x.firstBefore[i+1]++
		case OriginSecond:
			x.secondBefore[i+1]++
		}
	}
}

// Text returns the combined text. It must not be modified.
func (x *Index) Text() []byte { return x.text }

// SuffixArray returns the suffix array of the combined text.
func (x *Index) SuffixArray() []int { return x.sa }

// LCP returns the LCP array of the combined text.
func (x *Index) LCP() []int { return x.lcp }

// Boundary is the offset of the first sentinel, i.e. len(seq1).
func (x *Index) Boundary() int { return x.len1 }

// Seq1 and Seq2 return the source sequences as views into the combined text.
func (x *Index) Seq1() []byte { return x.text[:x.len1] }
func (x *Index) Seq2() []byte { return x.text[x.len1+1 : len(x.text)-1] }

// origin returns the source of the suffix at off and the exclusive end of
// that source's range in the combined text.
func (x *Index) origin(off int) (Origin, int) {
	switch {
	case off < x.len1:
		return OriginFirst, x.len1
	case off == x.len1 || off >= len(x.text)-1:
		return OriginNone, off
	default:
		return OriginSecond, len(x.text) - 1
	}
}

// Origin reports which sequence the suffix at combined offset off starts in.
func (x *Index) Origin(off int) Origin {
	o, _ := x.origin(off)
	return o
}

// Count returns the number of (possibly overlapping) occurrences of pattern
// in seq1 and seq2. Every occurrence is the prefix of exactly one suffix, so
// the answer is the size of the suffix array interval of pattern split by
// origin.
func (x *Index) Count(pattern []byte) (freq1, freq2 int) {
	if len(pattern) == 0 || validateResidues(pattern) != nil {
		return 0, 0
	}
	lo, hi := x.findBoundaries(pattern)
	if lo >= hi {
		return 0, 0
	}
	return x.countRange(lo, hi-1)
}

// findBoundaries returns the half-open suffix array range of suffixes that
// start with pattern.
func (x *Index) findBoundaries(pattern []byte) (int, int) {
	n := len(x.sa)
	cmpPrefix := func(i int) int {
		suffix := x.text[x.sa[i]:]
		if len(suffix) > len(pattern) {
			suffix = suffix[:len(pattern)]
		}
		return bytes.Compare(suffix, pattern)
	}
	lo := sort.Search(n, func(i int) bool { return cmpPrefix(i) >= 0 })
	hi := lo + sort.Search(n-lo, func(i int) bool { return cmpPrefix(lo+i) > 0 })
	return lo, hi
}

// countAt counts the occurrences of the length-byte prefix of the suffix at
// suffix array position pos. The interval of suffixes sharing that prefix is
// the widest range around pos whose LCP values stay >= length; both ends are
// found by binary search over range-minimum queries.
func (x *Index) countAt(pos, length int) (freq1, freq2 int) {
	if x.lcpRMQ == nil {
		x.lcpRMQ = rmq.NewRMQHybridNaive(x.lcp)
	}
	n := len(x.sa)
	lo := sort.Search(pos+1, func(l int) bool {
		return l == pos || x.lcp[x.lcpRMQ.Query(l+1, pos)] >= length
	})
	d := sort.Search(n-pos, func(d int) bool {
		return d > 0 && x.lcp[x.lcpRMQ.Query(pos+1, pos+d)] < length
	})
	return x.countRange(lo, pos+d-1)
}

// countRange counts suffixes of each origin in sa[lo..hi].
func (x *Index) countRange(lo, hi int) (int, int) {
	return x.firstBefore[hi+1] - x.firstBefore[lo], x.secondBefore[hi+1] - x.secondBefore[lo]
}
