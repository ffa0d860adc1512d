package lmfcs

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFinderDefaults(t *testing.T) {
	res, err := NewFinder([]byte("ACGTACGT"), []byte("TACGTA")).Find()
	require.NoError(t, err)
	best, ok := res.Best()
	require.True(t, ok)
	require.Equal(t, Candidate{Text: "ACGTA", Freq1: 1, Freq2: 1}, best)
	require.Equal(t, LengthFrequency, res.Policy)
}

func TestFinderOptions(t *testing.T) {
	seq1, seq2 := []byte("ACGTACGT"), []byte("TACGTA")
	tests := []struct {
		name   string
		finder *Finder
		best   string
	}{
		{"exactly", NewFinder(seq1, seq2).Exactly(4), "ACGT"},
		{"frequency", NewFinder(seq1, seq2).Rank(TotalFrequency), "ACGT"},
		{"balanced", NewFinder(seq1, seq2).Rank(Balanced), "ACGTA"},
		{"index counting", NewFinder(seq1, seq2).Exactly(4).Counting(SuffixIndex), "ACGT"},
		{"short", NewFinder(seq1, seq2).AtLeast(1).Rank(TotalFrequency), "A"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			res, err := tc.finder.Find()
			require.NoError(t, err)
			best, ok := res.Best()
			require.True(t, ok)
			require.Equal(t, tc.best, best.Text)
		})
	}
}

func TestFinderNoCommonSubstring(t *testing.T) {
	res, err := NewFinder([]byte("AAAA"), []byte("CCCC")).AtLeast(1).Find()
	require.NoError(t, err)
	_, ok := res.Best()
	require.False(t, ok)

	frags := res.Split(res.Seq1, "seq1", GlueFollowing)
	require.Equal(t, []Fragment{{ID: "seq1", Part: 1, Seq: []byte("AAAA")}}, frags)
}

func TestFinderEmptySequence(t *testing.T) {
	res, err := NewFinder(nil, []byte("ACGT")).AtLeast(1).Find()
	require.NoError(t, err)
	require.Empty(t, res.Candidates)
	require.Empty(t, res.Split(res.Seq1, "seq1", Standalone))
}

func TestFinderErrors(t *testing.T) {
	seq := []byte("ACGT")
	_, err := NewFinder(seq, seq).AtLeast(0).Find()
	require.ErrorIs(t, err, ErrInvalidLength)
	_, err = NewFinder(seq, seq).Rank(RankPolicy(9)).Find()
	require.ErrorIs(t, err, ErrUnknownPolicy)
	_, err = NewFinder(seq, seq).Counting(CountMode(9)).Find()
	require.ErrorIs(t, err, ErrUnknownPolicy)
	_, err = NewFinder(seq, seq).MaxCombinedLength(9).Find()
	require.ErrorIs(t, err, ErrInputTooLarge)
	_, err = NewFinder(seq, seq).MaxCombinedLength(10).Find()
	require.NoError(t, err)
	_, err = NewFinder([]byte("AC GT"), seq).Find()
	require.ErrorIs(t, err, ErrInvalidResidue)
}

func TestFinderNormalize(t *testing.T) {
	res, err := NewFinder([]byte("acgt\nacgt\n"), []byte("TTACGT")).Normalize().Find()
	require.NoError(t, err)
	require.Equal(t, []byte("ACGTACGT"), res.Seq1)
	best, ok := res.Best()
	require.True(t, ok)
	require.Equal(t, Candidate{Text: "TACGT", Freq1: 1, Freq2: 1}, best)
}

func TestSplitRoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(10))
	for run := 0; run < 30; run++ {
		seq1, seq2 := randomDNA(r, r.Intn(300)), randomDNA(r, r.Intn(300))
		res, err := NewFinder(seq1, seq2).AtLeast(1 + r.Intn(4)).Find()
		require.NoError(t, err)
		for _, p := range []InclusionPolicy{GlueFollowing, Standalone, GluePreceding} {
			for _, seq := range [][]byte{seq1, seq2} {
				frags := res.Split(seq, "s", p)
				require.True(t, bytes.Equal(seq, joinFragments(frags)))
				if best, ok := res.Best(); ok && p == GlueFollowing {
					for _, f := range frags[1:] {
						require.True(t, bytes.HasPrefix(f.Seq, []byte(best.Text)))
					}
				}
			}
		}
	}
}

func BenchmarkFinder(b *testing.B) {
	r := rand.New(rand.NewSource(11))
	seq1, seq2 := randomDNA(r, 1<<14), randomDNA(r, 1<<14)
	for _, mode := range []CountMode{DirectScan, SuffixIndex} {
		b.Run(mode.String(), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if _, err := NewFinder(seq1, seq2).AtLeast(12).Counting(mode).Find(); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
