package lmfcs

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewIndexLayout(t *testing.T) {
	idx, err := NewIndex([]byte("ACGTACGT"), []byte("TACGTA"))
	require.NoError(t, err)
	require.Equal(t, []byte("ACGTACGT\x01TACGTA\x00"), idx.Text())
	require.Equal(t, 8, idx.Boundary())
	require.Equal(t, []byte("ACGTACGT"), idx.Seq1())
	require.Equal(t, []byte("TACGTA"), idx.Seq2())
	require.Len(t, idx.SuffixArray(), 16)
	require.Len(t, idx.LCP(), 16)

	require.Equal(t, OriginFirst, idx.Origin(0))
	require.Equal(t, OriginFirst, idx.Origin(7))
	require.Equal(t, OriginNone, idx.Origin(8))
	require.Equal(t, OriginSecond, idx.Origin(9))
	require.Equal(t, OriginSecond, idx.Origin(14))
	require.Equal(t, OriginNone, idx.Origin(15))
}

func TestNewIndexRejectsNonResidues(t *testing.T) {
	for _, bad := range []string{"AC\x00GT", "AC\x01", "ACG T", "ACGT\n", "AC\xffG"} {
		_, err := NewIndex([]byte(bad), []byte("ACGT"))
		require.ErrorIs(t, err, ErrInvalidResidue, "%q", bad)
		_, err = NewIndex([]byte("ACGT"), []byte(bad))
		require.ErrorIs(t, err, ErrInvalidResidue, "%q", bad)
	}
}

func TestIndexEmptySequences(t *testing.T) {
	idx, err := NewIndex(nil, nil)
	require.NoError(t, err)
	require.Equal(t, []int{1, 0}, idx.SuffixArray())
	cands, err := idx.CommonSubstrings(1, AtLeast, SuffixIndex)
	require.NoError(t, err)
	require.Empty(t, cands)
	f1, f2 := idx.Count([]byte("A"))
	require.Zero(t, f1)
	require.Zero(t, f2)
}

func TestIndexCount(t *testing.T) {
	idx, err := NewIndex([]byte("ACGTACGT"), []byte("TACGTA"))
	require.NoError(t, err)

	tests := []struct {
		pattern      string
		freq1, freq2 int
	}{
		{"ACGT", 2, 1},
		{"A", 2, 2},
		{"TA", 1, 2},
		{"GTACGT", 1, 0},
		{"CCC", 0, 0},
		{"", 0, 0},
		{"T\x01T", 0, 0},
	}
	for _, tc := range tests {
		t.Run(tc.pattern, func(t *testing.T) {
			f1, f2 := idx.Count([]byte(tc.pattern))
			require.Equal(t, tc.freq1, f1)
			require.Equal(t, tc.freq2, f2)
		})
	}
}

func TestIndexCountRandom(t *testing.T) {
	r := rand.New(rand.NewSource(8))
	seq1, seq2 := randomDNA(r, 400), randomDNA(r, 250)
	idx, err := NewIndex(seq1, seq2)
	require.NoError(t, err)
	for q := 0; q < 200; q++ {
		pattern := randomDNA(r, 1+r.Intn(6))
		f1, f2 := idx.Count(pattern)
		require.Equal(t, CountOverlapping(seq1, pattern), f1, "%s", pattern)
		require.Equal(t, CountOverlapping(seq2, pattern), f2, "%s", pattern)
	}
}
