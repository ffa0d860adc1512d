package report

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/viniciusth/lmfcs"
)

func TestWriteCandidates(t *testing.T) {
	cands := []lmfcs.Candidate{
		{Text: "ACGTA", Freq1: 1, Freq2: 1},
		{Text: "ACGT", Freq1: 2, Freq2: 1},
	}
	var buf bytes.Buffer
	require.NoError(t, WriteCandidates(&buf, cands, true))
	require.Equal(t, "substring\tfreq1\tfreq2\nACGTA\t1\t1\nACGT\t2\t1\n", buf.String())

	buf.Reset()
	require.NoError(t, WriteCandidates(&buf, nil, false))
	require.Empty(t, buf.String())
}

func TestSummary(t *testing.T) {
	require.Equal(t, "no common substring found", Summary(lmfcs.Candidate{}, false))
	require.Equal(t, "best substring: ACGT (length 4, freq1 2, freq2 1)",
		Summary(lmfcs.Candidate{Text: "ACGT", Freq1: 2, Freq2: 1}, true))
}
