// Package report writes candidate tables.
package report

import (
	"fmt"
	"io"

	"github.com/viniciusth/lmfcs"
)

// Header is the column line of a candidate table.
const Header = "substring\tfreq1\tfreq2"

// WriteCandidates writes one tab-separated row per candidate, in the given
// order.
func WriteCandidates(w io.Writer, cands []lmfcs.Candidate, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, Header); err != nil {
			return err
		}
	}
	for _, c := range cands {
		if _, err := fmt.Fprintf(w, "%s\t%d\t%d\n", c.Text, c.Freq1, c.Freq2); err != nil {
			return err
		}
	}
	return nil
}

// Summary is the human readable line announcing the chosen substring.
func Summary(best lmfcs.Candidate, ok bool) string {
	if !ok {
		return "no common substring found"
	}
	return fmt.Sprintf("best substring: %s (length %d, freq1 %d, freq2 %d)",
		best.Text, len(best.Text), best.Freq1, best.Freq2)
}
