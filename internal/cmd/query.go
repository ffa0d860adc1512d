package cmd

import (
	"time"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/shenwei356/bio/seq"

	"github.com/viniciusth/lmfcs"
	"github.com/viniciusth/lmfcs/internal/config"
	"github.com/viniciusth/lmfcs/internal/fastaio"
)

// query is one common-substring search over two files.
type query struct {
	records1, records2 []fastaio.Record
	result             *lmfcs.Result
}

func runQuery(opt *config.Options, settings config.Settings) (*query, error) {
	seq.ValidateSeq = false

	q := &query{}
	var err error
	if q.records1, err = loadRecords(opt.File1, opt.IgnoreCase); err != nil {
		return nil, err
	}
	if q.records2, err = loadRecords(opt.File2, opt.IgnoreCase); err != nil {
		return nil, err
	}

	seq1, seq2 := fastaio.Concat(q.records1), fastaio.Concat(q.records2)
	if len(seq1) == 0 || len(seq2) == 0 {
		log.Warningf("at least one input has no residues, nothing can be shared")
	}

	timeStart := time.Now()
	q.result, err = settings.Finder(opt, seq1, seq2).Find()
	if err != nil {
		return nil, errors.Wrap(err, "searching common substrings")
	}
	log.Infof("%s candidate substrings (%s %d, %s) ranked by %s in %s",
		humanize.Comma(int64(len(q.result.Candidates))), settings.Mode, opt.Length,
		settings.Counting, settings.Rank, time.Since(timeStart))
	return q, nil
}

func loadRecords(file string, normalize bool) ([]fastaio.Record, error) {
	records, err := fastaio.ReadRecords(file, normalize)
	if err != nil {
		return nil, errors.Wrap(err, "reading sequences")
	}
	log.Infof("%s: %s records, %s bp", file,
		humanize.Comma(int64(len(records))), humanize.Comma(int64(len(fastaio.Concat(records)))))
	return records, nil
}

// splitPatterns returns the split substrings for the best candidate: none
// without a candidate, and its reverse complement too with bothStrands.
func splitPatterns(best lmfcs.Candidate, ok, bothStrands bool) ([]string, error) {
	if !ok {
		return nil, nil
	}
	patterns := []string{best.Text}
	if !bothStrands {
		return patterns, nil
	}
	rc, err := fastaio.ReverseComplement(best.Text)
	if err != nil {
		return nil, err
	}
	if rc != best.Text {
		patterns = append(patterns, rc)
	}
	return patterns, nil
}
