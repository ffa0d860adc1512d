// Package fastaio reads sequence records and writes split fragments as FASTA.
package fastaio

import (
	"io"

	"github.com/pkg/errors"
	"github.com/shenwei356/bio/seq"
	"github.com/shenwei356/bio/seqio/fastx"
	"github.com/shenwei356/xopen"

	"github.com/viniciusth/lmfcs"
)

// DefaultLineWidth is the sequence line width of written FASTA files.
const DefaultLineWidth = 70

// Record is one FASTA/FASTQ entry. Seq is owned by the record.
type Record struct {
	ID  string
	Seq []byte
}

// ReadRecords loads every record of file ("-" for stdin, gzip and other
// compressions are detected by xopen). With normalize, sequences go through
// lmfcs.NormalizeResidues.
func ReadRecords(file string, normalize bool) ([]Record, error) {
	reader, err := fastx.NewDefaultReader(file)
	if err != nil {
		return nil, errors.Wrap(err, file)
	}
	defer reader.Close()

	var records []Record
	for {
		record, err := reader.Read()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, errors.Wrap(err, file)
		}

		s := make([]byte, len(record.Seq.Seq))
		copy(s, record.Seq.Seq)
		if normalize {
			if s, err = lmfcs.NormalizeResidues(s); err != nil {
				return nil, errors.Wrapf(err, "%s: %s", file, record.ID)
			}
		}
		records = append(records, Record{ID: string(record.ID), Seq: s})
	}
	return records, nil
}

// Concat joins the sequences of all records, the way a multi-record file is
// searched as one text.
func Concat(records []Record) []byte {
	n := 0
	for _, r := range records {
		n += len(r.Seq)
	}
	out := make([]byte, 0, n)
	for _, r := range records {
		out = append(out, r.Seq...)
	}
	return out
}

// WriteFragments writes frags as FASTA records named <id>_part<N>.
func WriteFragments(outfh *xopen.Writer, frags []lmfcs.Fragment, width int) error {
	for _, f := range frags {
		name := []byte(f.Name())
		record, err := fastx.NewRecord(seq.Unlimit, name, name, nil, f.Seq)
		if err != nil {
			return errors.Wrapf(err, "fragment %s", name)
		}
		record.FormatToWriter(outfh, width)
	}
	return nil
}

// ReverseComplement returns the reverse complement of a nucleotide string,
// IUPAC ambiguity codes included.
func ReverseComplement(s string) (string, error) {
	if s == "" {
		return "", nil
	}
	sq, err := seq.NewSeq(seq.DNAredundant, []byte(s))
	if err != nil {
		return "", errors.Wrapf(err, "reverse complement of %s", s)
	}
	return string(sq.RevCom().Seq), nil
}
