package lmfcs

import (
	"fmt"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// NormalizeResidues applies NFC, drops all white space and upper-cases the
// result, so wrapped or soft-masked sequences compare equal to their plain
// form.
func NormalizeResidues(seq []byte) ([]byte, error) {
	t := transform.Chain(
		norm.NFC,
		runes.Remove(runes.In(unicode.White_Space)),
		cases.Upper(language.Und),
	)
	out, _, err := transform.Bytes(t, seq)
	if err != nil {
		return nil, fmt.Errorf("normalize residues: %w", err)
	}
	if err := validateResidues(out); err != nil {
		return nil, err
	}
	return out, nil
}

// validateResidues accepts printable ASCII other than space, which keeps the
// sentinel bytes out of every sequence.
func validateResidues(seq []byte) error {
	for i, c := range seq {
		if c <= ' ' || c > '~' {
			return fmt.Errorf("%w: byte 0x%02x at offset %d", ErrInvalidResidue, c, i)
		}
	}
	return nil
}
