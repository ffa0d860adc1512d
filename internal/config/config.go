// Package config holds the command line options shared by the lmfcs
// subcommands and turns them into library settings.
package config

import (
	"fmt"

	"github.com/viniciusth/lmfcs"
)

// DefaultMaxLength caps the combined length of the two inputs.
const DefaultMaxLength = 256 << 20

// Options mirrors the command line flags.
type Options struct {
	File1, File2 string

	Length    int
	Mode      string // at-least | exactly
	Rank      string // length | frequency | balanced
	Counting  string // scan | index
	Inclusion string // following | standalone | preceding

	IgnoreCase  bool
	BothStrands bool
	MaxLength   int

	Report    string
	OutDir    string
	LineWidth int
	Force     bool
}

// Settings are validated Options in library terms.
type Settings struct {
	Mode      lmfcs.LengthMode
	Rank      lmfcs.RankPolicy
	Counting  lmfcs.CountMode
	Inclusion lmfcs.InclusionPolicy
}

// Validate fails fast on anything the library would reject later.
func (o *Options) Validate() (Settings, error) {
	var s Settings
	var err error

	if o.File1 == "" || o.File2 == "" {
		return s, fmt.Errorf("two input files are required")
	}
	if o.Length <= 0 {
		return s, fmt.Errorf("%w: %d", lmfcs.ErrInvalidLength, o.Length)
	}
	if o.MaxLength < 0 {
		return s, fmt.Errorf("max length must be >= 0, got %d", o.MaxLength)
	}
	if o.LineWidth < 0 {
		return s, fmt.Errorf("line width must be >= 0, got %d", o.LineWidth)
	}
	if s.Mode, err = lmfcs.ParseLengthMode(o.Mode); err != nil {
		return s, err
	}
	if s.Rank, err = lmfcs.ParseRankPolicy(o.Rank); err != nil {
		return s, err
	}
	if s.Counting, err = lmfcs.ParseCountMode(o.Counting); err != nil {
		return s, err
	}
	if s.Inclusion, err = lmfcs.ParseInclusionPolicy(o.Inclusion); err != nil {
		return s, err
	}
	return s, nil
}

// Finder configures a lmfcs.Finder for seq1 and seq2.
func (s Settings) Finder(o *Options, seq1, seq2 []byte) *lmfcs.Finder {
	return lmfcs.NewFinder(seq1, seq2).
		Length(o.Length, s.Mode).
		Rank(s.Rank).
		Counting(s.Counting).
		MaxCombinedLength(o.MaxLength)
}
