package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/aria-lang/nwaffine/internal/alignment"
	"github.com/aria-lang/nwaffine/internal/loader"
)

const formatNames = "text, pretty, json or fasta"

var errNoPair = errors.New("no input pair given")

// pairFlags select the input of align: a pair file or two sequences.
type pairFlags struct {
	fs   *flag.FlagSet
	seq1 *string
	seq2 *string
	file *string
}

func registerPairFlags(fs *flag.FlagSet) *pairFlags {
	return &pairFlags{
		fs:   fs,
		seq1: fs.String("seq1", "", "First sequence (may be empty)"),
		seq2: fs.String("seq2", "", "Second sequence (may be empty)"),
		file: fs.String("file", "", "Pair file holding both sequences (.seq or FASTA)"),
	}
}

// pair reads -file when given, otherwise takes -seq1 and -seq2. Both
// sequence flags must be present on the command line but either value may
// be empty.
func (p *pairFlags) pair() (loader.Pair, error) {
	if *p.file != "" {
		pair, err := loader.ReadFile(*p.file)
		if err != nil {
			return loader.Pair{}, fmt.Errorf("reading %s: %w", *p.file, err)
		}
		return pair, nil
	}

	set := map[string]bool{}
	p.fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	if !set["seq1"] || !set["seq2"] {
		return loader.Pair{}, errNoPair
	}
	return loader.Pair{Label: "cli", Seq1: *p.seq1, Seq2: *p.seq2}, nil
}

// costFlags are the cost options shared by every subcommand.
type costFlags struct {
	fs        *flag.FlagSet
	match     *int
	mismatch  *int
	gapOpen   *int
	gapExtend *int
	preset    *string
}

func registerCostFlags(fs *flag.FlagSet) *costFlags {
	d := alignment.Default()
	presetUsage := "Named costs: " + strings.Join(alignment.PresetNames(), ", ") +
		" (explicit cost flags override it)"
	return &costFlags{
		fs:        fs,
		match:     fs.Int("match", d.MatchScore, "Score for identical characters"),
		mismatch:  fs.Int("mismatch", d.MismatchScore, "Score for differing characters"),
		gapOpen:   fs.Int("gap-open", d.GapOpen, "Cost of the first gap column"),
		gapExtend: fs.Int("gap-extend", d.GapExtend, "Cost of each further gap column"),
		preset:    fs.String("preset", "", presetUsage),
	}
}

func registerTracebackFlag(fs *flag.FlagSet) *string {
	return fs.String("traceback", "affine", "Traceback mode: affine or s-only")
}

// resolve starts from the preset, or the defaults, and applies every cost
// flag given on the command line. Unusual signs are only logged.
func (c *costFlags) resolve() (*alignment.ScoringMatrix, error) {
	scoring := alignment.Default()
	if *c.preset != "" {
		p, err := alignment.Preset(*c.preset)
		if err != nil {
			return nil, err
		}
		scoring = p
	}

	c.fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "match":
			scoring.MatchScore = *c.match
		case "mismatch":
			scoring.MismatchScore = *c.mismatch
		case "gap-open":
			scoring.GapOpen = *c.gapOpen
		case "gap-extend":
			scoring.GapExtend = *c.gapExtend
		}
	})

	if err := scoring.Validate(); err != nil {
		log.Printf("warning: %v", err)
	}
	return scoring, nil
}

func printGrid(w io.Writer, name string, g *alignment.Grid, seq1, seq2 string) {
	rows, cols := g.Dims()
	fmt.Fprintf(w, "%s:\n%6s%6s", name, "", "")
	for j := 1; j < cols; j++ {
		fmt.Fprintf(w, "%6c", seq2[j-1])
	}
	fmt.Fprintln(w)

	for i := 0; i < rows; i++ {
		if i == 0 {
			fmt.Fprintf(w, "%6s", "")
		} else {
			fmt.Fprintf(w, "%6c", seq1[i-1])
		}
		for _, v := range g.RowView(i) {
			if v <= alignment.Sentinel/2 {
				fmt.Fprintf(w, "%6s", "-inf")
			} else {
				fmt.Fprintf(w, "%6d", v)
			}
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintln(w)
}
