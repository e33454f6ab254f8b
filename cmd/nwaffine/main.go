// Command nwaffine aligns pairs of sequences globally with affine gap costs.
//
// Usage:
//
//	nwaffine [command] [options]
//
// Commands:
//
//	align       Align two sequences
//	batch       Align every pair file in a directory
//	rescore     Score an existing alignment
//	matrices    Print the S, Ix and Iy matrices
//	version     Show version information
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/aria-lang/nwaffine/internal/alignment"
	"github.com/aria-lang/nwaffine/internal/batch"
	"github.com/aria-lang/nwaffine/internal/loader"
	"github.com/aria-lang/nwaffine/internal/report"
	"github.com/aria-lang/nwaffine/pkg/nwaffine"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "align":
		alignCmd(os.Args[2:])
	case "batch":
		batchCmd(os.Args[2:])
	case "rescore":
		rescoreCmd(os.Args[2:])
	case "matrices":
		matricesCmd(os.Args[2:])
	case "version":
		fmt.Println(nwaffine.Info())
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`nwaffine - Affine-gap global sequence alignment

Usage:
  nwaffine <command> [options]

Commands:
  align     Align two sequences
  batch     Align every pair file in a directory
  rescore   Score an existing alignment
  matrices  Print the S, Ix and Iy matrices
  version   Show version information
  help      Show this help message

Cost options (align, batch, rescore, matrices):
  -match -mismatch -gap-open -gap-extend   explicit costs
  -preset default|dna|blast                named costs

Use "nwaffine <command> -h" for more information about a command.`)
}

func fail(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

func alignCmd(args []string) {
	fs := flag.NewFlagSet("align", flag.ExitOnError)
	input := registerPairFlags(fs)
	format := fs.String("format", "pretty", "Output format: "+formatNames)
	costs := registerCostFlags(fs)
	mode := registerTracebackFlag(fs)
	fs.Parse(args)

	pair, err := input.pair()
	if err == errNoPair {
		fmt.Fprintln(os.Stderr, "Error: Either -file or both -seq1 and -seq2 are required")
		fs.Usage()
		os.Exit(1)
	}
	if err != nil {
		fail("%v", err)
	}

	scoring, err := costs.resolve()
	if err != nil {
		fail("%v", err)
	}
	tm, err := alignment.ParseTracebackMode(*mode)
	if err != nil {
		fail("%v", err)
	}
	f, err := report.ParseFormat(*format)
	if err != nil {
		fail("%v", err)
	}

	runner := batch.NewRunner(scoring)
	runner.Mode = tm
	run, err := runner.Run(context.Background(), []loader.Pair{pair})
	if err != nil {
		fail("aligning sequences: %v", err)
	}

	if err := report.Write(os.Stdout, f, run); err != nil {
		fail("%v", err)
	}
}

func batchCmd(args []string) {
	fs := flag.NewFlagSet("batch", flag.ExitOnError)
	dir := fs.String("dir", "./INPUTS", "Directory holding pair files")
	ext := fs.String("ext", loader.DefaultExt, "Pair file extension")
	format := fs.String("format", "text", "Output format: "+formatNames)
	summary := fs.Bool("summary", false, "Print statistics over all alignments")
	costs := registerCostFlags(fs)
	mode := registerTracebackFlag(fs)
	fs.Parse(args)

	scoring, err := costs.resolve()
	if err != nil {
		fail("%v", err)
	}
	tm, err := alignment.ParseTracebackMode(*mode)
	if err != nil {
		fail("%v", err)
	}
	f, err := report.ParseFormat(*format)
	if err != nil {
		fail("%v", err)
	}

	pairs, skipped, err := loader.ReadDir(*dir, *ext)
	if err != nil {
		fail("%v", err)
	}
	if err := report.WriteSkipped(os.Stderr, skipped); err != nil {
		fail("%v", err)
	}
	if len(pairs) == 0 {
		fail("no %s pair files found in %s", *ext, *dir)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	runner := batch.NewRunner(scoring)
	runner.Mode = tm
	run, err := runner.Run(ctx, pairs)
	if err != nil {
		fail("batch interrupted: %v", err)
	}

	if err := report.Write(os.Stdout, f, run); err != nil {
		fail("%v", err)
	}

	if *summary {
		s, err := nwaffine.Summarize(run.Alignments())
		if err != nil {
			fail("%v", err)
		}
		out := os.Stdout
		if f == report.FASTA {
			out = os.Stderr
		}
		if err := report.WriteSummary(out, f, s); err != nil {
			fail("%v", err)
		}
	}
}

func rescoreCmd(args []string) {
	fs := flag.NewFlagSet("rescore", flag.ExitOnError)
	a1 := fs.String("a1", "", "First aligned row")
	a2 := fs.String("a2", "", "Second aligned row")
	costs := registerCostFlags(fs)
	fs.Parse(args)

	if *a1 == "" || *a2 == "" {
		fmt.Fprintln(os.Stderr, "Error: Both -a1 and -a2 are required")
		fs.Usage()
		os.Exit(1)
	}

	scoring, err := costs.resolve()
	if err != nil {
		fail("%v", err)
	}

	b, err := nwaffine.Rescore(*a1, *a2, scoring)
	if err != nil {
		fail("%v", err)
	}

	fmt.Printf("Score: %d\n", b.Score)
	fmt.Printf("Length: %d\n", b.Length)
	fmt.Printf("Matches: %d\n", b.Matches)
	fmt.Printf("Mismatches: %d\n", b.Mismatches)
	fmt.Printf("Gap columns: %d in %d runs\n", b.GapColumns, b.GapRuns)
	fmt.Printf("Identity: %.2f%%\n", b.Identity*100)
	fmt.Printf("Similarity: %.2f%%\n", b.Similarity*100)
}

func matricesCmd(args []string) {
	fs := flag.NewFlagSet("matrices", flag.ExitOnError)
	seq1 := fs.String("seq1", "", "First sequence")
	seq2 := fs.String("seq2", "", "Second sequence")
	costs := registerCostFlags(fs)
	fs.Parse(args)

	scoring, err := costs.resolve()
	if err != nil {
		fail("%v", err)
	}

	m, score := nwaffine.Align(*seq1, *seq2, scoring)
	printGrid(os.Stdout, "S", &m.S, *seq1, *seq2)
	printGrid(os.Stdout, "Ix", &m.Ix, *seq1, *seq2)
	printGrid(os.Stdout, "Iy", &m.Iy, *seq1, *seq2)
	fmt.Printf("Final score: %d\n", score)
}
