// Package loader reads sequence pairs from disk.
//
// A pair file holds two sequences. In the plain layout the first two lines
// are the sequences and anything after them is ignored. In the FASTA layout
// the first two records are used. The file name labels the pair. No
// alphabet checks are made.
package loader

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// DefaultExt is the extension ReadDir looks for when none is given.
const DefaultExt = ".seq"

// ErrTooFewSequences is returned for input holding fewer than two sequences.
var ErrTooFewSequences = errors.New("pair file must hold at least two sequences")

// Pair is two raw sequences and the label that identifies them.
type Pair struct {
	Label string `json:"label"`
	Seq1  string `json:"sequence1"`
	Seq2  string `json:"sequence2"`
}

// ReadDir loads every file in dir whose name ends in ext, in name order.
// Files holding fewer than two sequences are skipped and their names
// returned in skipped.
func ReadDir(dir, ext string) (pairs []Pair, skipped []string, err error) {
	if ext == "" {
		ext = DefaultExt
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, nil, fmt.Errorf("reading directory: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ext) {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	for _, name := range names {
		pair, err := ReadFile(filepath.Join(dir, name))
		if errors.Is(err, ErrTooFewSequences) {
			skipped = append(skipped, name)
			continue
		}
		if err != nil {
			return nil, nil, err
		}
		pairs = append(pairs, pair)
	}

	return pairs, skipped, nil
}

// ReadFile loads one pair file, labelled with its base name.
func ReadFile(path string) (Pair, error) {
	file, err := os.Open(path)
	if err != nil {
		return Pair{}, fmt.Errorf("opening file: %w", err)
	}
	defer file.Close()

	pair, err := Parse(file, filepath.Base(path))
	if err != nil {
		return Pair{}, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return pair, nil
}

// Parse reads a pair from r. Input whose first line starts with '>' is
// read as FASTA; anything else as two plain lines.
func Parse(r io.Reader, label string) (Pair, error) {
	lines, err := readLines(r)
	if err != nil {
		return Pair{}, err
	}

	if len(lines) > 0 && strings.HasPrefix(lines[0], ">") {
		return parseFASTA(lines, label)
	}

	if len(lines) < 2 {
		return Pair{}, ErrTooFewSequences
	}
	return Pair{Label: label, Seq1: lines[0], Seq2: lines[1]}, nil
}

// parseFASTA keeps the first two records, joining wrapped sequence lines.
func parseFASTA(lines []string, label string) (Pair, error) {
	var seqs []string
	var current strings.Builder
	inRecord := false

	flush := func() {
		if inRecord {
			seqs = append(seqs, current.String())
			current.Reset()
		}
	}

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, ">") {
			flush()
			inRecord = true
			if len(seqs) == 2 {
				break
			}
			continue
		}
		current.WriteString(line)
	}
	if len(seqs) < 2 {
		flush()
	}

	if len(seqs) < 2 {
		return Pair{}, ErrTooFewSequences
	}
	return Pair{Label: label, Seq1: seqs[0], Seq2: seqs[1]}, nil
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 64*1024*1024)

	for scanner.Scan() {
		lines = append(lines, strings.TrimSuffix(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading file: %w", err)
	}
	return lines, nil
}
