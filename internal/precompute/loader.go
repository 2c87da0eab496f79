package precompute

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

const (
	// Scanner buffer sizes for reading problem files; price tables can be long lines
	scannerInitialBuffer = 64 * 1024   // 64 KB
	scannerMaxBuffer     = 1024 * 1024 // 1 MB
)

// ErrMalformedLine is returned when a problem line cannot be parsed.
var ErrMalformedLine = errors.New("malformed problem line")

// Problem is one rod to cut, as read from an input file.
type Problem struct {
	Source string // file the problem came from
	Line   int    // 1-based line number within Source
	Length int
	Prices []int
}

// ParseProblem parses a line of the form "length: p1 p2 ... pn".
// Only the syntax is checked; length and price validation is left to the solver.
func ParseProblem(line string) (Problem, error) {
	head, tail, ok := strings.Cut(line, ":")
	if !ok {
		return Problem{}, fmt.Errorf("%w: missing ':' in %q", ErrMalformedLine, line)
	}

	length, err := strconv.Atoi(strings.TrimSpace(head))
	if err != nil {
		return Problem{}, fmt.Errorf("%w: bad length %q", ErrMalformedLine, strings.TrimSpace(head))
	}

	fields := strings.Fields(tail)
	prices := make([]int, 0, len(fields))
	for _, f := range fields {
		p, err := strconv.Atoi(f)
		if err != nil {
			return Problem{}, fmt.Errorf("%w: bad price %q", ErrMalformedLine, f)
		}
		prices = append(prices, p)
	}

	return Problem{Length: length, Prices: prices}, nil
}

// LoadFile reads all problems from a file.
// Blank lines and lines starting with '#' are skipped.
func LoadFile(filename string) ([]Problem, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file %s: %w", filename, err)
	}
	defer f.Close()

	var problems []Problem
	scanner := bufio.NewScanner(f)
	buf := make([]byte, 0, scannerInitialBuffer)
	scanner.Buffer(buf, scannerMaxBuffer)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		p, err := ParseProblem(line)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %w", filename, lineNo, err)
		}
		p.Source = filename
		p.Line = lineNo
		problems = append(problems, p)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading file %s: %w", filename, err)
	}

	return problems, nil
}

// LoadDirectory reads every file in a directory, in name order, and returns
// their problems concatenated. Subdirectories are ignored.
func LoadDirectory(dirPath string) ([]Problem, error) {
	entries, err := os.ReadDir(dirPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dirPath, err)
	}

	var problems []Problem
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		loaded, err := LoadFile(filepath.Join(dirPath, entry.Name()))
		if err != nil {
			return nil, err
		}
		problems = append(problems, loaded...)
	}

	return problems, nil
}
