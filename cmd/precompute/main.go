package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"rod-cutting-optimizer/internal/precompute"
	"rod-cutting-optimizer/internal/rodcut"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
)

func main() {
	// Define command-line flags
	input := flag.String("input", "", "Problem file or directory of problem files (required)")
	outputFile := flag.String("output", "results.txt", "Output file path")
	strategyName := flag.String("strategy", "table", "Solver strategy: memo or table")
	workers := flag.Int("workers", 0, "Number of parallel workers (0 uses all CPUs)")
	flag.Parse()

	// Validate input
	if *input == "" {
		fail("--input flag is required\n")
		flag.Usage()
		os.Exit(1)
	}

	strategy, err := rodcut.ParseStrategy(*strategyName)
	if err != nil {
		fail("%v\n", err)
		os.Exit(1)
	}

	info, err := os.Stat(*input)
	if os.IsNotExist(err) {
		fail("Input '%s' does not exist\n", *input)
		os.Exit(1)
	}
	if err != nil {
		fail("%v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Rod Cutting Batch Solver\n")
	fmt.Printf("========================\n\n")
	fmt.Printf("Input: %s\n", *input)
	fmt.Printf("Output file: %s\n", *outputFile)
	fmt.Printf("Strategy: %s\n", strategy)
	fmt.Println()

	// Track start time for elapsed time reporting
	programStart := time.Now()

	// Progress callback that shows elapsed time
	progressCallback := func(msg string) {
		elapsed := time.Since(programStart)
		fmt.Printf("[%s] %s\n", formatElapsed(elapsed), msg)
	}

	progressCallback("Loading problems...")
	var problems []precompute.Problem
	if info.IsDir() {
		problems, err = precompute.LoadDirectory(*input)
	} else {
		problems, err = precompute.LoadFile(*input)
	}
	if err != nil {
		fail("%v\n", err)
		os.Exit(1)
	}
	progressCallback(fmt.Sprintf("Loaded %s problems", humanize.Comma(int64(len(problems)))))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	startTime := time.Now()
	outcomes, err := precompute.SolveAll(ctx, problems, strategy, progressCallback, *workers)
	if err != nil {
		fail("%v\n", err)
		os.Exit(1)
	}
	processingTime := time.Since(startTime)

	// Write output
	progressCallback("Writing output file...")

	if err := precompute.WriteTextFile(outcomes, *outputFile); err != nil {
		fail("writing output: %v\n", err)
		os.Exit(1)
	}

	// Summary
	failed := precompute.Failed(outcomes)
	if failed == 0 {
		color.Green("\n✓ Success!")
	} else {
		color.Yellow("\n! Completed with %s invalid problems", humanize.Comma(int64(failed)))
	}
	fmt.Printf("  Problems solved: %s\n", humanize.Comma(int64(len(outcomes)-failed)))
	fmt.Printf("  Processing time: %s\n", processingTime.Round(time.Millisecond))
	fmt.Printf("  Output file: %s\n", *outputFile)
	fmt.Println()
}

// fail prints an error line to stderr
func fail(format string, args ...any) {
	color.New(color.FgRed).Fprintf(os.Stderr, "Error: "+format, args...)
}

// formatElapsed formats a duration into a human-readable elapsed time string
func formatElapsed(d time.Duration) string {
	d = d.Round(time.Second)
	minutes := int(d.Minutes())
	seconds := int(d.Seconds()) % 60

	if minutes > 0 {
		return fmt.Sprintf("%dm%02ds", minutes, seconds)
	}
	return fmt.Sprintf("%ds", seconds)
}
