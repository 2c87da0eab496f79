package precompute

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// FormatOutcome renders a single outcome as one line of text.
func FormatOutcome(o Outcome) string {
	if o.Err != nil {
		return fmt.Sprintf("length=%d error=%q", o.Problem.Length, o.Err.Error())
	}

	cuts := make([]string, len(o.Result.Cuts))
	for i, c := range o.Result.Cuts {
		cuts[i] = strconv.Itoa(c)
	}

	return fmt.Sprintf("length=%d profit=%d cuts=%s number_of_cuts=%d",
		o.Problem.Length, o.Result.MaxProfit, strings.Join(cuts, ","), o.Result.NumberOfCuts)
}

// WriteTextFile writes outcomes to a plain text file.
// Each outcome is on a separate line, in the order given.
func WriteTextFile(outcomes []Outcome, outputPath string) error {
	var b strings.Builder
	for _, o := range outcomes {
		b.WriteString(FormatOutcome(o))
		b.WriteString("\n")
	}

	if err := os.WriteFile(outputPath, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("failed to write text file: %w", err)
	}

	return nil
}
