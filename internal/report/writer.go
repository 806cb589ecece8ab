package report

import (
	"fmt"
	"io"
	"strings"
)

// WriteFlagged prints the hash of every flagged record, one per line.
func WriteFlagged(w io.Writer, result *Result) error {
	for _, hash := range FlaggedHashes(result.Records) {
		if _, err := fmt.Fprintln(w, hash); err != nil {
			return err
		}
	}
	return nil
}

// WriteSummary prints the statistics block of result.
func WriteSummary(w io.Writer, result *Result) error {
	label := result.Relation.String()

	var b strings.Builder
	fmt.Fprintf(&b, "\n%s (%s)\n", result.Liquidator, label)

	if result.Stats.Before != nil && result.Stats.After != nil {
		writePeriod(&b, label, result.FromHeight, result.SplitHeight, *result.Stats.Before)
		b.WriteString("\n")
		writePeriod(&b, label, result.SplitHeight, result.ToHeight, *result.Stats.After)
	} else {
		writePeriod(&b, label, result.FromHeight, result.ToHeight, result.Stats.Period)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func writePeriod(b *strings.Builder, label string, from, to uint64, p Period) {
	fmt.Fprintf(b, "%d to %d:\n", from, to)
	fmt.Fprintf(b, "Total: %d\n", p.Total)
	fmt.Fprintf(b, "%s: %d\n", titled(label), p.Flagged)
	fmt.Fprintf(b, "Percent %s: %.2f%%\n", label, p.Percent)
}

func titled(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
