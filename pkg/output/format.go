// Package output provides utilities for formatting and displaying analysis results.
package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pricelab/pricelab/internal/analysis"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// PrettyFormat outputs a human-readable rather than machine-readable summary.
func PrettyFormat(results []analysis.Analysis) {
	FprettyFormat(os.Stdout, results)
}

// FprettyFormat writes the human-readable summary to w.
func FprettyFormat(w io.Writer, results []analysis.Analysis) {
	p := message.NewPrinter(language.English)
	for _, result := range results {
		fmt.Fprintf(w, "--- Results for scenario %s ---\n", result.Name)
		_, _ = p.Fprintf(w, "Optimal price: $%.2f (profit $%.2f)\n", result.Optimal.Price, result.Optimal.Profit)
		if result.BreakEven != nil {
			_, _ = p.Fprintf(w, "Break-even price: $%.2f (quantity %.2f units)\n", result.BreakEven.Price, result.BreakEven.Quantity)
		} else {
			fmt.Fprintf(w, "Break-even price: none within grid\n")
		}

		for i, sp := range result.SpecifiedPrices {
			_, _ = p.Fprintf(w, "Specified price %d: $%.2f | quantity %.2f units | profit $%.2f | gross margin %.2f%%\n",
				i+1, sp.Price, sp.Quantity, sp.Profit, sp.GrossMargin)
			fmt.Fprintf(w, "  %s\n", sp.Classification.Message())
		}

		for _, seg := range result.Segments {
			_, _ = p.Fprintf(w, "Segment %s: optimal price $%.2f (profit $%.2f)", seg.Name, seg.Optimal.Price, seg.Optimal.Profit)
			if seg.BreakEven != nil {
				_, _ = p.Fprintf(w, ", break-even $%.2f", seg.BreakEven.Price)
			}
			fmt.Fprintf(w, "\n")
		}

		if result.Survey != nil {
			_, _ = p.Fprintf(w, "Margin of error: %.4f (sample %d", result.Survey.MarginOfError, result.Survey.SampleSize)
			if result.Survey.PopulationSize > 0 {
				_, _ = p.Fprintf(w, ", population %d", result.Survey.PopulationSize)
			}
			fmt.Fprintf(w, ")\n")
			for _, interval := range result.Survey.Intervals {
				_, _ = p.Fprintf(w, "  %s anchor $%.2f: [$%.2f, $%.2f]\n", interval.Name, interval.Anchor, interval.Low, interval.High)
			}
		}

		if result.PSM != nil {
			_, _ = p.Fprintf(w, "Van Westendorp: PMC $%.2f, PME $%.2f\n", result.PSM.PMC, result.PSM.PME)
		}

		if len(results) > 1 {
			fmt.Fprintf(w, "\n")
		}
	}
}

// CsvFormat outputs the profit series in comma-separated value format.
func CsvFormat(results []analysis.Analysis) {
	FcsvFormat(os.Stdout, results)
}

// FcsvFormat writes the profit series as CSV to w. Scenario series may have
// different grids, so each scenario carries its own price column.
func FcsvFormat(w io.Writer, results []analysis.Analysis) {
	for i, result := range results {
		if i > 0 {
			fmt.Fprintf(w, "\n")
		}
		fmt.Fprintf(w, "\"scenario\",\"price\",\"quantity\",\"revenue\",\"cost\",\"profit\"\n")
		for j := 0; j < result.Series.Len(); j++ {
			fmt.Fprintf(w, "\"%s\",\"%.2f\",\"%.2f\",\"%.2f\",\"%.2f\",\"%.2f\"\n",
				result.Name,
				result.Series.Prices[j],
				result.Series.Quantities[j],
				result.Series.Revenues[j],
				result.Series.Costs[j],
				result.Series.Profits[j],
			)
		}
	}
}

// CsvString returns the CSV rendering as a string, used by the HTTP API.
func CsvString(results []analysis.Analysis) string {
	var sb strings.Builder
	FcsvFormat(&sb, results)
	return sb.String()
}
