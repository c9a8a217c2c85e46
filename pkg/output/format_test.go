package output

import (
	"strings"
	"testing"

	"github.com/pricelab/pricelab/internal/analysis"
	"github.com/pricelab/pricelab/pkg/pricing"
)

func sampleResults() []analysis.Analysis {
	breakEven := pricing.BreakEvenPoint{Price: 62.12, Quantity: 1119.19}
	return []analysis.Analysis{
		{
			Name: "Base case",
			Series: pricing.ProfitSeries{
				Prices:     []float64{50, 125, 200},
				Quantities: []float64{1200, 700, 200},
				Revenues:   []float64{60000, 87500, 40000},
				Costs:      []float64{70000, 45000, 20000},
				Profits:    []float64{-10000, 42500, 20000},
			},
			Optimal:   pricing.OptimalPoint{Price: 125, Profit: 42500},
			BreakEven: &breakEven,
			SpecifiedPrices: []pricing.SpecifiedPriceResult{
				{Price: 150, Quantity: 533.33, Profit: 43333.33, GrossMargin: 66.67, Classification: pricing.WithinRange},
			},
			Survey: &analysis.SurveyResult{
				SampleSize:     300,
				PopulationSize: 10000,
				MarginOfError:  0.0557,
				Intervals: []analysis.AnchorInterval{
					{Name: "PMC", Anchor: 90, Low: 84.99, High: 95.01},
				},
			},
			PSM: &analysis.PSMResult{PMC: 150, PME: 100},
		},
	}
}

func TestFprettyFormat(t *testing.T) {
	var sb strings.Builder
	FprettyFormat(&sb, sampleResults())
	got := sb.String()

	for _, want := range []string{
		"--- Results for scenario Base case ---",
		"Optimal price: $125.00",
		"Break-even price: $62.12",
		"Specified price 1: $150.00",
		"Price is within the acceptable range.",
		"Margin of error: 0.0557",
		"PMC $150.00, PME $100.00",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("pretty output missing %q\noutput:\n%s", want, got)
		}
	}
}

func TestFprettyFormatNoBreakEven(t *testing.T) {
	results := sampleResults()
	results[0].BreakEven = nil

	var sb strings.Builder
	FprettyFormat(&sb, results)
	if !strings.Contains(sb.String(), "Break-even price: none within grid") {
		t.Errorf("pretty output missing absent break-even note\noutput:\n%s", sb.String())
	}
}

func TestCsvString(t *testing.T) {
	got := CsvString(sampleResults())

	if !strings.HasPrefix(got, "\"scenario\",\"price\",\"quantity\",\"revenue\",\"cost\",\"profit\"\n") {
		t.Errorf("CSV missing header, got:\n%s", got)
	}
	if !strings.Contains(got, "\"Base case\",\"125.00\",\"700.00\",\"87500.00\",\"45000.00\",\"42500.00\"") {
		t.Errorf("CSV missing series row, got:\n%s", got)
	}
	lines := strings.Count(strings.TrimSpace(got), "\n") + 1
	if lines != 4 {
		t.Errorf("CSV line count = %d, expected header + 3 rows", lines)
	}
}
