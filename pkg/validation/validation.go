// Package validation provides configuration validation utilities.
package validation

import (
	"fmt"

	"github.com/pricelab/pricelab/pkg/constants"
	"github.com/pricelab/pricelab/pkg/mathutil"
	"github.com/pricelab/pricelab/pkg/pricing"
	"github.com/pricelab/pricelab/pkg/survey"
)

// ValidateOutputFormat checks if the output format is one of the supported formats.
func ValidateOutputFormat(format string) error {
	if format != constants.OutputFormatPretty && format != constants.OutputFormatCSV {
		return fmt.Errorf("expected output format of %s or %s, got %s",
			constants.OutputFormatPretty, constants.OutputFormatCSV, format)
	}
	return nil
}

// ValidateDemandParameters returns warnings for demand anchor combinations
// that will fail or behave surprisingly at compute time.
func ValidateDemandParameters(scenarioName string, params pricing.DemandParameters) []string {
	var warnings []string

	if params.MaxPrice <= params.MinPrice {
		warnings = append(warnings, fmt.Sprintf("Scenario '%s': minimum price %.2f is not below maximum price %.2f - demand slope is undefined and analysis will fail",
			scenarioName, params.MinPrice, params.MaxPrice))
	}
	if params.Elasticity <= 0 {
		warnings = append(warnings, fmt.Sprintf("Scenario '%s': price elasticity %.2f is not positive - analysis will fail",
			scenarioName, params.Elasticity))
	}
	if params.MinQuantity > params.MaxQuantity {
		warnings = append(warnings, fmt.Sprintf("Scenario '%s': minimum quantity %.0f exceeds maximum quantity %.0f - demand rises with price",
			scenarioName, params.MinQuantity, params.MaxQuantity))
	}

	return warnings
}

// ValidateCostParameters returns warnings for cost structures that leave no
// profitable price in the studied range.
func ValidateCostParameters(scenarioName string, params pricing.DemandParameters, cost pricing.CostParameters) []string {
	var warnings []string

	if mathutil.IsNegative(cost.FixedCost) {
		warnings = append(warnings, fmt.Sprintf("Scenario '%s': fixed cost %.2f is negative", scenarioName, cost.FixedCost))
	}
	if mathutil.IsNegative(cost.VariableCost) {
		warnings = append(warnings, fmt.Sprintf("Scenario '%s': variable cost %.2f is negative", scenarioName, cost.VariableCost))
	}
	if cost.VariableCost >= params.MaxPrice {
		warnings = append(warnings, fmt.Sprintf("Scenario '%s': variable cost %.2f is at or above maximum price %.2f - every unit sells at a loss",
			scenarioName, cost.VariableCost, params.MaxPrice))
	}

	return warnings
}

// ValidateSegment returns warnings for segment definitions outside their
// meaningful ranges.
func ValidateSegment(scenarioName string, seg pricing.Segment) []string {
	var warnings []string

	if seg.PopulationSize <= 0 {
		warnings = append(warnings, fmt.Sprintf("Scenario '%s': segment '%s' has non-positive population %d",
			scenarioName, seg.Name, seg.PopulationSize))
	}
	if seg.PenetrationRate <= 0 || seg.PenetrationRate > 1 {
		warnings = append(warnings, fmt.Sprintf("Scenario '%s': segment '%s' penetration rate %.3f is outside (0, 1]",
			scenarioName, seg.Name, seg.PenetrationRate))
	}
	if seg.Elasticity <= 0 {
		warnings = append(warnings, fmt.Sprintf("Scenario '%s': segment '%s' elasticity %.2f is not positive - analysis will fail",
			scenarioName, seg.Name, seg.Elasticity))
	}

	return warnings
}

// ValidateSurvey returns warnings for sample/population combinations.
func ValidateSurvey(scenarioName string, sampleSize int, opts survey.Options) []string {
	var warnings []string

	if sampleSize <= 0 {
		warnings = append(warnings, fmt.Sprintf("Scenario '%s': survey sample size %d is not positive - analysis will fail",
			scenarioName, sampleSize))
	}
	if opts.PopulationSize > 0 && opts.PopulationSize <= sampleSize {
		warnings = append(warnings, fmt.Sprintf("Scenario '%s': population %d does not exceed sample %d - finite-population correction will be skipped",
			scenarioName, opts.PopulationSize, sampleSize))
	}
	if opts.Proportion < 0 || opts.Proportion > 1 {
		warnings = append(warnings, fmt.Sprintf("Scenario '%s': proportion estimate %.2f is outside [0, 1]",
			scenarioName, opts.Proportion))
	}

	return warnings
}

// ValidatePSMCurve returns warnings for perception-curve point sets that
// violate the sorted, distinct-price assumption.
func ValidatePSMCurve(scenarioName string, points []survey.CurvePoint) []string {
	var warnings []string

	seen := make(map[float64]struct{}, len(points))
	for _, point := range points {
		if _, dup := seen[point.Price]; dup {
			warnings = append(warnings, fmt.Sprintf("Scenario '%s': duplicate PSM curve price %.2f",
				scenarioName, point.Price))
		}
		seen[point.Price] = struct{}{}

		for _, pct := range []float64{point.TooCheap, point.Cheap, point.Expensive, point.TooExpensive} {
			if pct < 0 || pct > 100 {
				warnings = append(warnings, fmt.Sprintf("Scenario '%s': PSM percentage %.2f at price %.2f is outside [0, 100]",
					scenarioName, pct, point.Price))
				break
			}
		}
	}

	return warnings
}
