// Package analysis runs the demand-profit engine and the survey-statistics
// module over every active scenario in a configuration and assembles the
// results for rendering.
package analysis

import (
	"fmt"

	"github.com/pricelab/pricelab/internal/config"
	"github.com/pricelab/pricelab/pkg/pricing"
	"github.com/pricelab/pricelab/pkg/survey"
	"go.uber.org/zap"
)

// SegmentResult aliases the engine's per-segment evaluation.
type SegmentResult = pricing.SegmentResult

// AnchorInterval is a confidence interval around one named anchor price.
type AnchorInterval struct {
	Name   string  `json:"name"`
	Anchor float64 `json:"anchor"`
	Low    float64 `json:"low"`
	High   float64 `json:"high"`
}

// SurveyResult holds the derived survey statistics for one scenario.
type SurveyResult struct {
	SampleSize     int              `json:"sampleSize"`
	PopulationSize int              `json:"populationSize,omitempty"`
	MarginOfError  float64          `json:"marginOfError"`
	Intervals      []AnchorInterval `json:"intervals,omitempty"`
}

// PSMResult holds the Van Westendorp marginal price points derived from the
// perception curves.
type PSMResult struct {
	PMC float64 `json:"pmc"`
	PME float64 `json:"pme"`
}

// Analysis holds all computed outputs for one scenario.
type Analysis struct {
	Name            string                         `json:"name"`
	Series          pricing.ProfitSeries           `json:"series"`
	Optimal         pricing.OptimalPoint           `json:"optimal"`
	BreakEven       *pricing.BreakEvenPoint        `json:"breakEven,omitempty"`
	SpecifiedPrices []pricing.SpecifiedPriceResult `json:"specifiedPrices,omitempty"`
	Segments        []SegmentResult                `json:"segments,omitempty"`
	Survey          *SurveyResult                  `json:"survey,omitempty"`
	PSM             *PSMResult                     `json:"psm,omitempty"`
}

// Run processes the analyses for all active scenarios.
func Run(logger *zap.Logger, conf config.Configuration) ([]Analysis, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	var results []Analysis
	for i := range conf.Scenarios {
		scenario := &conf.Scenarios[i]
		if !scenario.Active {
			logger.Debug(fmt.Sprintf("skipping scenario %s because it is inactive", scenario.Name),
				zap.String("op", "analysis.Run"),
			)
			continue
		}

		result, err := AnalyzeScenario(logger, scenario)
		if err != nil {
			return results, fmt.Errorf("scenario %s: %w", scenario.Name, err)
		}
		results = append(results, result)
	}

	return results, nil
}

// AnalyzeScenario runs the full evaluation for one scenario: profit series
// over the grid, optimal point, break-even, specified prices, independent
// segment evaluations, and survey statistics.
func AnalyzeScenario(logger *zap.Logger, scenario *config.Scenario) (Analysis, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	result := Analysis{Name: scenario.Name}

	slope, err := pricing.DemandSlope(scenario.Demand)
	if err != nil {
		return result, err
	}

	floor, err := scenario.GridFloorValue()
	if err != nil {
		return result, err
	}

	grid, err := pricing.BuildPriceGrid(floor, scenario.Demand.MaxPrice, scenario.GridSize)
	if err != nil {
		return result, err
	}

	result.Series = pricing.ComputeSeries(grid, scenario.Demand, slope, scenario.Cost)

	result.Optimal, err = pricing.FindOptimalPoint(result.Series)
	if err != nil {
		return result, err
	}
	logger.Debug("optimal point located",
		zap.String("op", "analysis.AnalyzeScenario"),
		zap.String("scenario", scenario.Name),
		zap.Float64("price", result.Optimal.Price),
		zap.Float64("profit", result.Optimal.Profit),
	)

	if point, ok := pricing.FindBreakEven(grid, scenario.Demand, slope, scenario.Cost); ok {
		result.BreakEven = &point
	} else {
		logger.Debug("no break-even price in grid",
			zap.String("op", "analysis.AnalyzeScenario"),
			zap.String("scenario", scenario.Name),
		)
	}

	for _, price := range scenario.SpecifiedPrices {
		result.SpecifiedPrices = append(result.SpecifiedPrices,
			pricing.EvaluateSpecifiedPrice(price, scenario.Demand, slope, scenario.Cost))
	}

	// Segments are evaluated independently against the shared grid and are
	// never combined.
	for _, seg := range scenario.Segments {
		segResult, segErr := pricing.EvaluateSegment(grid, scenario.Demand, seg, scenario.Cost)
		if segErr != nil {
			return result, fmt.Errorf("segment %s: %w", seg.Name, segErr)
		}
		result.Segments = append(result.Segments, segResult)
	}

	if scenario.Survey != nil {
		surveyResult, surveyErr := RunSurvey(scenario.Survey)
		if surveyErr != nil {
			return result, surveyErr
		}
		result.Survey = surveyResult
	}

	if len(scenario.PSMCurve) > 0 {
		pmc, pme, psmErr := survey.DerivePMCPME(scenario.PSMCurve)
		if psmErr != nil {
			return result, psmErr
		}
		result.PSM = &PSMResult{PMC: pmc, PME: pme}
	}

	return result, nil
}

// RunSurvey computes the margin of error and the confidence intervals for
// every configured anchor price.
func RunSurvey(conf *config.SurveyConfig) (*SurveyResult, error) {
	moe, err := survey.MarginOfError(conf.SampleSize, conf.SurveyOptions())
	if err != nil {
		return nil, err
	}

	result := &SurveyResult{
		SampleSize:     conf.SampleSize,
		PopulationSize: conf.PopulationSize,
		MarginOfError:  moe,
	}

	for _, anchor := range conf.Anchors {
		low, high := survey.ConfidenceInterval(anchor.Price, moe)
		result.Intervals = append(result.Intervals, AnchorInterval{
			Name:   anchor.Name,
			Anchor: anchor.Price,
			Low:    low,
			High:   high,
		})
	}

	return result, nil
}
