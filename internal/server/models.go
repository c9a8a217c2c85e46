package server

import (
	"github.com/pricelab/pricelab/internal/analysis"
	"github.com/pricelab/pricelab/internal/config"
	"github.com/pricelab/pricelab/pkg/pricing"
	"github.com/pricelab/pricelab/pkg/survey"
)

// AnalyzeRequest mirrors one scenario configuration as a JSON body.
type AnalyzeRequest struct {
	Name            string                   `json:"name"`
	Demand          pricing.DemandParameters `json:"demand" binding:"required"`
	Cost            pricing.CostParameters   `json:"cost"`
	GridSize        int                      `json:"gridSize"`
	GridFloor       string                   `json:"gridFloor"`
	SpecifiedPrices []float64                `json:"specifiedPrices"`
	Segments        []pricing.Segment        `json:"segments"`
	Survey          *SurveyRequest           `json:"survey"`
	PSMCurve        []survey.CurvePoint      `json:"psmCurve"`
}

// Scenario converts the request to the configuration type the analysis
// orchestrator consumes.
func (r *AnalyzeRequest) Scenario() *config.Scenario {
	name := r.Name
	if name == "" {
		name = "api"
	}
	scenario := &config.Scenario{
		Name:            name,
		Active:          true,
		Demand:          r.Demand,
		Cost:            r.Cost,
		GridSize:        r.GridSize,
		GridFloor:       r.GridFloor,
		SpecifiedPrices: r.SpecifiedPrices,
		Segments:        r.Segments,
		PSMCurve:        r.PSMCurve,
	}
	if r.Survey != nil {
		scenario.Survey = r.Survey.SurveyConfig()
	}
	return scenario
}

// SurveyRequest holds the sampling parameters for the survey endpoints.
type SurveyRequest struct {
	SampleSize     int             `json:"sampleSize" binding:"required"`
	PopulationSize int             `json:"populationSize"`
	Proportion     float64         `json:"proportion"`
	ZScore         float64         `json:"zScore"`
	Anchors        []config.Anchor `json:"anchors"`
}

// SurveyConfig converts the request to the configuration type.
func (r *SurveyRequest) SurveyConfig() *config.SurveyConfig {
	return &config.SurveyConfig{
		SampleSize:     r.SampleSize,
		PopulationSize: r.PopulationSize,
		Proportion:     r.Proportion,
		ZScore:         r.ZScore,
		Anchors:        r.Anchors,
	}
}

// PSMRequest holds the Van Westendorp curve points.
type PSMRequest struct {
	Points []survey.CurvePoint `json:"points" binding:"required"`
}

// AnalyzeResponse wraps one analysis with its CSV rendering and timing.
type AnalyzeResponse struct {
	Analysis analysis.Analysis `json:"analysis"`
	Warnings []string          `json:"warnings,omitempty"`
	CSV      string            `json:"csv"`
	Duration string            `json:"duration"`
}

// PSMResponse carries the derived marginal price points.
type PSMResponse struct {
	PMC float64 `json:"pmc"`
	PME float64 `json:"pme"`
}

// ErrorResponse is the JSON error envelope.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail carries a machine-readable code and a corrective message.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
