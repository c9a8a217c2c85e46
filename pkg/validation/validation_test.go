package validation

import (
	"strings"
	"testing"

	"github.com/pricelab/pricelab/pkg/pricing"
	"github.com/pricelab/pricelab/pkg/survey"
)

func TestValidateOutputFormat(t *testing.T) {
	for _, format := range []string{"pretty", "csv"} {
		if err := ValidateOutputFormat(format); err != nil {
			t.Errorf("ValidateOutputFormat(%q) error = %v", format, err)
		}
	}
	if err := ValidateOutputFormat("xml"); err == nil {
		t.Error("ValidateOutputFormat(\"xml\") expected error")
	}
}

func TestValidateDemandParameters(t *testing.T) {
	tests := []struct {
		name     string
		params   pricing.DemandParameters
		expected string
	}{
		{
			name:     "degenerate range",
			params:   pricing.DemandParameters{MinPrice: 150, MaxPrice: 150, MaxQuantity: 1000, MinQuantity: 200, Elasticity: 1},
			expected: "demand slope is undefined",
		},
		{
			name:     "non-positive elasticity",
			params:   pricing.DemandParameters{MinPrice: 80, MaxPrice: 200, MaxQuantity: 1000, MinQuantity: 200, Elasticity: 0},
			expected: "not positive",
		},
		{
			name:     "inverted quantities",
			params:   pricing.DemandParameters{MinPrice: 80, MaxPrice: 200, MaxQuantity: 200, MinQuantity: 1000, Elasticity: 1},
			expected: "demand rises with price",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			warnings := ValidateDemandParameters("Test", tt.params)
			for _, warning := range warnings {
				if strings.Contains(warning, tt.expected) {
					return
				}
			}
			t.Errorf("warnings %v do not contain %q", warnings, tt.expected)
		})
	}
}

func TestValidateDemandParametersClean(t *testing.T) {
	params := pricing.DemandParameters{MinPrice: 80, MaxPrice: 200, MaxQuantity: 1000, MinQuantity: 200, Elasticity: 1}
	if warnings := ValidateDemandParameters("Test", params); len(warnings) != 0 {
		t.Errorf("expected no warnings, got %v", warnings)
	}
}

func TestValidateSegment(t *testing.T) {
	seg := pricing.Segment{Name: "Bad", PopulationSize: -1, PenetrationRate: 1.5, Elasticity: 0}
	warnings := ValidateSegment("Test", seg)
	if len(warnings) != 3 {
		t.Errorf("len(warnings) = %d, expected 3, got %v", len(warnings), warnings)
	}
}

func TestValidateSurvey(t *testing.T) {
	warnings := ValidateSurvey("Test", 300, survey.Options{PopulationSize: 200})
	found := false
	for _, warning := range warnings {
		if strings.Contains(warning, "finite-population correction will be skipped") {
			found = true
		}
	}
	if !found {
		t.Errorf("warnings %v missing FPC skip notice", warnings)
	}
}

func TestValidatePSMCurve(t *testing.T) {
	points := []survey.CurvePoint{
		{Price: 50, TooCheap: 90, Cheap: 70, Expensive: 10, TooExpensive: 5},
		{Price: 50, TooCheap: 80, Cheap: 60, Expensive: 20, TooExpensive: 10},
		{Price: 100, TooCheap: 120, Cheap: 50, Expensive: 50, TooExpensive: 50},
	}
	warnings := ValidatePSMCurve("Test", points)

	foundDup, foundRange := false, false
	for _, warning := range warnings {
		if strings.Contains(warning, "duplicate PSM curve price") {
			foundDup = true
		}
		if strings.Contains(warning, "outside [0, 100]") {
			foundRange = true
		}
	}
	if !foundDup {
		t.Errorf("warnings %v missing duplicate price notice", warnings)
	}
	if !foundRange {
		t.Errorf("warnings %v missing percentage range notice", warnings)
	}
}
