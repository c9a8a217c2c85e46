package testutil

import (
	"testing"

	"github.com/pricelab/pricelab/internal/analysis"
	"github.com/pricelab/pricelab/pkg/pricing"
)

func TestFindScenario(t *testing.T) {
	results := []analysis.Analysis{
		{Name: "Base case"},
		{Name: "Aggressive"},
	}

	if found := FindScenario(results, "Aggressive"); found == nil || found.Name != "Aggressive" {
		t.Errorf("FindScenario() = %+v, expected Aggressive", found)
	}
	if found := FindScenario(results, "Missing"); found != nil {
		t.Errorf("FindScenario() = %+v, expected nil for missing name", found)
	}
}

func TestFindSegment(t *testing.T) {
	result := analysis.Analysis{
		Name: "Base case",
		Segments: []analysis.SegmentResult{
			{Name: "Consumer", Optimal: pricing.OptimalPoint{Price: 120}},
		},
	}

	if found := FindSegment(&result, "Consumer"); found == nil || found.Optimal.Price != 120 {
		t.Errorf("FindSegment() = %+v, expected Consumer segment", found)
	}
	if found := FindSegment(&result, "Missing"); found != nil {
		t.Errorf("FindSegment() = %+v, expected nil for missing name", found)
	}
	if found := FindSegment(nil, "Consumer"); found != nil {
		t.Errorf("FindSegment(nil) = %+v, expected nil", found)
	}
}
