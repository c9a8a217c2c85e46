// Package testutil provides common utility functions for testing.
package testutil

import (
	"github.com/pricelab/pricelab/internal/analysis"
)

// FindScenario finds an analysis result by scenario name.
// Returns a pointer to the analysis if found, nil otherwise.
func FindScenario(results []analysis.Analysis, name string) *analysis.Analysis {
	for i := range results {
		if results[i].Name == name {
			return &results[i]
		}
	}
	return nil
}

// FindSegment finds a segment result by name within one analysis.
// Returns a pointer to the segment result if found, nil otherwise.
func FindSegment(result *analysis.Analysis, name string) *analysis.SegmentResult {
	if result == nil {
		return nil
	}
	for i := range result.Segments {
		if result.Segments[i].Name == name {
			return &result.Segments[i]
		}
	}
	return nil
}
