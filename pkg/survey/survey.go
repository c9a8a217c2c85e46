// Package survey implements survey-statistics computations: margin of error
// with optional finite-population correction, derived confidence intervals
// around anchor prices, and Van Westendorp marginal price points from
// cumulative perception curves.
package survey

import (
	"fmt"
	"math"
	"sort"

	"github.com/pricelab/pricelab/pkg/constants"
)

// InvalidSampleError indicates a non-positive sample size.
type InvalidSampleError struct {
	SampleSize int
}

func (e *InvalidSampleError) Error() string {
	return fmt.Sprintf("sample size must be positive, got %d", e.SampleSize)
}

// NoIntersectionError indicates the perception curves never satisfy the
// marginal-point predicate; the crossing assumption does not hold for the
// given data.
type NoIntersectionError struct {
	Predicate string
	Points    int
}

func (e *NoIntersectionError) Error() string {
	return fmt.Sprintf("no curve point satisfies %s across %d points", e.Predicate, e.Points)
}

// Options tunes the margin-of-error computation. Zero values fall back to
// the conservative defaults (p=0.5, z=1.96, infinite population).
type Options struct {
	Proportion     float64 `yaml:"proportion" json:"proportion"`
	ZScore         float64 `yaml:"zScore" json:"zScore"`
	PopulationSize int     `yaml:"populationSize" json:"populationSize"`
}

// MarginOfError computes z*sqrt(p(1-p)/n). When a finite population larger
// than the sample is given, the finite-population correction
// sqrt((N-n)/(N-1)) is applied; a population at or below the sample size is
// treated as the infinite-population assumption and skipped silently.
func MarginOfError(sampleSize int, opts Options) (float64, error) {
	if sampleSize <= 0 {
		return 0, &InvalidSampleError{SampleSize: sampleSize}
	}

	p := opts.Proportion
	if p == 0 {
		p = constants.DefaultProportion
	}
	z := opts.ZScore
	if z == 0 {
		z = constants.DefaultZScore
	}

	moe := z * math.Sqrt(p*(1-p)/float64(sampleSize))

	if opts.PopulationSize > sampleSize {
		n := float64(sampleSize)
		N := float64(opts.PopulationSize)
		moe *= math.Sqrt((N - n) / (N - 1))
	}
	return moe, nil
}

// ConfidenceInterval scales an anchor price by the margin of error. The lower
// bound is not clamped; a large margin can legitimately produce a negative
// low and callers are expected to surface it. The bounds are computed as
// anchor +/- anchor*moe; folding the margin into a 1+/-moe factor first
// picks up rounding error the subtraction form avoids.
func ConfidenceInterval(anchor, moe float64) (low, high float64) {
	delta := anchor * moe
	return anchor - delta, anchor + delta
}

// CurvePoint holds the four cumulative Van Westendorp percentages observed at
// one price.
type CurvePoint struct {
	Price        float64 `yaml:"price" json:"price"`
	TooCheap     float64 `yaml:"tooCheap" json:"tooCheap"`
	Cheap        float64 `yaml:"cheap" json:"cheap"`
	Expensive    float64 `yaml:"expensive" json:"expensive"`
	TooExpensive float64 `yaml:"tooExpensive" json:"tooExpensive"`
}

// DerivePMCPME locates the points of marginal cheapness and expensiveness.
// PMC is the greatest price where tooCheap <= expensive; PME the least price
// where tooExpensive >= cheap. The input is sorted by ascending price before
// evaluation; the caller's slice is not modified. A predicate that never
// holds yields a NoIntersectionError, never a fabricated value.
func DerivePMCPME(points []CurvePoint) (pmc, pme float64, err error) {
	sorted := make([]CurvePoint, len(points))
	copy(sorted, points)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Price < sorted[j].Price })

	foundPMC := false
	for _, point := range sorted {
		if point.TooCheap <= point.Expensive {
			pmc = point.Price
			foundPMC = true
		}
	}
	if !foundPMC {
		return 0, 0, &NoIntersectionError{Predicate: "tooCheap <= expensive", Points: len(sorted)}
	}

	foundPME := false
	for i := len(sorted) - 1; i >= 0; i-- {
		if sorted[i].TooExpensive >= sorted[i].Cheap {
			pme = sorted[i].Price
			foundPME = true
		}
	}
	if !foundPME {
		return 0, 0, &NoIntersectionError{Predicate: "tooExpensive >= cheap", Points: len(sorted)}
	}

	return pmc, pme, nil
}
