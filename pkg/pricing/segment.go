package pricing

import "math"

// Segment describes one market segment evaluated independently against the
// shared price grid. Segments are never summed or blended; each produces its
// own profit series.
type Segment struct {
	Name            string  `yaml:"name" json:"name"`
	PopulationSize  int     `yaml:"populationSize" json:"populationSize"`
	PenetrationRate float64 `yaml:"penetrationRate" json:"penetrationRate"`
	Elasticity      float64 `yaml:"elasticity" json:"elasticity"`
}

// MaxQuantity derives the segment's sales ceiling from its population and
// penetration rate, truncated to whole units.
func (s Segment) MaxQuantity() float64 {
	return math.Floor(float64(s.PopulationSize) * s.PenetrationRate)
}

// SegmentResult is the independent evaluation of one segment.
type SegmentResult struct {
	Name      string          `json:"name"`
	Series    ProfitSeries    `json:"series"`
	Optimal   OptimalPoint    `json:"optimal"`
	BreakEven *BreakEvenPoint `json:"breakEven,omitempty"`
}

// SegmentParameters rescales the base demand anchors to a segment's derived
// sales ceiling, keeping the shape of the demand range, and substitutes the
// segment's own elasticity.
func SegmentParameters(base DemandParameters, seg Segment) DemandParameters {
	params := base
	maxQ := seg.MaxQuantity()
	if base.MaxQuantity > 0 {
		params.MinQuantity = base.MinQuantity * maxQ / base.MaxQuantity
	} else {
		params.MinQuantity = 0
	}
	params.MaxQuantity = maxQ
	params.Elasticity = seg.Elasticity
	return params
}

// EvaluateSegment runs the profit computation for one segment over the shared
// grid.
func EvaluateSegment(grid PriceGrid, base DemandParameters, seg Segment, cost CostParameters) (SegmentResult, error) {
	params := SegmentParameters(base, seg)
	slope, err := DemandSlope(params)
	if err != nil {
		return SegmentResult{}, err
	}

	series := ComputeSeries(grid, params, slope, cost)
	optimal, err := FindOptimalPoint(series)
	if err != nil {
		return SegmentResult{}, err
	}

	result := SegmentResult{Name: seg.Name, Series: series, Optimal: optimal}
	if point, ok := FindBreakEven(grid, params, slope, cost); ok {
		result.BreakEven = &point
	}
	return result, nil
}
