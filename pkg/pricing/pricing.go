// Package pricing implements the demand-profit engine: linear demand curves
// derived from price/quantity anchors and elasticity, profit series over a
// price grid, optimal-price and break-even searches, and evaluation of
// individually specified prices. All functions are pure; identical inputs
// produce identical outputs.
package pricing

import (
	"math"

	"github.com/pricelab/pricelab/pkg/constants"
)

// DemandParameters anchors the linear demand curve. MaxQuantity is the
// expected sales volume at MinPrice, MinQuantity the volume at MaxPrice.
type DemandParameters struct {
	MinPrice    float64 `yaml:"minPrice" json:"minPrice"`
	MaxPrice    float64 `yaml:"maxPrice" json:"maxPrice"`
	MaxQuantity float64 `yaml:"maxQuantity" json:"maxQuantity"`
	MinQuantity float64 `yaml:"minQuantity" json:"minQuantity"`
	Elasticity  float64 `yaml:"elasticity" json:"elasticity"`

	// CollapseAboveMax forces quantity to zero for prices above MaxPrice
	// instead of extrapolating the linear slope. Demand outside the studied
	// acceptance range is treated as nonexistent when set.
	CollapseAboveMax bool `yaml:"collapseAboveMax" json:"collapseAboveMax"`
}

// CostParameters holds the cost structure of the offering.
type CostParameters struct {
	FixedCost    float64 `yaml:"fixedCost" json:"fixedCost"`
	VariableCost float64 `yaml:"variableCost" json:"variableCost"`
}

// PriceGrid is an ordered, strictly increasing sequence of price samples.
type PriceGrid []float64

// ProfitSeries holds parallel sequences of equal length, one entry per grid
// point. Quantities are clamped to be non-negative.
type ProfitSeries struct {
	Prices     []float64 `json:"prices"`
	Quantities []float64 `json:"quantities"`
	Revenues   []float64 `json:"revenues"`
	Costs      []float64 `json:"costs"`
	Profits    []float64 `json:"profits"`
}

// Len returns the number of grid points in the series.
func (s ProfitSeries) Len() int {
	return len(s.Prices)
}

// OptimalPoint is the grid entry maximizing profit.
type OptimalPoint struct {
	Price  float64 `json:"price"`
	Profit float64 `json:"profit"`
}

// BreakEvenPoint is the first grid entry whose own profit is non-negative.
type BreakEvenPoint struct {
	Price    float64 `json:"price"`
	Quantity float64 `json:"quantity"`
}

// BuildPriceGrid produces an inclusive, evenly spaced grid of sampleCount
// prices over [floor, ceiling]. A sampleCount below the minimum falls back to
// the default. Returns a DegenerateRangeError when ceiling <= floor.
func BuildPriceGrid(floor, ceiling float64, sampleCount int) (PriceGrid, error) {
	if ceiling <= floor {
		return nil, &DegenerateRangeError{Floor: floor, Ceiling: ceiling}
	}
	if sampleCount < constants.MinGridSize {
		sampleCount = constants.DefaultGridSize
	}

	grid := make(PriceGrid, sampleCount)
	step := (ceiling - floor) / float64(sampleCount-1)
	for i := range grid {
		grid[i] = floor + step*float64(i)
	}
	// Land exactly on the ceiling regardless of accumulated float error.
	grid[sampleCount-1] = ceiling
	return grid, nil
}

// DemandSlope derives the linear rate of quantity change per unit price from
// the demand anchors. The range width MaxPrice-MinPrice is the divisor, so a
// zero-width range fails with a DegenerateRangeError instead of propagating
// Inf or NaN.
func DemandSlope(params DemandParameters) (float64, error) {
	if params.MaxPrice <= params.MinPrice {
		return 0, &DegenerateRangeError{Floor: params.MinPrice, Ceiling: params.MaxPrice}
	}
	if params.Elasticity <= 0 {
		return 0, &InvalidElasticityError{Elasticity: params.Elasticity}
	}
	return (params.MinQuantity - params.MaxQuantity) / (params.MaxPrice - params.MinPrice) * params.Elasticity, nil
}

// QuantityAt evaluates the demand curve at a single price. The result is
// clamped to be non-negative; with CollapseAboveMax set, prices above
// MaxPrice sell nothing.
func QuantityAt(price float64, params DemandParameters, slope float64) float64 {
	if params.CollapseAboveMax && price > params.MaxPrice {
		return 0
	}
	return math.Max(0, params.MaxQuantity+slope*(price-params.MinPrice))
}

// ComputeSeries evaluates quantity, revenue, total cost, and profit at every
// grid price.
func ComputeSeries(grid PriceGrid, params DemandParameters, slope float64, cost CostParameters) ProfitSeries {
	series := ProfitSeries{
		Prices:     make([]float64, len(grid)),
		Quantities: make([]float64, len(grid)),
		Revenues:   make([]float64, len(grid)),
		Costs:      make([]float64, len(grid)),
		Profits:    make([]float64, len(grid)),
	}
	for i, price := range grid {
		quantity := QuantityAt(price, params, slope)
		revenue := price * quantity
		totalCost := cost.FixedCost + cost.VariableCost*quantity
		series.Prices[i] = price
		series.Quantities[i] = quantity
		series.Revenues[i] = revenue
		series.Costs[i] = totalCost
		series.Profits[i] = revenue - totalCost
	}
	return series
}

// ComputeProfitCurve builds the default grid and evaluates the profit series
// over it. The grid spans variable cost up to the maximum acceptable price,
// the range the source dashboards studied.
func ComputeProfitCurve(params DemandParameters, cost CostParameters, gridSize int) (ProfitSeries, error) {
	slope, err := DemandSlope(params)
	if err != nil {
		return ProfitSeries{}, err
	}
	grid, err := BuildPriceGrid(cost.VariableCost, params.MaxPrice, gridSize)
	if err != nil {
		return ProfitSeries{}, err
	}
	return ComputeSeries(grid, params, slope, cost), nil
}

// FindOptimalPoint returns the grid point of maximum profit. Ties break to
// the first occurrence, i.e. the lowest such price.
func FindOptimalPoint(series ProfitSeries) (OptimalPoint, error) {
	if series.Len() == 0 {
		return OptimalPoint{}, &EmptySeriesError{Op: "FindOptimalPoint"}
	}
	best := 0
	for i := 1; i < series.Len(); i++ {
		if series.Profits[i] > series.Profits[best] {
			best = i
		}
	}
	return OptimalPoint{Price: series.Prices[best], Profit: series.Profits[best]}, nil
}

// FindBreakEven scans the grid in increasing price order and returns the
// first point whose instantaneous profit is non-negative, along with true.
// The second return is false when no grid price breaks even.
//
// This is per-point profit, not cumulative profit over a sales trajectory:
// the break-even price is the cheapest price that is independently
// non-loss-making.
func FindBreakEven(grid PriceGrid, params DemandParameters, slope float64, cost CostParameters) (BreakEvenPoint, bool) {
	for _, price := range grid {
		quantity := QuantityAt(price, params, slope)
		profit := price*quantity - (cost.FixedCost + cost.VariableCost*quantity)
		if profit >= 0 {
			return BreakEvenPoint{Price: price, Quantity: quantity}, true
		}
	}
	return BreakEvenPoint{}, false
}
