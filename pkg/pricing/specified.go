package pricing

import "github.com/pricelab/pricelab/pkg/constants"

// RangeClassification places a price relative to the studied acceptance
// range [MinPrice, MaxPrice]. Prices exactly on either bound are within
// range.
type RangeClassification string

const (
	BelowRange  RangeClassification = "below"
	WithinRange RangeClassification = "within"
	AboveRange  RangeClassification = "above"
)

// Message returns the human-readable deviation message shown next to a
// specified price.
func (c RangeClassification) Message() string {
	switch c {
	case BelowRange:
		return "Price is below the minimum acceptable price."
	case AboveRange:
		return "Price is above the maximum acceptable price."
	default:
		return "Price is within the acceptable range."
	}
}

// SpecifiedPriceResult is the evaluation of a single user-chosen price.
type SpecifiedPriceResult struct {
	Price          float64             `json:"price"`
	Quantity       float64             `json:"quantity"`
	Profit         float64             `json:"profit"`
	GrossMargin    float64             `json:"grossMargin"`
	Classification RangeClassification `json:"classification"`
}

// ClassifyPrice determines where a price falls relative to the acceptance
// range.
func ClassifyPrice(price float64, params DemandParameters) RangeClassification {
	switch {
	case price < params.MinPrice:
		return BelowRange
	case price > params.MaxPrice:
		return AboveRange
	default:
		return WithinRange
	}
}

// EvaluateSpecifiedPrice computes quantity, profit, and gross margin at one
// price and classifies it against the acceptance range. Gross margin is zero
// when the price does not exceed variable cost.
func EvaluateSpecifiedPrice(price float64, params DemandParameters, slope float64, cost CostParameters) SpecifiedPriceResult {
	quantity := QuantityAt(price, params, slope)
	profit := price*quantity - (cost.FixedCost + cost.VariableCost*quantity)

	grossMargin := 0.0
	if price > cost.VariableCost {
		grossMargin = (price - cost.VariableCost) / price * constants.PercentageMultiplier
	}

	return SpecifiedPriceResult{
		Price:          price,
		Quantity:       quantity,
		Profit:         profit,
		GrossMargin:    grossMargin,
		Classification: ClassifyPrice(price, params),
	}
}
