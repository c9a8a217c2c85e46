package pricing

import "fmt"

// DegenerateRangeError indicates a price range whose width is zero or
// negative. The demand slope divides by the range width, so computation
// cannot proceed; the offending bounds are carried for corrective messages.
type DegenerateRangeError struct {
	Floor   float64
	Ceiling float64
}

func (e *DegenerateRangeError) Error() string {
	return fmt.Sprintf("degenerate price range: floor %.2f must be below ceiling %.2f", e.Floor, e.Ceiling)
}

// InvalidElasticityError indicates a non-positive price elasticity.
type InvalidElasticityError struct {
	Elasticity float64
}

func (e *InvalidElasticityError) Error() string {
	return fmt.Sprintf("price elasticity must be positive, got %v", e.Elasticity)
}

// EmptySeriesError indicates an operation over a series with no points.
type EmptySeriesError struct {
	Op string
}

func (e *EmptySeriesError) Error() string {
	return fmt.Sprintf("%s: profit series has no points", e.Op)
}
