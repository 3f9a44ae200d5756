package planefit

import "gonum.org/v1/gonum/mat"

// Calculator turns the worst deviation of a point set from its fitted plane
// into a cost.
type Calculator struct {
	Threshold     float64 // distance at which the cost is zero
	Amplification float64 // factor applied after the threshold shift
}

// DefaultCalculator returns a calculator with threshold and amplification 1.
func DefaultCalculator() Calculator {
	return Calculator{Threshold: 1, Amplification: 1}
}

// CostResult is the outcome of a single cost computation.
type CostResult struct {
	Cost        float64
	MaxDistance float64
	Plane       Plane
	Points      *mat.Dense
}

// Cost fits a plane to ps and returns amplification*(maxDistance-threshold).
func (c Calculator) Cost(ps PointSet) (CostResult, error) {
	plane, err := FitPlane(ps)
	if err != nil {
		return CostResult{}, err
	}
	maxDist := plane.MaxDistance(ps...)
	return CostResult{
		Cost:        c.apply(maxDist),
		MaxDistance: maxDist,
		Plane:       plane,
		Points:      ps.Matrix(),
	}, nil
}

// CostOf is Cost for a flat coordinate slice.
func (c Calculator) CostOf(values []float64) (CostResult, error) {
	ps, err := NewPointSet(values)
	if err != nil {
		return CostResult{}, err
	}
	return c.Cost(ps)
}

// TripleCost is the cost of three points assigned to the same partition.
// Three finite points always factorize, so a failure yields the cost of a
// perfect fit.
func (c Calculator) TripleCost(v1, v2, v3 Vector) float64 {
	res, err := c.Cost(PointSet{v1, v2, v3})
	if err != nil {
		return c.apply(0)
	}
	return res.Cost
}

func (c Calculator) apply(maxDist float64) float64 {
	return c.Amplification * (maxDist - c.Threshold)
}
