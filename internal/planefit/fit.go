package planefit

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Plane is a plane through the origin described by its normal vector.
type Plane struct {
	Normal Vector
}

// FitPlane finds the plane through the origin that minimises the sum of
// squared distances to the points. The normal is the left singular vector
// of AᵗA belonging to its smallest singular value. When several singular
// values share the minimum, the first one reported by the decomposition wins.
//
// For one or two points AᵗA is rank deficient and the chosen normal is
// orthogonal to every point, so all distances are zero.
func FitPlane(ps PointSet) (Plane, error) {
	if len(ps) == 0 {
		return Plane{}, &ShapeError{Count: 0}
	}
	a := ps.Matrix()

	var m mat.Dense
	m.Mul(a.T(), a)

	var svd mat.SVD
	if ok := svd.Factorize(&m, mat.SVDFull); !ok {
		return Plane{}, ErrFactorize
	}
	values := svd.Values(nil)

	var u mat.Dense
	svd.UTo(&u)

	i := argMin(values)
	return Plane{Normal: Vector{X: u.At(0, i), Y: u.At(1, i), Z: u.At(2, i)}}, nil
}

// argMin returns the index of the first minimum.
func argMin(values []float64) int {
	idx := 0
	for i, v := range values {
		if v < values[idx] {
			idx = i
		}
	}
	return idx
}

// Distance returns the perpendicular distance of p from the plane. The
// normal length is divided out so a slightly non-unit normal is tolerated.
func (pl Plane) Distance(p Vector) float64 {
	n := pl.Normal.Norm()
	if n == 0 {
		return 0
	}
	return math.Abs(pl.Normal.Dot(p)) / n
}

// MaxDistance returns the largest distance of any point from the plane,
// or 0 when no points are given.
func (pl Plane) MaxDistance(points ...Vector) float64 {
	maxDist := 0.0
	for _, p := range points {
		if d := pl.Distance(p); d > maxDist {
			maxDist = d
		}
	}
	return maxDist
}
