// Package planefit fits a plane through the origin to a set of 3D points and
// turns the worst perpendicular deviation from that plane into a cost.
package planefit

import (
	"math"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// Vector is a point or direction in 3D space.
type Vector struct {
	X, Y, Z float64
}

// Dot returns the scalar product of v and w.
func (v Vector) Dot(w Vector) float64 {
	return v.X*w.X + v.Y*w.Y + v.Z*w.Z
}

// Norm returns the euclidean length of v.
func (v Vector) Norm() float64 {
	return math.Sqrt(v.Dot(v))
}

// PointSet is an ordered sequence of points.
type PointSet []Vector

// ParseValues splits a comma separated line into floats. Spaces inside a
// token are ignored, so "1, 2 ,3" is accepted.
func ParseValues(input string) ([]float64, error) {
	tokens := strings.Split(input, ",")
	values := make([]float64, 0, len(tokens))
	for i, tok := range tokens {
		tok = strings.ReplaceAll(tok, " ", "")
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, &ParseError{Index: i, Token: tok, Err: err}
		}
		values = append(values, v)
	}
	return values, nil
}

// NewPointSet groups values into consecutive (x, y, z) triples.
func NewPointSet(values []float64) (PointSet, error) {
	if len(values) == 0 || len(values)%3 != 0 {
		return nil, &ShapeError{Count: len(values)}
	}
	ps := make(PointSet, len(values)/3)
	for i := range ps {
		ps[i] = Vector{X: values[i*3], Y: values[i*3+1], Z: values[i*3+2]}
	}
	return ps, nil
}

// ParsePointSet parses a comma separated line of coordinates.
func ParsePointSet(input string) (PointSet, error) {
	values, err := ParseValues(input)
	if err != nil {
		return nil, err
	}
	return NewPointSet(values)
}

// Matrix returns the points as an n×3 matrix, one point per row.
func (ps PointSet) Matrix() *mat.Dense {
	data := make([]float64, 0, len(ps)*3)
	for _, p := range ps {
		data = append(data, p.X, p.Y, p.Z)
	}
	return mat.NewDense(len(ps), 3, data)
}
