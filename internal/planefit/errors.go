package planefit

import (
	"errors"
	"fmt"
)

var (
	// ErrParse reports that an input token is not a real number.
	ErrParse = errors.New("input could not be parsed into floats")
	// ErrShape reports that the coordinate count is not a positive multiple of 3.
	ErrShape = errors.New("each point must have three numbers representing X, Y and Z")
	// ErrFactorize reports that the singular value decomposition did not converge.
	ErrFactorize = errors.New("failed to factorize point matrix")
)

// ParseError describes the first token that could not be parsed.
type ParseError struct {
	Index int
	Token string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("token %d (%q): %v", e.Index, e.Token, ErrParse)
}

// Is makes errors.Is(err, ErrParse) hold for every ParseError.
func (e *ParseError) Is(target error) bool { return target == ErrParse }

func (e *ParseError) Unwrap() error { return e.Err }

// ShapeError reports how many coordinates were supplied.
type ShapeError struct {
	Count int
}

func (e *ShapeError) Error() string {
	if e.Count == 0 {
		return fmt.Sprintf("no coordinates given: %v", ErrShape)
	}
	return fmt.Sprintf("%d coordinates given: %v", e.Count, ErrShape)
}

func (e *ShapeError) Is(target error) bool { return target == ErrShape }
