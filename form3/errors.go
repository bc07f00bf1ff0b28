// Package form3 generates meshes of primitive solids. Generators are
// configured through validated parameter structs and write into a
// meshgen.Context.
package form3

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"
	"github.com/soypat/glgl/math/ms3"
	"github.com/soypat/meshgen/internal/d3"
)

// ErrInvalidParameter is the sentinel wrapped by every configuration error.
var ErrInvalidParameter = errors.New("invalid parameter")

// ParamError reports a rejected shape parameter. The generator it was
// reported by keeps its previous value.
type ParamError struct {
	Shape  string
	Param  string
	Value  any
	Reason string
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("%s: bad %s %v: %s", e.Shape, e.Param, e.Value, e.Reason)
}

// Unwrap returns ErrInvalidParameter.
func (e *ParamError) Unwrap() error { return ErrInvalidParameter }

func checkPositive(shape, param string, v float32) error {
	if !(v > 0) || math32.IsInf(v, 1) {
		return &ParamError{Shape: shape, Param: param, Value: v, Reason: "must be positive and finite"}
	}
	return nil
}

func checkNonNegative(shape, param string, v float32) error {
	if !(v >= 0) || math32.IsInf(v, 1) {
		return &ParamError{Shape: shape, Param: param, Value: v, Reason: "must be non-negative and finite"}
	}
	return nil
}

func checkFinite(shape, param string, v float32) error {
	if math32.IsNaN(v) || math32.IsInf(v, 0) {
		return &ParamError{Shape: shape, Param: param, Value: v, Reason: "must be finite"}
	}
	return nil
}

func checkSegments(shape, param string, n int) error {
	if n < 1 {
		return &ParamError{Shape: shape, Param: param, Value: n, Reason: "segment count must be at least 1"}
	}
	return nil
}

func checkVec(shape, param string, v ms3.Vec) error {
	if !d3.IsFinite(v) {
		return &ParamError{Shape: shape, Param: param, Value: v, Reason: "must be finite"}
	}
	return nil
}

func checkDirection(shape, param string, v ms3.Vec) error {
	if err := checkVec(shape, param, v); err != nil {
		return err
	}
	if ms3.Norm(v) < 1e-6 {
		return &ParamError{Shape: shape, Param: param, Value: v, Reason: "zero length direction"}
	}
	return nil
}

func checkSize(shape, param string, v ms3.Vec) error {
	if !d3.IsFinite(v) || d3.LTEZero(v) {
		return &ParamError{Shape: shape, Param: param, Value: v, Reason: "components must be positive and finite"}
	}
	return nil
}

// firstErr returns the first non-nil error.
func firstErr(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
