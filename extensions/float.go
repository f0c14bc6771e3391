// Licensed to the Apache Software Foundation (ASF) under one
// or more contributor license agreements.  See the NOTICE file
// distributed with this work for additional information
// regarding copyright ownership.  The ASF licenses this file
// to you under the Apache License, Version 2.0 (the
// "License"); you may not use this file except in compliance
// with the License.  You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package extensions

import (
	"fmt"
	"math"

	"github.com/backed-go/backed"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// FloatType stores float64 elements as themselves, with NaN as the missing
// marker. Because NaN is the marker, a FloatType array cannot hold a real
// NaN payload.
type FloatType struct{}

// NewFloatType returns the float64 dtype.
func NewFloatType() *FloatType { return &FloatType{} }

// FloatArray is the array instantiation backed by FloatType.
type FloatArray = backed.Array[float64, float64, *FloatType]

// Name returns "float64".
func (*FloatType) Name() string { return "float64" }

// Box returns raw unchanged.
func (*FloatType) Box(raw float64) float64 { return raw }

// IsMissing reports whether raw is NaN.
func (*FloatType) IsMissing(raw float64) bool { return math.IsNaN(raw) }

func (*FloatType) coerce(v any) (float64, error) {
	switch t := v.(type) {
	case nil:
		return math.NaN(), nil
	case float64:
		return t, nil
	case float32:
		return float64(t), nil
	case int:
		return float64(t), nil
	case int64:
		return float64(t), nil
	case int32:
		return float64(t), nil
	default:
		return 0, fmt.Errorf("%w: cannot coerce %T into float64", backed.ErrType, v)
	}
}

// ValidateScalar accepts nil and any common Go numeric type.
func (dt *FloatType) ValidateScalar(v any) (float64, error) { return dt.coerce(v) }

// ValidateFill accepts the same inputs as ValidateScalar.
func (dt *FloatType) ValidateFill(v any) (float64, error) { return dt.coerce(v) }

// ValidateSet accepts the same inputs as ValidateScalar.
func (dt *FloatType) ValidateSet(v any) (float64, error) { return dt.coerce(v) }

// ValidateSearch accepts the same inputs as ValidateScalar.
func (dt *FloatType) ValidateSearch(v any) (float64, error) { return dt.coerce(v) }

// Reductions supports "sum", "mean", "min" and "max". Any missing element
// poisons the fold to NaN when skipNA is false. With skipNA, an empty lane
// sums to 0 and yields NaN under the other three.
func (*FloatType) Reductions() map[string]backed.ReduceFunc[float64] {
	return map[string]backed.ReduceFunc[float64]{
		"sum":  foldFloats(floats.Sum),
		"mean": foldFloats(func(x []float64) float64 { return stat.Mean(x, nil) }),
		"min":  foldFloats(minFloats),
		"max":  foldFloats(maxFloats),
	}
}

// foldFloats adapts a slice aggregate into a ReduceFunc by stripping the
// masked positions first.
func foldFloats(agg func([]float64) float64) backed.ReduceFunc[float64] {
	return func(values []float64, mask []bool, skipNA bool) float64 {
		kept := make([]float64, 0, len(values))
		for i, v := range values {
			if mask[i] {
				if !skipNA {
					return math.NaN()
				}
				continue
			}
			kept = append(kept, v)
		}
		return agg(kept)
	}
}

func minFloats(x []float64) float64 {
	if len(x) == 0 {
		return math.NaN()
	}
	return floats.Min(x)
}

func maxFloats(x []float64) float64 {
	if len(x) == 0 {
		return math.NaN()
	}
	return floats.Max(x)
}

// NewFloatVector builds a rank-1 float array, taking ownership of the
// slice. NaN elements are missing.
func NewFloatVector(values []float64) *FloatArray {
	return backed.NewVector[float64, float64](NewFloatType(), values)
}

// NewFloatArray wraps values in an array of the given shape, row-major,
// taking ownership of the slice.
func NewFloatArray(values []float64, shape backed.Shape) (*FloatArray, error) {
	return backed.New[float64, float64](NewFloatType(), values, shape)
}
