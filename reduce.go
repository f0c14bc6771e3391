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

package backed

import "fmt"

// NoAxis directs Reduce over every element regardless of rank.
const NoAxis = -1

// ReduceOptions configures Reduce. The zero value reduces along axis 0
// keeping missing values significant; DefaultReduceOptions gives the
// common whole-array, skip-missing form.
type ReduceOptions struct {
	// SkipNA drops missing positions from the fold instead of letting
	// the fold see them.
	SkipNA bool
	// Axis is the axis folded away on rank-2 arrays; NoAxis folds every
	// element into one scalar.
	Axis int
}

// DefaultReduceOptions returns options that fold the whole array and skip
// missing values.
func DefaultReduceOptions() ReduceOptions {
	return ReduceOptions{SkipNA: true, Axis: NoAxis}
}

// Reduce dispatches a named reduction on the dtype. Dtypes advertise their
// reductions through the Reducible interface; a dtype without it, or
// without the requested name, yields ErrNotImplemented. A whole-array or
// rank-1 reduction returns the boxed scalar; a rank-2 reduction along an
// axis returns a rank-1 array.
func (a *Array[T, V, D]) Reduce(name string, opts ReduceOptions) (any, error) {
	red, ok := any(a.dtype).(Reducible[T])
	if !ok {
		return nil, fmt.Errorf("%w: backed: dtype %s does not implement reduction '%s'",
			ErrNotImplemented, a.dtype.Name(), name)
	}
	fn, ok := red.Reductions()[name]
	if !ok {
		return nil, fmt.Errorf("%w: backed: dtype %s does not implement reduction '%s'",
			ErrNotImplemented, a.dtype.Name(), name)
	}

	if opts.Axis == NoAxis || a.Rank() == 1 {
		if opts.Axis != NoAxis {
			if _, err := a.normalizeAxis(opts.Axis); err != nil {
				return nil, err
			}
		}
		values := a.buf.logicalValues()
		return a.dtype.Box(fn(values, a.MissingMask(), opts.SkipNA)), nil
	}

	axis, err := a.normalizeAxis(opts.Axis)
	if err != nil {
		return nil, err
	}
	rows, cols := a.buf.shape[0], a.buf.shape[1]
	values := a.buf.logicalValues()
	mask := a.MissingMask()

	if axis == 0 {
		// fold rows away, one result per column
		out := make([]T, cols)
		lane := make([]T, rows)
		laneMask := make([]bool, rows)
		for c := 0; c < cols; c++ {
			for r := 0; r < rows; r++ {
				lane[r] = values[r*cols+c]
				laneMask[r] = mask[r*cols+c]
			}
			out[c] = fn(lane, laneMask, opts.SkipNA)
		}
		return a.FromBackingData(NewVectorBuffer(out)), nil
	}
	// fold columns away, one result per row
	out := make([]T, rows)
	for r := 0; r < rows; r++ {
		out[r] = fn(values[r*cols:(r+1)*cols], mask[r*cols:(r+1)*cols], opts.SkipNA)
	}
	return a.FromBackingData(NewVectorBuffer(out)), nil
}
