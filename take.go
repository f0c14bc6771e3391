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

// TakeOptions configures Take.
type TakeOptions struct {
	// AllowFill changes what index -1 means: the fill sentinel instead of
	// reverse indexing. Indices below -1 become errors.
	AllowFill bool
	// FillValue passes ValidateFill when AllowFill is set; nil selects
	// the dtype's missing marker where it has one.
	FillValue any
	// Axis selects what indices address on rank-2 arrays: 0 gathers
	// rows, 1 columns.
	Axis int
}

// Take gathers the addressed positions along the axis into a new row-major
// array. Without AllowFill, negative indices count from the end. With it,
// -1 marks positions to receive the fill value. Bounds are checked up
// front; no partial result is built.
func (a *Array[T, V, D]) Take(indices []int, opts TakeOptions) (*Array[T, V, D], error) {
	axis, err := a.normalizeAxis(opts.Axis)
	if err != nil {
		return nil, err
	}
	n := a.axisLen(axis)
	if !opts.AllowFill {
		norm, err := normalizePositions(indices, n)
		if err != nil {
			return nil, err
		}
		var zero T
		return a.takeByAxis(norm, axis, false, zero), nil
	}
	fill, err := a.dtype.ValidateFill(opts.FillValue)
	if err != nil {
		return nil, err
	}
	for _, idx := range indices {
		if idx < -1 || idx >= n {
			return nil, fmt.Errorf("%w: backed: take index %d out of range [-1, %d) with fill enabled",
				ErrIndex, idx, n)
		}
	}
	return a.takeByAxis(indices, axis, true, fill), nil
}
