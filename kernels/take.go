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

package kernels

import (
	"github.com/backed-go/backed/internal/debug"
)

// Take gathers values at the given positions into a freshly allocated slice.
// When allowFill is true the index -1 selects fill instead of a source
// position. All other indices must already be validated to lie in
// [0, len(values)).
func Take[T any](values []T, indices []int, allowFill bool, fill T) []T {
	out := make([]T, len(indices))
	for i, idx := range indices {
		if allowFill && idx == -1 {
			out[i] = fill
			continue
		}
		debug.Assert(idx >= 0 && idx < len(values),
			"backed/kernels: take index %d out of range [0, %d)", idx, len(values))
		out[i] = values[idx]
	}
	return out
}

// TakeRows gathers whole rows of a row-major rows x cols matrix. The result
// holds len(indices) rows of cols elements each. Index -1 with allowFill
// produces a row of fill values.
func TakeRows[T any](values []T, rows, cols int, indices []int, allowFill bool, fill T) []T {
	debug.Assert(len(values) == rows*cols,
		"backed/kernels: buffer length %d does not match %dx%d", len(values), rows, cols)
	out := make([]T, len(indices)*cols)
	for i, idx := range indices {
		dst := out[i*cols : (i+1)*cols]
		if allowFill && idx == -1 {
			for j := range dst {
				dst[j] = fill
			}
			continue
		}
		debug.Assert(idx >= 0 && idx < rows,
			"backed/kernels: take row %d out of range [0, %d)", idx, rows)
		copy(dst, values[idx*cols:(idx+1)*cols])
	}
	return out
}

// TakeCols gathers columns of a row-major rows x cols matrix. The result
// holds rows rows of len(indices) elements each. Index -1 with allowFill
// produces a column of fill values.
func TakeCols[T any](values []T, rows, cols int, indices []int, allowFill bool, fill T) []T {
	debug.Assert(len(values) == rows*cols,
		"backed/kernels: buffer length %d does not match %dx%d", len(values), rows, cols)
	width := len(indices)
	out := make([]T, rows*width)
	for i, idx := range indices {
		if allowFill && idx == -1 {
			for r := 0; r < rows; r++ {
				out[r*width+i] = fill
			}
			continue
		}
		debug.Assert(idx >= 0 && idx < cols,
			"backed/kernels: take column %d out of range [0, %d)", idx, cols)
		for r := 0; r < rows; r++ {
			out[r*width+i] = values[r*cols+idx]
		}
	}
	return out
}
