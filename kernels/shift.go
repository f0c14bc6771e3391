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

// Shift displaces values by periods positions into a freshly allocated
// slice, vacated positions take fill. Positive periods move values toward
// higher indices, negative toward lower. A magnitude of len(values) or more
// yields a slice of nothing but fill.
func Shift[T any](values []T, periods int, fill T) []T {
	out := make([]T, len(values))
	shiftInto(out, values, periods, fill)
	return out
}

// ShiftRows displaces whole rows of a row-major rows x cols matrix by
// periods, vacated rows take fill.
func ShiftRows[T any](values []T, rows, cols, periods int, fill T) []T {
	debug.Assert(len(values) == rows*cols,
		"backed/kernels: buffer length %d does not match %dx%d", len(values), rows, cols)
	out := make([]T, len(values))
	switch {
	case periods == 0:
		copy(out, values)
	case periods >= rows || -periods >= rows:
		for i := range out {
			out[i] = fill
		}
	case periods > 0:
		copy(out[periods*cols:], values[:(rows-periods)*cols])
		for i := 0; i < periods*cols; i++ {
			out[i] = fill
		}
	default:
		copy(out, values[-periods*cols:])
		for i := (rows + periods) * cols; i < len(out); i++ {
			out[i] = fill
		}
	}
	return out
}

// ShiftCols displaces columns of a row-major rows x cols matrix by periods,
// shifting each row independently.
func ShiftCols[T any](values []T, rows, cols, periods int, fill T) []T {
	debug.Assert(len(values) == rows*cols,
		"backed/kernels: buffer length %d does not match %dx%d", len(values), rows, cols)
	out := make([]T, len(values))
	for r := 0; r < rows; r++ {
		shiftInto(out[r*cols:(r+1)*cols], values[r*cols:(r+1)*cols], periods, fill)
	}
	return out
}

func shiftInto[T any](dst, src []T, periods int, fill T) {
	n := len(src)
	switch {
	case periods == 0:
		copy(dst, src)
	case periods >= n || -periods >= n:
		for i := range dst {
			dst[i] = fill
		}
	case periods > 0:
		copy(dst[periods:], src[:n-periods])
		for i := 0; i < periods; i++ {
			dst[i] = fill
		}
	default:
		copy(dst, src[-periods:])
		for i := n + periods; i < n; i++ {
			dst[i] = fill
		}
	}
}
